// Package htmltext extracts the human-visible text of an HTML page.
//
// A text node is visible unless its parent is a style, script, head, title or
// meta element, or the document node itself. Comments are never visible.
// Pages are parsed with scripting off, and the fallback markup of iframe,
// noembed and noframes is parsed as a fragment, so no tags leak into the text.
// Visible strings are trimmed, empty ones are skipped, and the rest are joined
// with a single space in document order.
//
// Built on:
//   - golang.org/x/net/html: lenient HTML5 parsing and fragment parsing
//   - goquery: CSS selector scopes
//   - htmlquery: XPath scopes
//   - mimetype, chardet and x/net/html/charset: byte body decoding
//
// Example Usage:
//
//	text, err := htmltext.New().Text(page)
//
//	// Only the article body, decoded from raw bytes
//	x := htmltext.New(htmltext.WithSelector("article"))
//	text, err = x.TextFromBytes(body)
package htmltext
