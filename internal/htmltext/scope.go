package htmltext

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

// scope picks the subtrees text is collected from.
type scope func(doc *html.Node) ([]*html.Node, error)

func documentScope(doc *html.Node) ([]*html.Node, error) {
	return []*html.Node{doc}, nil
}

// cssScope matches with goquery. An invalid selector matches nothing.
func cssScope(selector string) scope {
	return func(doc *html.Node) ([]*html.Node, error) {
		sel := goquery.NewDocumentFromNode(doc).Find(selector)
		return outermost(doc, sel.Nodes), nil
	}
}

func xpathScope(expr string) scope {
	return func(doc *html.Node) ([]*html.Node, error) {
		nodes, err := htmlquery.QueryAll(doc, expr)
		if err != nil {
			return nil, fmt.Errorf("xpath %q: %w", expr, err)
		}
		return outermost(doc, nodes), nil
	}
}

// outermost returns the matched nodes in document order, dropping any match
// nested inside another so its text is collected once.
func outermost(doc *html.Node, matches []*html.Node) []*html.Node {
	if len(matches) == 0 {
		return nil
	}
	matched := make(map[*html.Node]bool, len(matches))
	for _, n := range matches {
		matched[n] = true
	}

	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if matched[n] {
			out = append(out, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return out
}
