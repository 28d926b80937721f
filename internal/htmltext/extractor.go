package htmltext

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	// DefaultMaxBytes limits input to 10MB.
	DefaultMaxBytes = 10 * 1024 * 1024

	// DefaultSeparator joins visible strings.
	DefaultSeparator = " "
)

// ErrTooLarge is returned for input over the configured size limit.
var ErrTooLarge = errors.New("html exceeds maximum size")

// hiddenParents are elements whose text children are never rendered.
var hiddenParents = map[string]bool{
	"style":  true,
	"script": true,
	"head":   true,
	"title":  true,
	"meta":   true,
}

// rawTextParents hold fallback markup the tokenizer keeps as one text node.
// Their text is parsed again as a body fragment.
var rawTextParents = map[string]bool{
	"iframe":   true,
	"noembed":  true,
	"noframes": true,
}

// Extractor pulls visible text out of HTML. It holds no per-call state and is
// safe for concurrent use.
type Extractor struct {
	maxBytes  int
	separator string
	scope     scope
	logger    *zap.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMaxBytes sets the input size limit. Zero disables the limit.
func WithMaxBytes(n int) Option {
	return func(e *Extractor) {
		if n >= 0 {
			e.maxBytes = n
		}
	}
}

// WithSeparator sets the string placed between visible text fragments.
func WithSeparator(sep string) Option {
	return func(e *Extractor) {
		e.separator = sep
	}
}

// WithSelector restricts extraction to the subtrees matched by a CSS selector.
// It replaces any earlier scope option.
func WithSelector(selector string) Option {
	return func(e *Extractor) {
		e.scope = cssScope(selector)
	}
}

// WithXPath restricts extraction to the subtrees matched by an XPath
// expression. It replaces any earlier scope option.
func WithXPath(expr string) Option {
	return func(e *Extractor) {
		e.scope = xpathScope(expr)
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an extractor.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		maxBytes:  DefaultMaxBytes,
		separator: DefaultSeparator,
		scope:     documentScope,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// TextFromHTML extracts visible text with a default extractor.
func TextFromHTML(markup string) (string, error) {
	return New().Text(markup)
}

// Text parses UTF-8 markup and returns its visible text.
func (e *Extractor) Text(markup string) (string, error) {
	if err := e.checkSize(len(markup)); err != nil {
		return "", err
	}
	return e.extract(strings.NewReader(markup))
}

// TextFromBytes decodes body to UTF-8 and returns its visible text.
func (e *Extractor) TextFromBytes(body []byte) (string, error) {
	if err := e.checkSize(len(body)); err != nil {
		return "", err
	}
	r, label := decode(body)
	e.logger.Debug("Decoded html body",
		zap.String("charset", label),
		zap.Int("bytes", len(body)))
	return e.extract(r)
}

// TextFromNode returns the visible text below root, ignoring any scope option.
func (e *Extractor) TextFromNode(root *html.Node) string {
	return e.join(collect([]*html.Node{root}))
}

func (e *Extractor) checkSize(n int) error {
	if e.maxBytes > 0 && n > e.maxBytes {
		return fmt.Errorf("%d bytes over limit of %d: %w", n, e.maxBytes, ErrTooLarge)
	}
	return nil
}

func (e *Extractor) extract(r io.Reader) (string, error) {
	// Scripting off so noscript content is parsed as elements.
	doc, err := html.ParseWithOptions(r, html.ParseOptionEnableScripting(false))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	roots, err := e.scope(doc)
	if err != nil {
		return "", err
	}

	text := e.join(collect(roots))
	e.logger.Debug("Extracted visible text",
		zap.Int("roots", len(roots)),
		zap.Int("length", len(text)))
	return text, nil
}

func (e *Extractor) join(nodes []*html.Node) string {
	var b bytes.Buffer
	for _, n := range nodes {
		s := strings.TrimSpace(n.Data)
		if s == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(e.separator)
		}
		b.WriteString(s)
	}
	return b.String()
}

// Visible reports whether n is a text node a browser would render.
func Visible(n *html.Node) bool {
	if n == nil || n.Type != html.TextNode {
		return false
	}
	p := n.Parent
	if p == nil || p.Type == html.DocumentNode {
		return false
	}
	return !(p.Type == html.ElementNode && hiddenParents[p.Data])
}

// collect walks each root in document order and returns its visible text
// nodes. Comments are walked too and rejected by Visible. Raw text inside
// iframe, noembed and noframes is replaced by the nodes it parses to.
func collect(roots []*html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode, html.CommentNode:
			if n.Type == html.TextNode && n.Parent != nil &&
				n.Parent.Type == html.ElementNode && rawTextParents[n.Parent.Data] {
				if fragment := reparse(n.Data); fragment != nil {
					walk(fragment)
				}
				return
			}
			if Visible(n) {
				out = append(out, n)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, root := range roots {
		if root != nil {
			walk(root)
		}
	}
	return out
}

// reparse parses raw fallback text as body content under a detached div.
// It returns nil when the text does not parse.
func reparse(raw string) *html.Node {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragmentWithOptions(strings.NewReader(raw), context,
		html.ParseOptionEnableScripting(false))
	if err != nil {
		return nil
	}
	container := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	for _, c := range nodes {
		container.AppendChild(c)
	}
	return container
}
