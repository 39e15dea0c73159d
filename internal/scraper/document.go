package scraper

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Document is a read-only view of a parsed HTML page. Extractors only read
// from it, so a single Document can be shared by concurrent passes.
type Document struct {
	doc *goquery.Document
}

// NewDocument parses body into a Document. Parsing is tolerant: malformed
// markup still yields a (possibly sparse) tree and never an error.
func NewDocument(body []byte) *Document {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		// html.Parse only fails on reader errors; fall back to an empty tree
		doc, _ = goquery.NewDocumentFromReader(strings.NewReader(""))
	}
	return &Document{doc: doc}
}

// Elements returns every element whose tag is one of tags, in document order.
func (d *Document) Elements(tags ...string) []Element {
	if len(tags) == 0 {
		return nil
	}
	sel := d.doc.Find(strings.Join(tags, ", "))
	elements := make([]Element, 0, sel.Length())
	for _, n := range sel.Nodes {
		elements = append(elements, Element{node: n})
	}
	return elements
}

// Element is a single element node of a Document.
type Element struct {
	node *html.Node
}

// Tag returns the lower-case tag name.
func (e Element) Tag() string {
	return strings.ToLower(e.node.Data)
}

// Attr returns the value of the named attribute.
func (e Element) Attr(name string) (string, bool) {
	for _, a := range e.node.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val, true
		}
	}
	return "", false
}

// ClassTokens returns the lower-cased tokens of the class attribute.
func (e Element) ClassTokens() []string {
	class, ok := e.Attr("class")
	if !ok {
		return nil
	}
	return strings.Fields(strings.ToLower(class))
}

// ElementChildren returns the direct children that are elements. Text,
// comment and other non-element nodes are skipped.
func (e Element) ElementChildren() []Element {
	children := []Element{}
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			children = append(children, Element{node: c})
		}
	}
	return children
}

// TextFragments returns the data of every descendant text node in document
// order. Script and style contents are not text.
func (e Element) TextFragments() []string {
	var fragments []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				fragments = append(fragments, c.Data)
			case html.ElementNode:
				if c.Data == "script" || c.Data == "style" {
					continue
				}
				walk(c)
			}
		}
	}
	walk(e.node)
	return fragments
}

// NextSiblingElement returns the node that follows e, skipping
// whitespace-only text. ok is false when there is no such node or when it is
// not an element.
func (e Element) NextSiblingElement() (Element, bool) {
	for n := e.node.NextSibling; n != nil; n = n.NextSibling {
		switch n.Type {
		case html.ElementNode:
			return Element{node: n}, true
		case html.TextNode:
			if strings.TrimSpace(n.Data) == "" {
				continue
			}
			return Element{}, false
		case html.CommentNode:
			continue
		default:
			return Element{}, false
		}
	}
	return Element{}, false
}
