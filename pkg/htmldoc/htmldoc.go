// Package htmldoc wraps the HTML backend behind a minimal query
// interface so the extraction code never touches the parser directly.
package htmldoc

import (
	"fmt"
	"strings"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

type Document interface {
	// FindAll returns all elements with the given tag whose class
	// attribute contains class as a whitespace separated token.
	FindAll(tag, class string) []Element
}

type Element interface {
	// FindFirst returns the first descendant element with the given tag.
	FindFirst(tag string) (Element, bool)
	// Text returns the concatenated text content of the element.
	Text() string
}

type document struct {
	root *html.Node
}

type element struct {
	node *html.Node
}

func Parse(body string) (Document, error) {
	root, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("could not parse html: %w", err)
	}

	return &document{root: root}, nil
}

func (d *document) FindAll(tag, class string) []Element {
	xpath := fmt.Sprintf(
		"//%s[contains(concat(' ', normalize-space(@class), ' '), ' %s ')]",
		tag, class,
	)
	nodes, err := htmlquery.QueryAll(d.root, xpath)
	if err != nil {
		// the xpath is built from constant tag/class names
		return nil
	}

	els := make([]Element, len(nodes))
	for i, node := range nodes {
		els[i] = &element{node: node}
	}

	return els
}

func (e *element) FindFirst(tag string) (Element, bool) {
	node, err := htmlquery.Query(e.node, "//"+tag)
	if err != nil || node == nil {
		return nil, false
	}

	return &element{node: node}, true
}

func (e *element) Text() string {
	return htmlquery.InnerText(e.node)
}
