package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/papersect"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Blocks flattens markup into heading and text blocks. Each heading, in
// document order, yields a heading block followed by one text block per
// following element sibling. A sibling that contains a heading is entered
// instead, so its text before that heading stays with the current heading
// and its text after belongs to the nested one. A sibling's text is its
// visible text nodes trimmed and joined by spaces.
func Blocks(markup string) ([]papersect.Block, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, papersect.Errorf(papersect.EINVALID, "failed to parse HTML: %v", err)
	}
	return blocks(doc), nil
}

func blocks(doc *goquery.Document) []papersect.Block {
	var out []papersect.Block
	for _, n := range doc.Nodes {
		out = appendBlocks(out, n, false)
	}
	return out
}

// appendBlocks scans the element children of parent. Text is kept only
// once a heading has opened at this level or an enclosing one, so text
// outside every heading's parent is dropped.
func appendBlocks(out []papersect.Block, parent *html.Node, open bool) []papersect.Block {
	for n := parent.FirstChild; n != nil; n = n.NextSibling {
		if n.Type != html.ElementNode {
			continue
		}
		switch {
		case isHeading(n):
			out = append(out, papersect.Block{Heading: true, Text: visibleText(n)})
			open = true
		case containsHeading(n):
			out = appendBlocks(out, n, open)
		case open:
			if text := visibleText(n); text != "" {
				out = append(out, papersect.Block{Text: text})
			}
		}
	}
	return out
}

func containsHeading(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (isHeading(c) || containsHeading(c)) {
			return true
		}
	}
	return false
}

func isHeading(n *html.Node) bool {
	switch n.DataAtom {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return true
	}
	return false
}

// visibleText joins the trimmed text nodes under n with single spaces,
// skipping script and style content.
func visibleText(n *html.Node) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if s := cleanText(n.Data); s != "" {
				parts = append(parts, s)
			}
			return
		case html.ElementNode:
			switch n.DataAtom {
			case atom.Script, atom.Style, atom.Noscript, atom.Template:
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(parts, " ")
}
