// Package extract implements the Extractor interface.
// Fragments are parsed in a <body> context, so catalog snippets keep their
// leading text and never gain a synthetic <head>. Parsing is permissive:
// broken markup yields a best-effort tree, never an error.
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/gaurav-prasanna/catalogpipe/core"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	// noiseSelector matches elements whose content is not visible text.
	noiseSelector = cascadia.MustCompile("script, style, template")

	linkSelector     = cascadia.MustCompile("a[href]")
	listItemSelector = cascadia.MustCompile("li")
	blockSelector    = cascadia.MustCompile("div")
)

var _ core.Extractor = (*HTMLExtractor)(nil)

// HTMLExtractor extracts text, links, list items and blocks from HTML fragments.
type HTMLExtractor struct{}

// New creates an HTMLExtractor.
func New() *HTMLExtractor {
	return &HTMLExtractor{}
}

// Text returns the visible text of the fragment: entities decoded, tags
// removed, text nodes concatenated as-is.
func (e *HTMLExtractor) Text(fragment string) (string, error) {
	if fragment == "" {
		return "", nil
	}
	doc, err := parseFragment(fragment)
	if err != nil {
		return "", err
	}
	return doc.Text(), nil
}

// TrimmedText returns the visible text with every text node trimmed on its
// own. Nodes left empty are dropped and the rest are joined without a
// separator, so "<li>Two <b>bold</b></li>" yields "Twobold".
func (e *HTMLExtractor) TrimmedText(fragment string) (string, error) {
	if fragment == "" {
		return "", nil
	}
	doc, err := parseFragment(fragment)
	if err != nil {
		return "", err
	}
	return strippedText(doc.Selection), nil
}

// TechSpecs collects anchor targets, list-item texts and div texts.
// Nested divs each produce their own entry. Anchors without href are skipped,
// an empty href is kept.
func (e *HTMLExtractor) TechSpecs(fragment string) (core.TechSpecs, error) {
	specs := core.TechSpecs{
		Links:     []string{},
		ListItems: []string{},
		Blocks:    []string{},
	}
	if fragment == "" {
		return specs, nil
	}

	doc, err := parseFragment(fragment)
	if err != nil {
		return specs, err
	}

	doc.FindMatcher(linkSelector).Each(func(_ int, s *goquery.Selection) {
		if href, ok := s.Attr("href"); ok {
			specs.Links = append(specs.Links, href)
		}
	})
	doc.FindMatcher(listItemSelector).Each(func(_ int, s *goquery.Selection) {
		specs.ListItems = append(specs.ListItems, strippedText(s))
	})
	doc.FindMatcher(blockSelector).Each(func(_ int, s *goquery.Selection) {
		specs.Blocks = append(specs.Blocks, strippedText(s))
	})

	return specs, nil
}

// strippedText joins the trimmed, non-empty text nodes below the selection.
func strippedText(s *goquery.Selection) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(strings.TrimSpace(n.Data))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range s.Nodes {
		walk(n)
	}
	return b.String()
}

// parseFragment parses HTML as the content of a <body> element and strips
// non-visible elements.
func parseFragment(fragment string) (*goquery.Document, error) {
	body := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML fragment: %w", err)
	}

	root := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		root.AppendChild(n)
	}

	doc := goquery.NewDocumentFromNode(root)
	doc.FindMatcher(noiseSelector).Remove()
	return doc, nil
}
