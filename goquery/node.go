package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// anyTextNodeMatches reports whether any individual text node under the
// selection matches re. Matching text nodes one at a time avoids false
// positives from substrings spanning adjacent nodes.
func anyTextNodeMatches(s *goquery.Selection, re *regexp.Regexp) bool {
	for _, n := range s.Nodes {
		if textNodeMatches(n, re) {
			return true
		}
	}
	return false
}

func textNodeMatches(n *html.Node, re *regexp.Regexp) bool {
	if n.Type == html.TextNode && re.MatchString(n.Data) {
		return true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if textNodeMatches(c, re) {
			return true
		}
	}
	return false
}

// nodeText returns the concatenated text content of a node subtree.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// imageNodes collects every img element in the content sequence, in
// document order, including content entries that are themselves images.
func imageNodes(content []*html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "img" {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range content {
		walk(n)
	}
	return out
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
