package htmlutil

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// FindComment returns the contents of the first HTML comment node
// underneath the selection, or "" if there is none.
func FindComment(sel *goquery.Selection) string {
	for _, n := range sel.Nodes {
		if comment := findCommentRecursive(n); comment != "" {
			return comment
		}
	}
	return ""
}

func findCommentRecursive(node *html.Node) string {
	if node == nil {
		return ""
	}
	if node.Type == html.CommentNode {
		return node.Data
	}
	child := node.FirstChild
	for child != nil {
		if comment := findCommentRecursive(child); comment != "" {
			return comment
		}
		child = child.NextSibling
	}
	return ""
}

var innerWhitespace = regexp.MustCompile(`\s\s+`)

func removeNonPrintable(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) {
			newStr.WriteRune(c)
		}
	}
	return newStr.String()
}

// CleanText collapses runs of whitespace and strips non-printable
// characters, which listing markup is full of.
func CleanText(s string) string {
	s = removeNonPrintable(s)
	s = strings.Trim(s, " \t\n")
	s = innerWhitespace.ReplaceAllString(s, " ")
	return s
}
