package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func doc(t *testing.T, markup string) *goquery.Document {
	d, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)
	return d
}

func TestFindComment(t *testing.T) {
	d := doc(t, `<div class="outer"><span><!-- [1,2,3] --></span></div>`)
	require.Equal(t, " [1,2,3] ", FindComment(d.Find("div.outer")))

	require.Equal(t, "", FindComment(d.Find("div.missing")))

	d = doc(t, `<div class="outer"><span>no comments</span></div>`)
	require.Equal(t, "", FindComment(d.Find("div.outer")))
}

func TestCleanText(t *testing.T) {
	require.Equal(t, "a b c", CleanText("  a  b    c  "))
	// control characters are dropped outright, not turned into spaces
	require.Equal(t, "ab", CleanText("a\nb"))
	require.Equal(t, "plain", CleanText("plain"))
}
