package zillow

import (
	"os"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func fixtureDoc(t *testing.T) *goquery.Document {
	f, err := os.Open("testdata/listing.html")
	require.NoError(t, err)
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	require.NoError(t, err)
	return doc
}

func docFromString(t *testing.T, markup string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)
	return doc
}

func requireStr(t *testing.T, expected string, got *string) {
	t.Helper()
	require.NotNil(t, got)
	require.Equal(t, expected, *got)
}

func TestExtractSummary(t *testing.T) {
	summary, err := extractSummary(fixtureDoc(t))
	require.NoError(t, err)

	requireStr(t, "3", summary.Bedrooms)
	requireStr(t, "2", summary.Bathrooms)
	requireStr(t, "1,540", summary.Sqft)
	requireStr(t, "Sacramento", summary.City)
	requireStr(t, "CA", summary.State)
	requireStr(t, "95820", summary.Zipcode)
}

func TestExtractSummaryPartialFields(t *testing.T) {
	doc := docFromString(t, `<div class="prop-summary">2.5 baths studio</div>`)

	summary, err := extractSummary(doc)
	require.NoError(t, err)

	require.Nil(t, summary.Bedrooms)
	requireStr(t, "2.5", summary.Bathrooms)
	require.Nil(t, summary.Sqft)
	require.Nil(t, summary.City)
	require.Nil(t, summary.State)
	require.Nil(t, summary.Zipcode)
}

func TestExtractSummaryLayoutWhitespace(t *testing.T) {
	// the live region pads its tokens with runs of layout whitespace;
	// they must collapse before the single-space patterns match
	doc := docFromString(t, `<div class="prop-summary">3    beds   2    baths   950     sqft</div>`)

	summary, err := extractSummary(doc)
	require.NoError(t, err)

	requireStr(t, "3", summary.Bedrooms)
	requireStr(t, "2", summary.Bathrooms)
	requireStr(t, "950", summary.Sqft)
}

func TestExtractSummaryRegionAbsent(t *testing.T) {
	doc := docFromString(t, `<div class="something-else">3 beds</div>`)

	_, err := extractSummary(doc)
	require.ErrorIs(t, err, ErrCriticalFieldMissing)
}
