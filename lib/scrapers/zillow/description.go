package zillow

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// extractDescription returns the free-text description block. Like
// the property summary, a page without one is not a usable listing.
func extractDescription(doc *goquery.Document) (*string, error) {
	sel := doc.Find("div." + descriptionClass)
	if sel.Length() == 0 {
		return nil, fmt.Errorf("%w: description region absent", ErrCriticalFieldMissing)
	}
	text := sel.First().Text()
	return &text, nil
}
