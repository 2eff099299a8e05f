package zillow

import (
	"fmt"
	"regexp"
	"zillowscrape/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

type propertySummary struct {
	Bedrooms  *string
	Bathrooms *string
	Sqft      *string
	City      *string
	State     *string
	Zipcode   *string
}

var (
	bedroomsRegex  = regexp.MustCompile(`([\d.]+) beds?`)
	bathroomsRegex = regexp.MustCompile(`([\d.]+) baths?`)
	sqftRegex      = regexp.MustCompile(`([\d,.]+) sqft`)
	cityRegex      = regexp.MustCompile(`((?:[A-Z]\w+ ?)+), [A-Z]{2}`)
	stateRegex     = regexp.MustCompile(`(?:[A-Z]\w+ ?)+, ([A-Z]{2})`)
	zipcodeRegex   = regexp.MustCompile(`[A-Z]{2} (\d{5}-?(?:\d{4})?)`)
)

// extractSummary reads the bed/bath/area/city/state/zip line. The
// summary region is the one marker that separates a listing page from
// everything else the site serves, so its absence is fatal; any
// individual field failing to match is normal and leaves a nil.
func extractSummary(doc *goquery.Document) (propertySummary, error) {
	sel := doc.Find("div." + propSummaryClass)
	if sel.Length() == 0 {
		return propertySummary{}, fmt.Errorf("%w: property summary region absent", ErrCriticalFieldMissing)
	}
	// the region text is littered with layout whitespace, normalize it
	// before the single-space patterns below run
	text := htmlutil.CleanText(sel.Text())

	return propertySummary{
		Bedrooms:  matchGroup(bedroomsRegex, text),
		Bathrooms: matchGroup(bathroomsRegex, text),
		Sqft:      matchGroup(sqftRegex, text),
		City:      matchGroup(cityRegex, text),
		State:     matchGroup(stateRegex, text),
		Zipcode:   matchGroup(zipcodeRegex, text),
	}, nil
}

func matchGroup(re *regexp.Regexp, text string) *string {
	groups := re.FindStringSubmatch(text)
	if len(groups) < 2 {
		return nil
	}
	return &groups[1]
}
