package zillow

import (
	"regexp"
	"strings"
	"zillowscrape/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

type saleInfo struct {
	Price         *string
	Status        *string
	Zestimate     *string
	RentZestimate *string
	Extra         map[string]string
}

var (
	labeledPriceRegex = regexp.MustCompile(`(Foreclosure Estimate|Below Zestimate|Rent Zestimate|Zestimate|Sold on|Sold|Price cut)(?:®)?:?[\n ]+-?\$?([\d,/\w]+)`)
	statusRegex       = regexp.MustCompile(`(For Sale|Auction|Make Me Move|For Rent|Pre-Foreclosure|Off Market)`)
)

// setLabeledPrice routes a recognized pricing label to its struct
// field; labels without a dedicated field land in the open map.
func (s *saleInfo) setLabeledPrice(label string, value string) {
	switch textutil.NormalizeKey(label) {
	case "zestimate":
		s.Zestimate = &value
	case "rent_zestimate":
		s.RentZestimate = &value
	default:
		s.Extra[textutil.NormalizeKey(label)] = value
	}
}

// extractSaleInfo reads the pricing summary region row by row. Each
// row is checked against three patterns in priority order: a labeled
// price, a sale status, then a bare currency amount. The rent
// zestimate additionally has a second markup shape, a pair of
// parallel zest-title/zest-value element lists.
func extractSaleInfo(doc *goquery.Document) saleInfo {
	info := saleInfo{Extra: map[string]string{}}

	wrapper := doc.Find("div#" + homeValueId)
	wrapper.Find("[class*=home-summary-row]").Each(func(_ int, row *goquery.Selection) {
		text := row.Text()

		if groups := labeledPriceRegex.FindStringSubmatch(text); groups != nil {
			info.setLabeledPrice(groups[1], groups[2])
			return
		}
		if status := statusRegex.FindString(text); status != "" {
			info.Status = &status
			return
		}
		if textutil.ContainsCurrency(text) {
			price := textutil.ExtractCurrency(text)
			info.Price = &price
		}
	})

	values := doc.Find("div." + zestValueClass)
	doc.Find("div." + zestTitleClass).Each(func(i int, title *goquery.Selection) {
		// loop through titles to make sure we have the right element
		// for the RENT zestimate
		if !strings.Contains(strings.ToLower(title.Text()), "rent") {
			return
		}
		if i >= values.Length() {
			return
		}
		if rent := textutil.ExtractCurrency(values.Eq(i).Text()); rent != "" {
			info.RentZestimate = &rent
		}
	})

	return info
}
