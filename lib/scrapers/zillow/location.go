package zillow

import (
	"fmt"
	"net/url"
	"strings"
	"zillowscrape/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"
)

// microDegrees scales a raw micro-degree integer token down to
// degrees. Decimal arithmetic keeps the division exact.
func microDegrees(token string) (*decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(token))
	if err != nil {
		return nil, err
	}
	scaled := d.Shift(-6)
	return &scaled, nil
}

// markerCommentCoordinates is the primary coordinate source: the map
// marker region hides a bracketed comma-separated payload inside an
// HTML comment (the site keeps coordinates out of visible markup to
// deter casual scrapers). The second-to-last element is the scaled
// latitude, the last the scaled longitude. Any failure along the way
// yields no coordinates rather than an error.
func markerCommentCoordinates(doc *goquery.Document) (*decimal.Decimal, *decimal.Decimal) {
	sel := doc.Find("div." + markerDataClass)
	if sel.Length() == 0 {
		return nil, nil
	}

	comment := strings.TrimSpace(htmlutil.FindComment(sel))
	comment = strings.TrimPrefix(comment, "[")
	comment = strings.TrimSuffix(comment, "]")
	tokens := strings.Split(comment, ",")
	if len(tokens) < 2 {
		return nil, nil
	}

	lat, err := microDegrees(tokens[len(tokens)-2])
	if err != nil {
		return nil, nil
	}
	// the longitude token can carry backslash escapes, drop them
	lon, err := microDegrees(strings.ReplaceAll(tokens[len(tokens)-1], `\`, ""))
	if err != nil {
		return nil, nil
	}
	return lat, lon
}

// attrCoordinate is the secondary source: plain degree values in data
// attributes on the map fallback element.
func attrCoordinate(fallback *goquery.Selection, attr string) (*decimal.Decimal, error) {
	raw, ok := fallback.Attr(attr)
	if !ok {
		return nil, fmt.Errorf("%w: fallback element has no %s", ErrCriticalFieldMissing, attr)
	}
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: unparsable %s %q", ErrCriticalFieldMissing, attr, raw)
	}
	return &d, nil
}

// directionAddress recovers the human-readable address from the
// directions link on the fallback element. Any failure yields a nil
// address without touching the coordinates.
func directionAddress(fallback *goquery.Selection) *string {
	dir, ok := fallback.Attr("data-direction")
	if !ok {
		return nil
	}
	decoded, err := url.PathUnescape(dir)
	if err != nil {
		return nil
	}

	idx := strings.Index(decoded, "addr=")
	if idx < 0 {
		return nil
	}
	addr := decoded[idx+len("addr="):]
	amp := strings.Index(addr, "&")
	if amp < 0 {
		return nil
	}
	addr = addr[:amp]

	addr = strings.ReplaceAll(addr, "+", " ")
	addr = strings.ReplaceAll(addr, " ,", ", ")
	// the link sometimes tacks a dash-coded suffix onto the zip
	if len(addr) >= 5 && addr[len(addr)-5] == '-' {
		addr = addr[:len(addr)-5]
	}
	return &addr
}

// extractLocation resolves each coordinate through an ordered pair of
// strategies: the comment-embedded marker payload, then the fallback
// element's data attributes. A page offering neither is treated like
// a page without a summary: not a listing we can work with.
func extractLocation(doc *goquery.Document) (Location, error) {
	lat, lon := markerCommentCoordinates(doc)

	fallback := doc.Find("#" + mapCoordinatesId)
	if lat == nil || lon == nil {
		if fallback.Length() == 0 {
			return Location{}, fmt.Errorf("%w: no coordinate source on page", ErrCriticalFieldMissing)
		}
		var err error
		if lat == nil {
			lat, err = attrCoordinate(fallback, "data-latitude")
			if err != nil {
				return Location{}, err
			}
		}
		if lon == nil {
			lon, err = attrCoordinate(fallback, "data-longitude")
			if err != nil {
				return Location{}, err
			}
		}
	}

	return Location{
		Latitude:  lat,
		Longitude: lon,
		Address:   directionAddress(fallback),
	}, nil
}
