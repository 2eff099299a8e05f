package zillow

// Markup anchors for the listing page. The site reshuffles its layout
// every so often; when a scrape starts failing with
// ErrCriticalFieldMissing these are the first thing to re-check.
const (
	defaultBaseUrl = "http://www.zillow.com"

	// path segment that marks a listing url, and the landing page the
	// site redirects to when a listing does not exist
	homesPathMarker = "homes"

	propSummaryClass = "prop-summary"
	descriptionClass = "notranslate"
	factGroupClass   = "fact-group-content"
	homeValueId      = "home-value-wrapper"
	markerDataClass  = "homeMarkerData"
	mapCoordinatesId = "hdp-map-coordinates"

	photoListSelector = "ol.photos img"

	zestTitleClass = "zest-title"
	zestValueClass = "zest-value"

	priceHistoryModule = "z-hdp-price-history"
	taxHistoryModule   = "z-expando-table"
)

// fact entries matching one of these exactly classify as the home type
var homeTypes = map[string]struct{}{
	"Single Family":         {},
	"Condo":                 {},
	"Townhouse":             {},
	"Multi Family":          {},
	"Apartment":             {},
	"Lot/Land":              {},
	"Cooperative":           {},
	"Mobile / Manufactured": {},
}
