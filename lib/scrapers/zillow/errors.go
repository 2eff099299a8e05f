package zillow

import "errors"

var (
	// ErrInvalidInput marks a scrape request that never made it to the
	// network: bad url/zpid combination or an unrecognizable url.
	ErrInvalidInput = errors.New("invalid scrape input")

	// ErrFetch marks a failed page request: transport error, non-OK
	// status, or the redirect-to-home response the site serves in
	// place of a 404.
	ErrFetch = errors.New("fetch failed")

	// ErrCriticalFieldMissing means a region the scraper cannot work
	// without is absent. Either this is not a valid listing page or
	// the site's markup changed underneath us.
	ErrCriticalFieldMissing = errors.New("unable to parse crucial facts for this home")

	// ErrHistoryUnavailable means the embedded ajax descriptor for a
	// history table could not be located on the page.
	ErrHistoryUnavailable = errors.New("history descriptor not found")

	// ErrTableMissing means the ajax response carried no table, i.e.
	// the listing has no recorded history of that kind.
	ErrTableMissing = errors.New("no history table")
)
