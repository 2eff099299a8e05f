package zillow

import (
	"fmt"
	"regexp"
	"strings"
)

var zpidRegex = regexp.MustCompile(`^\d+$`)

// resolveListingUrl turns the url-or-zpid pair into the one address
// to fetch. Exactly one of the two must be set.
func resolveListingUrl(base string, listingUrl string, zpid string) (string, error) {
	if listingUrl != "" && zpid != "" {
		return "", fmt.Errorf("%w: cannot specify both a url and a zpid, choose one or the other", ErrInvalidInput)
	}
	if listingUrl == "" && zpid == "" {
		return "", fmt.Errorf("%w: must specify either a zpid or a url of the home to scrape", ErrInvalidInput)
	}

	if listingUrl != "" {
		if !strings.Contains(listingUrl, homesPathMarker) {
			return "", fmt.Errorf(
				"%w: only home listings are supported, specify your url as %s/%s/<zpid>_zpid/(index)/",
				ErrInvalidInput, defaultBaseUrl, homesPathMarker,
			)
		}
		return listingUrl, nil
	}

	if !zpidRegex.MatchString(zpid) {
		return "", fmt.Errorf("%w: zpid %q is not numeric", ErrInvalidInput, zpid)
	}
	return fmt.Sprintf("%s/%s/%s_zpid/(index)/", base, homesPathMarker, zpid), nil
}
