package zillow

import (
	"context"
	"fmt"
	"net/http"
)

// fetchPage does the one blocking GET and validates the raw response.
// The page for a dead zpid comes back 200 behind a redirect to the
// homes landing page, so the final resolved url is checked too.
func (c *Client) fetchPage(ctx context.Context, pageUrl string) ([]byte, error) {
	res, err := c.Http.R().
		SetContext(ctx).
		Get(pageUrl)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: received a %d error, content: %s", ErrFetch, res.StatusCode(), res.String())
	}

	finalUrl := res.RawResponse.Request.URL.String()
	if finalUrl == c.homesLandingUrl() {
		return nil, fmt.Errorf(
			"%w: redirected to %s, perhaps the original url %s was unable to be found",
			ErrFetch, finalUrl, pageUrl,
		)
	}

	return res.Body(), nil
}
