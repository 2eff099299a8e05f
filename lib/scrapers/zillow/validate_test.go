package zillow

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveListingUrl(t *testing.T) {
	base := "http://www.zillow.com"

	cases := []struct {
		name      string
		url       string
		zpid      string
		expect    string
		expectErr error
	}{
		{
			name:      "both inputs",
			url:       "http://www.zillow.com/homes/123_zpid/(index)/",
			zpid:      "123",
			expectErr: ErrInvalidInput,
		},
		{
			name:      "neither input",
			expectErr: ErrInvalidInput,
		},
		{
			name:      "url without listing path",
			url:       "http://www.zillow.com/mortgage-rates/",
			expectErr: ErrInvalidInput,
		},
		{
			name:   "listing url passes through untouched",
			url:    "https://www.zillow.com/homes/48749425_zpid/(index)/",
			expect: "https://www.zillow.com/homes/48749425_zpid/(index)/",
		},
		{
			name:      "non-numeric zpid",
			zpid:      "48749425abc",
			expectErr: ErrInvalidInput,
		},
		{
			name:      "empty-ish zpid",
			zpid:      " ",
			expectErr: ErrInvalidInput,
		},
		{
			name:   "numeric zpid expands into the listing template",
			zpid:   "48749425",
			expect: "http://www.zillow.com/homes/48749425_zpid/(index)/",
		},
	}

	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			got, err := resolveListingUrl(base, test.url, test.zpid)
			if test.expectErr != nil {
				require.ErrorIs(t, err, test.expectErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.expect, got)
		})
	}
}
