package zillow

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"zillowscrape/lib/telemetry"

	"github.com/go-resty/resty/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// ajax responses as the site serves them: a json-ish envelope holding
// the table fragment with escaped quotes and slashes
const priceEnvelope = `{ "html": "<table class=\"price-history\"><tbody>` +
	`<tr><td>06\/22\/2024<\/td><td>Listed for sale<\/td><td><span>$500,000<\/span><\/td><\/tr>` +
	`<tr><td>01\/15\/2024<\/td><td>Listing removed<\/td><td><\/td><\/tr>` +
	`<tr><td colspan=\"3\">See data sources<\/td><\/tr>` +
	`<\/tbody><\/table>" }`

const taxEnvelope = `{ "html": "<table><tbody>` +
	`<tr><td>2023<\/td><td>$6,586<span class=\"change\">+2.1%<\/span><\/td><td>+2.1%<\/td><td>$508,000<\/td><\/tr>` +
	`<tr><td>2022<\/td><td>$6,100<\/td><td>--<\/td><\/tr>` +
	`<\/tbody><\/table>" }`

func fixturePage(t *testing.T) string {
	page, err := os.ReadFile("testdata/listing.html")
	require.NoError(t, err)
	return string(page)
}

// newListingServer serves the fixture page on every path and the given
// bodies for the two history ajax endpoints.
func newListingServer(t *testing.T, priceBody string, taxBody string) *httptest.Server {
	page := fixturePage(t)

	mux := http.NewServeMux()
	mux.HandleFunc("/AjaxRender.htm", func(w http.ResponseWriter, r *http.Request) {
		enc := r.URL.Query().Get("encparams")
		switch {
		case strings.HasPrefix(enc, "pricehist"):
			io.WriteString(w, priceBody)
		case strings.HasPrefix(enc, "taxhist"):
			io.WriteString(w, taxBody)
		default:
			http.NotFound(w, r)
		}
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, page)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestClient(t *testing.T, baseUrl string) *Client {
	client, err := NewClient(ClientOptions{
		BaseUrl: baseUrl,
		Http:    resty.New(),
	})
	require.NoError(t, err)
	return client
}

func TestFetchPriceHistory(t *testing.T) {
	defer telemetry.SetupForTesting(t, "test:scrapers/zillow")()

	server := newListingServer(t, priceEnvelope, taxEnvelope)
	client := newTestClient(t, server.URL)

	events, err := client.fetchPriceHistory(context.Background(), fixturePage(t))
	require.NoError(t, err)

	price := "$500,000"
	diff := cmp.Diff(
		[]PriceEvent{
			{Date: "06/22/2024", Event: "Listed for sale", Price: &price},
			{Date: "01/15/2024", Event: "Listing removed"},
		},
		events,
	)
	if diff != "" {
		t.Fatal(diff)
	}
}

func TestFetchTaxHistory(t *testing.T) {
	defer telemetry.SetupForTesting(t, "test:scrapers/zillow")()

	server := newListingServer(t, priceEnvelope, taxEnvelope)
	client := newTestClient(t, server.URL)

	records, err := client.fetchTaxHistory(context.Background(), fixturePage(t))
	require.NoError(t, err)

	// the second fragment row is short a column and dropped, and the
	// tax cell keeps only its leading text chunk, not the change widget
	diff := cmp.Diff(
		[]TaxRecord{
			{Date: "2023", Tax: "$6,586", Assessment: "$508,000"},
		},
		records,
	)
	if diff != "" {
		t.Fatal(diff)
	}
}

func TestFetchHistoryNoDescriptor(t *testing.T) {
	defer telemetry.SetupForTesting(t, "test:scrapers/zillow")()

	client := newTestClient(t, "http://localhost")

	_, err := client.fetchPriceHistory(context.Background(), "<html><body>no descriptors</body></html>")
	require.ErrorIs(t, err, ErrHistoryUnavailable)

	_, err = client.fetchTaxHistory(context.Background(), "<html><body>no descriptors</body></html>")
	require.ErrorIs(t, err, ErrHistoryUnavailable)
}

func TestFetchPriceHistoryNoEnvelope(t *testing.T) {
	defer telemetry.SetupForTesting(t, "test:scrapers/zillow")()

	server := newListingServer(t, "<html>not an envelope</html>", taxEnvelope)
	client := newTestClient(t, server.URL)

	_, err := client.fetchPriceHistory(context.Background(), fixturePage(t))
	require.ErrorIs(t, err, ErrTableMissing)
}

func TestFetchTaxHistoryNoTable(t *testing.T) {
	defer telemetry.SetupForTesting(t, "test:scrapers/zillow")()

	// some listings have no tax records at all; the endpoint answers
	// with a tableless fragment and that is not an error
	server := newListingServer(t, priceEnvelope, `{ "html": "<div>no tax history<\/div>" }`)
	client := newTestClient(t, server.URL)

	records, err := client.fetchTaxHistory(context.Background(), fixturePage(t))
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestFetchPriceHistoryServerError(t *testing.T) {
	defer telemetry.SetupForTesting(t, "test:scrapers/zillow")()

	mux := http.NewServeMux()
	mux.HandleFunc("/AjaxRender.htm", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broke", http.StatusInternalServerError)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := newTestClient(t, server.URL)

	_, err := client.fetchPriceHistory(context.Background(), fixturePage(t))
	require.ErrorIs(t, err, ErrFetch)
}
