package zillow

import (
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

func TestNewClientDefaults(t *testing.T) {
	client, err := NewClient(ClientOptions{})
	require.NoError(t, err)

	require.Equal(t, defaultBaseUrl, client.BaseUrl.String())
	require.Equal(t, DefaultTimeout, client.Http.GetClient().Timeout)
}

func TestNewClientInjectedHttp(t *testing.T) {
	custom := resty.New()
	client, err := NewClient(ClientOptions{
		BaseUrl: "http://localhost:1",
		Http:    custom,
		Timeout: time.Minute,
	})
	require.NoError(t, err)

	// an injected client is used verbatim, Timeout does not apply
	require.Same(t, custom, client.Http)
	require.NotEqual(t, time.Minute, client.Http.GetClient().Timeout)
}

func TestHomesLandingUrl(t *testing.T) {
	client, err := NewClient(ClientOptions{BaseUrl: "http://localhost:8080/"})
	require.NoError(t, err)

	// trailing slashes on the base never double up in derived urls
	require.Equal(t, "http://localhost:8080", client.baseUrlString())
	require.Equal(t, "http://localhost:8080/homes/", client.homesLandingUrl())
}
