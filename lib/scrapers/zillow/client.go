package zillow

import (
	"net/http/cookiejar"
	"net/url"
	"time"
	"zillowscrape/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("scrapers/zillow")

const DefaultTimeout = 10 * time.Second

type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client
}

type ClientOptions struct {
	// defaults to the live site
	BaseUrl string
	// per-request deadline, defaults to DefaultTimeout. there are no
	// retries: a timeout surfaces as a fetch failure.
	Timeout time.Duration
	// substitute http capability, mainly for tests. when set it is
	// used verbatim and Timeout is ignored.
	Http *resty.Client
}

func NewClient(opts ClientOptions) (*Client, error) {
	rawBase := opts.BaseUrl
	if rawBase == "" {
		rawBase = defaultBaseUrl
	}
	baseUrl, err := url.Parse(rawBase)
	if err != nil {
		return nil, err
	}

	client := opts.Http
	if client == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}

		client = resty.New()
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, err
		}
		client.SetCookieJar(jar)
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
		client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
		client.SetTimeout(timeout)

		telemetry.InstrumentResty(client, "scrapers/zillow/http")
	}

	c := &Client{
		BaseUrl: baseUrl,
		Http:    client,
	}
	return c, nil
}

// the address the site redirects to when a listing cannot be found
func (c *Client) homesLandingUrl() string {
	return c.baseUrlString() + "/" + homesPathMarker + "/"
}

func (c *Client) baseUrlString() string {
	s := c.BaseUrl.String()
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}
