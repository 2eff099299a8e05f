package zillow

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/net/html"
)

// The page embeds the follow-up request for each collapsible history
// section as a javascript module descriptor; the price and tax tables
// only differ by module label.
func ajaxUrlRegex(module string) *regexp.Regexp {
	return regexp.MustCompile(
		`(/AjaxRender\.htm\?encparams=[\w\-_~=]+&rwebid=\d+&rhost=\d)",customEvent:"CollapsibleModule:expandSection",jsModule:"` +
			regexp.QuoteMeta(module),
	)
}

var (
	priceHistoryUrlRegex = ajaxUrlRegex(priceHistoryModule)
	taxHistoryUrlRegex   = ajaxUrlRegex(taxHistoryModule)

	// the ajax response is a json-ish envelope holding the table
	// fragment as one escaped string value
	htmlEnvelopeRegex = regexp.MustCompile(`\{ "html": "(.*)" \}`)
)

func (c *Client) locateAjaxUrl(pageHtml string, re *regexp.Regexp, module string) (string, error) {
	groups := re.FindStringSubmatch(pageHtml)
	if groups == nil {
		return "", fmt.Errorf("%w: no %s descriptor on page", ErrHistoryUnavailable, module)
	}
	return c.baseUrlString() + groups[1], nil
}

// fetchTableBody issues the follow-up request, unwraps the escaped
// fragment and returns the table body to pull rows from.
func (c *Client) fetchTableBody(ctx context.Context, ajaxUrl string) (*goquery.Selection, error) {
	body, err := c.fetchPage(ctx, ajaxUrl)
	if err != nil {
		return nil, err
	}

	groups := htmlEnvelopeRegex.FindStringSubmatch(string(body))
	if groups == nil {
		return nil, fmt.Errorf("%w: no html envelope in response for %s", ErrTableMissing, ajaxUrl)
	}
	fragment := groups[1]
	fragment = strings.ReplaceAll(fragment, `\"`, `"`)
	fragment = strings.ReplaceAll(fragment, `\/`, `/`)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, err
	}
	table := doc.Find("table")
	if table.Length() == 0 {
		return nil, fmt.Errorf("%w: no table history for url %s", ErrTableMissing, ajaxUrl)
	}
	return table.First().Find("tbody"), nil
}

func (c *Client) fetchPriceHistory(ctx context.Context, pageHtml string) ([]PriceEvent, error) {
	ctx, span := tracer.Start(ctx, "client:fetchPriceHistory")
	defer span.End()

	ajaxUrl, err := c.locateAjaxUrl(pageHtml, priceHistoryUrlRegex, priceHistoryModule)
	if err != nil {
		span.SetStatus(codes.Error, "failed to locate descriptor")
		return nil, err
	}
	tableBody, err := c.fetchTableBody(ctx, ajaxUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch table")
		return nil, err
	}

	var events []PriceEvent
	tableBody.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cols := row.Find("td")
		if cols.Length() < 2 {
			return
		}
		event := PriceEvent{
			Date:  cols.Eq(0).Text(),
			Event: cols.Eq(1).Text(),
		}
		// rows without a price span are events like "Listing removed"
		if cols.Length() > 2 {
			if priceSpan := cols.Eq(2).Find("span"); priceSpan.Length() > 0 {
				price := priceSpan.First().Text()
				event.Price = &price
			}
		}
		events = append(events, event)
	})
	return events, nil
}

func (c *Client) fetchTaxHistory(ctx context.Context, pageHtml string) ([]TaxRecord, error) {
	ctx, span := tracer.Start(ctx, "client:fetchTaxHistory")
	defer span.End()

	ajaxUrl, err := c.locateAjaxUrl(pageHtml, taxHistoryUrlRegex, taxHistoryModule)
	if err != nil {
		span.SetStatus(codes.Error, "failed to locate descriptor")
		return nil, err
	}
	tableBody, err := c.fetchTableBody(ctx, ajaxUrl)
	if errors.Is(err, ErrTableMissing) {
		// the listing simply has no tax history
		return []TaxRecord{}, nil
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch table")
		return nil, err
	}

	var records []TaxRecord
	tableBody.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cols := row.Find("td")
		// column 2 is a change-percentage widget and skipped on purpose
		if cols.Length() < 4 {
			return
		}
		records = append(records, TaxRecord{
			Date:       cols.Eq(0).Text(),
			Tax:        firstTextChunk(cols.Eq(1)),
			Assessment: cols.Eq(3).Text(),
		})
	})
	return records, nil
}

// firstTextChunk returns the cell's leading text node, ignoring any
// nested widget markup that follows it.
func firstTextChunk(cell *goquery.Selection) string {
	if len(cell.Nodes) == 0 {
		return ""
	}
	child := cell.Nodes[0].FirstChild
	if child != nil && child.Type == html.TextNode {
		return child.Data
	}
	return cell.Text()
}
