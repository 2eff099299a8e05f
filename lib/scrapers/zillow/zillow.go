// Package zillow scrapes a single home listing page into a typed
// record. It is a best-effort, single-pass extraction: the page is
// fetched once, a set of independent extractors each read their own
// region of the markup, and optional follow-up requests pull the
// price and tax history tables whose urls are embedded in the page.
package zillow

import (
	"bytes"
	"context"
	"log/slog"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type ScrapeOptions struct {
	// full listing url, mutually exclusive with Zpid
	Url string
	// numeric listing id, mutually exclusive with Url
	Zpid string
	// skip the two follow-up history requests
	SkipHistory bool
}

// Scrape fetches and extracts one listing. Only three things abort
// the whole scrape: bad input, a failed page fetch, and a page whose
// mandatory regions (summary, description, coordinates) are absent.
// Everything else degrades to nil fields. The extractors run as a
// fan-out over the same document; merge order below is fixed so that
// sale info wins over anything earlier that produced the same field.
func (c *Client) Scrape(ctx context.Context, opts ScrapeOptions) (*Listing, error) {
	ctx, span := tracer.Start(ctx, "client:Scrape")
	defer span.End()

	pageUrl, err := resolveListingUrl(c.baseUrlString(), opts.Url, opts.Zpid)
	if err != nil {
		span.SetStatus(codes.Error, "invalid input")
		return nil, err
	}
	span.SetAttributes(attribute.String("url", pageUrl))

	body, err := c.fetchPage(ctx, pageUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch listing page")
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse html")
		return nil, err
	}

	listing := &Listing{}

	summary, err := extractSummary(doc)
	if err != nil {
		span.SetStatus(codes.Error, "no property summary")
		return nil, err
	}
	listing.Bedrooms = summary.Bedrooms
	listing.Bathrooms = summary.Bathrooms
	listing.Sqft = summary.Sqft
	listing.City = summary.City
	listing.State = summary.State
	listing.Zipcode = summary.Zipcode

	facts := parseFacts(factItems(doc), time.Now())
	listing.HomeType = facts.HomeType
	listing.Year = facts.Year
	listing.DaysOnZillow = facts.DaysOnZillow
	listing.Posted = facts.Posted
	listing.Extras = facts.Extras
	listing.Facts = facts.Other

	sale := extractSaleInfo(doc)
	listing.Price = sale.Price
	listing.Status = sale.Status
	listing.Zestimate = sale.Zestimate
	listing.RentZestimate = sale.RentZestimate
	listing.SaleExtra = sale.Extra

	listing.Description, err = extractDescription(doc)
	if err != nil {
		span.SetStatus(codes.Error, "no description")
		return nil, err
	}

	listing.Photos = extractPhotos(doc)

	listing.Location, err = extractLocation(doc)
	if err != nil {
		span.SetStatus(codes.Error, "no usable coordinate source")
		return nil, err
	}

	if !opts.SkipHistory {
		c.populateHistories(ctx, string(body), listing)
	}

	return listing, nil
}

// populateHistories runs the two history fetches. Their failures are
// logged and swallowed: a listing without histories is still a
// perfectly good listing, and neither fetch affects the other.
func (c *Client) populateHistories(ctx context.Context, pageHtml string, listing *Listing) {
	priceHistory, err := c.fetchPriceHistory(ctx, pageHtml)
	if err != nil {
		slog.WarnContext(ctx, "unable to get price history, perhaps this is not a valid listing or the html changed", "err", err)
	} else {
		listing.PriceHistory = priceHistory
	}

	taxHistory, err := c.fetchTaxHistory(ctx, pageHtml)
	if err != nil {
		slog.WarnContext(ctx, "unable to get tax history, perhaps this is not a valid listing or the html changed", "err", err)
	} else {
		listing.TaxHistory = taxHistory
	}
}
