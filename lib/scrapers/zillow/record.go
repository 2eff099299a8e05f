package zillow

import (
	"time"

	"github.com/shopspring/decimal"
)

// Location is where the home sits. Coordinates are decimal because
// they come off the page as micro-degree integers; dividing those in
// binary floating point would drift the last digits.
type Location struct {
	Latitude  *decimal.Decimal `json:"latitude"`
	Longitude *decimal.Decimal `json:"longitude"`
	Address   *string          `json:"address"`
}

// PriceEvent is one row of the price history table. Price is nil for
// events the site renders without an amount (e.g. "Listing removed").
type PriceEvent struct {
	Date  string  `json:"date"`
	Event string  `json:"event"`
	Price *string `json:"price"`
}

// TaxRecord is one row of the tax history table.
type TaxRecord struct {
	Date       string `json:"date"`
	Tax        string `json:"tax"`
	Assessment string `json:"assessment"`
}

// Listing is the scrape result. Every field is best-effort: a nil
// pointer or empty collection means the page did not carry it (or the
// markup moved and the extractor no longer matches, the two are not
// distinguished). Values are kept as rendered, commas and all.
type Listing struct {
	Bedrooms  *string `json:"bedrooms"`
	Bathrooms *string `json:"bathrooms"`
	Sqft      *string `json:"sqft"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	Zipcode   *string `json:"zipcode"`

	HomeType     *string    `json:"home_type"`
	Year         *string    `json:"year"`
	DaysOnZillow *string    `json:"days_on_zillow"`
	Posted       *time.Time `json:"posted"`
	// standalone fact strings with no key:value shape, in page order
	Extras []string `json:"extras"`
	// generic key:value facts under normalized keys
	Facts map[string]string `json:"facts"`

	Price         *string `json:"price"`
	Status        *string `json:"status"`
	Zestimate     *string `json:"zestimate"`
	RentZestimate *string `json:"rent_zestimate"`
	// pricing callouts with runtime-derived keys, e.g. "sold_on",
	// "price_cut", "foreclosure_estimate"
	SaleExtra map[string]string `json:"sale_extra"`

	Description *string  `json:"description"`
	Photos      []string `json:"photos"`

	Location Location `json:"location_data"`

	PriceHistory []PriceEvent `json:"price_history"`
	TaxHistory   []TaxRecord  `json:"tax_history"`
}

// Map flattens the listing into the generic key->value shape, dynamic
// fact and sale keys promoted to top level. The six summary keys are
// always present even when nil.
func (l *Listing) Map() map[string]any {
	out := map[string]any{
		"bedrooms":  l.Bedrooms,
		"bathrooms": l.Bathrooms,
		"sqft":      l.Sqft,
		"city":      l.City,
		"state":     l.State,
		"zipcode":   l.Zipcode,

		"price":          l.Price,
		"status":         l.Status,
		"zestimate":      l.Zestimate,
		"rent_zestimate": l.RentZestimate,

		"description":   l.Description,
		"photos":        l.Photos,
		"location_data": l.Location,
	}
	for k, v := range l.Facts {
		out[k] = v
	}
	for k, v := range l.SaleExtra {
		out[k] = v
	}
	if l.HomeType != nil {
		out["home_type"] = *l.HomeType
	}
	if l.Year != nil {
		out["year"] = *l.Year
	}
	if l.DaysOnZillow != nil {
		out["days_on_zillow"] = *l.DaysOnZillow
	}
	if l.Posted != nil {
		out["posted"] = *l.Posted
	}
	if len(l.Extras) > 0 {
		out["extras"] = l.Extras
	}
	if l.PriceHistory != nil {
		out["price_history"] = l.PriceHistory
	}
	if l.TaxHistory != nil {
		out["tax_history"] = l.TaxHistory
	}
	return out
}
