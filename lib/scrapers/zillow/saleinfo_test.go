package zillow

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractSaleInfo(t *testing.T) {
	info := extractSaleInfo(fixtureDoc(t))

	requireStr(t, "For Sale", info.Status)
	requireStr(t, "500,000", info.Price)
	requireStr(t, "486,900", info.Zestimate)
	requireStr(t, "2,500", info.RentZestimate)
	require.Equal(t, map[string]string{"price_cut": "10,000"}, info.Extra)
}

func TestExtractSaleInfoRowPriority(t *testing.T) {
	// a labeled price row must never be mistaken for a bare price even
	// though it contains a currency amount
	doc := docFromString(t, `
		<div id="home-value-wrapper">
			<div class="home-summary-row">Sold on 10/02/2015: $420,000</div>
			<div class="home-summary-row">Off Market</div>
		</div>`)

	info := extractSaleInfo(doc)
	require.Nil(t, info.Price)
	requireStr(t, "Off Market", info.Status)
	require.Equal(t, map[string]string{"sold_on": "10/02/2015"}, info.Extra)
}

func TestExtractSaleInfoForeclosure(t *testing.T) {
	doc := docFromString(t, `
		<div id="home-value-wrapper">
			<div class="home-summary-row">Pre-Foreclosure</div>
			<div class="home-summary-row">Foreclosure Estimate: $277,188</div>
		</div>`)

	info := extractSaleInfo(doc)
	requireStr(t, "Pre-Foreclosure", info.Status)
	require.Equal(t, map[string]string{"foreclosure_estimate": "277,188"}, info.Extra)
}

func TestExtractSaleInfoZestValueLists(t *testing.T) {
	doc := docFromString(t, `
		<div class="zest-title">Zestimate</div>
		<div class="zest-title">Rent Zestimate</div>
		<div class="zest-value">$350,100</div>
		<div class="zest-value">$1,800/mo</div>`)

	info := extractSaleInfo(doc)
	require.Nil(t, info.Zestimate)
	requireStr(t, "1,800", info.RentZestimate)
}

func TestExtractSaleInfoZestTitleWithoutValue(t *testing.T) {
	// a title with no value element at the same index is skipped
	doc := docFromString(t, `
		<div class="zest-title">Zestimate</div>
		<div class="zest-title">Rent Zestimate</div>
		<div class="zest-value">$350,100</div>`)

	info := extractSaleInfo(doc)
	require.Nil(t, info.RentZestimate)
}

func TestExtractSaleInfoWrapperAbsent(t *testing.T) {
	info := extractSaleInfo(docFromString(t, `<div>nothing here</div>`))

	require.Nil(t, info.Price)
	require.Nil(t, info.Status)
	require.Nil(t, info.Zestimate)
	require.Nil(t, info.RentZestimate)
	require.Empty(t, info.Extra)
}
