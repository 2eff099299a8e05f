package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
	"zillowscrape/lib/configutil"
	"zillowscrape/lib/restyutil"
	"zillowscrape/lib/scrapers/zillow"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type Config struct {
	BaseUrl        string `json:"base_url"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

var (
	scrapeUrl       *string
	scrapeZpid      *string
	scrapeNoHistory *bool
	scrapeTables    *bool
	scrapeDebugHttp *string
)

func init() {
	scrapeUrl = scrapeCmd.Flags().String("url", "", "Full listing url to scrape (mutually exclusive with --zpid).")
	scrapeZpid = scrapeCmd.Flags().String("zpid", "", "Numeric listing id to scrape (mutually exclusive with --url).")
	scrapeNoHistory = scrapeCmd.Flags().Bool("no-history", false, "Skip the price/tax history follow-up requests.")
	scrapeTables = scrapeCmd.Flags().Bool("table", false, "Render the result as tables instead of JSON.")
	scrapeDebugHttp = scrapeCmd.Flags().String("debug-http", "", "Directory to dump raw http exchanges into.")
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape --zpid <id> | --url <listing url>",
	Short: "Scrapes a single home listing and prints the record.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := configutil.ReadConfig[Config]("config.json5")
		if err != nil && !os.IsNotExist(err) {
			fatal("failed to read config", err)
		}

		client, err := zillow.NewClient(zillow.ClientOptions{
			BaseUrl: cfg.BaseUrl,
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		})
		if err != nil {
			fatal("failed to initialize client", err)
		}
		if *scrapeDebugHttp != "" {
			restyutil.InstrumentClient(client.Http, nil, restyutil.NewFilesystemOutput(*scrapeDebugHttp))
		}

		listing, err := client.Scrape(cmd.Context(), zillow.ScrapeOptions{
			Url:         *scrapeUrl,
			Zpid:        *scrapeZpid,
			SkipHistory: *scrapeNoHistory,
		})
		if err != nil {
			fatal("scrape failed", err)
		}

		if *scrapeTables {
			renderTables(listing)
			return
		}
		out, err := json.MarshalIndent(listing, "", "  ")
		if err != nil {
			fatal("failed to marshal listing", err)
		}
		fmt.Println(string(out))
	},
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case *string:
		if v == nil {
			return ""
		}
		return *v
	default:
		out, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(out)
	}
}

func renderTables(listing *zillow.Listing) {
	fields := table.NewWriter()
	fields.SetOutputMirror(os.Stdout)
	fields.AppendHeader(table.Row{"Field", "Value"})
	for key, value := range listing.Map() {
		switch key {
		case "price_history", "tax_history", "photos", "description":
			continue
		}
		fields.AppendRow(table.Row{key, formatValue(value)})
	}
	fields.Render()

	if len(listing.PriceHistory) > 0 {
		prices := table.NewWriter()
		prices.SetOutputMirror(os.Stdout)
		prices.SetTitle("Price History")
		prices.AppendHeader(table.Row{"Date", "Event", "Price"})
		for _, row := range listing.PriceHistory {
			price := ""
			if row.Price != nil {
				price = *row.Price
			}
			prices.AppendRow(table.Row{row.Date, row.Event, price})
		}
		prices.Render()
	}

	if len(listing.TaxHistory) > 0 {
		taxes := table.NewWriter()
		taxes.SetOutputMirror(os.Stdout)
		taxes.SetTitle("Tax History")
		taxes.AppendHeader(table.Row{"Date", "Tax", "Assessment"})
		for _, row := range listing.TaxHistory {
			taxes.AppendRow(table.Row{row.Date, row.Tax, row.Assessment})
		}
		taxes.Render()
	}
}
