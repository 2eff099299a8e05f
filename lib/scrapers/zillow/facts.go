package zillow

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"zillowscrape/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

type factData struct {
	HomeType     *string
	Year         *string
	DaysOnZillow *string
	Posted       *time.Time
	Extras       []string
	Other        map[string]string
}

// factItems flattens every fact-group list on the page into one
// ordered sequence of item texts.
func factItems(doc *goquery.Document) []string {
	var items []string
	doc.Find("ul." + factGroupClass).Each(func(_ int, group *goquery.Selection) {
		group.Find("li").Each(func(_ int, li *goquery.Selection) {
			items = append(items, li.Text())
		})
	})
	return items
}

var (
	builtInRegex = regexp.MustCompile(`Built in (\d+)`)
	daysOnRegex  = regexp.MustCompile(`(\d+) days`)
)

// one classification rule per fact shape, evaluated in order, first
// match wins
type factRule struct {
	matches func(string) bool
	apply   func(*factData, string, time.Time)
}

var factRules = []factRule{
	{
		matches: func(text string) bool {
			_, ok := homeTypes[text]
			return ok
		},
		apply: func(d *factData, text string, _ time.Time) {
			d.HomeType = &text
		},
	},
	{
		matches: func(text string) bool { return strings.Contains(text, "Built in") },
		apply: func(d *factData, text string, _ time.Time) {
			d.Year = matchGroup(builtInRegex, text)
		},
	},
	{
		matches: func(text string) bool { return strings.Contains(text, "days on Zillow") },
		apply: func(d *factData, text string, _ time.Time) {
			d.DaysOnZillow = matchGroup(daysOnRegex, text)
		},
	},
	{
		matches: func(text string) bool { return !strings.Contains(text, ":") },
		apply: func(d *factData, text string, _ time.Time) {
			d.Extras = append(d.Extras, text)
		},
	},
	{
		matches: func(text string) bool { return strings.Contains(text, "Posted") },
		apply: func(d *factData, text string, now time.Time) {
			_, value, _ := strings.Cut(textutil.StripHashMarks(text), ":")
			fields := strings.Fields(value)
			if len(fields) == 0 {
				return
			}
			days, err := strconv.Atoi(fields[0])
			if err != nil {
				return
			}
			posted := now.AddDate(0, 0, -days)
			d.Posted = &posted
		},
	},
	{
		matches: func(string) bool { return true },
		apply: func(d *factData, text string, _ time.Time) {
			key, value, _ := strings.Cut(textutil.StripHashMarks(text), ":")
			d.Other[textutil.NormalizeKey(key)] = strings.TrimSpace(value)
		},
	},
}

// parseFacts classifies each fact item: exactly one rule fires per
// item. `now` anchors the derived posted timestamp.
func parseFacts(items []string, now time.Time) factData {
	data := factData{Other: map[string]string{}}
	for _, item := range items {
		for _, rule := range factRules {
			if rule.matches(item) {
				rule.apply(&data, item, now)
				break
			}
		}
	}
	return data
}
