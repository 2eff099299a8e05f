package textutil

import (
	"regexp"
	"strings"
)

var hashMarkRegex = regexp.MustCompile(`( #|# )`)

// StripHashMarks removes the stray "# " markers the site leaves
// inside fact rows before they are split into key/value pairs.
func StripHashMarks(s string) string {
	return hashMarkRegex.ReplaceAllString(s, "")
}

// NormalizeKey turns a human label like "Lot Size®" into a record
// key like "lot_size".
func NormalizeKey(label string) string {
	label = strings.TrimSpace(label)
	label = strings.TrimSuffix(label, "®")
	label = strings.ReplaceAll(label, " ", "_")
	return strings.ToLower(label)
}

var currencyRegex = regexp.MustCompile(`\$?([\d,]+)`)

// ExtractCurrency pulls the first dollar-ish run of digits out of a
// blob of text, commas preserved as rendered. Returns "" on no match.
func ExtractCurrency(s string) string {
	groups := currencyRegex.FindStringSubmatch(s)
	if len(groups) < 2 {
		return ""
	}
	return groups[1]
}

// ContainsCurrency reports whether the text has any dollar-ish run
// of digits at all.
func ContainsCurrency(s string) bool {
	return currencyRegex.MatchString(s)
}
