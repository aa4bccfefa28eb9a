package reconcile

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/voidshard/ledjer/pkg/domain"
)

// DateLayout is how record dates are stored.
const DateLayout = "2006-01-02"

// dateLayouts are tried in order by ParseDate.
var dateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"Monday, January 2, 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"02 Jan 2006",
}

var notNumeric = regexp.MustCompile(`[^0-9.\-]+`)

// ParseDate reads a calendar date in any of the accepted layouts. Missing or
// unreadable dates fall back to the calendar date of today.
func ParseDate(raw string, today time.Time) string {
	s := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DateLayout)
		}
	}
	return today.Format(DateLayout)
}

// ParseNumber drops everything but digits, '.' and '-' and reads what is
// left. It falls back to 0.
func ParseNumber(raw string) float64 {
	cleaned := notNumeric.ReplaceAllString(raw, "")
	if cleaned == "" {
		return 0
	}
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return n
}

// ParseFlag is true for "true", "1" and "yes" in any case, false otherwise.
func ParseFlag(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes":
		return true
	}
	return false
}

// ResolveAction works out the action and total of a row. A non empty sell
// column makes a SELL of that amount, then a non empty buy column a BUY. Failing
// both the generic total column is used, with the explicit action column if it
// names a known action. Otherwise a positive total defaults to SELL and
// anything else to BUY.
func ResolveAction(row domain.ImportRow) (domain.Action, float64) {
	if sell, ok := Lookup(row, FieldSell); ok && strings.TrimSpace(sell) != "" {
		return domain.Sell, ParseNumber(sell)
	}
	if buy, ok := Lookup(row, FieldBuy); ok && strings.TrimSpace(buy) != "" {
		return domain.Buy, ParseNumber(buy)
	}

	raw, _ := Lookup(row, FieldTotal)
	total := ParseNumber(raw)

	if explicit, ok := Lookup(row, FieldAction); ok {
		if a, known := domain.ParseAction(explicit); known {
			return a, total
		}
	}

	if total > 0 {
		return domain.Sell, total
	}
	return domain.Buy, total
}
