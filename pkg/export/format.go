package export

import (
	"math"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

const longDate = "Monday, January 2, 2006"

// Number writes n in its shortest round trip form: 3, 2.5, 6.666666666666667.
func Number(n float64) string {
	if n == 0 {
		return "0"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// Grouped writes n with thousands separators, with no decimals when n is
// whole and exactly two otherwise: 1,234 or 1,234.50.
func Grouped(n float64) string {
	if math.Round(n) == n {
		return humanize.FormatFloat("#,###.", n)
	}
	return humanize.FormatFloat("#,###.##", n)
}

// Currency is Grouped with the in game currency name attached.
func Currency(n float64) string {
	return Grouped(n) + " Gold Coins"
}

// LongDate spells out a YYYY-MM-DD date, "Tuesday, January 2, 2024". Dates
// that do not parse are returned untouched.
func LongDate(date string) string {
	if date == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format(longDate)
}
