package aggregate

import (
	"sort"
	"time"

	"github.com/voidshard/ledjer/pkg/domain"
)

// EquityLine is a record with the running equity after it.
type EquityLine struct {
	domain.Record
	Equity float64

	// Index is the position of the record in the slice given to Equity.
	Index int
}

// dateOf reads a YYYY-MM-DD record date. Unreadable dates are the zero time
// and so sort before every real date.
func dateOf(r domain.Record) time.Time {
	t, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Chronological returns the storage positions of records oldest first. Dates
// decide, records on the same date keep the reverse of storage order, which
// is the order manual adds were made in.
func Chronological(records []domain.Record) []int {
	order := make([]int, len(records))
	dates := make([]time.Time, len(records))
	for i := range records {
		order[i] = len(records) - 1 - i
		dates[i] = dateOf(records[i])
	}

	sort.SliceStable(order, func(a, b int) bool {
		return dates[order[a]].Before(dates[order[b]])
	})
	return order
}

// Equity walks the records in Chronological order and keeps a signed cash
// flow counter: SELLs add their total and everything else subtracts it. It
// is not a balance.
func Equity(records []domain.Record) []EquityLine {
	lines := make([]EquityLine, 0, len(records))

	running := 0.0
	for _, i := range Chronological(records) {
		r := records[i]
		if r.Action == domain.Sell {
			running += r.Total
		} else {
			running -= r.Total
		}
		lines = append(lines, EquityLine{Record: r, Equity: running, Index: i})
	}
	return lines
}

// FinalEquity is the counter of Equity after the newest record.
func FinalEquity(records []domain.Record) float64 {
	lines := Equity(records)
	if len(lines) == 0 {
		return 0
	}
	return lines[len(lines)-1].Equity
}
