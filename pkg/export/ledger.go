package export

import (
	"io"

	"github.com/voidshard/ledjer/pkg/aggregate"
	"github.com/voidshard/ledjer/pkg/domain"
)

var ledgerHeader = []string{
	"HARI/TANGGAL",
	"ITEMS",
	"TIER",
	"QUANTITY",
	"BUY / OUTFLOW",
	"SELL / INFLOW",
	"EQUITY",
	"CATATAN",
}

// Ledger writes the records oldest first, by date, and every line carries
// the running equity. See aggregate.Chronological for same day records.
func Ledger(w io.Writer, records []domain.Record) error {
	rows := [][]string{ledgerHeader}
	for _, line := range aggregate.Equity(records) {
		buy, sell := Grouped(line.Total), ""
		if line.Action == domain.Sell {
			buy, sell = "", Grouped(line.Total)
		}

		rows = append(rows, []string{
			LongDate(line.Date),
			line.Item,
			line.Tier,
			Number(line.Quantity),
			buy,
			sell,
			Grouped(line.Equity),
			line.Notes,
		})
	}
	return writeCSV(w, rows)
}
