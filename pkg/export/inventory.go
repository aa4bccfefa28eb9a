package export

import (
	"io"

	"github.com/voidshard/ledjer/pkg/aggregate"
)

var inventoryHeader = []string{"Item", "Tier", "Qty", "TotalValue", "AvgPrice"}

// Inventory writes one line per position, numbers unformatted.
func Inventory(w io.Writer, positions []aggregate.Position) error {
	rows := [][]string{inventoryHeader}
	for _, p := range positions {
		rows = append(rows, []string{
			p.Name,
			p.Tier,
			Number(p.NetQuantity),
			Number(p.NetValue),
			Number(p.AvgPrice()),
		})
	}
	return writeCSV(w, rows)
}
