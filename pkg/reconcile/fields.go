package reconcile

import (
	"strings"

	"github.com/voidshard/ledjer/pkg/domain"
)

// Field is a logical column of an import row.
type Field int

const (
	FieldDate Field = iota
	FieldItem
	FieldTier
	FieldQuantity
	FieldAction
	FieldTotal
	FieldNotes
	FieldID
	FieldDelete
	FieldBuy
	FieldSell
)

// candidates lists, per field and by priority, the lower case header names
// accepted for it.
var candidates = map[Field][]string{
	FieldDate:     {"date", "tanggal", "hari/tanggal", "hari"},
	FieldItem:     {"item", "items", "name"},
	FieldTier:     {"tier"},
	FieldQuantity: {"qty", "quantity", "jumlah"},
	FieldAction:   {"action", "aksi", "type"},
	FieldTotal:    {"total", "equity", "amount", "price"},
	FieldNotes:    {"notes", "catatan", "note"},
	FieldID:       {"id"},
	FieldDelete:   {"delete", "hapus", "remove", "del"},
	FieldBuy:      {"buy", "outflow"},
	FieldSell:     {"sell", "inflow"},
}

var fieldNames = map[Field]string{
	FieldDate:     "date",
	FieldItem:     "item",
	FieldTier:     "tier",
	FieldQuantity: "qty",
	FieldAction:   "action",
	FieldTotal:    "total",
	FieldNotes:    "notes",
	FieldID:       "id",
	FieldDelete:   "delete",
	FieldBuy:      "buy",
	FieldSell:     "sell",
}

func (f Field) String() string {
	return fieldNames[f]
}

// Lookup finds the value of a field in a row.
//
// The first pass wants a header equal (ignoring case and surrounding space)
// to a candidate, trying candidates by priority. Only when that finds nothing
// does the second pass walk the headers in row order and take the first one
// that contains any candidate. A substring hit can therefore never hide an
// exact one.
func Lookup(row domain.ImportRow, f Field) (string, bool) {
	names := candidates[f]

	for _, c := range names {
		for _, cell := range row {
			if strings.ToLower(strings.TrimSpace(cell.Header)) == c {
				return cell.Value, true
			}
		}
	}

	for _, cell := range row {
		header := strings.ToLower(cell.Header)
		for _, c := range names {
			if strings.Contains(header, c) {
				return cell.Value, true
			}
		}
	}

	return "", false
}
