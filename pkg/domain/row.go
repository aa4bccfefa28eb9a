package domain

// Field is one cell of an import row, keyed by its column header.
type Field struct {
	Header string
	Value  string
}

// ImportRow is a parsed row of externally supplied data. Fields keep the
// column order of the source, which field lookup relies on.
type ImportRow []Field

// Row builds an ImportRow from alternating header, value pairs.
func Row(pairs ...string) ImportRow {
	row := make(ImportRow, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		row = append(row, Field{Header: pairs[i], Value: pairs[i+1]})
	}
	return row
}
