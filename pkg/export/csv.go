// Package export writes the inventory and ledger CSV files.
//
// Both files start with a UTF-8 byte order mark so spreadsheet software picks
// the right encoding, quote every field and separate rows with CRLF. There is
// no separator after the last row.
package export

import (
	"bufio"
	"io"
	"strings"
)

const (
	bom       = "\ufeff"
	separator = "\r\n"
)

func quote(cell string) string {
	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}

func writeCSV(w io.Writer, rows [][]string) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(bom)

	for i, row := range rows {
		if i > 0 {
			bw.WriteString(separator)
		}
		for j, cell := range row {
			if j > 0 {
				bw.WriteByte(',')
			}
			bw.WriteString(quote(cell))
		}
	}

	return bw.Flush()
}
