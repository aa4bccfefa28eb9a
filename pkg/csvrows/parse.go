// Package csvrows turns delimited text with a header line into import rows.
package csvrows

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/voidshard/ledjer/pkg/domain"
)

var bom = []byte("\ufeff")

// Parse reads comma separated rows, using the first line as headers. Blank
// lines are skipped, short rows are padded with empty values and long rows
// lose their extra cells.
func Parse(r io.Reader) ([]domain.ImportRow, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(bom)); err == nil && bytes.Equal(head, bom) {
		br.Discard(len(bom))
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return []domain.ImportRow{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	rows := []domain.ImportRow{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		if blank(record) {
			continue
		}

		row := make(domain.ImportRow, len(header))
		for i, h := range header {
			row[i].Header = h
			if i < len(record) {
				row[i].Value = record[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func blank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
