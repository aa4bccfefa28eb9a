package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
)

// table builds a markdown table.
type table struct {
	header []string
	rows   [][]string
}

func newTable(header ...string) *table {
	return &table{header: header}
}

func (t *table) add(cells ...string) {
	t.rows = append(t.rows, cells)
}

func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

func (t *table) String() string {
	b := &strings.Builder{}
	line := func(cells []string) {
		b.WriteString("|")
		for i := range t.header {
			v := ""
			if i < len(cells) {
				v = cell(cells[i])
			}
			b.WriteString(" " + v + " |")
		}
		b.WriteString("\n")
	}

	line(t.header)
	sep := make([]string, len(t.header))
	for i := range sep {
		sep[i] = "---"
	}
	line(sep)
	for _, r := range t.rows {
		line(r)
	}
	return b.String()
}

// render writes markdown to w, styled for the terminal unless plain is set.
func render(w io.Writer, plain bool, md string) error {
	if plain {
		_, err := io.WriteString(w, md)
		return err
	}

	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(140))
	if err != nil {
		return err
	}
	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
