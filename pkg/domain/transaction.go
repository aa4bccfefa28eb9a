package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Action is what a transaction did with an item.
type Action string

const (
	Buy  Action = "BUY"
	Sell Action = "SELL"

	// Delete is only meaningful on import rows; it never reaches a book.
	Delete Action = "DELETE"
)

// ParseAction upper-cases s and reports whether it is a known action.
func ParseAction(s string) (Action, bool) {
	a := Action(strings.ToUpper(strings.TrimSpace(s)))
	switch a {
	case Buy, Sell, Delete:
		return a, true
	}
	return a, false
}

// ID identifies a record. Older snapshots stored ids as plain numbers, so
// decoding accepts both JSON strings and numbers.
type ID string

func (i *ID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*i = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*i = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("record id must be a string or number, got %s", string(data))
	}
	*i = ID(n.String())
	return nil
}

func (i ID) String() string {
	return string(i)
}

// Record is a single BUY or SELL of an item.
type Record struct {
	ID ID `json:"id"`

	// Date is a calendar date, YYYY-MM-DD
	Date   string `json:"date"`
	Action Action `json:"action"`

	Item string `json:"item"`
	Tier string `json:"tier"`

	Quantity float64 `json:"qty"`
	Total    float64 `json:"total"`

	Notes string `json:"notes"`
}

// Key returns the aggregation key of the record, see Key.
func (r *Record) Key() string {
	return Key(r.Item, r.Tier)
}

func (r *Record) JSON() ([]byte, error) {
	return json.Marshal(r)
}
