// Package aggregate derives holdings and profit from a transaction history.
// Every function here is pure: it reads the records it is given and nothing
// else.
package aggregate

import (
	"sort"
	"strings"

	"github.com/voidshard/ledjer/pkg/domain"
)

// Position is the net holding of one aggregation key.
type Position struct {
	Key string

	// Name and Tier are the trimmed strings of the first record seen for Key.
	Name string
	Tier string

	NetQuantity float64
	NetValue    float64
}

// AvgPrice is the net value per held unit, 0 when nothing is held.
func (p *Position) AvgPrice() float64 {
	if p.NetQuantity == 0 {
		return 0
	}
	return p.NetValue / p.NetQuantity
}

// Inventory nets BUYs against SELLs per aggregation key and returns the keys
// with a positive quantity, sorted by name then tier.
func Inventory(records []domain.Record) []Position {
	order := []string{}
	byKey := map[string]*Position{}

	for _, r := range records {
		k := r.Key()
		p, ok := byKey[k]
		if !ok {
			p = &Position{
				Key:  k,
				Name: strings.TrimSpace(r.Item),
				Tier: strings.TrimSpace(r.Tier),
			}
			byKey[k] = p
			order = append(order, k)
		}

		switch r.Action {
		case domain.Buy:
			p.NetQuantity += r.Quantity
			p.NetValue += r.Total
		case domain.Sell:
			p.NetQuantity -= r.Quantity
			p.NetValue -= r.Total
		}
	}

	positions := []Position{}
	for _, k := range order {
		if p := byKey[k]; p.NetQuantity > 0 {
			positions = append(positions, *p)
		}
	}

	sort.SliceStable(positions, func(i, j int) bool {
		if c := strings.Compare(positions[i].Name, positions[j].Name); c != 0 {
			return c < 0
		}
		return positions[i].Tier < positions[j].Tier
	})
	return positions
}

// Totals summarizes an inventory.
type Totals struct {
	Items int
	Value float64
}

func Summarize(positions []Position) Totals {
	t := Totals{Items: len(positions)}
	for _, p := range positions {
		t.Value += p.NetValue
	}
	return t
}

// Search keeps the positions whose name contains query, ignoring case.
func Search(positions []Position, query string) []Position {
	q := strings.ToLower(query)
	found := []Position{}
	for _, p := range positions {
		if strings.Contains(strings.ToLower(p.Name), q) {
			found = append(found, p)
		}
	}
	return found
}
