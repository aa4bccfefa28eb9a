package aggregate

import (
	"sort"
	"strings"

	"github.com/voidshard/ledjer/pkg/domain"
)

// CostBasis accumulates the BUY and SELL totals of one aggregation key.
type CostBasis struct {
	BuyQty    float64
	BuyValue  float64
	SellQty   float64
	SellValue float64
}

// AvgCost is the average price paid per unit over every BUY, or 0 if nothing
// was ever bought.
func (c *CostBasis) AvgCost() float64 {
	if c.BuyQty == 0 {
		return 0
	}
	return c.BuyValue / c.BuyQty
}

// Realized is the profit of the sells against the average cost. Sells with no
// recorded buy have no cost, their full value counts as profit.
func (c *CostBasis) Realized() float64 {
	return c.SellValue - c.AvgCost()*c.SellQty
}

// CostBases builds a CostBasis per aggregation key over the whole history.
// Records without an item name are ignored.
func CostBases(records []domain.Record) map[string]*CostBasis {
	bases := map[string]*CostBasis{}
	for _, r := range records {
		if strings.TrimSpace(r.Item) == "" {
			continue
		}

		k := r.Key()
		c, ok := bases[k]
		if !ok {
			c = &CostBasis{}
			bases[k] = c
		}

		switch r.Action {
		case domain.Buy:
			c.BuyQty += r.Quantity
			c.BuyValue += r.Total
		case domain.Sell:
			c.SellQty += r.Quantity
			c.SellValue += r.Total
		}
	}
	return bases
}

// RealizedProfit sums Realized over every key, using a single average cost
// per key. The order of the records does not matter.
func RealizedProfit(records []domain.Record) float64 {
	bases := CostBases(records)

	keys := make([]string, 0, len(bases))
	for k := range bases {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	profit := 0.0
	for _, k := range keys {
		profit += bases[k].Realized()
	}
	return profit
}
