package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/voidshard/ledjer/pkg/aggregate"
	"github.com/voidshard/ledjer/pkg/domain"
	"github.com/voidshard/ledjer/pkg/export"
)

type inventoryCmd struct {
	Search string `help:"Only show items whose name contains this."`
}

func inventoryMarkdown(positions []aggregate.Position) string {
	if len(positions) == 0 {
		return "Inventory is empty.\n"
	}

	t := newTable("Item", "Tier", "Qty", "Total Value", "Avg Price")
	for _, p := range positions {
		t.add(
			p.Name,
			domain.HumanizeTier(p.Tier),
			export.Number(p.NetQuantity),
			export.Grouped(p.NetValue),
			export.Grouped(p.AvgPrice()),
		)
	}

	totals := aggregate.Summarize(positions)
	return fmt.Sprintf("%s\nItems: %d • Total Value: %s\n", t, totals.Items, export.Currency(totals.Value))
}

func (c *inventoryCmd) Run(a *app) error {
	ctx := context.Background()
	s, err := a.open(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	positions := aggregate.Inventory(s.book.List())
	if c.Search != "" {
		positions = aggregate.Search(positions, c.Search)
	}
	return render(os.Stdout, a.plain, inventoryMarkdown(positions))
}

type profitCmd struct{}

// splitKey undoes domain.Key, the item comes back lower cased.
func splitKey(k string) (string, string) {
	bits := strings.SplitN(k, "||", 2)
	if len(bits) != 2 || bits[1] == domain.EmptyTier {
		return bits[0], ""
	}
	return bits[0], bits[1]
}

func profitMarkdown(records []domain.Record) string {
	bases := aggregate.CostBases(records)
	if len(bases) == 0 {
		return "No transactions.\n"
	}

	keys := make([]string, 0, len(bases))
	for k := range bases {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t := newTable("Item", "Tier", "Bought", "Avg Cost", "Sold", "Sell Value", "Realized")
	for _, k := range keys {
		b := bases[k]
		item, tier := splitKey(k)
		t.add(
			item,
			domain.HumanizeTier(tier),
			export.Number(b.BuyQty),
			export.Grouped(b.AvgCost()),
			export.Number(b.SellQty),
			export.Grouped(b.SellValue),
			export.Grouped(b.Realized()),
		)
	}

	return fmt.Sprintf("%s\nRealized profit: %s\n", t, export.Currency(aggregate.RealizedProfit(records)))
}

func (c *profitCmd) Run(a *app) error {
	ctx := context.Background()
	s, err := a.open(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	return render(os.Stdout, a.plain, profitMarkdown(s.book.List()))
}
