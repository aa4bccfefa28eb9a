package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/voidshard/ledjer/pkg/aggregate"
	"github.com/voidshard/ledjer/pkg/domain"
	"github.com/voidshard/ledjer/pkg/export"
	"github.com/voidshard/ledjer/pkg/reconcile"
)

// checkFinite rejects NaN and infinities, which cannot be saved as JSON.
func checkFinite(name string, n float64) error {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return fmt.Errorf("%s must be a finite number, got %v", name, n)
	}
	return nil
}

type addCmd struct {
	Date   string  `help:"Date of the transaction (YYYY-MM-DD), defaults to today."`
	Action string  `required:"" help:"BUY or SELL."`
	Item   string  `required:"" help:"Item name."`
	Tier   string  `help:"Item tier."`
	Qty    float64 `help:"Quantity."`
	Total  float64 `help:"Total value of the transaction."`
	Notes  string  `help:"Free text notes."`
}

func (c *addCmd) Run(a *app) error {
	action, ok := domain.ParseAction(c.Action)
	if !ok || action == domain.Delete {
		return fmt.Errorf("action must be BUY or SELL, got %q", c.Action)
	}
	if strings.TrimSpace(c.Item) == "" {
		return fmt.Errorf("item is required")
	}
	if err := checkFinite("quantity", c.Qty); err != nil {
		return err
	}
	if err := checkFinite("total", c.Total); err != nil {
		return err
	}

	ctx := context.Background()
	s, err := a.open(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	record, err := s.book.Add(domain.Record{
		Date:     reconcile.ParseDate(c.Date, time.Now()),
		Action:   action,
		Item:     strings.TrimSpace(c.Item),
		Tier:     strings.TrimSpace(c.Tier),
		Quantity: c.Qty,
		Total:    c.Total,
		Notes:    c.Notes,
	})
	if err != nil {
		return err
	}

	err = s.book.Sync(ctx)
	if err != nil {
		return err
	}

	if !s.catalog.Contains(record.Item) {
		_, err = s.catalog.Add(ctx, record.Item, record.Tier)
		if err != nil {
			a.logger.Warn("failed to add item to catalog", "item", record.Item, "err", err)
		}
	}

	fmt.Println("added", record.ID)
	return nil
}

type editCmd struct {
	ID     string `arg:"" help:"ID of the transaction."`
	Date   string `help:"New date (YYYY-MM-DD)."`
	Action string `help:"New action, BUY or SELL."`
	Item   string `help:"New item name."`
	Tier   string `help:"New item tier."`
	Qty    string `help:"New quantity."`
	Total  string `help:"New total value."`
	Notes  string `help:"New notes."`
}

// apply returns r with every field given on the command line replaced.
func (c *editCmd) apply(r domain.Record) (domain.Record, error) {
	if c.Date != "" {
		r.Date = reconcile.ParseDate(c.Date, time.Now())
	}
	if c.Action != "" {
		action, ok := domain.ParseAction(c.Action)
		if !ok || action == domain.Delete {
			return r, fmt.Errorf("action must be BUY or SELL, got %q", c.Action)
		}
		r.Action = action
	}
	if c.Item != "" {
		r.Item = strings.TrimSpace(c.Item)
	}
	if c.Tier != "" {
		r.Tier = strings.TrimSpace(c.Tier)
	}
	if c.Qty != "" {
		n, err := strconv.ParseFloat(c.Qty, 64)
		if err != nil {
			return r, fmt.Errorf("invalid quantity %q: %w", c.Qty, err)
		}
		if err := checkFinite("quantity", n); err != nil {
			return r, err
		}
		r.Quantity = n
	}
	if c.Total != "" {
		n, err := strconv.ParseFloat(c.Total, 64)
		if err != nil {
			return r, fmt.Errorf("invalid total %q: %w", c.Total, err)
		}
		if err := checkFinite("total", n); err != nil {
			return r, err
		}
		r.Total = n
	}
	if c.Notes != "" {
		r.Notes = c.Notes
	}
	return r, nil
}

func (c *editCmd) Run(a *app) error {
	ctx := context.Background()
	s, err := a.open(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	id := domain.ID(strings.TrimSpace(c.ID))
	existing, ok := s.book.Get(id)
	if !ok {
		return fmt.Errorf("transaction %s not found", id)
	}

	updated, err := c.apply(existing)
	if err != nil {
		return err
	}

	err = s.book.Update(id, updated)
	if err != nil {
		return err
	}

	err = s.book.Sync(ctx)
	if err != nil {
		return err
	}

	fmt.Println("updated", id)
	return nil
}

type rmCmd struct {
	ID string `arg:"" help:"ID of the transaction."`
}

func (c *rmCmd) Run(a *app) error {
	ctx := context.Background()
	s, err := a.open(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	id := domain.ID(strings.TrimSpace(c.ID))
	err = s.book.Remove(id)
	if err != nil {
		return fmt.Errorf("transaction %s: %w", id, err)
	}

	err = s.book.Sync(ctx)
	if err != nil {
		return err
	}

	fmt.Println("removed", id)
	return nil
}

type listCmd struct {
	Filter string `default:"ALL" help:"Show only [ALL BUY SELL] transactions."`
}

// filter keeps the records matching the action filter, in storage order.
func filter(records []domain.Record, action string) ([]domain.Record, error) {
	action = strings.ToUpper(strings.TrimSpace(action))
	if action == "" || action == "ALL" {
		return records, nil
	}

	want, ok := domain.ParseAction(action)
	if !ok || want == domain.Delete {
		return nil, fmt.Errorf("filter must be one of ALL, BUY or SELL, got %q", action)
	}

	shown := []domain.Record{}
	for _, r := range records {
		if r.Action == want {
			shown = append(shown, r)
		}
	}
	return shown, nil
}

// ledgerMarkdown lists records in storage order, each with the running equity
// of the shown records, followed by a summary line. Profit covers the whole book.
func ledgerMarkdown(shown, all []domain.Record) string {
	if len(shown) == 0 {
		return "No transactions.\n"
	}

	lines := aggregate.Equity(shown)
	equity := make([]float64, len(shown))
	for _, line := range lines {
		equity[line.Index] = line.Equity
	}

	t := newTable("#", "Date", "Item", "Tier", "Action", "Qty", "Total", "Equity", "Notes", "ID")
	for i, r := range shown {
		t.add(
			strconv.Itoa(i+1),
			export.LongDate(r.Date),
			r.Item,
			domain.HumanizeTier(r.Tier),
			string(r.Action),
			export.Number(r.Quantity),
			export.Grouped(r.Total),
			export.Grouped(equity[i]),
			r.Notes,
			string(r.ID),
		)
	}

	return fmt.Sprintf(
		"%s\nTotal: %d • Equity: %s • Realized profit: %s\n",
		t,
		len(shown),
		export.Currency(lines[len(lines)-1].Equity),
		export.Currency(aggregate.RealizedProfit(all)),
	)
}

func (c *listCmd) Run(a *app) error {
	ctx := context.Background()
	s, err := a.open(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	all := s.book.List()
	shown, err := filter(all, c.Filter)
	if err != nil {
		return err
	}

	return render(os.Stdout, a.plain, ledgerMarkdown(shown, all))
}
