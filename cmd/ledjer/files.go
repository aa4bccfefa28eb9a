package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/voidshard/ledjer/pkg/aggregate"
	"github.com/voidshard/ledjer/pkg/crypto"
	"github.com/voidshard/ledjer/pkg/csvrows"
	"github.com/voidshard/ledjer/pkg/domain"
	"github.com/voidshard/ledjer/pkg/export"
	"github.com/voidshard/ledjer/pkg/reconcile"
)

type importCmd struct {
	File string `arg:"" help:"CSV file to import."`
}

func (c *importCmd) Run(a *app) error {
	f, err := os.Open(c.File)
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := csvrows.Parse(f)
	if err != nil {
		return fmt.Errorf("%s: %w", c.File, err)
	}

	ctx := context.Background()
	s, err := a.open(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	report, err := reconcile.New(s.book, s.catalog, a.logger).Import(ctx, rows)
	fmt.Println(report.String())
	return err
}

type exportCmd struct {
	Inventory exportInventoryCmd `cmd:"" help:"Export current holdings."`
	Ledger    exportLedgerCmd    `cmd:"" help:"Export every transaction with running equity."`
}

type exportInventoryCmd struct {
	Out string `default:"inventory.csv" help:"File to write, - for stdout."`
}

func (c *exportInventoryCmd) Run(a *app) error {
	ctx := context.Background()
	s, err := a.open(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	positions := aggregate.Inventory(s.book.List())
	if len(positions) == 0 {
		return fmt.Errorf("inventory is empty, nothing to export")
	}
	return writeOut(a, c.Out, func(w io.Writer) error { return export.Inventory(w, positions) })
}

type exportLedgerCmd struct {
	Out string `default:"transactions.csv" help:"File to write, - for stdout."`
}

func (c *exportLedgerCmd) Run(a *app) error {
	ctx := context.Background()
	s, err := a.open(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	records := s.book.List()
	if len(records) == 0 {
		return fmt.Errorf("no transactions, nothing to export")
	}
	return writeOut(a, c.Out, func(w io.Writer) error { return export.Ledger(w, records) })
}

func writeOut(a *app, path string, write func(io.Writer) error) error {
	if path == "-" {
		return write(os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	err = write(f)
	if err != nil {
		f.Close()
		return err
	}
	err = f.Close()
	if err != nil {
		return err
	}

	a.logger.Info("exported", "path", path)
	return nil
}

type itemsCmd struct {
	Load    itemsLoadCmd    `cmd:"" help:"Merge a name,tier CSV into the saved catalog."`
	List    itemsListCmd    `cmd:"" help:"List known items."`
	Suggest itemsSuggestCmd `cmd:"" help:"Find items by partial name."`
}

type itemsLoadCmd struct {
	File string `arg:"" help:"CSV file with name and tier columns."`
}

func (c *itemsLoadCmd) Run(a *app) error {
	items, err := readItemsCSV(c.File)
	if err != nil {
		return err
	}

	ctx := context.Background()
	s, err := a.open(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	s.catalog.Merge(items)
	err = s.catalog.Sync(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("%d items read, %d known\n", len(items), len(s.catalog.Items()))
	return nil
}

func itemsMarkdown(items []domain.Item) string {
	if len(items) == 0 {
		return "No items.\n"
	}
	t := newTable("Name", "Tier")
	for _, it := range items {
		t.add(it.Name, domain.HumanizeTier(it.Tier))
	}
	return t.String()
}

type itemsListCmd struct{}

func (c *itemsListCmd) Run(a *app) error {
	ctx := context.Background()
	s, err := a.open(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	return render(os.Stdout, a.plain, itemsMarkdown(s.catalog.Items()))
}

type itemsSuggestCmd struct {
	Query string `arg:"" help:"Part of an item name."`
	Limit int    `help:"Maximum number of suggestions, 12 if unset."`
}

func (c *itemsSuggestCmd) Run(a *app) error {
	ctx := context.Background()
	s, err := a.open(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	return render(os.Stdout, a.plain, itemsMarkdown(s.catalog.Suggest(c.Query, c.Limit)))
}

type keygenCmd struct{}

func (c *keygenCmd) Run(a *app) error {
	key, err := crypto.NewRandomKey()
	if err != nil {
		return err
	}
	fmt.Println(key)
	return nil
}
