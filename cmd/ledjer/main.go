/*Basic command structure*/
package main

import (
	"github.com/alecthomas/kong"

	"github.com/voidshard/ledjer/pkg/config"
)

// globals are options shared by every command, each overrides the matching
// LEDJER_* environment variable
type globals struct {
	Store    string `help:"Where to keep data [jsonfile:/path/file.json sqlite:/path/file.db redis:localhost:6379 es8:http://myelasticsearch:9200 memory:]."`
	Secret   string `help:"Encrypt everything written to the store with this secret (at least 16 characters)."`
	ItemsCSV string `name:"items-csv" help:"CSV file listing known items (name,tier)."`
	LogLevel string `name:"log-level" help:"Log level [debug info warn error]."`
	Plain    bool   `help:"Print markdown as is instead of rendering it."`
}

// cli commands / args available
var cli struct {
	Globals globals `embed:""`

	Add       addCmd       `cmd:"" help:"Record a BUY or SELL."`
	Edit      editCmd      `cmd:"" help:"Change a recorded transaction."`
	Rm        rmCmd        `cmd:"" help:"Delete a recorded transaction."`
	List      listCmd      `cmd:"" help:"List transactions with running equity."`
	Inventory inventoryCmd `cmd:"" help:"Show items currently held."`
	Profit    profitCmd    `cmd:"" help:"Show realized profit per item."`
	Import    importCmd    `cmd:"" help:"Reconcile a CSV file against the ledger."`
	Export    exportCmd    `cmd:"" help:"Write the ledger or inventory to CSV."`
	Items     itemsCmd     `cmd:"" help:"Manage the item catalog."`
	Keygen    keygenCmd    `cmd:"" help:"Print a random secret suitable for --secret."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("ledjer"),
		kong.Description("Buy & sell ledger for in game items."),
	)
	err := ctx.Run(newApp(overrides(config.Load(), &cli.Globals), cli.Globals.Plain))
	ctx.FatalIfErrorf(err)
}

// overrides applies flags given on the command line over cfg.
func overrides(cfg *config.Config, g *globals) *config.Config {
	if g.Store != "" {
		cfg.Store = g.Store
	}
	if g.Secret != "" {
		cfg.Secret = g.Secret
	}
	if g.ItemsCSV != "" {
		cfg.ItemsCSV = g.ItemsCSV
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	return cfg
}
