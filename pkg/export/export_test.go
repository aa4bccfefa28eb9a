package export

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidshard/ledjer/pkg/aggregate"
	"github.com/voidshard/ledjer/pkg/domain"
	"github.com/voidshard/ledjer/pkg/ledger"
	"github.com/voidshard/ledjer/pkg/reconcile"
	"github.com/voidshard/ledjer/pkg/store"
)

func TestInventoryCSV(t *testing.T) {
	positions := aggregate.Inventory([]domain.Record{
		{Action: domain.Buy, Item: "Gem", Tier: "rare", Quantity: 5, Total: 50},
		{Action: domain.Sell, Item: "Gem", Tier: "rare", Quantity: 2, Total: 30},
		{Action: domain.Buy, Item: `The "Big" Axe`, Tier: "", Quantity: 1, Total: 7.5},
	})

	buf := &bytes.Buffer{}
	err := Inventory(buf, positions)

	assert.Nil(t, err)
	assert.Equal(t,
		"\ufeff"+
			`"Item","Tier","Qty","TotalValue","AvgPrice"`+"\r\n"+
			`"Gem","rare","3","20","6.666666666666667"`+"\r\n"+
			`"The ""Big"" Axe","","1","7.5","7.5"`,
		buf.String(),
	)
}

func TestInventoryCSVEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	err := Inventory(buf, nil)

	assert.Nil(t, err)
	assert.Equal(t, "\ufeff"+`"Item","Tier","Qty","TotalValue","AvgPrice"`, buf.String())
}

func TestLedgerCSV(t *testing.T) {
	// newest first, as the book stores them
	records := []domain.Record{
		{Date: "2024-01-03", Action: domain.Sell, Item: "Gem", Tier: "rare", Quantity: 2, Total: 1230.5, Notes: `say "hi"`},
		{Date: "2024-01-02", Action: domain.Buy, Item: "Gem", Tier: "rare", Quantity: 5, Total: 50},
		{Date: "not a date", Action: domain.Buy, Item: "Axe", Quantity: 1, Total: 2000},
	}

	buf := &bytes.Buffer{}
	err := Ledger(buf, records)

	assert.Nil(t, err)
	assert.Equal(t,
		"\ufeff"+
			`"HARI/TANGGAL","ITEMS","TIER","QUANTITY","BUY / OUTFLOW","SELL / INFLOW","EQUITY","CATATAN"`+"\r\n"+
			`"not a date","Axe","","1","2,000","","-2,000",""`+"\r\n"+
			`"Tuesday, January 2, 2024","Gem","rare","5","50","","-2,050",""`+"\r\n"+
			`"Wednesday, January 3, 2024","Gem","rare","2","","1,230.50","-819.50","say ""hi"""`,
		buf.String(),
	)
}

func TestLedgerCSVAfterImport(t *testing.T) {
	book := ledger.NewBook(store.NewMemory(), nil)

	_, err := reconcile.New(book, nil, nil).Import(context.Background(), []domain.ImportRow{
		domain.Row("date", "2024-01-01", "action", "BUY", "item", "Gem", "qty", "5", "total", "50"),
		domain.Row("date", "2024-01-02", "action", "SELL", "item", "Gem", "qty", "2", "total", "30"),
	})
	require.Nil(t, err)

	buf := &bytes.Buffer{}
	err = Ledger(buf, book.List())

	assert.Nil(t, err)
	assert.Equal(t,
		"\ufeff"+
			`"HARI/TANGGAL","ITEMS","TIER","QUANTITY","BUY / OUTFLOW","SELL / INFLOW","EQUITY","CATATAN"`+"\r\n"+
			`"Monday, January 1, 2024","Gem","","5","50","","-50",""`+"\r\n"+
			`"Tuesday, January 2, 2024","Gem","","2","","30","-20",""`,
		buf.String(),
	)
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "0", Number(0))
	assert.Equal(t, "2.5", Number(2.5))
	assert.Equal(t, "-3", Number(-3))

	assert.Equal(t, "1,234", Grouped(1234))
	assert.Equal(t, "1,234.50", Grouped(1234.5))
	assert.Equal(t, "-1,234,567", Grouped(-1234567))
	assert.Equal(t, "6.67", Grouped(20.0/3))
	assert.Equal(t, "0", Grouped(0))

	assert.Equal(t, "1,000 Gold Coins", Currency(1000))

	assert.Equal(t, "Tuesday, January 2, 2024", LongDate("2024-01-02"))
	assert.Equal(t, "soon", LongDate("soon"))
	assert.Equal(t, "", LongDate(""))
}
