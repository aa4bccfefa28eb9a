package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidshard/ledjer/pkg/domain"
	"github.com/voidshard/ledjer/pkg/store"
)

func ids(records []domain.Record) []domain.ID {
	out := []domain.ID{}
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestBookAddInsertsAtFront(t *testing.T) {
	b := NewBook(store.NewMemory(), nil)

	_, err := b.Add(domain.Record{ID: "1", Item: "Gem"})
	require.Nil(t, err)
	_, err = b.Add(domain.Record{ID: "2", Item: "Sword"})
	require.Nil(t, err)
	_, err = b.Append(domain.Record{ID: "3", Item: "Axe"})
	require.Nil(t, err)

	assert.Equal(t, []domain.ID{"2", "1", "3"}, ids(b.List()))
}

func TestBookGeneratesIDs(t *testing.T) {
	b := NewBook(store.NewMemory(), nil)

	a, err := b.Add(domain.Record{Item: "Gem"})
	assert.Nil(t, err)
	c, err := b.Append(domain.Record{Item: "Gem"})
	assert.Nil(t, err)

	assert.NotEmpty(t, a.ID)
	assert.NotEmpty(t, c.ID)
	assert.NotEqual(t, a.ID, c.ID)
}

func TestBookRejectsDuplicateID(t *testing.T) {
	b := NewBook(store.NewMemory(), nil)
	_, err := b.Add(domain.Record{ID: "1"})
	require.Nil(t, err)

	_, err = b.Add(domain.Record{ID: "1"})
	assert.True(t, errors.Is(err, ErrDuplicateID))

	_, err = b.Append(domain.Record{ID: "1"})
	assert.True(t, errors.Is(err, ErrDuplicateID))
	assert.Equal(t, 1, b.Len())
}

func TestBookUpdate(t *testing.T) {
	b := NewBook(store.NewMemory(), nil)
	b.Append(domain.Record{ID: "1", Item: "Gem", Total: 10})
	b.Append(domain.Record{ID: "2", Item: "Sword", Total: 20})

	err := b.Update("2", domain.Record{ID: "ignored", Item: "Axe", Total: 30})
	assert.Nil(t, err)

	r, ok := b.Get("2")
	assert.True(t, ok)
	assert.Equal(t, domain.Record{ID: "2", Item: "Axe", Total: 30}, r)
	assert.Equal(t, []domain.ID{"1", "2"}, ids(b.List()))

	err = b.Update("9", domain.Record{})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestBookRemove(t *testing.T) {
	b := NewBook(store.NewMemory(), nil)
	b.Append(domain.Record{ID: "1"})
	b.Append(domain.Record{ID: "2"})
	b.Append(domain.Record{ID: "3"})

	assert.Nil(t, b.Remove("2"))
	assert.Equal(t, []domain.ID{"1", "3"}, ids(b.List()))

	assert.True(t, errors.Is(b.Remove("2"), ErrNotFound))
}

func TestBookFindFirstMatch(t *testing.T) {
	b := NewBook(store.NewMemory(), nil)
	b.Append(domain.Record{ID: "1", Item: "Gem"})
	b.Append(domain.Record{ID: "2", Item: "Gem"})

	r, ok := b.Find(func(r domain.Record) bool { return r.Item == "Gem" })
	assert.True(t, ok)
	assert.Equal(t, domain.ID("1"), r.ID)

	_, ok = b.Find(func(r domain.Record) bool { return r.Item == "Ghost" })
	assert.False(t, ok)
}

func TestBookListIsACopy(t *testing.T) {
	b := NewBook(store.NewMemory(), nil)
	b.Append(domain.Record{ID: "1", Item: "Gem"})

	list := b.List()
	list[0].Item = "Changed"

	r, _ := b.Get("1")
	assert.Equal(t, "Gem", r.Item)
}

func TestBookSyncAndLoad(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()

	b := NewBook(mem, nil)
	b.Add(domain.Record{ID: "1", Date: "2024-01-02", Action: domain.Buy, Item: "Gem", Tier: "rare", Quantity: 5, Total: 50})
	b.Add(domain.Record{ID: "2", Date: "2024-01-03", Action: domain.Sell, Item: "Gem", Tier: "rare", Quantity: 2, Total: 30})
	require.Nil(t, b.Sync(ctx))

	loaded := NewBook(mem, nil)
	require.Nil(t, loaded.Load(ctx))

	assert.Equal(t, b.List(), loaded.List())
}

func TestBookLoadAssignsMissingIDs(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	require.Nil(t, mem.Set(ctx, store.KeyTransactions, []byte(`[{"item":"Gem","action":"BUY"},{"id":7,"item":"Axe"}]`)))

	b := NewBook(mem, nil)
	require.Nil(t, b.Load(ctx))

	list := b.List()
	assert.NotEmpty(t, list[0].ID)
	assert.Equal(t, domain.ID("7"), list[1].ID)

	// the normalized snapshot was written back
	again := NewBook(mem, nil)
	require.Nil(t, again.Load(ctx))
	assert.Equal(t, list, again.List())
}

func TestBookLoadReassignsDuplicateIDs(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	require.Nil(t, mem.Set(ctx, store.KeyTransactions, []byte(`[{"id":5,"item":"Gem"},{"id":5,"item":"Axe"},{"id":"5","item":"Bow"}]`)))

	b := NewBook(mem, nil)
	require.Nil(t, b.Load(ctx))

	list := b.List()
	assert.Equal(t, domain.ID("5"), list[0].ID)
	seen := map[domain.ID]int{}
	for _, r := range list {
		seen[r.ID]++
	}
	assert.Len(t, seen, 3)

	// every record is reachable by its own id
	for _, r := range list {
		got, ok := b.Get(r.ID)
		assert.True(t, ok)
		assert.Equal(t, r.Item, got.Item)
	}

	again := NewBook(mem, nil)
	require.Nil(t, again.Load(ctx))
	assert.Equal(t, list, again.List())
}

func TestBookLoadEmptyStore(t *testing.T) {
	b := NewBook(store.NewMemory(), nil)
	assert.Nil(t, b.Load(context.Background()))
	assert.Equal(t, 0, b.Len())
}

func TestBookSyncFailureKeepsState(t *testing.T) {
	mem := store.NewMemory()
	mem.Fail = errors.New("disk on fire")

	b := NewBook(mem, nil)
	b.Add(domain.Record{ID: "1"})

	err := b.Sync(context.Background())
	assert.NotNil(t, err)
	assert.True(t, errors.Is(err, mem.Fail))
	assert.Equal(t, 1, b.Len())
}
