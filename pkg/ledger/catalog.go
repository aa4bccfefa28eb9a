package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/voidshard/ledjer/pkg/domain"
	"github.com/voidshard/ledjer/pkg/store"
)

// DefaultSuggestions caps the result of Suggest when no limit is given.
const DefaultSuggestions = 12

// Catalog is the list of known items. Entries come from an external source
// (an items csv) and from local additions, local ones win on a name clash.
type Catalog struct {
	items   []domain.Item
	storage store.Store
	logger  *log.Logger
}

func NewCatalog(storage store.Store, logger *log.Logger) *Catalog {
	if logger == nil {
		logger = log.Default()
	}
	return &Catalog{storage: storage, logger: logger}
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Load reads the locally saved entries.
func (c *Catalog) Load(ctx context.Context) error {
	blob, err := c.storage.Get(ctx, store.KeyItems)
	if errors.Is(err, store.ErrNotFound) {
		c.items = nil
		return nil
	} else if err != nil {
		return fmt.Errorf("failed to load items: %w", err)
	}

	items := []domain.Item{}
	err = json.Unmarshal(blob, &items)
	if err != nil {
		return fmt.Errorf("failed to decode items: %w", err)
	}
	c.items = items
	return nil
}

func (c *Catalog) Sync(ctx context.Context) error {
	data, err := json.Marshal(c.items)
	if err != nil {
		return err
	}
	err = c.storage.Set(ctx, store.KeyItems, data)
	if err != nil {
		return fmt.Errorf("failed to save items: %w", err)
	}
	return nil
}

// Merge folds external entries under the current ones. External entries are
// applied first and current entries second, so on a name clash the current
// entry survives. The merged result is not persisted.
func (c *Catalog) Merge(external []domain.Item) {
	order := []string{}
	merged := map[string]domain.Item{}

	apply := func(items []domain.Item) {
		for _, it := range items {
			if it.Name == "" {
				continue
			}
			k := nameKey(it.Name)
			if _, ok := merged[k]; !ok {
				order = append(order, k)
			}
			merged[k] = it
		}
	}
	apply(external)
	apply(c.items)

	c.items = make([]domain.Item, 0, len(order))
	for _, k := range order {
		c.items = append(c.items, merged[k])
	}
	c.logger.Debug("merged item catalog", "external", len(external), "total", len(c.items))
}

// Items returns a copy of the catalog.
func (c *Catalog) Items() []domain.Item {
	out := make([]domain.Item, len(c.items))
	copy(out, c.items)
	return out
}

// Find looks an item up by name, ignoring case and surrounding space.
func (c *Catalog) Find(name string) (domain.Item, bool) {
	k := nameKey(name)
	if k == "" {
		return domain.Item{}, false
	}
	for _, it := range c.items {
		if nameKey(it.Name) == k {
			return it, true
		}
	}
	return domain.Item{}, false
}

func (c *Catalog) Contains(name string) bool {
	_, ok := c.Find(name)
	return ok
}

// Add saves a new local entry, unless the name is already known. The entry
// in the catalog is returned either way.
func (c *Catalog) Add(ctx context.Context, name, tier string) (domain.Item, error) {
	if existing, ok := c.Find(name); ok {
		return existing, nil
	}

	it := domain.NewItem(name, tier)
	if it.Name == "" {
		return it, fmt.Errorf("item name is empty")
	}
	c.items = append(c.items, it)
	c.logger.Info("item saved locally", "name", it.Name, "tier", it.Tier)

	return it, c.Sync(ctx)
}

// Suggest returns up to limit items whose name contains query, ignoring case.
func (c *Catalog) Suggest(query string, limit int) []domain.Item {
	if query == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultSuggestions
	}

	q := strings.ToLower(query)
	found := []domain.Item{}
	for _, it := range c.items {
		if strings.Contains(strings.ToLower(it.Name), q) {
			found = append(found, it)
			if len(found) == limit {
				break
			}
		}
	}
	return found
}

// ItemsFromRows reads catalog entries from parsed "name,tier" rows. Rows
// without a name are dropped.
func ItemsFromRows(rows []domain.ImportRow) []domain.Item {
	items := []domain.Item{}
	for _, row := range rows {
		var name, tier string
		for _, f := range row {
			switch strings.ToLower(strings.TrimSpace(f.Header)) {
			case "name":
				name = f.Value
			case "tier":
				tier = f.Value
			}
		}
		it := domain.NewItem(name, tier)
		if it.Name != "" {
			items = append(items, it)
		}
	}
	return items
}
