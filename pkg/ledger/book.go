package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/voidshard/ledjer/pkg/domain"
	"github.com/voidshard/ledjer/pkg/store"
)

var (
	ErrNotFound    = errors.New("transaction not found")
	ErrDuplicateID = errors.New("transaction id already in use")
)

// Book owns the ordered list of transaction records. It is not safe for
// concurrent use.
type Book struct {
	records []domain.Record
	storage store.Store
	logger  *log.Logger
}

// NewBook returns an empty book that syncs to storage.
func NewBook(storage store.Store, logger *log.Logger) *Book {
	if logger == nil {
		logger = log.Default()
	}
	return &Book{storage: storage, logger: logger}
}

// Load replaces the book content with the persisted snapshot. Records missing
// an id, or repeating the id of an earlier record, are given a new one and the
// snapshot is written back.
func (b *Book) Load(ctx context.Context) error {
	blob, err := b.storage.Get(ctx, store.KeyTransactions)
	if errors.Is(err, store.ErrNotFound) {
		b.records = nil
		return nil
	} else if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}

	records := []domain.Record{}
	err = json.Unmarshal(blob, &records)
	if err != nil {
		return fmt.Errorf("failed to decode transactions: %w", err)
	}
	b.records = records

	changed := 0
	seen := map[domain.ID]bool{}
	for i := range b.records {
		if b.records[i].ID == "" || seen[b.records[i].ID] {
			b.records[i].ID = b.newID()
			changed++
		}
		seen[b.records[i].ID] = true
	}
	b.logger.Debug("loaded transactions", "count", len(b.records))

	if changed > 0 {
		b.logger.Info("assigned missing transaction ids", "count", changed)
		return b.Sync(ctx)
	}
	return nil
}

// Sync writes the whole book to storage. A failure leaves the in memory
// records as they are.
func (b *Book) Sync(ctx context.Context) error {
	data, err := json.Marshal(b.snapshot())
	if err != nil {
		return err
	}

	err = b.storage.Set(ctx, store.KeyTransactions, data)
	if err != nil {
		return fmt.Errorf("failed to save transactions: %w", err)
	}
	return nil
}

func (b *Book) snapshot() []domain.Record {
	out := make([]domain.Record, len(b.records))
	copy(out, b.records)
	return out
}

// List returns a copy of the records in storage order.
func (b *Book) List() []domain.Record {
	return b.snapshot()
}

func (b *Book) Len() int {
	return len(b.records)
}

func (b *Book) index(id domain.ID) int {
	for i := range b.records {
		if b.records[i].ID == id {
			return i
		}
	}
	return -1
}

// Get returns the record with the given id.
func (b *Book) Get(id domain.ID) (domain.Record, bool) {
	i := b.index(id)
	if i < 0 {
		return domain.Record{}, false
	}
	return b.records[i], true
}

// Find returns the first record, in storage order, that match accepts.
func (b *Book) Find(match func(domain.Record) bool) (domain.Record, bool) {
	for _, r := range b.records {
		if match(r) {
			return r, true
		}
	}
	return domain.Record{}, false
}

func (b *Book) newID() domain.ID {
	for {
		id := domain.ID(uuid.New().String())
		if b.index(id) < 0 {
			return id
		}
	}
}

func (b *Book) prepare(r domain.Record) (domain.Record, error) {
	if r.ID == "" {
		r.ID = b.newID()
	} else if b.index(r.ID) >= 0 {
		return r, fmt.Errorf("%w: %s", ErrDuplicateID, r.ID)
	}
	return r, nil
}

// Add inserts a manually entered record at the front of the book and returns
// it with its id set.
func (b *Book) Add(r domain.Record) (domain.Record, error) {
	r, err := b.prepare(r)
	if err != nil {
		return r, err
	}
	b.records = append([]domain.Record{r}, b.records...)
	return r, nil
}

// Append adds an imported record at the end of the book and returns it with
// its id set.
func (b *Book) Append(r domain.Record) (domain.Record, error) {
	r, err := b.prepare(r)
	if err != nil {
		return r, err
	}
	b.records = append(b.records, r)
	return r, nil
}

// Update replaces every field of the record with the given id, in place. The
// id itself never changes.
func (b *Book) Update(id domain.ID, r domain.Record) error {
	i := b.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	r.ID = id
	b.records[i] = r
	return nil
}

func (b *Book) Remove(id domain.ID) error {
	i := b.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	b.records = append(b.records[:i], b.records[i+1:]...)
	return nil
}
