// Package reconcile merges externally supplied transaction rows into a book.
//
// Every row is either a delete, an update or an add. Rows are applied one by
// one so a row sees what the rows before it did, and a bad row is counted and
// skipped rather than stopping the batch.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/voidshard/ledjer/pkg/domain"
)

var (
	errNoItem      = errors.New("row has no item name")
	errNoDeleteHit = errors.New("no transaction matches delete row")
)

// Book is the transaction store an import mutates.
type Book interface {
	Get(id domain.ID) (domain.Record, bool)
	Find(match func(domain.Record) bool) (domain.Record, bool)
	Append(r domain.Record) (domain.Record, error)
	Update(id domain.ID, r domain.Record) error
	Remove(id domain.ID) error
	Sync(ctx context.Context) error
}

// Catalog tells known item names apart. It is only used to report unknown
// items.
type Catalog interface {
	Contains(name string) bool
}

type Reconciler struct {
	book    Book
	catalog Catalog
	logger  *log.Logger

	// Now supplies the date used for rows without a readable one.
	Now func() time.Time
}

// New returns a Reconciler over book. catalog may be nil, in which case no
// unknown items are reported.
func New(book Book, catalog Catalog, logger *log.Logger) *Reconciler {
	if logger == nil {
		logger = log.Default()
	}
	return &Reconciler{book: book, catalog: catalog, logger: logger, Now: time.Now}
}

// row is an import row with every field normalized.
type row struct {
	id     domain.ID
	delete bool
	record domain.Record
}

func (r *Reconciler) normalize(in domain.ImportRow) (*row, error) {
	out := &row{}

	rawItem, _ := Lookup(in, FieldItem)
	item := strings.TrimSpace(rawItem)
	if item == "" {
		return nil, errNoItem
	}

	rawDate, _ := Lookup(in, FieldDate)
	rawTier, _ := Lookup(in, FieldTier)
	rawQty, _ := Lookup(in, FieldQuantity)
	rawNotes, _ := Lookup(in, FieldNotes)
	rawID, _ := Lookup(in, FieldID)
	rawDelete, _ := Lookup(in, FieldDelete)

	action, total := ResolveAction(in)

	out.id = domain.ID(strings.TrimSpace(rawID))
	out.delete = ParseFlag(rawDelete) || action == domain.Delete
	out.record = domain.Record{
		ID:       out.id,
		Date:     ParseDate(rawDate, r.Now()),
		Action:   action,
		Item:     item,
		Tier:     strings.ToLower(strings.TrimSpace(rawTier)),
		Quantity: ParseNumber(rawQty),
		Total:    total,
		Notes:    rawNotes,
	}
	return out, nil
}

// Import applies rows to the book in order and syncs the book once at the
// end. The report is always complete; the error is only ever a failure to
// persist, which does not undo the applied rows.
func (r *Reconciler) Import(ctx context.Context, rows []domain.ImportRow) (*Report, error) {
	report := &Report{UnknownItems: []string{}}

	for i, in := range rows {
		outcome, err := r.apply(in, report)
		if err != nil {
			report.Errors++
			r.logger.Debug("import row rejected", "row", i+1, "err", err)
			continue
		}
		r.logger.Debug("import row applied", "row", i+1, "outcome", outcome)
	}

	r.logger.Info(
		"import finished",
		"added", report.Added,
		"updated", report.Updated,
		"removed", report.Removed,
		"errors", report.Errors,
		"unknown", len(report.UnknownItems),
	)

	err := r.book.Sync(ctx)
	if err != nil {
		r.logger.Error("import applied but not saved", "err", err)
	}
	return report, err
}

// apply runs one row. Panics are turned into errors so that one row cannot
// take the batch down.
func (r *Reconciler) apply(in domain.ImportRow, report *Report) (outcome string, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("unexpected failure: %v", p)
		}
	}()

	parsed, err := r.normalize(in)
	if err != nil {
		return "", err
	}

	if r.catalog != nil && !r.catalog.Contains(parsed.record.Item) {
		report.unknown(parsed.record.Item)
	}

	if parsed.delete {
		err = r.remove(parsed)
		if err != nil {
			return "", err
		}
		report.Removed++
		return "removed", nil
	}

	if parsed.id != "" {
		if _, ok := r.book.Get(parsed.id); ok {
			err = r.book.Update(parsed.id, parsed.record)
			if err != nil {
				return "", err
			}
			report.Updated++
			return "updated by id", nil
		}
	}

	rec := parsed.record
	existing, ok := r.book.Find(func(e domain.Record) bool {
		return e.Date == rec.Date && e.Item == rec.Item && e.Total == rec.Total && e.Quantity == rec.Quantity
	})
	if ok {
		err = r.book.Update(existing.ID, rec)
		if err != nil {
			return "", err
		}
		report.Updated++
		return "updated by match", nil
	}

	_, err = r.book.Append(rec)
	if err != nil {
		return "", err
	}
	report.Added++
	return "added", nil
}

// remove deletes the row's target: the record with the row's id if it has
// one, otherwise the first record with the same date, item and total.
func (r *Reconciler) remove(parsed *row) error {
	target := parsed.id
	if target != "" {
		if _, ok := r.book.Get(target); !ok {
			return fmt.Errorf("%w: id %s", errNoDeleteHit, target)
		}
	} else {
		rec := parsed.record
		existing, ok := r.book.Find(func(e domain.Record) bool {
			return e.Date == rec.Date && e.Item == rec.Item && e.Total == rec.Total
		})
		if !ok {
			return fmt.Errorf("%w: %s %s %v", errNoDeleteHit, rec.Date, rec.Item, rec.Total)
		}
		target = existing.ID
	}
	return r.book.Remove(target)
}
