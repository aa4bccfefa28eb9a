package reconcile

import (
	"fmt"
	"strings"
)

// SampleSize caps the unknown item names quoted by Report.Sample.
const SampleSize = 4

// Report counts what an import did.
type Report struct {
	Added   int
	Updated int
	Removed int
	Errors  int

	// UnknownItems are names missing from the catalog, first seen spelling,
	// deduplicated ignoring case.
	UnknownItems []string

	seen map[string]bool
}

func (r *Report) unknown(name string) {
	if r.seen == nil {
		r.seen = map[string]bool{}
	}
	k := strings.ToLower(name)
	if r.seen[k] {
		return
	}
	r.seen[k] = true
	r.UnknownItems = append(r.UnknownItems, name)
}

// Sample lists at most SampleSize unknown item names.
func (r *Report) Sample() string {
	names := r.UnknownItems
	if len(names) > SampleSize {
		names = names[:SampleSize]
	}
	return strings.Join(names, ", ")
}

func (r *Report) String() string {
	s := fmt.Sprintf("+%d new, ~%d updated, -%d removed, !%d errors", r.Added, r.Updated, r.Removed, r.Errors)
	if n := len(r.UnknownItems); n > 0 {
		s += fmt.Sprintf(" • %d unknown items: %s", n, r.Sample())
	}
	return s
}
