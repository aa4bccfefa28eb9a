package store

import (
	"context"
	"errors"
)

// Blob keys written by ledjer.
const (
	KeyTransactions = "transactions_v1"
	KeyItems        = "items_db_v1"
)

// ErrNotFound is returned by Get when no blob has been written under a key.
var ErrNotFound = errors.New("blob not found")

// Store holds named blobs. Writes are full overwrites, there are no
// transactions across keys.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
