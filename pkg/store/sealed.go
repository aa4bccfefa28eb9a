package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/voidshard/ledjer/pkg/crypto"
)

// sealed encrypts blobs before handing them to the wrapped Store. The sealed
// form is written as a JSON string so any backend can hold it.
type sealed struct {
	inner Store
	keys  *crypto.Keys
}

// NewSealed wraps inner so that every blob is encrypted & signed with keys
// derived from secret.
func NewSealed(inner Store, secret string) (Store, error) {
	keys, err := crypto.DeriveKeys(secret)
	if err != nil {
		return nil, err
	}
	return &sealed{inner: inner, keys: keys}, nil
}

func (s *sealed) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.inner.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var blob string
	err = json.Unmarshal(raw, &blob)
	if err != nil {
		return nil, fmt.Errorf("blob %s is not sealed: %w", key, err)
	}

	plain, err := s.keys.Open([]byte(blob))
	if err != nil {
		return nil, fmt.Errorf("failed to open blob %s: %w", key, err)
	}
	return plain, nil
}

func (s *sealed) Close() error {
	if c, ok := s.inner.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (s *sealed) Set(ctx context.Context, key string, value []byte) error {
	blob, err := s.keys.Seal(value)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(string(blob))
	if err != nil {
		return err
	}
	return s.inner.Set(ctx, key, raw)
}
