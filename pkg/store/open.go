package store

import (
	"context"
	"fmt"
	"strings"
)

const usage = "expected one of [jsonfile:/path/file.json sqlite:/path/file.db redis:localhost:6379 es8:http://elasticsearch:9200 memory:]"

// Open returns the Store described by uri, "<scheme>:<location>". If secret
// is not empty the store is sealed with it.
func Open(ctx context.Context, uri, secret string) (Store, error) {
	bits := strings.SplitN(uri, ":", 2)
	if len(bits) != 2 {
		return nil, fmt.Errorf("invalid store %q, %s", uri, usage)
	}

	var (
		s   Store
		err error
	)
	switch bits[0] {
	case "jsonfile":
		if bits[1] == "" {
			return nil, fmt.Errorf("jsonfile store needs a path")
		}
		s = NewJSONFile(bits[1])
	case "sqlite":
		if bits[1] == "" {
			return nil, fmt.Errorf("sqlite store needs a path")
		}
		s, err = NewSQLite(bits[1])
	case "redis":
		s, err = NewRedis(ctx, bits[1])
	case "es8":
		s, err = NewElasticsearchV8(bits[1])
	case "memory":
		s = NewMemory()
	default:
		return nil, fmt.Errorf("unknown store scheme %q, %s", bits[0], usage)
	}
	if err != nil {
		return nil, err
	}

	if secret == "" {
		return s, nil
	}
	return NewSealed(s, secret)
}
