package store

import (
	"context"
	"errors"
	"strings"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-redis/redis/v8"
)

const (
	redisPrefix  = "ledjer:"
	redisRetries = 5
)

// Redis keeps each blob under its own key, prefixed with "ledjer:".
type Redis struct {
	client *redis.Client
}

// NewRedis connects to either a redis:// url or a plain host:port.
func NewRedis(ctx context.Context, address string) (*Redis, error) {
	opts := &redis.Options{Addr: address}
	if strings.Contains(address, "://") {
		var err error
		opts, err = redis.ParseURL(address)
		if err != nil {
			return nil, err
		}
	}

	r := &Redis{client: redis.NewClient(opts)}

	err := r.retry(ctx, func() error {
		return r.client.Ping(ctx).Err()
	})
	if err != nil {
		r.client.Close()
		return nil, err
	}
	return r, nil
}

func (r *Redis) retry(ctx context.Context, op func() error) error {
	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), redisRetries), ctx)
	return backoff.Retry(op, b)
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.retry(ctx, func() error {
		var err error
		value, err = r.client.Get(ctx, redisPrefix+key).Bytes()
		if errors.Is(err, redis.Nil) {
			return backoff.Permanent(ErrNotFound)
		}
		return err
	})

	var perm *backoff.PermanentError
	if errors.As(err, &perm) {
		err = perm.Err
	}
	return value, err
}

func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	return r.retry(ctx, func() error {
		return r.client.Set(ctx, redisPrefix+key, value, 0).Err()
	})
}

func (r *Redis) Close() error {
	return r.client.Close()
}
