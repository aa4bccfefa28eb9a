package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/elastic/go-elasticsearch/v8"
)

const (
	esIndex = "ledjer"

	envEsAddr = "ELASTICSEARCH_SERVICE_HOST"
	envEsPort = "ELASTICSEARCH_SERVICE_PORT"
)

// ElasticsearchV8 stores each blob as a single document whose id is the blob
// key.
type ElasticsearchV8 struct {
	client *elasticsearch.Client
}

type esBlob struct {
	Key     string `json:"key"`
	Blob    string `json:"blob"`
	Updated string `json:"updated"`
}

type esGetReply struct {
	Found  bool   `json:"found"`
	Source esBlob `json:"_source"`
}

func NewElasticsearchV8(urls ...string) (*ElasticsearchV8, error) {
	if len(urls) == 0 || urls[0] == "" {
		address := os.Getenv(envEsAddr)
		port := os.Getenv(envEsPort)
		if port == "" {
			port = "9200" // default port
		}
		if address == "" {
			address = "localhost" // default address
		}
		urls = []string{fmt.Sprintf("http://%s:%s", address, port)}
	}

	retryBackoff := backoff.NewExponentialBackOff()

	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: urls,

		// Retry on 429 TooManyRequests statuses
		RetryOnStatus: []int{502, 503, 504, 429},

		RetryBackoff: func(i int) time.Duration {
			if i == 1 {
				retryBackoff.Reset()
			}
			return retryBackoff.NextBackOff()
		},

		MaxRetries: 5,
	})
	if err != nil {
		return nil, err
	}

	return &ElasticsearchV8{client: es}, nil
}

func (e *ElasticsearchV8) Get(ctx context.Context, key string) ([]byte, error) {
	res, err := e.client.Get(esIndex, key, e.client.Get.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if res.IsError() {
		return nil, fmt.Errorf("failed to get blob %s: %s", key, res.String())
	}

	reply := &esGetReply{}
	err = json.NewDecoder(res.Body).Decode(reply)
	if err != nil {
		return nil, err
	}
	if !reply.Found {
		return nil, ErrNotFound
	}

	return []byte(reply.Source.Blob), nil
}

func (e *ElasticsearchV8) Set(ctx context.Context, key string, value []byte) error {
	data, err := json.Marshal(&esBlob{
		Key:     key,
		Blob:    string(value),
		Updated: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	res, err := e.client.Index(
		esIndex,
		bytes.NewReader(data),
		e.client.Index.WithDocumentID(key),
		e.client.Index.WithRefresh("true"),
		e.client.Index.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("failed to index blob %s: %s", key, res.String())
	}
	return nil
}
