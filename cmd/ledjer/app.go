package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/voidshard/ledjer/pkg/config"
	"github.com/voidshard/ledjer/pkg/csvrows"
	"github.com/voidshard/ledjer/pkg/domain"
	"github.com/voidshard/ledjer/pkg/ledger"
	"github.com/voidshard/ledjer/pkg/store"
)

// app is handed to every command.
type app struct {
	cfg    *config.Config
	logger *log.Logger
	plain  bool
}

// session is an opened store with the book and catalog loaded from it.
type session struct {
	storage store.Store
	book    *ledger.Book
	catalog *ledger.Catalog
}

func newApp(cfg *config.Config, plain bool) *app {
	level, err := log.ParseLevel(cfg.LogLevel)
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "ledjer", Level: level})
	if err != nil {
		logger.SetLevel(log.InfoLevel)
		logger.Warn("invalid log level, using info", "level", cfg.LogLevel)
	}
	if cfg.EnvFile != "" {
		logger.Debug("read environment file", "path", cfg.EnvFile)
	}
	return &app{cfg: cfg, logger: logger, plain: plain}
}

func (a *app) open(ctx context.Context) (*session, error) {
	storage, err := store.Open(ctx, a.cfg.Store, a.cfg.Secret)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("opened store", "store", a.cfg.Store, "sealed", a.cfg.Secret != "")

	s := &session{
		storage: storage,
		book:    ledger.NewBook(storage, a.logger),
		catalog: ledger.NewCatalog(storage, a.logger),
	}

	err = s.book.Load(ctx)
	if err != nil {
		s.close()
		return nil, err
	}

	err = s.catalog.Load(ctx)
	if err != nil {
		s.close()
		return nil, err
	}
	a.loadItemsCSV(s.catalog)

	return s, nil
}

// loadItemsCSV merges the external item list under the local one. A missing
// file is not an error, the catalog only feeds unknown item warnings.
func (a *app) loadItemsCSV(catalog *ledger.Catalog) {
	for _, path := range []string{a.cfg.ItemsCSV, config.FallbackItemsCSV} {
		items, err := readItemsCSV(path)
		if errors.Is(err, os.ErrNotExist) {
			a.logger.Debug("no items csv", "path", path)
			continue
		} else if err != nil {
			a.logger.Warn("failed to read items csv", "path", path, "err", err)
			continue
		}
		catalog.Merge(items)
		a.logger.Debug("items loaded", "path", path, "count", len(catalog.Items()))
		return
	}
}

func readItemsCSV(path string) ([]domain.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csvrows.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ledger.ItemsFromRows(rows), nil
}

func (s *session) close() {
	if c, ok := s.storage.(io.Closer); ok {
		c.Close()
	}
}
