package slog

import (
	"context"
	"log/slog"

	"github.com/fwojciec/flowsheet"
)

// Ensure LoggingPageStore implements flowsheet.PageStore.
var _ flowsheet.PageStore = (*LoggingPageStore)(nil)

// LoggingPageStore wraps a PageStore with logging.
type LoggingPageStore struct {
	next   flowsheet.PageStore
	logger *slog.Logger
}

// NewLoggingPageStore creates a new LoggingPageStore.
func NewLoggingPageStore(next flowsheet.PageStore, logger *slog.Logger) *LoggingPageStore {
	return &LoggingPageStore{next: next, logger: logger}
}

// Save delegates to the wrapped store and logs the file written.
func (s *LoggingPageStore) Save(ctx context.Context, name string, content []byte) (err error) {
	defer func() {
		s.logger.Info("save page",
			"name", name,
			"bytes", len(content),
			"err", err,
		)
	}()
	return s.next.Save(ctx, name, content)
}

// Commit delegates to the wrapped store.
func (s *LoggingPageStore) Commit() (err error) {
	defer func() {
		s.logger.Info("commit pages", "err", err)
	}()
	return s.next.Commit()
}

// Abort delegates to the wrapped store.
func (s *LoggingPageStore) Abort() (err error) {
	defer func() {
		s.logger.Warn("abort pages", "err", err)
	}()
	return s.next.Abort()
}
