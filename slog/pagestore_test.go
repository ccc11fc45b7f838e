package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/flowsheet/mock"
	flowslog "github.com/fwojciec/flowsheet/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingPageStore_Save(t *testing.T) {
	t.Parallel()

	t.Run("logs name and size", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		var saved string
		inner := &mock.PageStore{
			SaveFn: func(ctx context.Context, name string, content []byte) error {
				saved = name
				return nil
			},
		}

		store := flowslog.NewLoggingPageStore(inner, logger)
		err := store.Save(context.Background(), "v0.83.0.html", []byte("<html>"))

		require.NoError(t, err)
		assert.Equal(t, "v0.83.0.html", saved)
		output := buf.String()
		assert.Contains(t, output, "save page")
		assert.Contains(t, output, "name=v0.83.0.html")
		assert.Contains(t, output, "bytes=6")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PageStore{
			SaveFn: func(ctx context.Context, name string, content []byte) error {
				return errors.New("disk full")
			},
		}

		store := flowslog.NewLoggingPageStore(inner, logger)
		err := store.Save(context.Background(), "index.html", nil)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"disk full\"")
	})
}

func TestLoggingPageStore_CommitAndAbort(t *testing.T) {
	t.Parallel()

	t.Run("delegates commit", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		committed := false
		inner := &mock.PageStore{
			CommitFn: func() error {
				committed = true
				return nil
			},
		}

		err := flowslog.NewLoggingPageStore(inner, logger).Commit()

		require.NoError(t, err)
		assert.True(t, committed)
		assert.Contains(t, buf.String(), "commit pages")
	})

	t.Run("delegates abort", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		aborted := false
		inner := &mock.PageStore{
			AbortFn: func() error {
				aborted = true
				return nil
			},
		}

		err := flowslog.NewLoggingPageStore(inner, logger).Abort()

		require.NoError(t, err)
		assert.True(t, aborted)
		assert.Contains(t, buf.String(), "level=WARN")
	})
}
