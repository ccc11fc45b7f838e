package mock

import (
	"context"

	"github.com/fwojciec/flowsheet"
)

// Compile-time interface verification.
var (
	_ flowsheet.PageRenderer = (*PageRenderer)(nil)
	_ flowsheet.PageStore    = (*PageStore)(nil)
)

// PageRenderer is a mock implementation of flowsheet.PageRenderer.
type PageRenderer struct {
	RenderFn func(page *flowsheet.Page) (string, error)
}

func (r *PageRenderer) Render(page *flowsheet.Page) (string, error) {
	return r.RenderFn(page)
}

// PageStore is a mock implementation of flowsheet.PageStore.
type PageStore struct {
	SaveFn   func(ctx context.Context, name string, content []byte) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *PageStore) Save(ctx context.Context, name string, content []byte) error {
	return s.SaveFn(ctx, name, content)
}

func (s *PageStore) Commit() error {
	return s.CommitFn()
}

func (s *PageStore) Abort() error {
	return s.AbortFn()
}
