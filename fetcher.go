package flowsheet

import "context"

// Fetcher retrieves the raw text of a published declaration file.
type Fetcher interface {
	// Fetch returns the full body at url.
	// Failures are reported with code EFETCH.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
