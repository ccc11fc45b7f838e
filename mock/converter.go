package mock

import "github.com/fwojciec/flowsheet"

var _ flowsheet.Converter = (*Converter)(nil)

// Converter is a mock implementation of flowsheet.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
