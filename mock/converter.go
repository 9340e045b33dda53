package mock

import "github.com/fwojciec/blogcrawl"

var _ blogcrawl.Converter = (*Converter)(nil)

// Converter is a mock implementation of blogcrawl.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
