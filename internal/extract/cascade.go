package extract

import "errors"

// ErrNoMatch is the sentinel a strategy returns when it cannot locate its
// field on the page. It is a normal outcome, not a failure: the cascade just
// moves on to the next strategy.
var ErrNoMatch = errors.New("extract: no match")

// Strategy is one way of locating a field value on a page.
type Strategy struct {
	Source string
	Run    func(p *Page) (string, error)
}

// Cascade is an ordered list of strategies. Resolve tries each in turn and
// short-circuits on the first non-empty value, returning the value and the
// name of the strategy that produced it. Exhaustion yields ("", ""), never
// an error; empty fields are the caller's policy to apply.
type Cascade []Strategy

func (c Cascade) Resolve(p *Page) (value, source string) {
	for _, s := range c {
		v, err := s.Run(p)
		if err != nil || v == "" {
			continue
		}
		return v, s.Source
	}
	return "", ""
}
