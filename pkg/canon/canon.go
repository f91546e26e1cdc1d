// Package canon wraps pkg/parserpool behind the single operation the
// hierarchy walker and search-index writer need: canonical(name) ->
// string. This is a pure package - parsing is computation, not I/O.
package canon

import (
	"github.com/gnames/gnindexer/pkg/parserpool"
)

// Canonicalizer returns the canonical form of a scientific name
// string, or the input unchanged if the underlying parser does not
// recognize it as a scientific name. Canonicalization is idempotent:
// Canonical(Canonical(x)) == Canonical(x).
type Canonicalizer interface {
	Canonical(name string) string
	Close()
}

// pool wraps a parserpool.Pool, mirroring the way the hierarchy
// walker's worker pool in gnames-gndb drives gnparser.
type pool struct {
	p parserpool.Pool
}

// New builds a Canonicalizer backed by a parserpool.Pool of jobsNum
// botanical parsers. jobsNum of 0 defaults to runtime.NumCPU().
func New(jobsNum int) Canonicalizer {
	return &pool{p: parserpool.NewPool(jobsNum)}
}

// Close releases the underlying parser pool. Safe to call once after
// all Canonical calls have returned.
func (c *pool) Close() {
	c.p.Close()
}

// Canonical parses name and returns parsed.Canonical.Simple when the
// parser judges the input parsable; otherwise it returns name
// unchanged. Any parser error is swallowed - a name that fails to
// parse is not a fatal condition, it simply carries no canonical
// form (spec.md §4.2).
func (c *pool) Canonical(name string) string {
	if name == "" {
		return name
	}

	parsed, err := c.p.Parse(name)
	if err != nil || !parsed.Parsed {
		return name
	}
	if parsed.Canonical == nil || parsed.Canonical.Simple == "" {
		return name
	}
	return parsed.Canonical.Simple
}
