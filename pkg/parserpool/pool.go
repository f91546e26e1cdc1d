// Package parserpool provides a pool of gnparser instances for concurrent name parsing.
// This is a pure package - parsing is computation, not I/O.
package parserpool

import (
	"runtime"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
	"github.com/gnames/gnparser/ent/parsed"
)

// Pool provides a pool of gnparser instances for concurrent parsing.
// gnindexer canonicalizes every name against the botanical code (Code
// of Nomenclature for Algae, Fungi, and Plants covers the broadest
// name shapes in a DwCA of biological names), so the pool holds only
// botanical parsers.
type Pool interface {
	// Parse parses a scientific name string. It retrieves a parser from
	// the pool, parses the name, and returns the parser to the pool.
	// This method is safe for concurrent use.
	Parse(nameString string) (parsed.Parsed, error)

	// Close shuts down the parser pool and releases resources.
	// After calling Close, the pool should not be used.
	Close()
}

// PoolImpl implements the Pool interface using gnparser.NewPool.
type PoolImpl struct {
	ch       chan gnparser.GNparser
	poolSize int
}

// NewPool creates a new parser pool with the specified number of
// workers. If jobsNum is 0, it defaults to runtime.NumCPU().
func NewPool(jobsNum int) Pool {
	poolSize := jobsNum
	if poolSize == 0 {
		poolSize = runtime.NumCPU()
	}

	cfg := gnparser.NewConfig(
		gnparser.OptCode(nomcode.Botanical),
		gnparser.OptWithDetails(true),
	)
	ch := gnparser.NewPool(cfg, poolSize)

	return &PoolImpl{ch: ch, poolSize: poolSize}
}

// Parse parses a scientific name string. It retrieves a parser,
// parses the name, returns the parser to the pool, and returns the
// parsed result.
func (p *PoolImpl) Parse(nameString string) (parsed.Parsed, error) {
	parser := <-p.ch
	result := parser.ParseName(nameString)
	p.ch <- parser
	return result, nil
}

// Close shuts down the parser pool and releases resources. It closes
// the channel and drains any remaining parsers.
func (p *PoolImpl) Close() {
	if p.ch == nil {
		return
	}
	close(p.ch)
	for range p.ch {
	}
}
