// Package hierarchy implements the depth-first walk that is the
// algorithmic heart of the indexer (spec.md §4.4): given a committed
// loading index, it assigns nested-set left/right intervals to every
// accepted concept reachable from a root and accumulates each
// concept's higher classification on the way down, emitting one
// enriched record per accepted concept.
//
// The recursive shape mirrors gnames-gndb's own hierarchy builder
// (internal/io/populate/hierarchy.go getBreadcrumbs/breadcrumbsNodes),
// adapted from a parent-chain walk over an in-memory map to a
// parent-to-children walk over term queries against the loading
// index.
package hierarchy

import (
	"context"
	"log/slog"

	"github.com/gnames/gnindexer/pkg/canon"
	"github.com/gnames/gnindexer/pkg/index"
	"github.com/gnames/gnindexer/pkg/taxon"
)

// Emitter receives one EmittedConcept per accepted concept reachable
// from a root. internal/io/searchindex.Writer satisfies this.
type Emitter interface {
	EmitAccepted(ctx context.Context, c taxon.EmittedConcept) error
}

// Walker performs the depth-first nested-set walk described above.
type Walker struct {
	reader index.Reader
	canon  canon.Canonicalizer
	log    *slog.Logger

	// childLimit bounds a single parent_id term query. The source
	// used a flat 25,000-row cap and recommended reimplementations
	// paginate defensively; gnindexer's sqlite-backed reader has no
	// comparable row limit, so 0 (unlimited) is used and pagination is
	// unnecessary (documented as an open-question decision).
	childLimit int
}

// New builds a Walker over a committed loading index reader.
func New(reader index.Reader, canonicalizer canon.Canonicalizer, log *slog.Logger) *Walker {
	return &Walker{reader: reader, canon: canonicalizer, log: log}
}

// Walk finds every root document (root=T), then depth-first visits
// each root's subtree, calling emit.EmitAccepted once per accepted
// concept with its final left/right interval and classification.
func (w *Walker) Walk(ctx context.Context, emit Emitter) error {
	roots, err := w.reader.TermQuery(ctx, taxon.FieldRoot, taxon.RootTrue, 0)
	if err != nil {
		return err
	}

	next := 1
	for _, root := range roots {
		next, err = w.visit(ctx, root, next, taxon.Classification{}, emit)
		if err != nil {
			return err
		}
	}

	if w.log != nil {
		w.log.Info("Hierarchy walk complete", "roots", len(roots))
	}
	return nil
}

// visit implements the recursive step in spec.md §4.4 step 4: left is
// doc's own left bound, and visit returns the next unused interval
// value (doc's right bound plus one), so a caller walking doc's
// siblings can pass it straight through as the next sibling's left.
func (w *Walker) visit(ctx context.Context, doc index.Document, left int, parent taxon.Classification, emit Emitter) (int, error) {
	name := doc.Get(taxon.FieldName)
	canonicalName := w.canon.Canonical(name)
	rankID := parseRankID(doc.Get(taxon.FieldRankID))

	childClassification := parent
	if rankID.IsClassificationSlot() {
		childClassification = childClassification.WithSlot(rankID, canonicalName, doc.Get(taxon.FieldLSID))
	}

	children, err := w.lookupChildren(ctx, doc)
	if err != nil {
		return 0, err
	}

	next := left + 1
	for _, child := range children {
		next, err = w.visit(ctx, child, next, childClassification, emit)
		if err != nil {
			return 0, err
		}
	}
	right := next

	err = emit.EmitAccepted(ctx, taxon.EmittedConcept{
		ID:             doc.Get(taxon.FieldID),
		LSID:           doc.Get(taxon.FieldLSID),
		CanonicalName:  canonicalName,
		Author:         doc.Get(taxon.FieldAuthor),
		RankString:     doc.Get(taxon.FieldRank),
		RankID:         rankID,
		Left:           left,
		Right:          right,
		Classification: childClassification,
	})
	if err != nil {
		return 0, err
	}

	return right + 1, nil
}

// lookupChildren finds doc's direct children by parent_id=doc.id,
// falling back to parent_id=doc.lsid when the first query finds
// nothing (spec.md §4.4 step 4, LSID-linked-children fallback).
func (w *Walker) lookupChildren(ctx context.Context, doc index.Document) ([]index.Document, error) {
	id := doc.Get(taxon.FieldID)
	lsid := doc.Get(taxon.FieldLSID)

	children, err := w.reader.TermQuery(ctx, taxon.FieldParentID, id, w.childLimit)
	if err != nil {
		return nil, err
	}
	if len(children) == 0 && lsid != "" && lsid != id {
		children, err = w.reader.TermQuery(ctx, taxon.FieldParentID, lsid, w.childLimit)
		if err != nil {
			return nil, err
		}
	}
	return children, nil
}

func parseRankID(s string) taxon.RankID {
	var n int
	for _, r := range s {
		if r < '0' || r > '9' {
			return taxon.Unranked
		}
		n = n*10 + int(r-'0')
	}
	return taxon.RankID(n)
}
