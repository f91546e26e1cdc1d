// Package irmng builds the optional homonym sub-index from the IRMNG
// Darwin Core Archive. It reuses the same storage abstraction as the
// search index but contributes no novel algorithm (spec.md §1): every
// row is canonicalized and written flat, with no hierarchy walk, into
// <target>/irmng so name lookups can be checked for homonymy across
// kingdoms.
package irmng

import (
	"context"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gnindexer/pkg/canon"
	"github.com/gnames/gnindexer/pkg/index"
	"github.com/gnames/gnindexer/pkg/taxon"
)

// ConceptSource is the lazy sequence Build consumes. It is satisfied
// by *dwca.ConceptReader opened against the IRMNG archive directory.
type ConceptSource interface {
	Next() (taxon.Concept, bool, error)
}

// OpenWriterFunc abstracts the function that opens an index.Writer
// (sqliteindex.OpenWriter) so the backend is injected by the caller.
type OpenWriterFunc func(ctx context.Context, dir string, fields []index.FieldSpec) (index.Writer, error)

func fieldSpecs() []index.FieldSpec {
	return []index.FieldSpec{
		{Name: taxon.FieldID, Indexed: true, Analyzer: index.Keyword},
		{Name: taxon.FieldLSID, Indexed: true, Analyzer: index.Keyword},
		{Name: taxon.FieldName, Indexed: true, Analyzer: index.LowerKeyword},
		{Name: taxon.FieldAuthor, Indexed: false},
		{Name: taxon.FieldRank, Indexed: false},
	}
}

// Build consumes src to exhaustion, canonicalizing each row's name and
// writing one flat document per row into dir. Returns the number of
// documents written.
func Build(ctx context.Context, openWriter OpenWriterFunc, dir string, src ConceptSource, canonicalizer canon.Canonicalizer, log *slog.Logger) (int, error) {
	w, err := openWriter(ctx, dir, fieldSpecs())
	if err != nil {
		return 0, err
	}

	written := 0
	for {
		c, ok, nextErr := src.Next()
		if nextErr != nil {
			w.Close()
			return written, nextErr
		}
		if !ok {
			break
		}

		doc := index.Document{Fields: []index.Field{
			{Name: taxon.FieldID, Value: c.ID},
			{Name: taxon.FieldLSID, Value: c.EffectiveLSID()},
			{Name: taxon.FieldName, Value: canonicalizer.Canonical(c.ScientificName)},
			{Name: taxon.FieldAuthor, Value: c.Authorship},
			{Name: taxon.FieldRank, Value: c.RankString},
		}}
		if addErr := w.Add(ctx, doc); addErr != nil {
			w.Close()
			return written, addErr
		}
		written++
	}

	if log != nil {
		log.Info("Built IRMNG homonym sub-index", "written", humanize.Comma(int64(written)))
	}

	if err := w.Commit(ctx); err != nil {
		w.Close()
		return written, err
	}
	if err := w.ForceMerge(ctx); err != nil {
		w.Close()
		return written, err
	}
	return written, w.Close()
}
