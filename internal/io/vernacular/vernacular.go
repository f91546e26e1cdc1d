// Package vernacular implements the common-name join (C6): for each
// vernacular row whose lsid (falling back to taxon_id) is present in
// the loading index, a document is emitted into a separate
// case-sensitive keyword-analyzer sub-index under the target
// directory (spec.md §4.6).
package vernacular

import (
	"context"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gnindexer/pkg/index"
	"github.com/gnames/gnindexer/pkg/taxon"
)

// Source is the lazy sequence Build consumes. It is satisfied by
// *dwca.VernacularReader.
type Source interface {
	Next() (taxon.VernacularRow, bool, error)
}

// OpenWriterFunc abstracts the function that opens an index.Writer
// (sqliteindex.OpenWriter) so the backend is injected by the caller.
type OpenWriterFunc func(ctx context.Context, dir string, fields []index.FieldSpec) (index.Writer, error)

func fieldSpecs() []index.FieldSpec {
	return []index.FieldSpec{
		{Name: taxon.FieldVernacularLSID, Indexed: true, Analyzer: index.Keyword},
		{Name: taxon.FieldScientificName, Indexed: false},
		{Name: taxon.FieldVernacularName, Indexed: true, Analyzer: index.Keyword},
	}
}

// Build consumes src to exhaustion, looking up each row's lsid (or
// taxon_id when lsid is blank) in loadReader. Matching rows are
// written into dir; rows with no match are counted and discarded.
// Returns the number of documents written and the number discarded.
func Build(ctx context.Context, openWriter OpenWriterFunc, dir string, src Source, loadReader index.Reader, log *slog.Logger) (written, discarded int, err error) {
	w, err := openWriter(ctx, dir, fieldSpecs())
	if err != nil {
		return 0, 0, err
	}

	for {
		row, ok, nextErr := src.Next()
		if nextErr != nil {
			w.Close()
			return written, discarded, nextErr
		}
		if !ok {
			break
		}

		lsid := row.LookupLSID()
		matched, lookupErr := loadReader.TermQuery(ctx, taxon.FieldLSID, lsid, 1)
		if lookupErr != nil {
			w.Close()
			return written, discarded, lookupErr
		}
		if len(matched) == 0 {
			discarded++
			continue
		}

		addErr := w.Add(ctx, index.Document{Fields: []index.Field{
			{Name: taxon.FieldVernacularLSID, Value: lsid},
			{Name: taxon.FieldScientificName, Value: row.ScientificName},
			{Name: taxon.FieldVernacularName, Value: row.VernacularName},
		}})
		if addErr != nil {
			w.Close()
			return written, discarded, addErr
		}
		written++
	}

	if log != nil {
		log.Info("Built vernacular sub-index",
			"written", humanize.Comma(int64(written)),
			"discarded", humanize.Comma(int64(discarded)))
	}

	if err := w.Commit(ctx); err != nil {
		w.Close()
		return written, discarded, err
	}
	if err := w.ForceMerge(ctx); err != nil {
		w.Close()
		return written, discarded, err
	}
	return written, discarded, w.Close()
}
