// Package searchindex implements the final search index writer (C5):
// a lower-case keyword analyzer index holding one document per
// accepted concept (with interval and classification) and one per
// synonym (spec.md §4.5). <target>/irmng, the homonym sub-index, is
// not written through this Writer: internal/io/irmng writes it with
// its own field set through the same storage layer.
package searchindex

import (
	"context"
	"strconv"

	"github.com/gnames/gnindexer/pkg/index"
	"github.com/gnames/gnindexer/pkg/taxon"
)

// OpenWriterFunc abstracts the function that opens an index.Writer so
// the concrete storage backend is injected by the caller
// (internal/io/driver wires sqliteindex.OpenWriter).
type OpenWriterFunc func(ctx context.Context, dir string, fields []index.FieldSpec) (index.Writer, error)

// Writer wraps an index.Writer configured with the search-index
// schema and a lower-case keyword analyzer throughout.
type Writer struct {
	w index.Writer
}

// Open opens (creating if needed) the search index at dir using
// openWriter, under the lower-case keyword analyzer every field in
// this index uses (spec.md §4.5).
func Open(ctx context.Context, openWriter OpenWriterFunc, dir string) (*Writer, error) {
	w, err := openWriter(ctx, dir, fieldSpecs())
	if err != nil {
		return nil, err
	}
	return &Writer{w: w}, nil
}

func fieldSpecs() []index.FieldSpec {
	names := []string{
		taxon.FieldID, taxon.FieldLSID, taxon.FieldName, taxon.FieldAuthor,
		taxon.FieldRank, taxon.FieldRankID, taxon.FieldLeft, taxon.FieldRight,
		taxon.FieldAcceptedID, taxon.FieldAcceptedLSID, taxon.FieldTaxonomicStatus,
		taxon.FieldKingdom, taxon.FieldKingdomLSID,
		taxon.FieldPhylum, taxon.FieldPhylumLSID,
		taxon.FieldClass, taxon.FieldClassLSID,
		taxon.FieldOrder, taxon.FieldOrderLSID,
		taxon.FieldFamily, taxon.FieldFamilyLSID,
		taxon.FieldGenusSlot, taxon.FieldGenusSlotLSID,
		taxon.FieldSpeciesSlot, taxon.FieldSpeciesSlotLSID,
	}
	specs := make([]index.FieldSpec, len(names))
	for i, n := range names {
		indexed := n == taxon.FieldID || n == taxon.FieldLSID ||
			n == taxon.FieldAcceptedID || n == taxon.FieldAcceptedLSID
		specs[i] = index.FieldSpec{Name: n, Indexed: indexed, Analyzer: index.LowerKeyword}
	}
	return specs
}

// EmitAccepted stores c as an accepted-concept document: canonical
// name, identifiers, rank, interval, and all seven classification
// slots.
func (w *Writer) EmitAccepted(ctx context.Context, c taxon.EmittedConcept) error {
	fields := []index.Field{
		{Name: taxon.FieldID, Value: c.ID},
		{Name: taxon.FieldLSID, Value: c.LSID},
		{Name: taxon.FieldName, Value: c.CanonicalName},
		{Name: taxon.FieldAuthor, Value: c.Author},
		{Name: taxon.FieldRank, Value: c.RankString},
		{Name: taxon.FieldRankID, Value: strconv.Itoa(int(c.RankID))},
		{Name: taxon.FieldLeft, Value: strconv.Itoa(c.Left)},
		{Name: taxon.FieldRight, Value: strconv.Itoa(c.Right)},
	}
	fields = append(fields, classificationFields(c.Classification)...)
	return w.w.Add(ctx, index.Document{Fields: fields})
}

// EmitSynonym stores s as a synonym document: canonical name,
// authorship, own identifiers, accepted identifiers, and taxonomic
// status. Synonyms carry no classification.
func (w *Writer) EmitSynonym(ctx context.Context, s taxon.SynonymDoc) error {
	return w.w.Add(ctx, index.Document{Fields: []index.Field{
		{Name: taxon.FieldID, Value: s.ID},
		{Name: taxon.FieldLSID, Value: s.LSID},
		{Name: taxon.FieldName, Value: s.CanonicalName},
		{Name: taxon.FieldAuthor, Value: s.Authorship},
		{Name: taxon.FieldAcceptedID, Value: s.AcceptedID},
		{Name: taxon.FieldAcceptedLSID, Value: s.AcceptedLSID},
		{Name: taxon.FieldTaxonomicStatus, Value: s.TaxonomicStatus},
	}})
}

// Commit, ForceMerge, and Close finalize the index. Close is called
// only after both phases (accepted concepts, then synonyms) have
// emitted every document.
func (w *Writer) Commit(ctx context.Context) error     { return w.w.Commit(ctx) }
func (w *Writer) ForceMerge(ctx context.Context) error  { return w.w.ForceMerge(ctx) }
func (w *Writer) Close() error                          { return w.w.Close() }

func classificationFields(c taxon.Classification) []index.Field {
	pairs := []struct {
		nameField, lsidField string
		slot                 taxon.ClassificationSlot
	}{
		{taxon.FieldKingdom, taxon.FieldKingdomLSID, c.Kingdom},
		{taxon.FieldPhylum, taxon.FieldPhylumLSID, c.Phylum},
		{taxon.FieldClass, taxon.FieldClassLSID, c.Class},
		{taxon.FieldOrder, taxon.FieldOrderLSID, c.Order},
		{taxon.FieldFamily, taxon.FieldFamilyLSID, c.Family},
		{taxon.FieldGenusSlot, taxon.FieldGenusSlotLSID, c.Genus},
		{taxon.FieldSpeciesSlot, taxon.FieldSpeciesSlotLSID, c.Species},
	}
	fields := make([]index.Field, 0, len(pairs)*2)
	for _, p := range pairs {
		fields = append(fields,
			index.Field{Name: p.nameField, Value: p.slot.Name},
			index.Field{Name: p.lsidField, Value: p.slot.LSID},
		)
	}
	return fields
}
