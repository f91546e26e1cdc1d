package searchindex

import (
	"context"

	"github.com/gnames/gnindexer/pkg/canon"
	"github.com/gnames/gnindexer/pkg/index"
	"github.com/gnames/gnindexer/pkg/taxon"
)

// ConceptSource is the lazy sequence the synonym phase re-streams.
// It is satisfied by *dwca.ConceptReader.
type ConceptSource interface {
	Next() (taxon.Concept, bool, error)
}

// RunSynonymPhase re-streams src, and for every concept whose
// AcceptedID is non-empty and differs from both its own ID and LSID,
// emits a synonym document (spec.md §4.5). loadReader resolves the
// accepted concept's true LSID, since a source archive's accepted_id
// column may hold either an id or an lsid interchangeably.
func RunSynonymPhase(ctx context.Context, w *Writer, src ConceptSource, loadReader index.Reader, canonicalizer canon.Canonicalizer) (int, error) {
	count := 0
	for {
		c, ok, err := src.Next()
		if err != nil {
			return count, err
		}
		if !ok {
			break
		}

		acceptedID := c.AcceptedID
		if acceptedID == "" || acceptedID == c.ID || acceptedID == c.EffectiveLSID() {
			continue
		}

		acceptedLSID := resolveAcceptedLSID(ctx, loadReader, acceptedID)

		err = w.EmitSynonym(ctx, taxon.SynonymDoc{
			ID:              c.ID,
			LSID:            c.LSID,
			CanonicalName:   canonicalizer.Canonical(c.ScientificName),
			Authorship:      c.Authorship,
			AcceptedID:      acceptedID,
			AcceptedLSID:    acceptedLSID,
			TaxonomicStatus: c.TaxonomicStatus,
		})
		if err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// resolveAcceptedLSID looks up acceptedID in the loading index, first
// as an id then as an lsid, and returns the resolved concept's lsid.
// Falls back to acceptedID itself when no match is found.
func resolveAcceptedLSID(ctx context.Context, loadReader index.Reader, acceptedID string) string {
	docs, err := loadReader.TermQuery(ctx, taxon.FieldID, acceptedID, 1)
	if err == nil && len(docs) > 0 {
		if lsid := docs[0].Get(taxon.FieldLSID); lsid != "" {
			return lsid
		}
	}

	docs, err = loadReader.TermQuery(ctx, taxon.FieldLSID, acceptedID, 1)
	if err == nil && len(docs) > 0 {
		return acceptedID
	}

	return acceptedID
}
