package taxon

// EmittedConcept is what the hierarchy walker (C4) hands to the
// search-index writer (C5) for one accepted concept: its identifiers,
// canonical name, nested-set interval, and the classification
// accumulated down from its ancestors (spec.md §4.4).
type EmittedConcept struct {
	ID            string
	LSID          string
	CanonicalName string
	Author        string
	RankString    string
	RankID        RankID
	Left          int
	Right         int
	Classification Classification
}

// SynonymDoc is what the synonym phase of the search-index writer
// (C5) records for a concept whose accepted_id is present and
// differs from both its own id and lsid (spec.md §4.5). Synonyms are
// not enriched with classification; consumers resolve it by
// following AcceptedID/AcceptedLSID at query time.
type SynonymDoc struct {
	ID               string
	LSID             string
	CanonicalName    string
	Authorship       string
	AcceptedID       string
	AcceptedLSID     string
	TaxonomicStatus  string
}
