package taxon

// Loading-index document field names (spec.md §4.3). Identifiers are
// indexed terms; name/author/genus/specific/infraspecific are
// retrievable only; rank and rank_id are both.
const (
	FieldID            = "id"
	FieldLSID          = "lsid"
	FieldParentID      = "parent_id"
	FieldAcceptedID    = "accepted_id"
	FieldName          = "name"
	FieldAuthor        = "author"
	FieldGenus         = "genus"
	FieldSpecific      = "specific"
	FieldInfraspecific = "infraspecific"
	FieldRank          = "rank"
	FieldRankID        = "rank_id"
	FieldIsSynonym     = "is_synonym"
	FieldRoot          = "root"
)

// Search-index document field names (spec.md §4.5). Accepted-concept
// documents and synonym documents share this table; unused fields on
// either kind are left blank.
const (
	FieldLeft           = "tree_left"
	FieldRight          = "tree_right"
	FieldAcceptedLSID   = "accepted_lsid"
	FieldTaxonomicStatus = "taxonomic_status"
	FieldKingdom        = "kingdom"
	FieldKingdomLSID    = "kingdom_lsid"
	FieldPhylum         = "phylum"
	FieldPhylumLSID     = "phylum_lsid"
	FieldClass          = "class"
	FieldClassLSID      = "class_lsid"
	FieldOrder          = "taxon_order"
	FieldOrderLSID      = "order_lsid"
	FieldFamily         = "family"
	FieldFamilyLSID     = "family_lsid"
	FieldGenusSlot      = "genus_slot"
	FieldGenusSlotLSID  = "genus_slot_lsid"
	FieldSpeciesSlot    = "species_slot"
	FieldSpeciesSlotLSID = "species_slot_lsid"
)

// IsSynonymTrue and IsSynonymFalse are the T/F sentinel values
// spec.md §3 specifies for the is_synonym field.
const (
	IsSynonymTrue  = "T"
	IsSynonymFalse = "F"
)

// RootTrue is the sentinel value spec.md §3 specifies for the root
// field; absence of the term implies non-root.
const RootTrue = "T"

// Vernacular-document field names (spec.md §4.6).
const (
	FieldVernacularName = "vernacular_name"
	FieldScientificName = "scientific_name"
	FieldVernacularLSID = "lsid"
)
