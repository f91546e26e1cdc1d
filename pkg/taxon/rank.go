// Package taxon holds the pure data model for biological name concepts:
// ranks, classification breadcrumbs, and nested-set intervals. It has no
// I/O dependencies.
package taxon

import "strings"

// RankID is the integer sort key for a taxonomic rank. Only the seven
// major ranks populate a Classification slot; every other rank is
// still a valid RankID and is carried through the pipeline unchanged.
type RankID int

// Major ranks that drive higher-classification capture (spec.md §3).
const (
	Unranked RankID = 0
	Kingdom  RankID = 1000
	Phylum   RankID = 2000
	Class    RankID = 3000
	Order    RankID = 4000
	Family   RankID = 5000
	Genus    RankID = 6000
	Species  RankID = 7000
)

// rankByName maps the rank strings found in Darwin Core archives to
// their RankID. Unrecognized strings map to Unranked.
var rankByName = map[string]RankID{
	"kingdom": Kingdom,
	"phylum":  Phylum,
	"division": Phylum,
	"class":   Class,
	"order":   Order,
	"family":  Family,
	"genus":   Genus,
	"species": Species,
}

// ParseRank maps a rank string (case-insensitive) to its RankID.
// Unrecognized or empty strings return Unranked, matching the
// source's fallback to RankType.UNRANKED.
func ParseRank(s string) RankID {
	id, ok := rankByName[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return Unranked
	}
	return id
}

// IsClassificationSlot reports whether this RankID owns one of the
// seven Classification slots.
func (r RankID) IsClassificationSlot() bool {
	switch r {
	case Kingdom, Phylum, Class, Order, Family, Genus, Species:
		return true
	}
	return false
}
