// Package dwca streams taxon.Concept and taxon.VernacularRow records
// out of a Darwin Core Archive directory and a tab-delimited
// vernacular name file, the two lazy finite sequences spec.md's
// source reader exposes. Both the DwCA format and the
// vernacular-file dialect are treated as external specifications
// (spec.md §1, §6) rather than re-derived; no published Go library
// for either exists in the dependency pack, so this package reads
// them directly with encoding/xml and a small delimited-row scanner.
package dwca

import (
	"bufio"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gnindexer/pkg/taxon"
)

// ConceptReader streams Concept records from a DwCA core file.
type ConceptReader struct {
	file    *os.File
	scanner *bufio.Scanner
	layout  *coreLayout
	log     *slog.Logger
	skipped int
}

// OpenConcepts opens the DwCA core file described by dwcaDir's
// meta.xml and positions the reader past any header lines.
func OpenConcepts(dwcaDir string, log *slog.Logger) (*ConceptReader, error) {
	layout, err := readMeta(dwcaDir)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(layout.dataFile)
	if err != nil {
		return nil, DwcaReadErr(layout.dataFile, err)
	}

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	for i := 0; i < layout.ignoreHeaderLines && sc.Scan(); i++ {
	}

	return &ConceptReader{file: f, scanner: sc, layout: layout, log: log}, nil
}

// Next returns the next Concept. ok is false once the core file is
// exhausted; err is non-nil only for a fatal read failure, never for
// a single malformed row (those are logged and skipped per
// spec.md §4.1).
func (r *ConceptReader) Next() (taxon.Concept, bool, error) {
	for r.scanner.Scan() {
		line := r.scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := splitRow(line, r.layout.delimiter, r.layout.quote)
		c, ok := r.toConcept(fields)
		if !ok {
			r.skipped++
			if r.log != nil {
				r.log.Warn("skipping malformed DwCA row", "columns", len(fields))
			}
			continue
		}
		return c, true, nil
	}
	if err := r.scanner.Err(); err != nil {
		return taxon.Concept{}, false, DwcaReadErr(r.layout.dataFile, err)
	}
	return taxon.Concept{}, false, nil
}

// Skipped returns the count of rows dropped for a column-count
// mismatch.
func (r *ConceptReader) Skipped() int { return r.skipped }

// Close releases the underlying file handle.
func (r *ConceptReader) Close() error { return r.file.Close() }

func (r *ConceptReader) toConcept(fields []string) (taxon.Concept, bool) {
	maxIdx := r.layout.idIndex
	for _, idx := range r.layout.columns {
		if idx > maxIdx {
			maxIdx = idx
		}
	}
	if maxIdx >= len(fields) {
		return taxon.Concept{}, false
	}

	col := func(term string) string {
		idx, ok := r.layout.columns[term]
		if !ok || idx >= len(fields) {
			return ""
		}
		return fields[idx]
	}

	id := ""
	if r.layout.idIndex < len(fields) {
		id = fields[r.layout.idIndex]
	}

	return taxon.Concept{
		ID:                   id,
		LSID:                 col("taxonID"),
		ParentID:             col("parentNameUsageID"),
		AcceptedID:           col("acceptedNameUsageID"),
		ScientificName:       col("scientificName"),
		Authorship:           col("scientificNameAuthorship"),
		Genus:                col("genus"),
		SpecificEpithet:      col("specificEpithet"),
		InfraspecificEpithet: col("infraspecificEpithet"),
		RankString:           col("taxonRank"),
		TaxonomicStatus:      col("taxonomicStatus"),
	}, true
}
