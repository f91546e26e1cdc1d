package dwca

import (
	"bufio"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gnindexer/pkg/taxon"
)

// vernacularColumns is the fixed six-column order spec.md §6 names:
// taxonID, taxonLsid, scientificName, vernacularName, languageCode,
// countryCode.
const vernacularColumns = 6

// VernacularReader streams VernacularRow records from a tab-delimited
// file with `"` quoting and `\` escape, no header rows.
type VernacularReader struct {
	file    *os.File
	scanner *bufio.Scanner
	log     *slog.Logger
	skipped int
}

// OpenVernaculars opens path for streaming.
func OpenVernaculars(path string, log *slog.Logger) (*VernacularReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, VernacularFileErr(path, err)
	}
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)
	return &VernacularReader{file: f, scanner: sc, log: log}, nil
}

// Next returns the next VernacularRow. Rows with the wrong column
// count are logged and skipped, not fatal (spec.md §4.1).
func (r *VernacularReader) Next() (taxon.VernacularRow, bool, error) {
	for r.scanner.Scan() {
		line := r.scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := splitRow(line, '\t', '"')
		if len(fields) != vernacularColumns {
			r.skipped++
			if r.log != nil {
				r.log.Warn("skipping malformed vernacular row", "columns", len(fields))
			}
			continue
		}

		return taxon.VernacularRow{
			TaxonID:        fields[0],
			TaxonLSID:      fields[1],
			ScientificName: fields[2],
			VernacularName: fields[3],
			LanguageCode:   fields[4],
			CountryCode:    fields[5],
		}, true, nil
	}
	if err := r.scanner.Err(); err != nil {
		return taxon.VernacularRow{}, false, VernacularFileErr("", err)
	}
	return taxon.VernacularRow{}, false, nil
}

// Skipped returns the count of rows dropped for a column-count
// mismatch.
func (r *VernacularReader) Skipped() int { return r.skipped }

// Close releases the underlying file handle.
func (r *VernacularReader) Close() error { return r.file.Close() }
