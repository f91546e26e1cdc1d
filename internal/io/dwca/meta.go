package dwca

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
)

// metaArchive mirrors the subset of a Darwin Core Archive's meta.xml
// descriptor the source reader needs: the core file's location,
// delimiters, and term-to-column mapping. No Go library for the DwCA
// meta.xml schema exists in the dependency pack; this is a minimal
// encoding/xml-based reader of the published schema
// (http://rs.tdwg.org/dwc/text/).
type metaArchive struct {
	Core metaCore `xml:"core"`
}

type metaCore struct {
	FieldsTerminatedBy string         `xml:"fieldsTerminatedBy,attr"`
	FieldsEnclosedBy   string         `xml:"fieldsEnclosedBy,attr"`
	IgnoreHeaderLines  int            `xml:"ignoreHeaderLines,attr"`
	Files              metaFiles      `xml:"files"`
	ID                 metaFieldIndex `xml:"id"`
	Fields             []metaField    `xml:"field"`
}

type metaFiles struct {
	Location string `xml:"location"`
}

type metaFieldIndex struct {
	Index int `xml:"index,attr"`
}

type metaField struct {
	Index int    `xml:"index,attr"`
	Term  string `xml:"term,attr"`
}

// columnMap maps a Darwin Core term's short name (e.g. "taxonID") to
// its column index in the core data file.
type columnMap map[string]int

// coreLayout describes how to read the core data file.
type coreLayout struct {
	dataFile          string
	delimiter         rune
	quote             rune
	ignoreHeaderLines int
	idIndex           int
	columns           columnMap
}

// readMeta parses <dwcaDir>/meta.xml and returns the core file's
// layout.
func readMeta(dwcaDir string) (*coreLayout, error) {
	path := filepath.Join(dwcaDir, "meta.xml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, DwcaNotFound(dwcaDir, err)
	}

	var arc metaArchive
	if err := xml.Unmarshal(data, &arc); err != nil {
		return nil, DwcaReadErr(path, err)
	}

	cols := make(columnMap, len(arc.Core.Fields))
	for _, f := range arc.Core.Fields {
		cols[termName(f.Term)] = f.Index
	}

	delim := '\t'
	if arc.Core.FieldsTerminatedBy != "" {
		delim = decodeDelim(arc.Core.FieldsTerminatedBy)
	}
	quote := rune(0)
	if arc.Core.FieldsEnclosedBy != "" {
		quote = decodeDelim(arc.Core.FieldsEnclosedBy)
	}

	return &coreLayout{
		dataFile:          filepath.Join(dwcaDir, arc.Core.Files.Location),
		delimiter:         delim,
		quote:             quote,
		ignoreHeaderLines: arc.Core.IgnoreHeaderLines,
		idIndex:           arc.Core.ID.Index,
		columns:           cols,
	}, nil
}

// termName extracts the short name from a Darwin Core term URI, e.g.
// "http://rs.tdwg.org/dwc/terms/taxonID" -> "taxonID".
func termName(term string) string {
	if i := strings.LastIndexByte(term, '/'); i >= 0 {
		return term[i+1:]
	}
	return term
}

// decodeDelim resolves the handful of escape sequences meta.xml uses
// for delimiter attributes.
func decodeDelim(s string) rune {
	switch s {
	case "\\t":
		return '\t'
	case "\\n":
		return '\n'
	case "":
		return 0
	default:
		return rune(s[0])
	}
}
