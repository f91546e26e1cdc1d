package dwca_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gnindexer/internal/io/dwca"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const metaXML = `<?xml version="1.0" encoding="UTF-8"?>
<archive xmlns="http://rs.tdwg.org/dwc/text/">
  <core encoding="UTF-8" fieldsTerminatedBy="\t" linesTerminatedBy="\n"
        fieldsEnclosedBy="" ignoreHeaderLines="1"
        rowType="http://rs.tdwg.org/dwc/terms/Taxon">
    <files><location>taxon.txt</location></files>
    <id index="0"/>
    <field index="1" term="http://rs.tdwg.org/dwc/terms/taxonID"/>
    <field index="2" term="http://rs.tdwg.org/dwc/terms/parentNameUsageID"/>
    <field index="3" term="http://rs.tdwg.org/dwc/terms/acceptedNameUsageID"/>
    <field index="4" term="http://rs.tdwg.org/dwc/terms/scientificName"/>
    <field index="5" term="http://rs.tdwg.org/dwc/terms/scientificNameAuthorship"/>
    <field index="6" term="http://rs.tdwg.org/dwc/terms/genus"/>
    <field index="7" term="http://rs.tdwg.org/dwc/terms/specificEpithet"/>
    <field index="8" term="http://rs.tdwg.org/dwc/terms/infraspecificEpithet"/>
    <field index="9" term="http://rs.tdwg.org/dwc/terms/taxonRank"/>
    <field index="10" term="http://rs.tdwg.org/dwc/terms/taxonomicStatus"/>
  </core>
</archive>
`

func writeArchive(t *testing.T, rows string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "meta.xml"), []byte(metaXML), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "taxon.txt"), []byte(rows), 0644))
	return dir
}

func TestOpenConcepts_SkipsHeaderAndReadsRows(t *testing.T) {
	rows := "id\ttaxonID\tparentNameUsageID\tacceptedNameUsageID\tscientificName\tscientificNameAuthorship\tgenus\tspecificEpithet\tinfraspecificEpithet\ttaxonRank\ttaxonomicStatus\n" +
		"k1\tK1\t\t\tAnimalia\t\t\t\t\tkingdom\taccepted\n" +
		"g1\tG1\tk1\t\tFelis\t\tFelis\t\t\tgenus\taccepted\n"

	dir := writeArchive(t, rows)
	r, err := dwca.OpenConcepts(dir, nil)
	require.NoError(t, err)
	defer r.Close()

	c1, ok, err := r.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "k1", c1.ID)
	assert.Equal(t, "K1", c1.LSID)
	assert.Equal(t, "Animalia", c1.ScientificName)

	c2, ok, err := r.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "g1", c2.ID)
	assert.Equal(t, "k1", c2.ParentID)

	_, ok, err = r.Next()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOpenConcepts_SkipsMalformedRow(t *testing.T) {
	rows := "id\ttaxonID\tparentNameUsageID\tacceptedNameUsageID\tscientificName\tscientificNameAuthorship\tgenus\tspecificEpithet\tinfraspecificEpithet\ttaxonRank\ttaxonomicStatus\n" +
		"short\trow\n" +
		"k1\tK1\t\t\tAnimalia\t\t\t\t\tkingdom\taccepted\n"

	dir := writeArchive(t, rows)
	r, err := dwca.OpenConcepts(dir, nil)
	require.NoError(t, err)
	defer r.Close()

	c, ok, err := r.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "k1", c.ID)
	assert.Equal(t, 1, r.Skipped())
}

func TestOpenConcepts_MissingMetaXML(t *testing.T) {
	dir := t.TempDir()
	_, err := dwca.OpenConcepts(dir, nil)
	assert.Error(t, err)
}

func TestOpenVernaculars_ReadsSixColumnRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vernacular.txt")
	content := "t1\tS1\tFelis catus\tdomestic cat\ten\tUS\n" +
		"t2\tUNKNOWN\tGhost species\tghost\ten\tUS\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	r, err := dwca.OpenVernaculars(path, nil)
	require.NoError(t, err)
	defer r.Close()

	row1, ok, err := r.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "S1", row1.TaxonLSID)
	assert.Equal(t, "domestic cat", row1.VernacularName)

	row2, ok, err := r.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "UNKNOWN", row2.TaxonLSID)

	_, ok, err = r.Next()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOpenVernaculars_SkipsWrongColumnCount(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vernacular.txt")
	content := "too\tfew\tcolumns\n" +
		"t1\tS1\tFelis catus\tdomestic cat\ten\tUS\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	r, err := dwca.OpenVernaculars(path, nil)
	require.NoError(t, err)
	defer r.Close()

	row, ok, err := r.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "domestic cat", row.VernacularName)
	assert.Equal(t, 1, r.Skipped())
}
