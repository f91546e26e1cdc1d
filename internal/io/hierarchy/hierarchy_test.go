package hierarchy_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/gnames/gnindexer/internal/io/hierarchy"
	"github.com/gnames/gnindexer/internal/io/sqliteindex"
	"github.com/gnames/gnindexer/pkg/index"
	"github.com/gnames/gnindexer/pkg/taxon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type identityCanon struct{}

func (identityCanon) Canonical(name string) string { return name }
func (identityCanon) Close()                       {}

type captureEmitter struct {
	emitted []taxon.EmittedConcept
}

func (c *captureEmitter) EmitAccepted(_ context.Context, e taxon.EmittedConcept) error {
	c.emitted = append(c.emitted, e)
	return nil
}

func loadingFieldSpecs() []index.FieldSpec {
	return []index.FieldSpec{
		{Name: taxon.FieldID, Indexed: true, Analyzer: index.Keyword},
		{Name: taxon.FieldLSID, Indexed: true, Analyzer: index.Keyword},
		{Name: taxon.FieldParentID, Indexed: true, Analyzer: index.Keyword},
		{Name: taxon.FieldName, Indexed: false},
		{Name: taxon.FieldAuthor, Indexed: false},
		{Name: taxon.FieldRank, Indexed: true, Analyzer: index.Keyword},
		{Name: taxon.FieldRankID, Indexed: true, Analyzer: index.Keyword},
		{Name: taxon.FieldRoot, Indexed: true, Analyzer: index.Keyword},
	}
}

type row struct {
	id, lsid, parentID, name, rank string
	rankID                         taxon.RankID
	root                           bool
}

func buildLoadingIndex(t *testing.T, rows []row) string {
	t.Helper()
	ctx := context.Background()
	dir := t.TempDir()

	w, err := sqliteindex.OpenWriter(ctx, dir, loadingFieldSpecs())
	require.NoError(t, err)

	for _, r := range rows {
		rootVal := ""
		if r.root {
			rootVal = taxon.RootTrue
		}
		require.NoError(t, w.Add(ctx, index.Document{Fields: []index.Field{
			{Name: taxon.FieldID, Value: r.id},
			{Name: taxon.FieldLSID, Value: r.lsid},
			{Name: taxon.FieldParentID, Value: r.parentID},
			{Name: taxon.FieldName, Value: r.name},
			{Name: taxon.FieldRank, Value: r.rank},
			{Name: taxon.FieldRankID, Value: strconv.Itoa(int(r.rankID))},
			{Name: taxon.FieldRoot, Value: rootVal},
		}}))
	}
	require.NoError(t, w.Commit(ctx))
	require.NoError(t, w.Close())
	return dir
}

func findEmitted(emitted []taxon.EmittedConcept, id string) (taxon.EmittedConcept, bool) {
	for _, e := range emitted {
		if e.ID == id {
			return e, true
		}
	}
	return taxon.EmittedConcept{}, false
}

// S1 - minimal tree.
func TestWalk_MinimalTree(t *testing.T) {
	dir := buildLoadingIndex(t, []row{
		{id: "k1", lsid: "K1", name: "Animalia", rank: "kingdom", rankID: taxon.Kingdom, root: true},
		{id: "g1", lsid: "G1", parentID: "k1", name: "Felis", rank: "genus", rankID: taxon.Genus},
		{id: "s1", lsid: "S1", parentID: "g1", name: "Felis catus", rank: "species", rankID: taxon.Species},
	})

	ctx := context.Background()
	r, err := sqliteindex.OpenReader(ctx, dir)
	require.NoError(t, err)
	defer r.Close()

	w := hierarchy.New(r, identityCanon{}, nil)
	emitter := &captureEmitter{}
	require.NoError(t, w.Walk(ctx, emitter))

	require.Len(t, emitter.emitted, 3)

	k1, _ := findEmitted(emitter.emitted, "k1")
	g1, _ := findEmitted(emitter.emitted, "g1")
	s1, _ := findEmitted(emitter.emitted, "s1")

	assert.Equal(t, 1, k1.Left)
	assert.Equal(t, 6, k1.Right)
	assert.Equal(t, 2, g1.Left)
	assert.Equal(t, 5, g1.Right)
	assert.Equal(t, 3, s1.Left)
	assert.Equal(t, 4, s1.Right)

	assert.Equal(t, "Animalia", s1.Classification.Kingdom.Name)
	assert.Equal(t, "K1", s1.Classification.Kingdom.LSID)
	assert.Equal(t, "Felis", s1.Classification.Genus.Name)
	assert.Equal(t, "Felis catus", s1.Classification.Species.Name)
}

// S3 - LSID-linked children.
func TestWalk_LSIDLinkedChildren(t *testing.T) {
	dir := buildLoadingIndex(t, []row{
		{id: "k1", lsid: "K1", name: "Animalia", rank: "kingdom", rankID: taxon.Kingdom, root: true},
		{id: "g1", lsid: "G1", parentID: "K1", name: "Felis", rank: "genus", rankID: taxon.Genus},
	})

	ctx := context.Background()
	r, err := sqliteindex.OpenReader(ctx, dir)
	require.NoError(t, err)
	defer r.Close()

	w := hierarchy.New(r, identityCanon{}, nil)
	emitter := &captureEmitter{}
	require.NoError(t, w.Walk(ctx, emitter))

	require.Len(t, emitter.emitted, 2)
	g1, ok := findEmitted(emitter.emitted, "g1")
	require.True(t, ok)
	assert.Equal(t, 2, g1.Left)
	assert.Equal(t, 3, g1.Right)
}

// S4 - orphan silently omitted.
func TestWalk_OrphanOmitted(t *testing.T) {
	dir := buildLoadingIndex(t, []row{
		{id: "k1", lsid: "K1", name: "Animalia", rank: "kingdom", rankID: taxon.Kingdom, root: true},
		{id: "o1", lsid: "O1", parentID: "missing", name: "Ghost"},
	})

	ctx := context.Background()
	r, err := sqliteindex.OpenReader(ctx, dir)
	require.NoError(t, err)
	defer r.Close()

	w := hierarchy.New(r, identityCanon{}, nil)
	emitter := &captureEmitter{}
	require.NoError(t, w.Walk(ctx, emitter))

	require.Len(t, emitter.emitted, 1)
	_, found := findEmitted(emitter.emitted, "o1")
	assert.False(t, found)
}

// S5 - sibling intervals, two disjoint root subtrees.
func TestWalk_SiblingIntervalsDisjoint(t *testing.T) {
	dir := buildLoadingIndex(t, []row{
		{id: "k1", lsid: "K1", name: "Animalia", rank: "kingdom", rankID: taxon.Kingdom, root: true},
		{id: "c1", lsid: "C1", parentID: "k1", name: "Mammalia", rank: "class", rankID: taxon.Class},
		{id: "k2", lsid: "K2", name: "Plantae", rank: "kingdom", rankID: taxon.Kingdom, root: true},
		{id: "c2", lsid: "C2", parentID: "k2", name: "Magnoliopsida", rank: "class", rankID: taxon.Class},
	})

	ctx := context.Background()
	r, err := sqliteindex.OpenReader(ctx, dir)
	require.NoError(t, err)
	defer r.Close()

	w := hierarchy.New(r, identityCanon{}, nil)
	emitter := &captureEmitter{}
	require.NoError(t, w.Walk(ctx, emitter))

	require.Len(t, emitter.emitted, 4)
	k1, _ := findEmitted(emitter.emitted, "k1")
	k2, _ := findEmitted(emitter.emitted, "k2")

	assert.Equal(t, 1, k1.Left)
	assert.Equal(t, 4, k1.Right)
	assert.Equal(t, 5, k2.Left)
	assert.Equal(t, 8, k2.Right)

	// Disjoint, neither contains the other.
	assert.True(t, k1.Right < k2.Left)
}
