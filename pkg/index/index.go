// Package index defines the storage-layer abstraction every index
// role in gnindexer writes through: the loading index, the search
// index, the vernacular sub-index, and the irmng sub-index.
//
// The source tool used a Lucene index for all four roles. gnindexer
// keeps the same interface shape - open_writer/add/commit/force_merge,
// open_reader/term_query - so a caller never depends on the concrete
// backing store. internal/io/sqliteindex is the one implementation,
// backed by modernc.org/sqlite.
package index

import "context"

// Analyzer controls how a stored value is matched by term queries.
// The source tool's inverted-index fields are either case-sensitive
// exact terms (Keyword) or case-folded exact terms (LowerKeyword);
// neither tokenizes.
type Analyzer int

const (
	// Keyword matches term values exactly, case-sensitive.
	Keyword Analyzer = iota
	// LowerKeyword folds both the stored value and the query value to
	// lower case before matching.
	LowerKeyword
)

// Field is one named value on a Document.
type Field struct {
	Name string
	// Value is the field's retrievable content.
	Value string
	// Indexed mirrors FieldSpec.Indexed. Writers take the schema from
	// the FieldSpec slice they were opened with and do not read this
	// value.
	Indexed bool
}

// Document is a single record written into an index: one taxon
// concept, one vernacular row, or one irmng homonym entry.
type Document struct {
	Fields []Field
}

// Get returns the value of the named field, or "" if absent.
func (d Document) Get(name string) string {
	for _, f := range d.Fields {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}

// Writer builds one index from scratch. Index construction is
// offline and write-once: a Writer is opened, fed every document via
// Add, then Commit, ForceMerge, and Close are called once each, in
// that order.
type Writer interface {
	// Add stores doc in the index. Safe to call from multiple
	// goroutines; implementations serialize writes internally.
	Add(ctx context.Context, doc Document) error

	// Commit makes all added documents visible to readers.
	Commit(ctx context.Context) error

	// ForceMerge compacts the index to its most space- and
	// query-efficient form. Analogous to Lucene's forceMerge(1); the
	// sqlite implementation runs VACUUM and ANALYZE.
	ForceMerge(ctx context.Context) error

	// Close releases underlying resources. Add must not be called
	// after Close.
	Close() error
}

// Reader performs term queries against a committed index.
type Reader interface {
	// TermQuery returns every document whose field named `field` holds
	// exactly `value` under the field's analyzer, up to `limit`
	// documents (0 means unlimited).
	TermQuery(ctx context.Context, field, value string, limit int) ([]Document, error)

	// Close releases underlying resources.
	Close() error
}

// FieldSpec declares a field's name, whether it is indexed for fast
// term queries, and which analyzer governs matching. In the sqlite
// implementation every field can be term-queried; an unindexed field
// is matched by a full table scan.
type FieldSpec struct {
	Name     string
	Indexed  bool
	Analyzer Analyzer
}
