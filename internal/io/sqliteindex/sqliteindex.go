// Package sqliteindex implements pkg/index's Writer and Reader on top
// of modernc.org/sqlite, the pure-Go sqlite driver gnames-gndb already
// depends on to read and write SFGA archives (themselves sqlite
// databases). No Lucene-equivalent inverted-index library exists in
// the dependency surface available to gnindexer; sqlite's exact-match
// indexed columns satisfy the keyword-analyzer term-query contract
// pkg/index specifies without inventing a format.
//
// Each index role (loading index, search index, vernacular
// sub-index, irmng sub-index) gets its own on-disk sqlite file, named
// "index.db" inside the role's directory, with a single "documents"
// table shaped by the FieldSpec slice passed to OpenWriter.
package sqliteindex

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gnames/gnindexer/pkg/index"

	_ "modernc.org/sqlite"
)

const dbFileName = "index.db"

// writer implements index.Writer over a sqlite database.
type writer struct {
	mu     sync.Mutex
	db     *sql.DB
	fields []index.FieldSpec
}

// OpenWriter creates (or truncates) the index.db file inside dir and
// prepares a "documents" table with one column per field in fields.
// Indexed fields get a sqlite index; fields whose Analyzer is
// index.LowerKeyword get a COLLATE NOCASE column so term queries are
// case-insensitive without lower-casing on every read.
func OpenWriter(ctx context.Context, dir string, fields []index.FieldSpec) (index.Writer, error) {
	path := filepath.Join(dir, dbFileName)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, IndexOpenError(path, err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			db.Close()
			return nil, IndexOpenError(path, err)
		}
	}

	if err := initSchema(ctx, db, fields); err != nil {
		db.Close()
		return nil, err
	}

	return &writer{db: db, fields: fields}, nil
}

func initSchema(ctx context.Context, db *sql.DB, fields []index.FieldSpec) error {
	var cols []string
	var idxStmts []string
	for _, f := range fields {
		col := columnName(f.Name)
		collate := ""
		if f.Analyzer == index.LowerKeyword {
			collate = " COLLATE NOCASE"
		}
		cols = append(cols, fmt.Sprintf("%s TEXT%s", quoteIdent(col), collate))
		if f.Indexed {
			idxStmts = append(idxStmts, fmt.Sprintf(
				"CREATE INDEX IF NOT EXISTS %s ON documents(%s)",
				quoteIdent("idx_documents_"+col), quoteIdent(col)))
		}
	}

	stmt := fmt.Sprintf("DROP TABLE IF EXISTS documents;\nCREATE TABLE documents (\n  %s\n);\n%s",
		strings.Join(cols, ",\n  "), strings.Join(idxStmts, ";\n"))

	if _, err := db.ExecContext(ctx, stmt); err != nil {
		return IndexOpenError("schema", err)
	}
	return nil
}

// columnName sanitizes a field name for use as a bare sqlite
// identifier. Field names in this package are always compile-time
// constants from internal/io/*, never user input.
func columnName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// quoteIdent double-quotes a sqlite identifier so column names that
// collide with a reserved keyword (order, left, right, ...) still
// parse as identifiers rather than SQL syntax.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (w *writer) Add(ctx context.Context, doc index.Document) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var cols []string
	var placeholders []string
	var vals []any
	for _, f := range w.fields {
		cols = append(cols, quoteIdent(columnName(f.Name)))
		placeholders = append(placeholders, "?")
		vals = append(vals, doc.Get(f.Name))
	}

	q := fmt.Sprintf("INSERT INTO documents (%s) VALUES (%s)",
		strings.Join(cols, ", "), strings.Join(placeholders, ", "))

	if _, err := w.db.ExecContext(ctx, q, vals...); err != nil {
		return IndexWriteError(err)
	}
	return nil
}

func (w *writer) Commit(ctx context.Context) error {
	// WAL autocommits each statement outside an explicit transaction;
	// a checkpoint makes writes durable in the main db file.
	if _, err := w.db.ExecContext(ctx, "PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		return IndexCommitError(err)
	}
	return nil
}

func (w *writer) ForceMerge(ctx context.Context) error {
	if _, err := w.db.ExecContext(ctx, "ANALYZE"); err != nil {
		return IndexCommitError(err)
	}
	if _, err := w.db.ExecContext(ctx, "VACUUM"); err != nil {
		return IndexCommitError(err)
	}
	return nil
}

func (w *writer) Close() error {
	return w.db.Close()
}

// reader implements index.Reader over a committed sqlite database.
type reader struct {
	db     *sql.DB
	fields []index.FieldSpec
}

// OpenReader opens the index.db file inside dir for term queries. The
// field spec is re-derived from the table's column metadata, so a
// Reader can be opened without knowing the Writer's original schema.
func OpenReader(ctx context.Context, dir string) (index.Reader, error) {
	path := filepath.Join(dir, dbFileName)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, IndexOpenError(path, err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA query_only=ON"); err != nil {
		db.Close()
		return nil, IndexOpenError(path, err)
	}

	fields, err := readSchema(ctx, db)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &reader{db: db, fields: fields}, nil
}

func readSchema(ctx context.Context, db *sql.DB) ([]index.FieldSpec, error) {
	rows, err := db.QueryContext(ctx, "PRAGMA table_info(documents)")
	if err != nil {
		return nil, IndexOpenError("schema", err)
	}
	defer rows.Close()

	var fields []index.FieldSpec
	for rows.Next() {
		var cid int
		var name, colType string
		var notNull, pk int
		var dflt sql.NullString
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dflt, &pk); err != nil {
			return nil, IndexOpenError("schema", err)
		}
		analyzer := index.Keyword
		if strings.Contains(strings.ToUpper(colType), "NOCASE") {
			analyzer = index.LowerKeyword
		}
		fields = append(fields, index.FieldSpec{Name: name, Analyzer: analyzer})
	}
	return fields, nil
}

func (r *reader) TermQuery(ctx context.Context, field, value string, limit int) ([]index.Document, error) {
	col := columnName(field)

	q := fmt.Sprintf("SELECT * FROM documents WHERE %s = ?", quoteIdent(col))
	var args []any
	args = append(args, value)
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, IndexQueryError(field, value, err)
	}
	defer rows.Close()

	colNames, err := rows.Columns()
	if err != nil {
		return nil, IndexQueryError(field, value, err)
	}

	var docs []index.Document
	for rows.Next() {
		vals := make([]any, len(colNames))
		ptrs := make([]any, len(colNames))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, IndexQueryError(field, value, err)
		}

		doc := index.Document{}
		for i, name := range colNames {
			s, _ := vals[i].(string)
			doc.Fields = append(doc.Fields, index.Field{Name: name, Value: s})
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (r *reader) Close() error {
	return r.db.Close()
}
