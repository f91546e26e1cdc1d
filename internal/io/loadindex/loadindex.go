// Package loadindex builds the temporary loading index (C3):
// materializes every concept from a dwca.ConceptReader as a
// searchable document in a keyword-analyzer inverted index. The
// progress-reporting style is grounded on gnames-gndb's hierarchy
// builder (internal/io/populate/hierarchy.go progressReport); the
// worker-pool fan-out/fan-in shape that turns concepts into documents
// is grounded on the same file's buildHierarchy/hierarchyWorker.
package loadindex

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gnindexer/pkg/index"
	"github.com/gnames/gnindexer/pkg/taxon"
	"github.com/gnames/gnuuid"
	"golang.org/x/sync/errgroup"
)

// ConceptSource is the lazy sequence loadindex builds from. It is
// satisfied by *dwca.ConceptReader.
type ConceptSource interface {
	Next() (taxon.Concept, bool, error)
}

// fieldSpecs is the loading-index schema: identifiers are indexed
// terms; name/author/genus/specific/infraspecific are retrievable
// only; rank and rank_id are both; root is indexed (spec.md §4.3).
func fieldSpecs() []index.FieldSpec {
	return []index.FieldSpec{
		{Name: taxon.FieldID, Indexed: true, Analyzer: index.Keyword},
		{Name: taxon.FieldLSID, Indexed: true, Analyzer: index.Keyword},
		{Name: taxon.FieldParentID, Indexed: true, Analyzer: index.Keyword},
		{Name: taxon.FieldAcceptedID, Indexed: true, Analyzer: index.Keyword},
		{Name: taxon.FieldName, Indexed: false},
		{Name: taxon.FieldAuthor, Indexed: false},
		{Name: taxon.FieldGenus, Indexed: false},
		{Name: taxon.FieldSpecific, Indexed: false},
		{Name: taxon.FieldInfraspecific, Indexed: false},
		{Name: taxon.FieldRank, Indexed: true, Analyzer: index.Keyword},
		{Name: taxon.FieldRankID, Indexed: true, Analyzer: index.Keyword},
		{Name: taxon.FieldIsSynonym, Indexed: false},
		{Name: taxon.FieldRoot, Indexed: true, Analyzer: index.Keyword},
	}
}

// OpenWriterFunc abstracts the function that opens an index.Writer so
// tests can substitute a non-sqlite backend; internal/io/driver wires
// sqliteindex.OpenWriter.
type OpenWriterFunc func(ctx context.Context, dir string, fields []index.FieldSpec) (index.Writer, error)

// Build consumes src to exhaustion, writing one loading-index document
// per concept into dir. Concepts are converted to documents by a pool
// of jobsNum workers (1 if jobsNum < 1) fed by a single reader
// goroutine, the same fan-out/fan-in shape gnames-gndb's
// buildHierarchy uses to parallelize row processing ahead of a
// serialized writer. It commits and force-merges before returning.
func Build(ctx context.Context, openWriter OpenWriterFunc, dir string, src ConceptSource, jobsNum int, log *slog.Logger) (int, error) {
	if jobsNum < 1 {
		jobsNum = 1
	}

	w, err := openWriter(ctx, dir, fieldSpecs())
	if err != nil {
		return 0, err
	}

	chIn := make(chan taxon.Concept)
	chOut := make(chan index.Document)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	var workers sync.WaitGroup

	for i := 0; i < jobsNum; i++ {
		workers.Add(1)
		g.Go(func() error {
			defer workers.Done()
			for c := range chIn {
				select {
				case <-gctx.Done():
					return gctx.Err()
				case chOut <- toDocument(c):
				}
			}
			return nil
		})
	}

	go func() {
		workers.Wait()
		close(chOut)
	}()

	count := 0
	g.Go(func() error {
		for doc := range chOut {
			if err := w.Add(gctx, doc); err != nil {
				return err
			}
			count++
			if count%100_000 == 0 {
				progressReport(count, "loading-index records")
			}
		}
		return nil
	})

	feedErr := feedConcepts(gctx, src, chIn)
	close(chIn)

	if err := g.Wait(); err != nil {
		w.Close()
		return count, err
	}
	if feedErr != nil {
		w.Close()
		return count, feedErr
	}

	if count > 0 {
		fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", 80))
	}
	if log != nil {
		log.Info("Built loading index", "concepts", humanize.Comma(int64(count)))
	}

	if err := w.Commit(ctx); err != nil {
		w.Close()
		return count, err
	}
	if err := w.ForceMerge(ctx); err != nil {
		w.Close()
		return count, err
	}
	return count, w.Close()
}

func feedConcepts(ctx context.Context, src ConceptSource, chIn chan<- taxon.Concept) error {
	for {
		c, ok, err := src.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case chIn <- c:
		}
	}
}

// toDocument converts c into a loading-index document. A concept with
// no id at all (a malformed or truncated DwCA row that still carries a
// usable name) gets a deterministic fallback id derived from its
// scientific name, the same role gnuuid plays for nameStringID in
// gnames-gndb's synonym-indexing path, so it can still be queried and
// linked to by children even though the archive gave it nothing
// stable to key on.
func toDocument(c taxon.Concept) index.Document {
	if c.ID == "" && c.ScientificName != "" {
		c.ID = gnuuid.New(c.ScientificName).String()
	}

	rankID := taxon.ParseRank(c.RankString)
	isSynonym := taxon.IsSynonymFalse
	if !c.IsAccepted() {
		isSynonym = taxon.IsSynonymTrue
	}
	root := ""
	if c.IsRoot() {
		root = taxon.RootTrue
	}

	return index.Document{Fields: []index.Field{
		{Name: taxon.FieldID, Value: c.ID},
		{Name: taxon.FieldLSID, Value: c.EffectiveLSID()},
		{Name: taxon.FieldParentID, Value: c.ParentID},
		{Name: taxon.FieldAcceptedID, Value: c.AcceptedID},
		{Name: taxon.FieldName, Value: c.ScientificName},
		{Name: taxon.FieldAuthor, Value: c.Authorship},
		{Name: taxon.FieldGenus, Value: c.Genus},
		{Name: taxon.FieldSpecific, Value: c.SpecificEpithet},
		{Name: taxon.FieldInfraspecific, Value: c.InfraspecificEpithet},
		{Name: taxon.FieldRank, Value: c.RankString},
		{Name: taxon.FieldRankID, Value: strconv.Itoa(int(rankID))},
		{Name: taxon.FieldIsSynonym, Value: isSynonym},
		{Name: taxon.FieldRoot, Value: root},
	}}
}

func progressReport(recNum int, entity string) {
	str := fmt.Sprintf("Processed %s %s", humanize.Comma(int64(recNum)), entity)
	fmt.Fprintf(os.Stderr, "\r%s", strings.Repeat(" ", 80))
	fmt.Fprintf(os.Stderr, "\r%s", str)
}
