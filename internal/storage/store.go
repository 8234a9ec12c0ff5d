// Package storage loads the static case study datasets.
package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/maruel/showcase/internal/models"
	"golang.org/x/sync/errgroup"
)

// Store holds the process-wide dataset. The first call to Load reads the
// documents from disk; every later call returns the same Database.
type Store struct {
	dir string

	once sync.Once
	db   *models.Database
}

// NewStore creates a Store reading documents from dir. Nothing is read until
// Load is called.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Load returns the dataset, reading it on first use.
//
// Load never fails: read or parse errors are logged and an empty Database is
// returned (and kept) instead. The returned Database must not be modified.
func (s *Store) Load(ctx context.Context) *models.Database {
	s.once.Do(func() {
		db, err := s.read(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "Failed to load dataset, serving empty data", "dir", s.dir, "err", err)
			db = models.EmptyDatabase()
		} else {
			slog.InfoContext(ctx, "Dataset loaded", "dir", s.dir,
				"case_studies", len(db.CaseStudies),
				"products", len(db.Products),
				"stack", len(db.Stack),
				"glossary", len(db.Glossary))
		}
		if dups := db.Duplicates(); len(dups) > 0 {
			slog.WarnContext(ctx, "Duplicate identifiers ignored", "ids", dups)
		}
		s.db = db
	})
	return s.db
}

func (s *Store) read(ctx context.Context) (*models.Database, error) {
	single := filepath.Join(s.dir, databaseFile)
	if _, err := os.Stat(single); err == nil {
		return readDatabaseDocument(single)
	}

	var (
		caseStudies []models.CaseStudy
		products    []models.Product
		stack       []models.StackEntry
		glossary    []models.GlossaryEntry
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		caseStudies, err = readDocument[models.CaseStudy](filepath.Join(s.dir, caseStudiesFile), "case_studies")
		return wrapDocErr(caseStudiesFile, err)
	})
	g.Go(func() error {
		var err error
		products, err = readDocument[models.Product](filepath.Join(s.dir, productsFile), "products")
		return wrapDocErr(productsFile, err)
	})
	g.Go(func() error {
		var err error
		stack, err = readDocument[models.StackEntry](filepath.Join(s.dir, stackFile), "stack")
		return wrapDocErr(stackFile, err)
	})
	g.Go(func() error {
		var err error
		glossary, err = readDocument[models.GlossaryEntry](filepath.Join(s.dir, glossaryFile), "glossary")
		// The glossary is optional.
		if errors.Is(err, os.ErrNotExist) {
			glossary, err = nil, nil
		}
		return wrapDocErr(glossaryFile, err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return models.NewDatabase(caseStudies, products, stack, glossary), nil
}

func wrapDocErr(name string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", name, err)
}
