// Package seeder clears and repopulates the remote store with the demo
// dataset: categories, customizations, menu items with re-hosted
// images, and the menu↔customization join records.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/krycha420/fast-food/config"
	"github.com/krycha420/fast-food/data"
	"github.com/krycha420/fast-food/models"
	"github.com/krycha420/fast-food/store"
)

// ErrSeedInProgress is returned when Run is called while another run
// holds the single-flight lock.
var ErrSeedInProgress = errors.New("seed already in progress")

// DocumentStore is the slice of the document API the seeder needs.
type DocumentStore interface {
	ListAllDocuments(ctx context.Context, databaseID, collectionID string) ([]store.Document, error)
	CreateDocument(ctx context.Context, databaseID, collectionID, documentID string, data any) (*store.Document, error)
	DeleteDocument(ctx context.Context, databaseID, collectionID, documentID string) error
}

// FileStore is the slice of the bucket API the seeder needs.
type FileStore interface {
	ListAllFiles(ctx context.Context, bucketID string) ([]store.File, error)
	CreateFile(ctx context.Context, bucketID, fileID, filename string, content []byte) (*store.File, error)
	DeleteFile(ctx context.Context, bucketID, fileID string) error
	FileViewURL(bucketID, fileID string) string
}

// HTTPDoer fetches source images.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Seeder struct {
	db     DocumentStore
	files  FileStore
	images HTTPDoer
	cfg    config.StoreConfig

	mu sync.Mutex // single-flight guard, scoped to this instance
}

// New builds a Seeder. A nil images client falls back to
// http.DefaultClient.
func New(db DocumentStore, files FileStore, images HTTPDoer, cfg config.StoreConfig) *Seeder {
	if images == nil {
		images = http.DefaultClient
	}
	return &Seeder{db: db, files: files, images: images, cfg: cfg}
}

// Run clears the four collections and the bucket, then recreates the
// dataset. Per-item failures are recorded in the report and skipped;
// only structural failures (listing calls, hard delete errors, context
// cancellation) abort the run, returning the partial report and the
// error. A second concurrent call returns ErrSeedInProgress without
// side effects.
func (s *Seeder) Run(ctx context.Context, set data.Dataset) (*Report, error) {
	if !s.mu.TryLock() {
		log.Println("Seed already running, ignoring trigger")
		return nil, ErrSeedInProgress
	}
	defer s.mu.Unlock()

	rep := newReport()
	defer rep.finish()

	for _, col := range []string{
		s.cfg.CategoriesCollectionID,
		s.cfg.CustomizationsCollectionID,
		s.cfg.MenuCollectionID,
		s.cfg.MenuCustomizationsCollectionID,
	} {
		n, err := s.clearCollection(ctx, col)
		rep.Cleared[col] = n
		if err != nil {
			return rep, fmt.Errorf("clear collection %q: %w", col, err)
		}
	}
	n, err := s.clearStorage(ctx)
	rep.Cleared["bucket:"+s.cfg.BucketID] = n
	if err != nil {
		return rep, fmt.Errorf("clear storage: %w", err)
	}

	categories := s.createCategories(ctx, set.Categories, rep)
	customizations := s.createCustomizations(ctx, set.Customizations, rep)
	s.createMenu(ctx, set.Menu, categories, customizations, rep)

	log.Printf("✅ Seed complete: %v", rep.Summary())
	return rep, nil
}

// clearCollection lists every document (paging past the store's page
// limit) and deletes them concurrently. The returned count is the
// number of documents the listing saw.
func (s *Seeder) clearCollection(ctx context.Context, collectionID string) (int, error) {
	docs, err := s.db.ListAllDocuments(ctx, s.cfg.DatabaseID, collectionID)
	if err != nil {
		return 0, fmt.Errorf("list documents: %w", err)
	}
	g, gctx := errgroup.WithContext(ctx)
	for _, doc := range docs {
		doc := doc
		g.Go(func() error {
			return s.deleteDocumentSafely(gctx, collectionID, doc.ID)
		})
	}
	return len(docs), g.Wait()
}

func (s *Seeder) clearStorage(ctx context.Context) (int, error) {
	files, err := s.files.ListAllFiles(ctx, s.cfg.BucketID)
	if err != nil {
		return 0, fmt.Errorf("list files: %w", err)
	}
	g, gctx := errgroup.WithContext(ctx)
	for _, f := range files {
		f := f
		g.Go(func() error {
			return s.deleteFileSafely(gctx, f.ID)
		})
	}
	return len(files), g.Wait()
}

// deleteDocumentSafely removes one document, treating "not found" as
// success so deletes are idempotent.
func (s *Seeder) deleteDocumentSafely(ctx context.Context, collectionID, documentID string) error {
	err := s.db.DeleteDocument(ctx, s.cfg.DatabaseID, collectionID, documentID)
	if err != nil && !store.IsNotFound(err) {
		return err
	}
	return nil
}

// deleteFileSafely is deleteDocumentSafely for bucket files.
func (s *Seeder) deleteFileSafely(ctx context.Context, fileID string) error {
	err := s.files.DeleteFile(ctx, s.cfg.BucketID, fileID)
	if err != nil && !store.IsNotFound(err) {
		return err
	}
	return nil
}

func (s *Seeder) createCategories(ctx context.Context, categories []models.Category, rep *Report) *RefMap {
	refs := NewRefMap()
	for _, cat := range categories {
		doc, err := s.db.CreateDocument(ctx, s.cfg.DatabaseID, s.cfg.CategoriesCollectionID, "", cat)
		if err != nil {
			log.Printf("Skipping category %q: %v", cat.Name, err)
			rep.Categories = append(rep.Categories, skipped(cat.Name, err))
			continue
		}
		refs.Put(cat.Name, doc.ID)
		rep.Categories = append(rep.Categories, created(cat.Name, doc.ID))
	}
	return refs
}

func (s *Seeder) createCustomizations(ctx context.Context, customizations []models.Customization, rep *Report) *RefMap {
	refs := NewRefMap()
	for _, cus := range customizations {
		doc, err := s.db.CreateDocument(ctx, s.cfg.DatabaseID, s.cfg.CustomizationsCollectionID, "", cus)
		if err != nil {
			log.Printf("Skipping customization %q: %v", cus.Name, err)
			rep.Customizations = append(rep.Customizations, skipped(cus.Name, err))
			continue
		}
		refs.Put(cus.Name, doc.ID)
		rep.Customizations = append(rep.Customizations, created(cus.Name, doc.ID))
	}
	return refs
}

// createMenu processes items one at a time: image first, then the
// document, then one join record per listed customization. A skipped
// item gets no join records; a failed join does not abort its siblings.
func (s *Seeder) createMenu(ctx context.Context, menu []data.MenuItem, categories, customizations *RefMap, rep *Report) {
	for _, item := range menu {
		payload := models.MenuItem{
			Name:        item.Name,
			Description: item.Description,
			ImageURL:    s.materializeImage(ctx, item.SourceImageURL),
			Price:       item.Price,
			Rating:      item.Rating,
			Calories:    item.Calories,
			Protein:     item.Protein,
			CategoryID:  categories.Get(item.CategoryName),
		}
		doc, err := s.db.CreateDocument(ctx, s.cfg.DatabaseID, s.cfg.MenuCollectionID, "", payload)
		if err != nil {
			log.Printf("Skipping menu item %q: %v", item.Name, err)
			rep.MenuItems = append(rep.MenuItems, skipped(item.Name, err))
			continue
		}
		rep.MenuItems = append(rep.MenuItems, created(item.Name, doc.ID))

		for _, name := range item.Customizations {
			linkName := item.Name + " / " + name
			custID := customizations.Get(name)
			if custID == "" {
				rep.Links = append(rep.Links, skipped(linkName, fmt.Errorf("unknown customization %q", name)))
				continue
			}
			link := models.MenuCustomization{MenuID: doc.ID, CustomizationID: custID}
			linkDoc, err := s.db.CreateDocument(ctx, s.cfg.DatabaseID, s.cfg.MenuCustomizationsCollectionID, "", link)
			if err != nil {
				log.Printf("Skipping link %q: %v", linkName, err)
				rep.Links = append(rep.Links, skipped(linkName, err))
				continue
			}
			rep.Links = append(rep.Links, created(linkName, linkDoc.ID))
		}
	}
}
