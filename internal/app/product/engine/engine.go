// Package engine is the entry point the presentation layer talks to. It owns
// the working copy of the catalog and wires the usecases and queries around it.
package engine

import (
	"context"
	"errors"

	"go.uber.org/zap"

	contracts "github.com/murkotick/product-catalog-manager/internal/app/product/contracts"
	"github.com/murkotick/product-catalog-manager/internal/app/product/domain"
	"github.com/murkotick/product-catalog-manager/internal/app/product/dto"
	"github.com/murkotick/product-catalog-manager/internal/app/product/queries/get_product"
	"github.com/murkotick/product-catalog-manager/internal/app/product/queries/list_products"
	"github.com/murkotick/product-catalog-manager/internal/app/product/usecases/create_product"
	"github.com/murkotick/product-catalog-manager/internal/app/product/usecases/delete_product"
	"github.com/murkotick/product-catalog-manager/internal/app/product/usecases/save_catalog"
	"github.com/murkotick/product-catalog-manager/internal/app/product/usecases/update_product"
	"github.com/murkotick/product-catalog-manager/internal/pkg/clock"
	"github.com/murkotick/product-catalog-manager/internal/pkg/committer"
)

// Deps are the collaborators of an Engine. Store is required; the rest
// default to a filesystem committer, the real clock, no journal and a no-op logger.
type Deps struct {
	Store     contracts.ProductRepo
	Journal   contracts.JournalRepo
	Committer contracts.Committer
	Clock     clock.Clock
	Logger    *zap.Logger
}

// Commands groups write interactors.
type Commands struct {
	Create *create_product.Interactor
	Update *update_product.Interactor
	Delete *delete_product.Interactor
	Save   *save_catalog.Interactor
}

// Queries groups read handlers.
type Queries struct {
	Get  *get_product.Handler
	List *list_products.Handler
}

// Engine is the catalog façade. Mutations only touch memory; nothing reaches
// the disk until Save is called.
type Engine struct {
	catalog  *domain.Catalog
	store    contracts.ProductRepo
	logger   *zap.Logger
	commands Commands
	queries  Queries
}

// New wires an engine around an empty catalog. Call Load to read the file.
func New(d Deps) *Engine {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Clock == nil {
		d.Clock = clock.RealClock{}
	}
	if d.Committer == nil {
		d.Committer = committer.NewAdapter(d.Logger)
	}

	cat := domain.NewCatalog(nil)
	v := domain.NewValidator()

	return &Engine{
		catalog: cat,
		store:   d.Store,
		logger:  d.Logger,
		commands: Commands{
			Create: create_product.NewInteractor(cat, v, d.Clock),
			Update: update_product.NewInteractor(cat, v, d.Clock),
			Delete: delete_product.NewInteractor(cat, d.Clock),
			Save:   save_catalog.NewInteractor(cat, d.Store, d.Journal, d.Committer, d.Clock),
		},
		queries: Queries{
			Get:  get_product.NewHandler(cat),
			List: list_products.NewHandler(cat),
		},
	}
}

// Load replaces the working copy with the file contents and returns the
// number of products read. It never fails: unusable files load as empty.
func (e *Engine) Load() int {
	e.catalog.Reset(e.store.Load())
	return e.catalog.Len()
}

// LoadStrict is Load for callers that must not mistake a broken file for an
// empty catalog. On error the working copy is left unchanged.
func (e *Engine) LoadStrict() (int, error) {
	products, err := e.store.Read()
	if err != nil {
		return 0, err
	}
	e.catalog.Reset(products)
	return e.catalog.Len(), nil
}

// Create validates fields and appends a new product.
func (e *Engine) Create(fields domain.Fields) (*domain.Product, error) {
	known := e.catalog.Indices()
	p, err := e.commands.Create.Execute(create_product.Request{Fields: fields})
	if err != nil {
		e.logRejected("create", 0, err)
		return nil, err
	}
	e.logger.Info("product created", zap.Int64("id", p.ID()), zap.String("slug", p.Slug()))
	e.logNewIndexValues(known, p)
	return p, nil
}

// Update validates fields and replaces the product with the given id,
// keeping its position in the list.
func (e *Engine) Update(id int64, fields domain.Fields) (*domain.Product, error) {
	known := e.catalog.Indices()
	p, err := e.commands.Update.Execute(update_product.Request{ProductID: id, Fields: fields})
	if err != nil {
		e.logRejected("update", id, err)
		return nil, err
	}
	e.logger.Info("product updated", zap.Int64("id", p.ID()), zap.String("slug", p.Slug()))
	e.logNewIndexValues(known, p)
	return p, nil
}

// Delete removes the product with the given id; unknown ids are ignored.
// It reports whether a product was removed.
func (e *Engine) Delete(id int64) bool {
	removed := e.commands.Delete.Execute(delete_product.Request{ProductID: id})
	if removed {
		e.logger.Info("product deleted", zap.Int64("id", id))
	} else {
		e.logger.Debug("delete of unknown product ignored", zap.Int64("id", id))
	}
	return removed
}

// List returns the products in file/insertion order.
func (e *Engine) List() []*domain.Product {
	return e.queries.List.Execute()
}

// Rows returns the product list formatted for display.
func (e *Engine) Rows() []*dto.ProductRow {
	return e.queries.List.Rows()
}

// FindByID returns the product or domain.ErrProductNotFound.
func (e *Engine) FindByID(id int64) (*domain.Product, error) {
	return e.queries.Get.Execute(id)
}

// NextID is the id the next created product will receive.
func (e *Engine) NextID() int64 {
	return e.catalog.NextID()
}

// RefreshIndices recomputes the category and boutique suggestions.
func (e *Engine) RefreshIndices() {
	e.catalog.RefreshIndices()
}

// Categories returns the known categories in lexical order.
func (e *Engine) Categories() []string {
	return e.catalog.Indices().Categories()
}

// Boutiques returns the known boutiques in lexical order.
func (e *Engine) Boutiques() []string {
	return e.catalog.Indices().Boutiques()
}

// HasUnsavedChanges reports whether anything changed since the last load or save.
func (e *Engine) HasUnsavedChanges() bool {
	return e.catalog.HasChanges()
}

// PendingChanges returns the events recorded since the last load or save.
func (e *Engine) PendingChanges() []domain.DomainEvent {
	return e.catalog.DomainEvents()
}

// Save overwrites the catalog file with the working copy. On failure the
// working copy and its pending changes are untouched and Save may be retried.
func (e *Engine) Save(ctx context.Context) error {
	pending := len(e.catalog.DomainEvents())
	if err := e.commands.Save.Execute(ctx); err != nil {
		e.logger.Error("catalog save failed", zap.Error(err))
		return err
	}
	e.logger.Info("catalog saved",
		zap.Int("products", e.catalog.Len()),
		zap.Int("changes", pending))
	return nil
}

// logNewIndexValues notes a category or boutique that was not in use before
// p was written, which usually points at a typo in the form.
func (e *Engine) logNewIndexValues(known domain.Indices, p *domain.Product) {
	if c := p.Category(); c != "" && !known.HasCategory(c) {
		e.logger.Info("new category", zap.Int64("id", p.ID()), zap.String("category", c))
	}
	if b := p.Boutique(); b != "" && !known.HasBoutique(b) {
		e.logger.Info("new boutique", zap.Int64("id", p.ID()), zap.String("boutique", b))
	}
}

func (e *Engine) logRejected(op string, id int64, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		e.logger.Info(op+" rejected",
			zap.Int64("id", id),
			zap.String("field", verr.Field),
			zap.String("reason", verr.Err.Error()))
		return
	}
	e.logger.Warn(op+" failed", zap.Int64("id", id), zap.Error(err))
}
