package save_catalog

import (
	"context"

	"github.com/google/uuid"

	contracts "github.com/murkotick/product-catalog-manager/internal/app/product/contracts"
	"github.com/murkotick/product-catalog-manager/internal/app/product/domain"
	shared "github.com/murkotick/product-catalog-manager/internal/app/product/usecases/shared"
	"github.com/murkotick/product-catalog-manager/internal/pkg/clock"
	"github.com/murkotick/product-catalog-manager/internal/pkg/committer"
)

// Interactor writes the working copy to disk, together with the journal
// entries for every change made since the previous save.
type Interactor struct {
	Catalog     *domain.Catalog
	ProductRepo contracts.ProductRepo
	JournalRepo contracts.JournalRepo
	Committer   contracts.Committer
	Clock       clock.Clock
}

// NewInteractor constructs the interactor. journal may be nil to disable the change journal.
func NewInteractor(catalog *domain.Catalog, productRepo contracts.ProductRepo, journal contracts.JournalRepo, c contracts.Committer, clk clock.Clock) *Interactor {
	return &Interactor{
		Catalog:     catalog,
		ProductRepo: productRepo,
		JournalRepo: journal,
		Committer:   c,
		Clock:       clk,
	}
}

// Execute overwrites the catalog file. Pending changes are cleared only
// after every write succeeded, so a failed save can simply be retried.
func (it *Interactor) Execute(ctx context.Context) error {
	now := it.Clock.Now()

	// 1. Build commit plan
	plan := committer.NewPlan()

	// 2. Whole-file catalog write
	op, err := it.ProductRepo.SaveOp(it.Catalog.Products())
	if err != nil {
		return err
	}
	plan.Add(op)

	// 3. Journal entries (enriched)
	events := it.Catalog.DomainEvents()
	if it.JournalRepo != nil && len(events) > 0 {
		entries := make([]*contracts.JournalEntry, 0, len(events))
		for _, ev := range events {
			payload, err := shared.MarshalDomainEventPayload(ev)
			if err != nil {
				return err
			}
			entries = append(entries, &contracts.JournalEntry{
				EventID:      uuid.New().String(),
				EventType:    ev.EventType(),
				AggregateID:  ev.AggregateID(),
				PayloadJSON:  payload,
				CreatedAtUTC: now,
			})
		}
		jop, err := it.JournalRepo.AppendOp(entries)
		if err != nil {
			return err
		}
		plan.Add(jop)
	}

	// 4. Apply plan via Committer
	if err := it.Committer.Apply(ctx, plan); err != nil {
		return err
	}

	it.Catalog.ClearEvents()
	return nil
}
