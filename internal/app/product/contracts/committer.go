package contracts

import (
	"context"

	"github.com/murkotick/product-catalog-manager/internal/pkg/committer"
)

// Committer applies the file writes of one save. Usecases build the plan and
// stay independent of how files actually reach the disk.
type Committer interface {
	Apply(ctx context.Context, plan *committer.Plan) error
}
