package interfaces

import (
	"context"
	"lexintake/internal/domain/entities"
)

// ILeadRepository abstracts DynamoDB persistence for Lead.
//
// List returns the full lead set ordered by the requested field; ties keep
// insertion order (stable sort). SetArchived and Delete return the zero
// Lead when the id no longer exists, so stale staff actions surface as
// not-found instead of failing loudly at the storage layer.

type ILeadRepository interface {
	Create(ctx context.Context, l entities.Lead) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	List(ctx context.Context, orderBy entities.LeadOrderBy, direction entities.SortDirection) ([]entities.Lead, error)
	SetArchived(ctx context.Context, id string, archived bool) (entities.Lead, error)
	Delete(ctx context.Context, id string) (entities.Lead, error)
}
