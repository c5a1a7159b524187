package interfaces

import (
	"context"
	"lexintake/internal/domain/entities"
)

// IProfileRepository abstracts DynamoDB persistence for staff Profiles.

type IProfileRepository interface {
	Create(ctx context.Context, p entities.Profile) (entities.Profile, error)
	GetByID(ctx context.Context, id string) (entities.Profile, error)
	GetByEmail(ctx context.Context, email string) (entities.Profile, error)
	List(ctx context.Context) ([]entities.Profile, error)
	UpdateRole(ctx context.Context, id string, role entities.Role) (entities.Profile, error)
}
