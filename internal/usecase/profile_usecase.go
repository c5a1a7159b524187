package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"lexintake/internal/domain/entities"
	"lexintake/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidProfileID = errors.New("invalid profile id")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrInvalidRole      = errors.New("invalid role")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrWeakPassword     = errors.New("password too short")
	ErrEmailTaken       = errors.New("email already registered")
)

const minPasswordLength = 8

// IProfileUseCase manages staff accounts. All three operations are gated on
// the manage-users action, so only admins reach the repository.

type IProfileUseCase interface {
	List(ctx context.Context, actor entities.Role) ([]entities.Profile, error)
	UpdateRole(ctx context.Context, actor entities.Role, id string, role entities.Role) (entities.Profile, error)
	Provision(ctx context.Context, actor entities.Role, email, password string, role entities.Role) (entities.Profile, error)
}

type ProfileUseCase struct {
	repo interfaces.IProfileRepository
}

var _ IProfileUseCase = (*ProfileUseCase)(nil)

func NewProfileUseCase(repo interfaces.IProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{repo: repo}
}

func (u *ProfileUseCase) List(ctx context.Context, actor entities.Role) ([]entities.Profile, error) {
	if !actor.Allows(entities.ActionManageUsers) {
		return nil, ErrForbidden
	}
	return u.repo.List(ctx)
}

func (u *ProfileUseCase) UpdateRole(ctx context.Context, actor entities.Role, id string, role entities.Role) (entities.Profile, error) {
	if !actor.Allows(entities.ActionManageUsers) {
		return entities.Profile{}, ErrForbidden
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Profile{}, ErrInvalidProfileID
	}
	if _, ok := entities.ParseRole(string(role)); !ok {
		return entities.Profile{}, ErrInvalidRole
	}

	updated, err := u.repo.UpdateRole(ctx, id, role)
	if err != nil {
		return entities.Profile{}, err
	}
	if updated.ID == "" {
		return entities.Profile{}, ErrProfileNotFound
	}
	log.Printf("[profile][usecase] role updated profile_id=%s role=%s", updated.ID, updated.Role)
	return updated, nil
}

func (u *ProfileUseCase) Provision(ctx context.Context, actor entities.Role, email, password string, role entities.Role) (entities.Profile, error) {
	if !actor.Allows(entities.ActionManageUsers) {
		return entities.Profile{}, ErrForbidden
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return entities.Profile{}, ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return entities.Profile{}, ErrWeakPassword
	}
	if _, ok := entities.ParseRole(string(role)); !ok {
		return entities.Profile{}, ErrInvalidRole
	}

	if existing, err := u.repo.GetByEmail(ctx, email); err != nil {
		return entities.Profile{}, err
	} else if existing.ID != "" {
		return entities.Profile{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return entities.Profile{}, err
	}

	p := entities.Profile{
		ID:           uuid.NewString(),
		Email:        email,
		Role:         role,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Profile{}, err
	}
	log.Printf("[profile][usecase] provisioned profile_id=%s role=%s", created.ID, created.Role)
	return created, nil
}
