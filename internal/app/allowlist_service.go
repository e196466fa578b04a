package app

import (
	"context"

	"github.com/MiguelPimienta19/mcc-web/internal/domain"
)

type AllowlistRepository interface {
	AddAdmin(ctx context.Context, email string) error
	RemoveAdmin(ctx context.Context, email string) error
	ListAdmins(ctx context.Context) ([]string, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// AllowlistService manages the set of admin emails consumed by the
// authorization gate. There is no self-registration path: the first admin
// is seeded directly in the store.
type AllowlistService struct {
	repo AllowlistRepository
}

func NewAllowlistService(repo AllowlistRepository) *AllowlistService {
	return &AllowlistService{repo: repo}
}

func (s *AllowlistService) Add(ctx context.Context, email string) error {
	normalized := domain.NormalizeEmail(email)
	if !domain.ValidEmail(normalized) {
		return domain.ErrInvalidEmail
	}
	return s.repo.AddAdmin(ctx, normalized)
}

func (s *AllowlistService) Remove(ctx context.Context, email string) error {
	normalized := domain.NormalizeEmail(email)
	if !domain.ValidEmail(normalized) {
		return domain.ErrInvalidEmail
	}
	return s.repo.RemoveAdmin(ctx, normalized)
}

// List returns admin emails in lexicographic order.
func (s *AllowlistService) List(ctx context.Context) ([]string, error) {
	return s.repo.ListAdmins(ctx)
}
