package gamer

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// Service resolves authenticated users to their gamer profiles.
type Service struct {
	Repo Repository
}

func NewService(r Repository) *Service {
	return &Service{Repo: r}
}

// CreateProfile is called once per user at registration. A non-nil tx scopes
// the insert to the caller's transaction.
func (s *Service) CreateProfile(tx *gorm.DB, userID uint, bio string) error {
	repo := s.Repo
	if tx != nil {
		repo = NewRepository(tx)
	}
	return repo.Create(context.Background(), &Gamer{
		UserID: userID,
		Bio:    strings.TrimSpace(bio),
	})
}

// Resolve maps the caller's user id to a gamer; ErrGamerNotFound when no profile exists.
func (s *Service) Resolve(ctx context.Context, userID uint) (*Gamer, error) {
	return s.Repo.GetByUserID(ctx, userID)
}
