package gamer

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrGamerNotFound = errors.New("gamer not found")

type Repository interface {
	Create(ctx context.Context, g *Gamer) error
	GetByUserID(ctx context.Context, userID uint) (*Gamer, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, g *Gamer) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *repository) GetByUserID(ctx context.Context, userID uint) (*Gamer, error) {
	var g Gamer
	err := r.db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGamerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}
