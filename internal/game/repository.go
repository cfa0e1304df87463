package game

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrGameNotFound = errors.New("game not found")

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// ===========================
// 🎯 Create Game
func (r *Repository) Create(ctx context.Context, g *Game) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Create(g).Error
}

// ===========================
// 🔍 Get Game By ID
func (r *Repository) GetByID(ctx context.Context, id uint) (*Game, error) {
	var g Game
	err := r.DB.WithContext(ctx).Preload("GameType").First(&g, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// ===========================
// 📄 List Games, optionally for one game type
func (r *Repository) List(ctx context.Context, gameTypeID *uint) ([]Game, error) {
	games := []Game{}
	query := r.DB.WithContext(ctx).Preload("GameType")
	if gameTypeID != nil {
		query = query.Where("game_type_id = ?", *gameTypeID)
	}
	err := query.Order("id ASC").Find(&games).Error
	return games, err
}
