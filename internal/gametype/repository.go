package gametype

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrGameTypeNotFound = errors.New("game type not found")

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) List(ctx context.Context) ([]GameType, error) {
	types := []GameType{}
	err := r.DB.WithContext(ctx).Order("id ASC").Find(&types).Error
	return types, err
}

func (r *Repository) GetByID(ctx context.Context, id uint) (*GameType, error) {
	var gt GameType
	err := r.DB.WithContext(ctx).First(&gt, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGameTypeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &gt, nil
}

func (r *Repository) GetByLabel(ctx context.Context, label string) (*GameType, error) {
	var gt GameType
	err := r.DB.WithContext(ctx).Where("label = ?", label).First(&gt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGameTypeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &gt, nil
}

// SeedDefault makes sure the fallback game type exists and returns it.
func SeedDefault(db *gorm.DB) (*GameType, error) {
	gt := GameType{Label: DefaultLabel}
	if err := db.Where(GameType{Label: DefaultLabel}).FirstOrCreate(&gt).Error; err != nil {
		return nil, err
	}
	return &gt, nil
}
