package game

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/levelup/levelup-backend/internal/gamer"
	"github.com/levelup/levelup-backend/internal/gametype"
)

var ErrInvalidInput = errors.New("invalid input")

// GamerResolver maps an authenticated user id to the caller's gamer profile.
type GamerResolver interface {
	Resolve(ctx context.Context, userID uint) (*gamer.Gamer, error)
}

type Service struct {
	Repo      *Repository
	GameTypes *gametype.Repository
	Gamers    GamerResolver
}

func NewService(r *Repository, types *gametype.Repository, gamers GamerResolver) *Service {
	return &Service{Repo: r, GameTypes: types, Gamers: gamers}
}

// ===========================
// 🎯 Create Game
func (s *Service) Create(ctx context.Context, userID uint, req *CreateGameRequest) (*Game, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	owner, err := s.Gamers.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	var gt *gametype.GameType
	if req.GameType != nil {
		gt, err = s.GameTypes.GetByID(ctx, *req.GameType)
	} else {
		gt, err = s.GameTypes.GetByLabel(ctx, gametype.DefaultLabel)
	}
	if err != nil {
		return nil, err
	}

	g := &Game{
		Title:           strings.TrimSpace(req.Title),
		Maker:           strings.TrimSpace(req.Maker),
		NumberOfPlayers: req.NumberOfPlayers,
		SkillLevel:      req.SkillLevel,
		GameTypeID:      gt.ID,
		GameType:        *gt,
		GamerID:         owner.ID,
	}
	if err := s.Repo.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func validate(req *CreateGameRequest) error {
	title := strings.TrimSpace(req.Title)
	maker := strings.TrimSpace(req.Maker)
	switch {
	case title == "":
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	case utf8.RuneCountInString(title) > MaxTitleLength:
		return fmt.Errorf("%w: title must be at most %d characters", ErrInvalidInput, MaxTitleLength)
	case maker == "":
		return fmt.Errorf("%w: maker is required", ErrInvalidInput)
	case utf8.RuneCountInString(maker) > MaxMakerLength:
		return fmt.Errorf("%w: maker must be at most %d characters", ErrInvalidInput, MaxMakerLength)
	case req.NumberOfPlayers < 1:
		return fmt.Errorf("%w: number_of_players must be at least 1", ErrInvalidInput)
	}
	return nil
}

// ===========================
// 🔍 Get Game
func (s *Service) Get(ctx context.Context, id uint) (*Game, error) {
	return s.Repo.GetByID(ctx, id)
}

// ===========================
// 📄 List Games
func (s *Service) List(ctx context.Context, gameTypeID *uint) ([]Game, error) {
	return s.Repo.List(ctx, gameTypeID)
}
