package game

import (
	"time"

	"github.com/levelup/levelup-backend/internal/gamer"
	"github.com/levelup/levelup-backend/internal/gametype"
)

const (
	MaxTitleLength = 55
	MaxMakerLength = 55
)

// ============================
// 🔷 GORM Game Model
type Game struct {
	ID              uint              `gorm:"primaryKey" json:"id"`
	Title           string            `gorm:"type:varchar(55);not null" json:"title"`
	Maker           string            `gorm:"type:varchar(55);not null" json:"maker"`
	NumberOfPlayers int               `gorm:"not null;check:number_of_players >= 1" json:"number_of_players"`
	SkillLevel      int               `gorm:"not null" json:"skill_level"`
	GameTypeID      uint              `gorm:"not null;index" json:"game_type_id"`
	GameType        gametype.GameType `gorm:"foreignKey:GameTypeID" json:"-"`
	GamerID         uint              `gorm:"not null;index" json:"gamer_id"`
	Gamer           gamer.Gamer       `gorm:"foreignKey:GamerID" json:"-"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"-"`
}

// ============================
// 🟡 Create Game Request
type CreateGameRequest struct {
	Title           string `json:"title" binding:"required"`
	Maker           string `json:"maker" binding:"required"`
	NumberOfPlayers int    `json:"number_of_players"`
	SkillLevel      int    `json:"skill_level"`
	GameType        *uint  `json:"game_type,omitempty"`
}

// View is the nested game shape inside an event payload.
type View struct {
	ID              uint   `json:"id"`
	Title           string `json:"title"`
	Maker           string `json:"maker"`
	NumberOfPlayers int    `json:"number_of_players"`
	SkillLevel      int    `json:"skill_level"`
}

func ToView(g Game) View {
	return View{
		ID:              g.ID,
		Title:           g.Title,
		Maker:           g.Maker,
		NumberOfPlayers: g.NumberOfPlayers,
		SkillLevel:      g.SkillLevel,
	}
}

// Response is the standalone game resource.
type Response struct {
	View
	GameType gametype.GameType `json:"game_type"`
	GamerID  uint              `json:"gamer_id"`
}

func ToResponse(g Game) Response {
	return Response{View: ToView(g), GameType: g.GameType, GamerID: g.GamerID}
}
