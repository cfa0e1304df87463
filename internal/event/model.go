package event

import (
	"time"

	"github.com/levelup/levelup-backend/internal/game"
	"github.com/levelup/levelup-backend/internal/gamer"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// ============================
// 🔷 GORM Event Model
type Event struct {
	ID          uint        `gorm:"primaryKey"`
	Description string      `gorm:"type:text;not null"`
	Date        string      `gorm:"type:varchar(10);not null;index"` // YYYY-MM-DD
	Time        string      `gorm:"type:varchar(8);not null"`        // HH:MM:SS
	GameID      uint        `gorm:"not null;index"`
	Game        game.Game   `gorm:"foreignKey:GameID"`
	OrganizerID uint        `gorm:"not null;index"`
	Organizer   gamer.Gamer `gorm:"foreignKey:OrganizerID"`
	CreatedAt   time.Time   `gorm:"autoCreateTime"`
	UpdatedAt   time.Time   `gorm:"autoUpdateTime"`
}

// Attendee is one (event, gamer) membership. The composite key makes the
// attendee relation a set.
type Attendee struct {
	EventID   uint      `gorm:"primaryKey;autoIncrement:false"`
	GamerID   uint      `gorm:"primaryKey;autoIncrement:false;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Attendee) TableName() string {
	return "event_attendees"
}

// ============================
// 🟡 Create / Update Event Request
type EventRequest struct {
	Description string `json:"description" binding:"required"`
	Date        string `json:"date" binding:"required"` // 🛠 string format: "2006-01-02"
	Time        string `json:"time" binding:"required"` // 🛠 "15:04" or "15:04:05"
	Game        uint   `json:"game" binding:"required"`
}
