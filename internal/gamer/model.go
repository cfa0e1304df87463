package gamer

import (
	"time"

	"github.com/levelup/levelup-backend/internal/auth"
)

// Gamer is the platform profile of a registered user.
type Gamer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	User      auth.User `gorm:"foreignKey:UserID" json:"-"`
	Bio       string    `gorm:"type:varchar(255)" json:"bio"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// FullName is read from the owning user; User must be preloaded.
func (g Gamer) FullName() string {
	return g.User.FullName
}

// View is the {id, full_name} projection used for organizers and attendees.
type View struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
}

func ToView(g Gamer) View {
	return View{ID: g.ID, FullName: g.FullName()}
}

// ProfileResponse is returned by GET /gamers/me.
type ProfileResponse struct {
	ID       uint   `json:"id"`
	UserID   uint   `json:"user_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Bio      string `json:"bio"`
}
