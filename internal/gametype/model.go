package gametype

// DefaultLabel names the game type that games fall back to when none is given.
const DefaultLabel = "General"

type GameType struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Label string `gorm:"type:varchar(50);uniqueIndex;not null" json:"label"`
}
