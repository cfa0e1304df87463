package event

import (
	"github.com/levelup/levelup-backend/internal/game"
	"github.com/levelup/levelup-backend/internal/gamer"
)

// View is the wire shape of an event.
type View struct {
	ID          uint       `json:"id"`
	Description string     `json:"description"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	Game        game.View  `json:"game"`
	Organizer   gamer.View `json:"organizer"`
}

// ToView expects Game and Organizer.User to be loaded.
func ToView(e Event) View {
	return View{
		ID:          e.ID,
		Description: e.Description,
		Date:        e.Date,
		Time:        e.Time,
		Game:        game.ToView(e.Game),
		Organizer:   gamer.ToView(e.Organizer),
	}
}

func ToViews(events []Event) []View {
	out := make([]View, 0, len(events))
	for _, e := range events {
		out = append(out, ToView(e))
	}
	return out
}
