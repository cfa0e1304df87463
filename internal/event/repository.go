package event

import (
	"context"
	"errors"

	"github.com/levelup/levelup-backend/internal/gamer"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) withRelations(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).Preload("Game").Preload("Organizer.User")
}

// ===========================
// 🎯 Create Event
func (r *Repository) CreateEvent(ctx context.Context, e *Event) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Create(e).Error
}

// ===========================
// 🔍 Get Event By ID with game and organizer
func (r *Repository) GetEventByID(ctx context.Context, id uint) (*Event, error) {
	var e Event
	err := r.withRelations(ctx).First(&e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ===========================
// 📄 List Events, optionally for a single game
func (r *Repository) ListEvents(ctx context.Context, gameID *uint) ([]Event, error) {
	events := []Event{}
	query := r.withRelations(ctx)
	if gameID != nil {
		query = query.Where("game_id = ?", *gameID)
	}
	err := query.Order("id ASC").Find(&events).Error
	return events, err
}

// ===========================
// 🛠 Update Event
func (r *Repository) UpdateEvent(ctx context.Context, e *Event) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Save(e).Error
}

// ===========================
// ❌ Delete Event and its attendee rows
func (r *Repository) DeleteEvent(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&Attendee{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&Event{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrEventNotFound
		}
		return nil
	})
}

func (r *Repository) EventExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&Event{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ===========================
// 👥 Attendee set

// AddAttendee is a no-op when the gamer is already attending.
func (r *Repository) AddAttendee(ctx context.Context, eventID, gamerID uint) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&Attendee{EventID: eventID, GamerID: gamerID}).Error
}

// RemoveAttendee is a no-op when the gamer is not attending.
func (r *Repository) RemoveAttendee(ctx context.Context, eventID, gamerID uint) error {
	return r.DB.WithContext(ctx).
		Where("event_id = ? AND gamer_id = ?", eventID, gamerID).
		Delete(&Attendee{}).Error
}

func (r *Repository) ListAttendees(ctx context.Context, eventID uint) ([]gamer.Gamer, error) {
	gamers := []gamer.Gamer{}
	err := r.DB.WithContext(ctx).
		Preload("User").
		Joins("JOIN event_attendees ea ON ea.gamer_id = gamers.id").
		Where("ea.event_id = ?", eventID).
		Order("gamers.id ASC").
		Find(&gamers).Error
	return gamers, err
}

// AttendeeCounts returns the attendee count per event; events with none are absent.
func (r *Repository) AttendeeCounts(ctx context.Context, eventIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(eventIDs))
	if len(eventIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		EventID uint
		Total   int64
	}
	err := r.DB.WithContext(ctx).
		Model(&Attendee{}).
		Select("event_id, COUNT(*) AS total").
		Where("event_id IN ?", eventIDs).
		Group("event_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.EventID] = row.Total
	}
	return counts, nil
}
