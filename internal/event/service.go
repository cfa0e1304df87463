package event

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/levelup/levelup-backend/internal/auditlog"
	"github.com/levelup/levelup-backend/internal/game"
	"github.com/levelup/levelup-backend/internal/gamer"
	"github.com/levelup/levelup-backend/internal/notification"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrForbidden     = errors.New("only the organizer may modify this event")
)

const (
	MessageGamerAdded   = "Gamer added"
	MessageGamerRemoved = "Gamer removed"
)

// GameLookup resolves the game an event is for.
type GameLookup interface {
	Get(ctx context.Context, id uint) (*game.Game, error)
}

// GamerResolver maps an authenticated user id to the caller's gamer profile.
type GamerResolver interface {
	Resolve(ctx context.Context, userID uint) (*gamer.Gamer, error)
}

// Caller identifies who is acting. It is filled in at the HTTP boundary.
type Caller struct {
	UserID uint
	IP     string
}

// Service wraps business logic for gaming events
type Service struct {
	Repo     *Repository
	Games    GameLookup
	Gamers   GamerResolver
	AuditSvc auditlog.Service
	Notifier notification.Publisher

	// EnforceOrganizer restricts update and delete to the event's organizer.
	EnforceOrganizer bool
}

func NewService(r *Repository, games GameLookup, gamers GamerResolver, auditSvc auditlog.Service, notifier notification.Publisher) *Service {
	if notifier == nil {
		notifier = notification.NewNoop()
	}
	return &Service{
		Repo:             r,
		Games:            games,
		Gamers:           gamers,
		AuditSvc:         auditSvc,
		Notifier:         notifier,
		EnforceOrganizer: true,
	}
}

// ===========================
// 📄 List Events
func (s *Service) ListEvents(ctx context.Context, gameID *uint) ([]Event, error) {
	return s.Repo.ListEvents(ctx, gameID)
}

// ===========================
// 🔍 Get Event by ID
func (s *Service) GetEventByID(ctx context.Context, id uint) (*Event, error) {
	return s.Repo.GetEventByID(ctx, id)
}

// ===========================
// 🎯 Create Event
func (s *Service) CreateEvent(ctx context.Context, caller Caller, req *EventRequest) (*Event, error) {
	organizer, err := s.Gamers.Resolve(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	date, clock, err := normalizeSchedule(req.Date, req.Time)
	if err != nil {
		s.audit(ctx, caller, nil, auditlog.ActionEventCreated, map[string]interface{}{
			"date":  req.Date,
			"time":  req.Time,
			"error": err.Error(),
		}, auditlog.StatusFailure)
		return nil, err
	}
	description, err := normalizeDescription(req.Description)
	if err != nil {
		return nil, err
	}

	g, err := s.Games.Get(ctx, req.Game)
	if err != nil {
		return nil, err
	}

	e := &Event{
		Description: description,
		Date:        date,
		Time:        clock,
		GameID:      g.ID,
		OrganizerID: organizer.ID,
	}
	if err := s.Repo.CreateEvent(ctx, e); err != nil {
		s.audit(ctx, caller, nil, auditlog.ActionEventCreated, map[string]interface{}{
			"game_id": g.ID,
			"error":   err.Error(),
		}, auditlog.StatusFailure)
		return nil, err
	}
	e.Game = *g
	e.Organizer = *organizer

	s.audit(ctx, caller, &e.ID, auditlog.ActionEventCreated, map[string]interface{}{
		"game_id":      g.ID,
		"organizer_id": organizer.ID,
		"date":         e.Date,
		"time":         e.Time,
	}, auditlog.StatusSuccess)
	s.notify(ctx, notification.Message{
		Kind:    notification.KindEventCreated,
		EventID: e.ID,
		GamerID: organizer.ID,
		GameID:  g.ID,
	})

	return e, nil
}

// ===========================
// 🛠 Update Event
//
// The organizer is always set to the acting gamer. With EnforceOrganizer the
// acting gamer must already be the organizer, so ownership cannot move.
func (s *Service) UpdateEvent(ctx context.Context, caller Caller, id uint, req *EventRequest) error {
	e, err := s.Repo.GetEventByID(ctx, id)
	if err != nil {
		return err
	}

	actor, err := s.Gamers.Resolve(ctx, caller.UserID)
	if err != nil {
		return err
	}
	if s.EnforceOrganizer && e.OrganizerID != actor.ID {
		s.audit(ctx, caller, &e.ID, auditlog.ActionEventUpdated, map[string]interface{}{
			"organizer_id": e.OrganizerID,
			"actor_id":     actor.ID,
			"error":        ErrForbidden.Error(),
		}, auditlog.StatusFailure)
		return ErrForbidden
	}

	date, clock, err := normalizeSchedule(req.Date, req.Time)
	if err != nil {
		return err
	}
	description, err := normalizeDescription(req.Description)
	if err != nil {
		return err
	}

	g, err := s.Games.Get(ctx, req.Game)
	if err != nil {
		return err
	}

	previousOrganizer := e.OrganizerID
	e.Description = description
	e.Date = date
	e.Time = clock
	e.GameID = g.ID
	e.Game = *g
	e.OrganizerID = actor.ID
	e.Organizer = *actor

	if err := s.Repo.UpdateEvent(ctx, e); err != nil {
		return err
	}

	s.audit(ctx, caller, &e.ID, auditlog.ActionEventUpdated, map[string]interface{}{
		"game_id":            g.ID,
		"organizer_id":       actor.ID,
		"previous_organizer": previousOrganizer,
		"date":               e.Date,
		"time":               e.Time,
	}, auditlog.StatusSuccess)
	s.notify(ctx, notification.Message{
		Kind:    notification.KindEventUpdated,
		EventID: e.ID,
		GamerID: actor.ID,
		GameID:  g.ID,
	})
	return nil
}

// ===========================
// ❌ Delete Event
func (s *Service) DeleteEvent(ctx context.Context, caller Caller, id uint) error {
	e, err := s.Repo.GetEventByID(ctx, id)
	if err != nil {
		return err
	}

	if s.EnforceOrganizer {
		actor, err := s.Gamers.Resolve(ctx, caller.UserID)
		if err != nil {
			return err
		}
		if e.OrganizerID != actor.ID {
			s.audit(ctx, caller, &e.ID, auditlog.ActionEventDeleted, map[string]interface{}{
				"organizer_id": e.OrganizerID,
				"actor_id":     actor.ID,
				"error":        ErrForbidden.Error(),
			}, auditlog.StatusFailure)
			return ErrForbidden
		}
	}

	if err := s.Repo.DeleteEvent(ctx, e.ID); err != nil {
		return err
	}

	s.audit(ctx, caller, &e.ID, auditlog.ActionEventDeleted, map[string]interface{}{
		"game_id":      e.GameID,
		"organizer_id": e.OrganizerID,
	}, auditlog.StatusSuccess)
	s.notify(ctx, notification.Message{
		Kind:    notification.KindEventDeleted,
		EventID: e.ID,
		GamerID: e.OrganizerID,
		GameID:  e.GameID,
	})
	return nil
}

// ===========================
// ➕ Sign up for an Event
func (s *Service) Signup(ctx context.Context, caller Caller, id uint) (string, error) {
	attendee, err := s.Gamers.Resolve(ctx, caller.UserID)
	if err != nil {
		return "", err
	}
	if err := s.ensureEvent(ctx, id); err != nil {
		return "", err
	}

	if err := s.Repo.AddAttendee(ctx, id, attendee.ID); err != nil {
		return "", err
	}

	s.audit(ctx, caller, &id, auditlog.ActionEventSignup, map[string]interface{}{
		"gamer_id": attendee.ID,
		"message":  MessageGamerAdded,
	}, auditlog.StatusSuccess)
	s.notify(ctx, notification.Message{
		Kind:    notification.KindGamerJoined,
		EventID: id,
		GamerID: attendee.ID,
	})
	return MessageGamerAdded, nil
}

// ===========================
// ➖ Leave an Event
func (s *Service) Leave(ctx context.Context, caller Caller, id uint) (string, error) {
	attendee, err := s.Gamers.Resolve(ctx, caller.UserID)
	if err != nil {
		return "", err
	}
	if err := s.ensureEvent(ctx, id); err != nil {
		return "", err
	}

	if err := s.Repo.RemoveAttendee(ctx, id, attendee.ID); err != nil {
		return "", err
	}

	s.audit(ctx, caller, &id, auditlog.ActionEventLeave, map[string]interface{}{
		"gamer_id": attendee.ID,
		"message":  MessageGamerRemoved,
	}, auditlog.StatusSuccess)
	s.notify(ctx, notification.Message{
		Kind:    notification.KindGamerLeft,
		EventID: id,
		GamerID: attendee.ID,
	})
	return MessageGamerRemoved, nil
}

// ===========================
// 👥 Attendees of an Event
func (s *Service) ListAttendees(ctx context.Context, id uint) ([]gamer.Gamer, error) {
	if err := s.ensureEvent(ctx, id); err != nil {
		return nil, err
	}
	return s.Repo.ListAttendees(ctx, id)
}

// AttendeeCounts maps event id to attendee count for the given events.
func (s *Service) AttendeeCounts(ctx context.Context, eventIDs []uint) (map[uint]int64, error) {
	return s.Repo.AttendeeCounts(ctx, eventIDs)
}

func (s *Service) ensureEvent(ctx context.Context, id uint) error {
	ok, err := s.Repo.EventExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrEventNotFound
	}
	return nil
}

// audit never fails the request; a lost audit row is only logged.
func (s *Service) audit(ctx context.Context, caller Caller, eventID *uint, action string, details map[string]interface{}, status string) {
	if s.AuditSvc == nil {
		return
	}
	userID := caller.UserID
	if err := s.AuditSvc.LogAction(ctx, &userID, eventID, action, details, caller.IP, status); err != nil {
		log.Printf("⚠️ audit %s failed: %v", action, err)
	}
}

func (s *Service) notify(ctx context.Context, msg notification.Message) {
	if err := s.Notifier.Publish(ctx, msg); err != nil {
		log.Printf("⚠️ notify %s for event %d failed: %v", msg.Kind, msg.EventID, err)
	}
}

func normalizeDescription(raw string) (string, error) {
	d := strings.TrimSpace(raw)
	if d == "" {
		return "", fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	return d, nil
}

// normalizeSchedule accepts YYYY-MM-DD and HH:MM or HH:MM:SS.
func normalizeSchedule(rawDate, rawTime string) (string, string, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(rawDate))
	if err != nil {
		return "", "", fmt.Errorf("%w: invalid date format, use YYYY-MM-DD", ErrInvalidInput)
	}

	rawTime = strings.TrimSpace(rawTime)
	t, err := time.Parse(TimeLayout, rawTime)
	if err != nil {
		t, err = time.Parse("15:04", rawTime)
		if err != nil {
			return "", "", fmt.Errorf("%w: invalid time format, use HH:MM in 24-hour format", ErrInvalidInput)
		}
	}

	return d.Format(DateLayout), t.Format(TimeLayout), nil
}
