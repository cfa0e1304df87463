package database

import (
	"fmt"
	"log"

	"github.com/levelup/levelup-backend/internal/auditlog"
	"github.com/levelup/levelup-backend/internal/auth"
	"github.com/levelup/levelup-backend/internal/event"
	"github.com/levelup/levelup-backend/internal/game"
	"github.com/levelup/levelup-backend/internal/gamer"
	"github.com/levelup/levelup-backend/internal/gametype"
	"gorm.io/gorm"
)

// Migrate creates or updates every table and seeds the default game type.
func Migrate(db *gorm.DB) error {
	log.Println("🔄 Running database migrations...")
	if err := db.AutoMigrate(
		&auth.User{},
		&gamer.Gamer{},
		&gametype.GameType{},
		&game.Game{},
		&event.Event{},
		&event.Attendee{},
		&auditlog.AuditLog{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	gt, err := gametype.SeedDefault(db)
	if err != nil {
		return fmt.Errorf("seed game type: %w", err)
	}
	log.Printf("✅ Database migrations completed (default game type %q #%d)", gt.Label, gt.ID)
	return nil
}
