package event

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/levelup/levelup-backend/internal/auditlog"
	"github.com/levelup/levelup-backend/internal/auth"
	"github.com/levelup/levelup-backend/internal/game"
	"github.com/levelup/levelup-backend/internal/gamer"
	"github.com/levelup/levelup-backend/internal/gametype"
	"github.com/levelup/levelup-backend/internal/notification"
	"github.com/levelup/levelup-backend/internal/testutil"
	"github.com/levelup/levelup-backend/middleware"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type capturePublisher struct {
	mu   sync.Mutex
	msgs []notification.Message
}

func (p *capturePublisher) Publish(_ context.Context, msg notification.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, msg)
	return nil
}

func (p *capturePublisher) Close() error { return nil }

func (p *capturePublisher) kinds() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.msgs))
	for _, m := range p.msgs {
		out = append(out, m.Kind)
	}
	return out
}

type fixture struct {
	t      *testing.T
	db     *gorm.DB
	svc    *Service
	games  *game.Service
	gamers *gamer.Service
	audit  auditlog.Service
	pub    *capturePublisher
	router *gin.Engine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.OpenDB(t,
		&auth.User{}, &gamer.Gamer{}, &gametype.GameType{}, &game.Game{},
		&Event{}, &Attendee{}, &auditlog.AuditLog{},
	)
	if _, err := gametype.SeedDefault(db); err != nil {
		t.Fatalf("seed game type: %v", err)
	}

	gamerSvc := gamer.NewService(gamer.NewRepository(db))
	gameSvc := game.NewService(game.NewRepository(db), gametype.NewRepository(db), gamerSvc)
	auditSvc := auditlog.NewService(auditlog.NewRepository(db))
	pub := &capturePublisher{}
	svc := NewService(NewRepository(db), gameSvc, gamerSvc, auditSvc, pub)

	f := &fixture{t: t, db: db, svc: svc, games: gameSvc, gamers: gamerSvc, audit: auditSvc, pub: pub}
	f.router = f.newRouter()
	return f
}

// newRouter mounts the event routes behind a header-based stand-in for AuthMiddleware.
func (f *fixture) newRouter() *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if v := c.GetHeader("X-Test-User"); v != "" {
			id, _ := strconv.Atoi(v)
			middleware.SetAccessContext(c, middleware.AccessContext{UserID: uint(id)})
		}
		c.Next()
	})
	h := NewHandler(f.svc)
	g := r.Group("/events")
	g.GET("", h.ListEvents)
	g.POST("", h.CreateEvent)
	g.GET("/:id", h.GetEventByID)
	g.PUT("/:id", h.UpdateEvent)
	g.DELETE("/:id", h.DeleteEvent)
	g.POST("/:id/signup", h.Signup)
	g.DELETE("/:id/leave", h.Leave)
	g.GET("/:id/attendees", h.ListAttendees)
	return r
}

// addGamer registers a user with a gamer profile and returns the user id and gamer.
func (f *fixture) addGamer(name string) (uint, *gamer.Gamer) {
	f.t.Helper()
	u := &auth.User{FullName: name, Email: name + "@example.com", PasswordHash: "x"}
	if err := f.db.Create(u).Error; err != nil {
		f.t.Fatalf("create user: %v", err)
	}
	if err := f.gamers.CreateProfile(nil, u.ID, ""); err != nil {
		f.t.Fatalf("create gamer: %v", err)
	}
	g, err := f.gamers.Resolve(context.Background(), u.ID)
	if err != nil {
		f.t.Fatalf("resolve gamer: %v", err)
	}
	return u.ID, g
}

func (f *fixture) addGame(ownerUserID uint, title string) *game.Game {
	f.t.Helper()
	g, err := f.games.Create(context.Background(), ownerUserID, &game.CreateGameRequest{
		Title: title, Maker: "Maker", NumberOfPlayers: 4, SkillLevel: 2,
	})
	if err != nil {
		f.t.Fatalf("create game: %v", err)
	}
	return g
}

func (f *fixture) addEvent(userID, gameID uint, description string) *Event {
	f.t.Helper()
	e, err := f.svc.CreateEvent(context.Background(), Caller{UserID: userID}, &EventRequest{
		Description: description, Date: "2024-01-01", Time: "18:00", Game: gameID,
	})
	if err != nil {
		f.t.Fatalf("create event: %v", err)
	}
	return e
}

func (f *fixture) do(method, path string, userID uint, body interface{}) *httptest.ResponseRecorder {
	f.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			f.t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		req.Header.Set("X-Test-User", strconv.FormatUint(uint64(userID), 10))
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *fixture) attendeeCount(eventID uint) int64 {
	f.t.Helper()
	counts, err := f.svc.AttendeeCounts(context.Background(), []uint{eventID})
	if err != nil {
		f.t.Fatalf("count attendees: %v", err)
	}
	return counts[eventID]
}
