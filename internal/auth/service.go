package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/levelup/levelup-backend/config"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// ProfileCreator creates the gamer profile that belongs to a new user.
// It runs inside the registration transaction and must write through tx.
type ProfileCreator interface {
	CreateProfile(tx *gorm.DB, userID uint, bio string) error
}

type Service interface {
	Register(input RegisterInput) (string, *User, error)
	Login(input LoginInput) (string, *User, error)
	ParseAccessToken(token string) (uint, error)
	GetUserByID(userID uint) (User, error)
}

type service struct {
	repo         Repository
	profiles     ProfileCreator
	accessSecret string
	accessTTL    time.Duration
}

func NewService(r Repository, profiles ProfileCreator, cfg *config.Config) Service {
	ttl := time.Duration(cfg.JWTAccessTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &service{
		repo:         r,
		profiles:     profiles,
		accessSecret: cfg.JWTAccessSecret,
		accessTTL:    ttl,
	}
}

// =============================
// Register
// =============================

type RegisterInput struct {
	FullName string
	Email    string
	Password string
	Bio      string
}

func (s *service) Register(in RegisterInput) (string, *User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := s.repo.FindByEmail(email); err == nil {
		return "", nil, ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return "", nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user := &User{
		FullName:     strings.TrimSpace(in.FullName),
		Email:        email,
		PasswordHash: string(hash),
	}
	// user and gamer profile are created together or not at all
	err = s.repo.WithTransaction(func(tx *gorm.DB) error {
		if err := NewRepository(tx).Create(user); err != nil {
			return err
		}
		if s.profiles == nil {
			return nil
		}
		if err := s.profiles.CreateProfile(tx, user.ID, in.Bio); err != nil {
			return fmt.Errorf("create gamer profile: %w", err)
		}
		return nil
	})
	if err != nil {
		// a concurrent registration won the unique index on email
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", nil, ErrEmailTaken
		}
		return "", nil, err
	}

	token, err := s.generateAccessToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// =============================
// Login
// =============================

type LoginInput struct {
	Email    string
	Password string
}

func (s *service) Login(in LoginInput) (string, *User, error) {
	user, err := s.repo.FindByEmail(strings.TrimSpace(in.Email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.generateAccessToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *service) generateAccessToken(user *User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(s.accessTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.accessSecret))
}

// ParseAccessToken validates an access token and returns the user id it was issued for.
func (s *service) ParseAccessToken(tokenStr string) (uint, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.accessSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	userIDFloat, ok := claims["user_id"].(float64)
	if !ok || userIDFloat < 1 {
		return 0, ErrInvalidToken
	}
	return uint(userIDFloat), nil
}

// =============================
// Get User By ID
// =============================

func (s *service) GetUserByID(userID uint) (User, error) {
	return s.repo.FindByID(userID)
}
