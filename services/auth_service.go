package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront/entity"
	"storefront/repository"
	"storefront/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles registration, login and profile access.
type AuthService struct {
	DB        *gorm.DB
	Repo      *repository.UserRepository
	JWTSecret string
	JWTTTL    time.Duration
}

func NewAuthService(db *gorm.DB, repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{DB: db, Repo: repo, JWTSecret: secret, JWTTTL: ttl}
}

// Register creates a user with a bcrypt-hashed password. The very first
// registered user becomes the admin; the count and insert share one
// transaction so two racing first registrations cannot both win.
func (s *AuthService) Register(name, email, password string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalid)
	}

	count, err := s.Repo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("email %s: %w", email, ErrDuplicate)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: string(hashed),
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		total, err := s.Repo.Count(tx)
		if err != nil {
			return err
		}
		user.IsAdmin = total == 0
		return s.Repo.Create(tx, user)
	})
	if err != nil {
		// The unique index catches the race the pre-check missed.
		if strings.Contains(err.Error(), "UNIQUE") || strings.Contains(err.Error(), "duplicate") {
			return nil, fmt.Errorf("email %s: %w", email, ErrDuplicate)
		}
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues a signed token. The same
// message covers unknown email and wrong password.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.Repo.FindByEmail(email)
	if err != nil {
		return "", nil, errors.New("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid email or password")
	}

	token, err := utils.GenerateToken(user.ID, user.Role(), s.JWTSecret, s.JWTTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

func (s *AuthService) Profile(userID uint) (*entity.User, error) {
	user, err := s.Repo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", userID, ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}

// SetProfilePic stores the saved upload filename on the user.
func (s *AuthService) SetProfilePic(userID uint, filename string) error {
	if _, err := s.Profile(userID); err != nil {
		return err
	}
	return s.Repo.UpdateProfilePic(userID, filename)
}
