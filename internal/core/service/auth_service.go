package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/cosbuyai/shopping-api/internal/api/metrics"
	"github.com/cosbuyai/shopping-api/internal/core/domain"
	"github.com/cosbuyai/shopping-api/internal/core/ports"
)

// bcryptCost matches the cost factor the original deployment was hashed
// with, so existing password hashes keep verifying.
const bcryptCost = 10

// AuthService implements signup and login.
type AuthService struct {
	repo ports.UserRepository
}

func NewAuthService(repo ports.UserRepository) *AuthService {
	return &AuthService{repo: repo}
}

// Signup registers a new account. The pre-insert lookup answers the common
// duplicate case cheaply; the unique index on the collection closes the
// race between two concurrent signups with the same phone.
func (s *AuthService) Signup(ctx context.Context, phone, email, password string) error {
	if existing, err := s.repo.FindByPhoneOrEmail(ctx, phone, email); err == nil && existing != nil {
		return domain.ErrUserExists
	} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}

	user := &domain.User{
		Phone:         phone,
		Email:         email,
		PasswordHash:  string(hash),
		CreatedAt:     time.Now().UTC(),
		SearchHistory: []domain.SearchEntry{},
	}

	if _, err := s.repo.Create(ctx, user); err != nil {
		return err
	}

	metrics.SignupsTotal.Inc()
	return nil
}

// Login locates the account by phone or email and verifies the password.
// The returned user never carries the hash into a response (json:"-").
func (s *AuthService) Login(ctx context.Context, loginInput, password string) (*domain.User, error) {
	user, err := s.repo.FindByLogin(ctx, loginInput)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("not_found").Inc()
		} else {
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("invalid_password").Inc()
		return nil, domain.ErrInvalidPassword
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return user, nil
}
