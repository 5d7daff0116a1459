package ports

import (
	"context"

	"github.com/cosbuyai/shopping-api/internal/core/domain"
)

// UserRepository defines the persistence interface for user accounts and
// their search history.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrUserExists when the
	// phone (or a non-empty email) is already taken; uniqueness is
	// enforced by the storage engine, not by a prior read.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// FindByLogin matches the login input against phone OR email.
	FindByLogin(ctx context.Context, login string) (*domain.User, error)

	// FindByPhoneOrEmail reports whether an account already holds either
	// identifier. Used as a fast pre-check before Create.
	FindByPhoneOrEmail(ctx context.Context, phone, email string) (*domain.User, error)

	// FindByID returns the full user document, search history included.
	FindByID(ctx context.Context, id string) (*domain.User, error)

	// AppendSearch pushes one history entry onto the user's search
	// history. A missing or malformed id is a silent no-op.
	AppendSearch(ctx context.Context, userID string, entry domain.SearchEntry) error
}
