package ports

import (
	"context"

	"github.com/cosbuyai/shopping-api/internal/core/domain"
)

type AuthService interface {
	Signup(ctx context.Context, phone, email, password string) error
	Login(ctx context.Context, loginInput, password string) (*domain.User, error)
}
