package ports

import (
	"context"
	"encoding/json"

	"github.com/sporthub/webapp/internal/core/domain"
)

// LoginResult is the users service response to a successful login. UserID is
// numeric on the wire; json.Number keeps the opaque-string view the session
// store wants.
type LoginResult struct {
	Token  string      `json:"token"`
	UserID json.Number `json:"userId"`
	Role   string      `json:"role"`
}

// RegisterInput carries the fields of the registration form. The role is not
// part of the input; self-registration always creates a plain user.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// UsersGateway is the typed client for the users service.
type UsersGateway interface {
	// Login authenticates against POST /auth/login. The login field accepts
	// username or email.
	Login(ctx context.Context, login, password string) (*LoginResult, error)
	// Register creates an account via POST /users.
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// GetUserByID fetches a user record via GET /users/{id}. Requires a token.
	GetUserByID(ctx context.Context, id, token string) (*domain.User, error)
	// Health pings the service's liveness endpoint.
	Health(ctx context.Context) error
}
