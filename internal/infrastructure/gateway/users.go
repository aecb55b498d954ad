package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/sporthub/webapp/internal/core/domain"
	"github.com/sporthub/webapp/internal/core/ports"
)

// UsersClient talks to the users service.
type UsersClient struct {
	c *client
}

func NewUsersClient(baseURL string, log zerolog.Logger) *UsersClient {
	return &UsersClient{c: newClient(baseURL, "users", log)}
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Rol      string `json:"rol"`
}

// userRecord is the users service wire format: numeric id, Spanish role key.
type userRecord struct {
	ID       json.Number `json:"id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Rol      string      `json:"rol"`
}

func (r userRecord) toDomain() *domain.User {
	return &domain.User{
		ID:       r.ID.String(),
		Username: r.Username,
		Email:    r.Email,
		Role:     r.Rol,
	}
}

func (u *UsersClient) Login(ctx context.Context, login, password string) (*ports.LoginResult, error) {
	var out ports.LoginResult
	err := u.c.do(ctx, "login", http.MethodPost, "/auth/login", nil,
		loginRequest{Login: login, Password: password}, &out, "")
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates the account. Self-registration always sends rol "user";
// admin accounts are provisioned out of band.
func (u *UsersClient) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	var out userRecord
	err := u.c.do(ctx, "register", http.MethodPost, "/users", nil, registerRequest{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
		Rol:      domain.RoleUser,
	}, &out, "")
	if err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

func (u *UsersClient) GetUserByID(ctx context.Context, id, token string) (*domain.User, error) {
	var out userRecord
	if err := u.c.do(ctx, "get_user", http.MethodGet, "/users/"+id, nil, nil, &out, token); err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

func (u *UsersClient) Health(ctx context.Context) error {
	return u.c.health(ctx)
}
