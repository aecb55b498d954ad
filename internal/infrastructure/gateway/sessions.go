package gateway

import (
	"context"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/sporthub/webapp/internal/core/domain"
	"github.com/sporthub/webapp/internal/core/ports"
)

// SessionsClient talks to the session resources of the activities service.
type SessionsClient struct {
	c *client
}

func NewSessionsClient(baseURL string, log zerolog.Logger) *SessionsClient {
	return &SessionsClient{c: newClient(baseURL, "activities", log)}
}

func (s *SessionsClient) GetByActivity(ctx context.Context, activityID int64, token string) ([]domain.Session, error) {
	var out []domain.Session
	path := "/activities/" + strconv.FormatInt(activityID, 10) + "/sessions"
	if err := s.c.do(ctx, "list_sessions", http.MethodGet, path, nil, nil, &out, token); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SessionsClient) GetByID(ctx context.Context, id int64, token string) (*domain.Session, error) {
	var out domain.Session
	path := "/sessions/" + strconv.FormatInt(id, 10)
	if err := s.c.do(ctx, "get_session", http.MethodGet, path, nil, nil, &out, token); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SessionsClient) CreateForActivity(ctx context.Context, activityID int64, input ports.CreateSessionInput, token string) (*domain.Session, error) {
	var out domain.Session
	path := "/activities/" + strconv.FormatInt(activityID, 10) + "/sessions"
	if err := s.c.do(ctx, "create_session", http.MethodPost, path, nil, input, &out, token); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create uses the alternate top-level endpoint. Kept for parity with the
// activities service contract; the admin console uses CreateForActivity.
func (s *SessionsClient) Create(ctx context.Context, input ports.CreateSessionDirectInput, token string) (*domain.Session, error) {
	var out domain.Session
	if err := s.c.do(ctx, "create_session_direct", http.MethodPost, "/sessions", nil, input, &out, token); err != nil {
		return nil, err
	}
	return &out, nil
}
