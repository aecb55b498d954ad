package gateway

import (
	"context"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/sporthub/webapp/internal/core/domain"
)

// EnrollmentsClient talks to the enrollment resources of the activities
// service.
type EnrollmentsClient struct {
	c *client
}

func NewEnrollmentsClient(baseURL string, log zerolog.Logger) *EnrollmentsClient {
	return &EnrollmentsClient{c: newClient(baseURL, "activities", log)}
}

// enrollRequest serializes the session id as a string, matching the
// activities service contract.
type enrollRequest struct {
	SessionID string `json:"sessionId"`
}

func (e *EnrollmentsClient) Enroll(ctx context.Context, sessionID int64, token string) (*domain.Enrollment, error) {
	var out domain.Enrollment
	body := enrollRequest{SessionID: strconv.FormatInt(sessionID, 10)}
	if err := e.c.do(ctx, "enroll", http.MethodPost, "/enrollments", nil, body, &out, token); err != nil {
		return nil, err
	}
	return &out, nil
}

func (e *EnrollmentsClient) GetByUser(ctx context.Context, userID, token string) ([]domain.Enrollment, error) {
	var out []domain.Enrollment
	if err := e.c.do(ctx, "list_enrollments", http.MethodGet, "/enrollments/by-user/"+userID, nil, nil, &out, token); err != nil {
		return nil, err
	}
	return out, nil
}

func (e *EnrollmentsClient) Cancel(ctx context.Context, enrollmentID int64, token string) (*domain.Enrollment, error) {
	var out domain.Enrollment
	path := "/enrollments/" + strconv.FormatInt(enrollmentID, 10) + "/cancel"
	if err := e.c.do(ctx, "cancel_enrollment", http.MethodPatch, path, nil, nil, &out, token); err != nil {
		return nil, err
	}
	return &out, nil
}
