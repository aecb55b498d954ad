package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/sporthub/webapp/internal/core/domain"
	"github.com/sporthub/webapp/internal/core/ports"
)

// ActivitiesClient talks to the activity resources of the activities service.
type ActivitiesClient struct {
	c *client
}

func NewActivitiesClient(baseURL string, log zerolog.Logger) *ActivitiesClient {
	return &ActivitiesClient{c: newClient(baseURL, "activities", log)}
}

func (a *ActivitiesClient) List(ctx context.Context, skip, limit int, token string) (*ports.ActivityPage, error) {
	q := url.Values{}
	q.Set("skip", strconv.Itoa(skip))
	q.Set("limit", strconv.Itoa(limit))

	var out ports.ActivityPage
	if err := a.c.do(ctx, "list_activities", http.MethodGet, "/activities", q, nil, &out, token); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ActivitiesClient) GetByID(ctx context.Context, id int64, token string) (*domain.Activity, error) {
	var out domain.Activity
	path := "/activities/" + strconv.FormatInt(id, 10)
	if err := a.c.do(ctx, "get_activity", http.MethodGet, path, nil, nil, &out, token); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ActivitiesClient) Create(ctx context.Context, input ports.CreateActivityInput, token string) (*domain.Activity, error) {
	var out domain.Activity
	if err := a.c.do(ctx, "create_activity", http.MethodPost, "/activities", nil, input, &out, token); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ActivitiesClient) Update(ctx context.Context, id int64, input ports.UpdateActivityInput, token string) (*domain.Activity, error) {
	var out domain.Activity
	path := "/activities/" + strconv.FormatInt(id, 10)
	if err := a.c.do(ctx, "update_activity", http.MethodPut, path, nil, input, &out, token); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ActivitiesClient) Delete(ctx context.Context, id int64, token string) error {
	path := "/activities/" + strconv.FormatInt(id, 10)
	return a.c.do(ctx, "delete_activity", http.MethodDelete, path, nil, nil, nil, token)
}

func (a *ActivitiesClient) Health(ctx context.Context) error {
	return a.c.health(ctx)
}
