package ports

import (
	"context"

	"github.com/sporthub/webapp/internal/core/domain"
)

// SearchFeed pairs the raw search result with the activities referenced by
// its docs. Activities that could not be resolved are simply absent.
type SearchFeed struct {
	Result     *domain.SearchResult `json:"results"`
	Activities []domain.Activity    `json:"activities"`
}

// FeedService backs the home view: paginated browsing and search.
type FeedService interface {
	Activities(ctx context.Context, skip, limit int, token string) (*ActivityPage, error)
	Search(ctx context.Context, params SearchParams, token string) (*SearchFeed, error)
}

// Reservation is an enrollment enriched with its activity and concrete
// session. Either enrichment field may be nil when the lookup failed; a
// partial failure never fails the whole listing.
type Reservation struct {
	Enrollment domain.Enrollment
	Activity   *domain.Activity
	Session    *domain.Session
}

// ReservationService backs the reservation list view and booking actions.
type ReservationService interface {
	ListByUser(ctx context.Context, userID, token string) ([]Reservation, error)
	Enroll(ctx context.Context, sessionID int64, token string) (*domain.Enrollment, error)
	Cancel(ctx context.Context, enrollmentID int64, token string) (*domain.Enrollment, error)
}

// CatalogService backs the admin console: activity and session management.
type CatalogService interface {
	CreateActivity(ctx context.Context, input CreateActivityInput, token string) (*domain.Activity, error)
	UpdateActivity(ctx context.Context, id int64, input UpdateActivityInput, token string) (*domain.Activity, error)
	DeleteActivity(ctx context.Context, id int64, token string) error
	CreateSession(ctx context.Context, activityID int64, input CreateSessionInput, token string) (*domain.Session, error)
}
