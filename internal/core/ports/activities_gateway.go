package ports

import (
	"context"

	"github.com/sporthub/webapp/internal/core/domain"
)

// ActivityPage is one page of the activity listing.
type ActivityPage struct {
	Activities []domain.Activity `json:"activities"`
	Total      int               `json:"total"`
	Skip       int               `json:"skip"`
	Limit      int               `json:"limit"`
}

// CreateActivityInput is the payload for creating an activity.
type CreateActivityInput struct {
	Categoria  string  `json:"categoria"`
	Nombre     string  `json:"nombre"`
	Ubicacion  string  `json:"ubicacion"`
	Instructor string  `json:"instructor,omitempty"`
	PrecioBase float64 `json:"precioBase"`
}

// UpdateActivityInput is a partial update; nil fields are omitted from the
// outgoing body so the backend leaves them untouched.
type UpdateActivityInput struct {
	Categoria  *string  `json:"categoria,omitempty"`
	Nombre     *string  `json:"nombre,omitempty"`
	Ubicacion  *string  `json:"ubicacion,omitempty"`
	Instructor *string  `json:"instructor,omitempty"`
	PrecioBase *float64 `json:"precioBase,omitempty"`
}

// ActivitiesGateway is the typed client for activity resources on the
// activities service. The token is optional on reads and required (admin) on
// writes; enforcement is server-side, the gateway just forwards it.
type ActivitiesGateway interface {
	List(ctx context.Context, skip, limit int, token string) (*ActivityPage, error)
	GetByID(ctx context.Context, id int64, token string) (*domain.Activity, error)
	Create(ctx context.Context, input CreateActivityInput, token string) (*domain.Activity, error)
	Update(ctx context.Context, id int64, input UpdateActivityInput, token string) (*domain.Activity, error)
	Delete(ctx context.Context, id int64, token string) error
	Health(ctx context.Context) error
}

// CreateSessionInput is the payload for creating a session under an activity.
type CreateSessionInput struct {
	Fecha     string `json:"fecha"`
	Inicio    string `json:"inicio"`
	Fin       string `json:"fin"`
	Capacidad int    `json:"capacidad"`
}

// CreateSessionDirectInput is the alternate top-level POST /sessions payload.
type CreateSessionDirectInput struct {
	ActivityID string `json:"activityId"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Capacity   int    `json:"capacity"`
}

// SessionsGateway is the typed client for session resources.
type SessionsGateway interface {
	GetByActivity(ctx context.Context, activityID int64, token string) ([]domain.Session, error)
	GetByID(ctx context.Context, id int64, token string) (*domain.Session, error)
	CreateForActivity(ctx context.Context, activityID int64, input CreateSessionInput, token string) (*domain.Session, error)
	Create(ctx context.Context, input CreateSessionDirectInput, token string) (*domain.Session, error)
}

// EnrollmentsGateway is the typed client for enrollment resources.
type EnrollmentsGateway interface {
	Enroll(ctx context.Context, sessionID int64, token string) (*domain.Enrollment, error)
	GetByUser(ctx context.Context, userID, token string) ([]domain.Enrollment, error)
	Cancel(ctx context.Context, enrollmentID int64, token string) (*domain.Enrollment, error)
}
