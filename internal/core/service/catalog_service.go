package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sporthub/webapp/internal/core/domain"
	"github.com/sporthub/webapp/internal/core/ports"
)

// CatalogService backs the admin console. Field-level validation happens at
// the edge before any request is sent; this layer enforces the one domain
// invariant the forms share, inicio < fin, and forwards everything else to
// the activities service, which remains authoritative.
type CatalogService struct {
	activities ports.ActivitiesGateway
	sessions   ports.SessionsGateway
	log        zerolog.Logger
}

func NewCatalogService(activities ports.ActivitiesGateway, sessions ports.SessionsGateway, log zerolog.Logger) *CatalogService {
	return &CatalogService{activities: activities, sessions: sessions, log: log}
}

func (s *CatalogService) CreateActivity(ctx context.Context, input ports.CreateActivityInput, token string) (*domain.Activity, error) {
	activity, err := s.activities.Create(ctx, input, token)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("activity_id", activity.ID).Str("nombre", activity.Nombre).Msg("activity created")
	return activity, nil
}

func (s *CatalogService) UpdateActivity(ctx context.Context, id int64, input ports.UpdateActivityInput, token string) (*domain.Activity, error) {
	activity, err := s.activities.Update(ctx, id, input, token)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("activity_id", id).Msg("activity updated")
	return activity, nil
}

func (s *CatalogService) DeleteActivity(ctx context.Context, id int64, token string) error {
	if err := s.activities.Delete(ctx, id, token); err != nil {
		return err
	}
	s.log.Info().Int64("activity_id", id).Msg("activity deleted")
	return nil
}

// CreateSession rejects an inverted time range before any network round-trip.
// HH:mm strings order lexicographically, so a plain string compare is exact.
func (s *CatalogService) CreateSession(ctx context.Context, activityID int64, input ports.CreateSessionInput, token string) (*domain.Session, error) {
	if input.Inicio >= input.Fin {
		return nil, domain.ErrInvalidTimeRange
	}

	session, err := s.sessions.CreateForActivity(ctx, activityID, input, token)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("activity_id", activityID).Int64("session_id", session.ID).Msg("session created")
	return session, nil
}
