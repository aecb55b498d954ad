package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/sporthub/webapp/internal/core/domain"
	"github.com/sporthub/webapp/internal/core/ports"
)

// ReservationService backs the reservation list view and the enroll/cancel
// actions. Listing enriches every enrollment with its activity and concrete
// session.
type ReservationService struct {
	enrollments ports.EnrollmentsGateway
	activities  ports.ActivitiesGateway
	sessions    ports.SessionsGateway
	log         zerolog.Logger
}

func NewReservationService(
	enrollments ports.EnrollmentsGateway,
	activities ports.ActivitiesGateway,
	sessions ports.SessionsGateway,
	log zerolog.Logger,
) *ReservationService {
	return &ReservationService{
		enrollments: enrollments,
		activities:  activities,
		sessions:    sessions,
		log:         log,
	}
}

// ListByUser fetches the user's enrollments and enriches them concurrently.
// Enrichment failures are per-enrollment and per-field: a failed lookup
// leaves that field nil and never fails the listing.
func (s *ReservationService) ListByUser(ctx context.Context, userID, token string) ([]ports.Reservation, error) {
	enrollments, err := s.enrollments.GetByUser(ctx, userID, token)
	if err != nil {
		return nil, err
	}

	reservations := make([]ports.Reservation, len(enrollments))
	var wg sync.WaitGroup
	for i, enrollment := range enrollments {
		reservations[i].Enrollment = enrollment
		wg.Add(1)
		go func(i int, enrollment domain.Enrollment) {
			defer wg.Done()
			reservations[i].Activity, reservations[i].Session = s.enrich(ctx, enrollment, token)
		}(i, enrollment)
	}
	wg.Wait()

	return reservations, nil
}

// enrich resolves the activity and the session of one enrollment. The two
// lookups run concurrently and fail independently. The session is located in
// the activity's session list, matching how the backend exposes it.
func (s *ReservationService) enrich(ctx context.Context, enrollment domain.Enrollment, token string) (*domain.Activity, *domain.Session) {
	var (
		wg       sync.WaitGroup
		activity *domain.Activity
		sessions []domain.Session
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		a, err := s.activities.GetByID(ctx, enrollment.ActivityID, token)
		if err != nil {
			s.log.Warn().Err(err).Int64("activity_id", enrollment.ActivityID).Msg("reservation activity lookup failed")
			return
		}
		activity = a
	}()
	go func() {
		defer wg.Done()
		list, err := s.sessions.GetByActivity(ctx, enrollment.ActivityID, token)
		if err != nil {
			s.log.Warn().Err(err).Int64("activity_id", enrollment.ActivityID).Msg("reservation session lookup failed")
			return
		}
		sessions = list
	}()
	wg.Wait()

	var session *domain.Session
	for i := range sessions {
		if sessions[i].ID == enrollment.SessionID {
			session = &sessions[i]
			break
		}
	}
	return activity, session
}

func (s *ReservationService) Enroll(ctx context.Context, sessionID int64, token string) (*domain.Enrollment, error) {
	enrollment, err := s.enrollments.Enroll(ctx, sessionID, token)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("session_id", sessionID).Int64("enrollment_id", enrollment.ID).Msg("enrollment created")
	return enrollment, nil
}

func (s *ReservationService) Cancel(ctx context.Context, enrollmentID int64, token string) (*domain.Enrollment, error) {
	enrollment, err := s.enrollments.Cancel(ctx, enrollmentID, token)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("enrollment_id", enrollmentID).Str("estado", enrollment.Estado).Msg("enrollment cancelled")
	return enrollment, nil
}
