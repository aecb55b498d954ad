package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/sporthub/webapp/internal/core/domain"
	"github.com/sporthub/webapp/internal/core/ports"
)

func TestCatalogService_CreateSessionRejectsInvertedRange(t *testing.T) {
	sessions := &stubSessionsGateway{}
	svc := NewCatalogService(&stubActivitiesGateway{}, sessions, zerolog.Nop())

	_, err := svc.CreateSession(context.Background(), 1, ports.CreateSessionInput{
		Fecha:     "2026-09-01",
		Inicio:    "18:00",
		Fin:       "17:00",
		Capacidad: 10,
	}, "tok")
	if !errors.Is(err, domain.ErrInvalidTimeRange) {
		t.Fatalf("expected invalid time range error, got %v", err)
	}
	if sessions.calls != 0 {
		t.Fatalf("invalid range must be rejected before any request")
	}

	// Equal bounds are an empty range and rejected too.
	_, err = svc.CreateSession(context.Background(), 1, ports.CreateSessionInput{
		Fecha:     "2026-09-01",
		Inicio:    "18:00",
		Fin:       "18:00",
		Capacidad: 10,
	}, "tok")
	if !errors.Is(err, domain.ErrInvalidTimeRange) {
		t.Fatalf("expected invalid time range error, got %v", err)
	}
}

func TestCatalogService_CreateSessionForwardsValidInput(t *testing.T) {
	sessions := &stubSessionsGateway{created: &domain.Session{ID: 55, ActivityID: 3}}
	svc := NewCatalogService(&stubActivitiesGateway{}, sessions, zerolog.Nop())

	input := ports.CreateSessionInput{Fecha: "2026-09-01", Inicio: "09:00", Fin: "10:30", Capacidad: 8}
	session, err := svc.CreateSession(context.Background(), 3, input, "tok")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if session.ID != 55 {
		t.Fatalf("unexpected session: %+v", session)
	}
	if sessions.createFor != 3 || sessions.lastInput != input {
		t.Fatalf("input must be forwarded unchanged, got %d %+v", sessions.createFor, sessions.lastInput)
	}
}

func TestCatalogService_CreateActivity(t *testing.T) {
	svc := NewCatalogService(&stubActivitiesGateway{}, &stubSessionsGateway{}, zerolog.Nop())

	activity, err := svc.CreateActivity(context.Background(), ports.CreateActivityInput{
		Categoria:  "futbol",
		Nombre:     "Futbol 5",
		Ubicacion:  "Cancha Norte",
		PrecioBase: 1500,
	}, "tok")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if activity.Nombre != "Futbol 5" {
		t.Fatalf("unexpected activity: %+v", activity)
	}
}

func TestCatalogService_CreateSessionErrorPropagates(t *testing.T) {
	wantErr := errors.New("capacity conflict")
	sessions := &stubSessionsGateway{createErr: wantErr}
	svc := NewCatalogService(&stubActivitiesGateway{}, sessions, zerolog.Nop())

	_, err := svc.CreateSession(context.Background(), 1, ports.CreateSessionInput{
		Fecha: "2026-09-01", Inicio: "09:00", Fin: "10:00", Capacidad: 5,
	}, "tok")
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected backend error unchanged, got %v", err)
	}
}
