package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/sporthub/webapp/internal/core/domain"
	"github.com/sporthub/webapp/internal/core/ports"
)

type stubActivitiesGateway struct {
	mu         sync.Mutex
	byID       map[int64]domain.Activity
	failIDs    map[int64]bool
	getCalls   []int64
	listResult *ports.ActivityPage
	listErr    error
	lastSkip   int
	lastLimit  int
}

func (s *stubActivitiesGateway) List(_ context.Context, skip, limit int, _ string) (*ports.ActivityPage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSkip = skip
	s.lastLimit = limit
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.listResult, nil
}

func (s *stubActivitiesGateway) GetByID(_ context.Context, id int64, _ string) (*domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getCalls = append(s.getCalls, id)
	if s.failIDs[id] {
		return nil, errors.New("backend unavailable")
	}
	a, ok := s.byID[id]
	if !ok {
		return nil, errors.New("activity not found")
	}
	return &a, nil
}

func (s *stubActivitiesGateway) Create(_ context.Context, input ports.CreateActivityInput, _ string) (*domain.Activity, error) {
	return &domain.Activity{ID: 99, Nombre: input.Nombre, Categoria: input.Categoria}, nil
}

func (s *stubActivitiesGateway) Update(_ context.Context, id int64, _ ports.UpdateActivityInput, _ string) (*domain.Activity, error) {
	return &domain.Activity{ID: id}, nil
}

func (s *stubActivitiesGateway) Delete(context.Context, int64, string) error { return nil }

func (s *stubActivitiesGateway) Health(context.Context) error { return nil }

type stubSearchGateway struct {
	result     *domain.SearchResult
	err        error
	lastParams ports.SearchParams
}

func (s *stubSearchGateway) Search(_ context.Context, params ports.SearchParams, _ string) (*domain.SearchResult, error) {
	s.lastParams = params
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *stubSearchGateway) Health(context.Context) error { return nil }

func TestFeedService_ActivitiesDefaultsPagination(t *testing.T) {
	activities := &stubActivitiesGateway{listResult: &ports.ActivityPage{Total: 0}}
	svc := NewFeedService(activities, &stubSearchGateway{}, zerolog.Nop())

	if _, err := svc.Activities(context.Background(), -3, 0, ""); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if activities.lastSkip != 0 || activities.lastLimit != defaultPageSize {
		t.Fatalf("expected defaults 0/%d, got %d/%d", defaultPageSize, activities.lastSkip, activities.lastLimit)
	}
}

func TestFeedService_SearchResolvesUniqueActivities(t *testing.T) {
	search := &stubSearchGateway{result: &domain.SearchResult{
		Total: 4,
		Docs: []domain.SearchDoc{
			{ActivityID: "1"},
			{ActivityID: "1"},
			{ActivityID: "2"},
			{ActivityID: "oops"}, // non-numeric ids are skipped
		},
	}}
	activities := &stubActivitiesGateway{byID: map[int64]domain.Activity{
		1: {ID: 1, Nombre: "Futbol"},
		2: {ID: 2, Nombre: "Tenis"},
	}}
	svc := NewFeedService(activities, search, zerolog.Nop())

	feed, err := svc.Search(context.Background(), ports.SearchParams{Query: "futbol"}, "tok")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(feed.Activities) != 2 {
		t.Fatalf("expected 2 resolved activities, got %d", len(feed.Activities))
	}
	if len(activities.getCalls) != 2 {
		t.Fatalf("expected one lookup per unique id, got %v", activities.getCalls)
	}
}

func TestFeedService_SearchDropsFailedResolutions(t *testing.T) {
	search := &stubSearchGateway{result: &domain.SearchResult{
		Total: 2,
		Docs:  []domain.SearchDoc{{ActivityID: "1"}, {ActivityID: "2"}},
	}}
	activities := &stubActivitiesGateway{
		byID:    map[int64]domain.Activity{1: {ID: 1}},
		failIDs: map[int64]bool{2: true},
	}
	svc := NewFeedService(activities, search, zerolog.Nop())

	feed, err := svc.Search(context.Background(), ports.SearchParams{Sport: "tenis"}, "")
	if err != nil {
		t.Fatalf("one failed resolution must not fail the search: %v", err)
	}
	if len(feed.Activities) != 1 || feed.Activities[0].ID != 1 {
		t.Fatalf("expected only the resolvable activity, got %+v", feed.Activities)
	}
}

func TestFeedService_SearchEmptyResultSkipsResolution(t *testing.T) {
	search := &stubSearchGateway{result: &domain.SearchResult{Total: 0}}
	activities := &stubActivitiesGateway{}
	svc := NewFeedService(activities, search, zerolog.Nop())

	feed, err := svc.Search(context.Background(), ports.SearchParams{}, "")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(feed.Activities) != 0 {
		t.Fatalf("expected no activities")
	}
	if len(activities.getCalls) != 0 {
		t.Fatalf("expected no lookups for an empty result, got %v", activities.getCalls)
	}
}

func TestFeedService_SearchErrorPropagates(t *testing.T) {
	wantErr := errors.New("search down")
	svc := NewFeedService(&stubActivitiesGateway{}, &stubSearchGateway{err: wantErr}, zerolog.Nop())

	if _, err := svc.Search(context.Background(), ports.SearchParams{}, ""); !errors.Is(err, wantErr) {
		t.Fatalf("expected search error, got %v", err)
	}
}
