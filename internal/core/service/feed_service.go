package service

import (
	"context"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/sporthub/webapp/internal/core/domain"
	"github.com/sporthub/webapp/internal/core/ports"
)

const defaultPageSize = 20

// FeedService backs the home view: paginated activity browsing and search
// with resolution of the activities referenced by the search hits.
type FeedService struct {
	activities ports.ActivitiesGateway
	search     ports.SearchGateway
	log        zerolog.Logger
}

func NewFeedService(activities ports.ActivitiesGateway, search ports.SearchGateway, log zerolog.Logger) *FeedService {
	return &FeedService{activities: activities, search: search, log: log}
}

func (s *FeedService) Activities(ctx context.Context, skip, limit int, token string) (*ports.ActivityPage, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	return s.activities.List(ctx, skip, limit, token)
}

// Search runs the query and resolves the distinct activities its docs point
// at. Resolution requests run concurrently; one that fails is logged and
// dropped from the feed without failing the search.
func (s *FeedService) Search(ctx context.Context, params ports.SearchParams, token string) (*ports.SearchFeed, error) {
	result, err := s.search.Search(ctx, params, token)
	if err != nil {
		return nil, err
	}

	feed := &ports.SearchFeed{Result: result, Activities: []domain.Activity{}}
	if result.Total == 0 || len(result.Docs) == 0 {
		return feed, nil
	}

	ids := uniqueActivityIDs(result.Docs)
	resolved := make([]*domain.Activity, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id int64) {
			defer wg.Done()
			activity, err := s.activities.GetByID(ctx, id, token)
			if err != nil {
				s.log.Warn().Err(err).Int64("activity_id", id).Msg("search hit activity lookup failed")
				return
			}
			resolved[i] = activity
		}(i, id)
	}
	wg.Wait()

	for _, activity := range resolved {
		if activity != nil {
			feed.Activities = append(feed.Activities, *activity)
		}
	}
	return feed, nil
}

// uniqueActivityIDs extracts distinct activity ids from the docs, preserving
// first-seen order. Ids the search service reports in a non-numeric form are
// skipped.
func uniqueActivityIDs(docs []domain.SearchDoc) []int64 {
	seen := make(map[int64]struct{}, len(docs))
	ids := make([]int64, 0, len(docs))
	for _, doc := range docs {
		id, err := strconv.ParseInt(doc.ActivityID, 10, 64)
		if err != nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
