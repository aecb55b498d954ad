package api

import "github.com/rs/zerolog"

// RouteLogger is the router collaborator that receives navigation signals
// from the session store. The browser follows the redirect hints included in
// view responses; this collaborator records the transition for observability.
type RouteLogger struct {
	log zerolog.Logger
}

func NewRouteLogger(log zerolog.Logger) *RouteLogger {
	return &RouteLogger{log: log}
}

func (r *RouteLogger) NavigateTo(route string) {
	r.log.Info().Str("route", route).Msg("navigation requested")
}
