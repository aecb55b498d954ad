package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sporthub/webapp/internal/api"
	"github.com/sporthub/webapp/internal/core/service"
	"github.com/sporthub/webapp/internal/infrastructure/gateway"
	"github.com/sporthub/webapp/internal/infrastructure/store"
	"github.com/sporthub/webapp/internal/pkg/config"
	"github.com/sporthub/webapp/pkg/logger"
)

// @title        SportHub Web API
// @version      1.0
// @description  Web application tier for browsing, booking and administering sports activity sessions.
// @BasePath     /
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
		App:    "webapp",
	})

	// --- Backend gateways ---
	usersGW := gateway.NewUsersClient(cfg.UsersAPIURL, log)
	activitiesGW := gateway.NewActivitiesClient(cfg.ActivitiesAPIURL, log)
	sessionsGW := gateway.NewSessionsClient(cfg.ActivitiesAPIURL, log)
	enrollmentsGW := gateway.NewEnrollmentsClient(cfg.ActivitiesAPIURL, log)
	searchGW := gateway.NewSearchClient(cfg.SearchAPIURL, log)

	// --- Session store ---
	stateStore := store.NewFileStore(cfg.StateFile)
	sessions := service.NewSessionService(usersGW, stateStore, api.NewRouteLogger(log), log)
	sessions.Initialize(context.Background())

	// --- View services ---
	feed := service.NewFeedService(activitiesGW, searchGW, log)
	reservations := service.NewReservationService(enrollmentsGW, activitiesGW, sessionsGW, log)
	catalog := service.NewCatalogService(activitiesGW, sessionsGW, log)

	e := api.NewRouter(api.Deps{
		Sessions:     sessions,
		Feed:         feed,
		Reservations: reservations,
		Catalog:      catalog,
		Users:        usersGW,
		Activities:   activitiesGW,
		SessionsGW:   sessionsGW,
		Search:       searchGW,
		Log:          log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("webapp listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
