package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/sporthub/webapp/docs"
	"github.com/sporthub/webapp/internal/api/handler"
	"github.com/sporthub/webapp/internal/api/middleware"
	"github.com/sporthub/webapp/internal/core/domain"
	"github.com/sporthub/webapp/internal/core/ports"
)

// Deps collects everything the router wires into handlers.
type Deps struct {
	Sessions     ports.SessionStore
	Feed         ports.FeedService
	Reservations ports.ReservationService
	Catalog      ports.CatalogService
	Users        ports.UsersGateway
	Activities   ports.ActivitiesGateway
	SessionsGW   ports.SessionsGateway
	Search       ports.SearchGateway
	Log          zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("webapp"))
	e.Use(middleware.Session(deps.Sessions))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Sessions)
	feedHandler := handler.NewFeedHandler(deps.Feed)
	reservationHandler := handler.NewReservationHandler(deps.Reservations)
	catalogHandler := handler.NewCatalogHandler(deps.Catalog, deps.Activities, deps.SessionsGW)
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Users, deps.Activities, deps.Search)

	// --- Auth views ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/session", authHandler.Session)

	// --- Public catalog reads (token optional) ---
	e.GET("/activities/:id", catalogHandler.GetActivity)
	e.GET("/activities/:id/sessions", catalogHandler.GetActivitySessions)
	e.GET("/sessions/:id", catalogHandler.GetSession)

	// --- Protected views ---
	home := e.Group("/home", middleware.RequireAuth())
	home.GET("/activities", feedHandler.Activities)
	home.GET("/search", feedHandler.Search)

	reservations := e.Group("/reservations", middleware.RequireAuth())
	reservations.GET("", reservationHandler.List)
	reservations.POST("", reservationHandler.Enroll)
	reservations.PATCH("/:id/cancel", reservationHandler.Cancel)

	// --- Admin console (capability check at dispatch) ---
	admin := e.Group("/admin", middleware.RequireAuth(), middleware.RBAC(domain.RoleAdmin))
	admin.POST("/activities", catalogHandler.CreateActivity)
	admin.PUT("/activities/:id", catalogHandler.UpdateActivity)
	admin.DELETE("/activities/:id", catalogHandler.DeleteActivity)
	admin.POST("/activities/:id/sessions", catalogHandler.CreateSession)

	// --- Observability & docs ---
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are the backends up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
