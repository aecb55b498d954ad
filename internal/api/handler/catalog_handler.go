package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sporthub/webapp/internal/api/middleware"
	"github.com/sporthub/webapp/internal/core/ports"
)

// CatalogHandler exposes the public activity reads and the admin console
// views for managing activities and their sessions.
type CatalogHandler struct {
	catalog    ports.CatalogService
	activities ports.ActivitiesGateway
	sessions   ports.SessionsGateway
}

func NewCatalogHandler(catalog ports.CatalogService, activities ports.ActivitiesGateway, sessions ports.SessionsGateway) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, activities: activities, sessions: sessions}
}

type createActivityRequest struct {
	Categoria  string  `json:"categoria" validate:"required"`
	Nombre     string  `json:"nombre" validate:"required"`
	Ubicacion  string  `json:"ubicacion" validate:"required"`
	Instructor string  `json:"instructor"`
	PrecioBase float64 `json:"precioBase" validate:"required,gt=0"`
}

type updateActivityRequest struct {
	Categoria  *string  `json:"categoria"`
	Nombre     *string  `json:"nombre"`
	Ubicacion  *string  `json:"ubicacion"`
	Instructor *string  `json:"instructor"`
	PrecioBase *float64 `json:"precioBase"`
}

type createSessionRequest struct {
	Fecha     string `json:"fecha" validate:"required,datetime=2006-01-02"`
	Inicio    string `json:"inicio" validate:"required,datetime=15:04"`
	Fin       string `json:"fin" validate:"required,datetime=15:04"`
	Capacidad int    `json:"capacidad" validate:"required,gt=0"`
}

func activityID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid activity id")
	}
	return id, nil
}

// GetActivity returns one activity. Public read, token optional.
//
// @Summary      Get an activity
// @Tags         activities
// @Produce      json
// @Param        id   path      int  true  "Activity id"
// @Success      200  {object}  domain.Activity
// @Failure      404  {object}  map[string]string
// @Router       /activities/{id} [get]
func (h *CatalogHandler) GetActivity(c echo.Context) error {
	id, err := activityID(c)
	if err != nil {
		return err
	}
	token, _ := c.Get(middleware.CtxToken).(string)

	activity, err := h.activities.GetByID(c.Request().Context(), id, token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activity)
}

// GetActivitySessions lists the sessions of one activity.
//
// @Summary      List activity sessions
// @Tags         activities
// @Produce      json
// @Param        id   path      int  true  "Activity id"
// @Success      200  {array}   domain.Session
// @Router       /activities/{id}/sessions [get]
func (h *CatalogHandler) GetActivitySessions(c echo.Context) error {
	id, err := activityID(c)
	if err != nil {
		return err
	}
	token, _ := c.Get(middleware.CtxToken).(string)

	sessions, err := h.sessions.GetByActivity(c.Request().Context(), id, token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessions)
}

// GetSession returns one session.
//
// @Summary      Get a session
// @Tags         activities
// @Produce      json
// @Param        id   path      int  true  "Session id"
// @Success      200  {object}  domain.Session
// @Failure      404  {object}  map[string]string
// @Router       /sessions/{id} [get]
func (h *CatalogHandler) GetSession(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid session id")
	}
	token, _ := c.Get(middleware.CtxToken).(string)

	session, err := h.sessions.GetByID(c.Request().Context(), id, token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, session)
}

// CreateActivity creates an activity. Admin only.
//
// @Summary      Create an activity
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      createActivityRequest  true  "Activity"
// @Success      201   {object}  domain.Activity
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /admin/activities [post]
func (h *CatalogHandler) CreateActivity(c echo.Context) error {
	var req createActivityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	token, _ := c.Get(middleware.CtxToken).(string)

	activity, err := h.catalog.CreateActivity(c.Request().Context(), ports.CreateActivityInput{
		Categoria:  req.Categoria,
		Nombre:     req.Nombre,
		Ubicacion:  req.Ubicacion,
		Instructor: req.Instructor,
		PrecioBase: req.PrecioBase,
	}, token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, activity)
}

// UpdateActivity partially updates an activity. Admin only.
//
// @Summary      Update an activity
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      int                    true  "Activity id"
// @Param        body  body      updateActivityRequest  true  "Fields to change"
// @Success      200   {object}  domain.Activity
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /admin/activities/{id} [put]
func (h *CatalogHandler) UpdateActivity(c echo.Context) error {
	id, err := activityID(c)
	if err != nil {
		return err
	}
	var req updateActivityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	token, _ := c.Get(middleware.CtxToken).(string)

	activity, err := h.catalog.UpdateActivity(c.Request().Context(), id, ports.UpdateActivityInput{
		Categoria:  req.Categoria,
		Nombre:     req.Nombre,
		Ubicacion:  req.Ubicacion,
		Instructor: req.Instructor,
		PrecioBase: req.PrecioBase,
	}, token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activity)
}

// DeleteActivity deletes an activity. Admin only.
//
// @Summary      Delete an activity
// @Tags         admin
// @Produce      json
// @Param        id   path      int  true  "Activity id"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /admin/activities/{id} [delete]
func (h *CatalogHandler) DeleteActivity(c echo.Context) error {
	id, err := activityID(c)
	if err != nil {
		return err
	}
	token, _ := c.Get(middleware.CtxToken).(string)

	if err := h.catalog.DeleteActivity(c.Request().Context(), id, token); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

// CreateSession creates a session under an activity. Admin only.
//
// @Summary      Create a session
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      int                   true  "Activity id"
// @Param        body  body      createSessionRequest  true  "Session"
// @Success      201   {object}  domain.Session
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /admin/activities/{id}/sessions [post]
func (h *CatalogHandler) CreateSession(c echo.Context) error {
	id, err := activityID(c)
	if err != nil {
		return err
	}
	var req createSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	token, _ := c.Get(middleware.CtxToken).(string)

	session, err := h.catalog.CreateSession(c.Request().Context(), id, ports.CreateSessionInput{
		Fecha:     req.Fecha,
		Inicio:    req.Inicio,
		Fin:       req.Fin,
		Capacidad: req.Capacidad,
	}, token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, session)
}
