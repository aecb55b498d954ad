package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sporthub/webapp/internal/api/middleware"
	"github.com/sporthub/webapp/internal/core/domain"
	"github.com/sporthub/webapp/internal/core/ports"
)

// ReservationHandler exposes the reservation list view and booking actions.
type ReservationHandler struct {
	reservations ports.ReservationService
}

func NewReservationHandler(reservations ports.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservations: reservations}
}

type enrollRequest struct {
	SessionID int64 `json:"sessionId" validate:"required,gt=0"`
}

// reservationResponse flattens the enrollment and carries the optional
// enrichment fields, mirroring the reservation cards of the original UI.
type reservationResponse struct {
	domain.Enrollment
	Activity *domain.Activity `json:"activity,omitempty"`
	Session  *domain.Session  `json:"session,omitempty"`
}

// List returns the current user's reservations, enriched.
//
// @Summary      My reservations
// @Tags         reservations
// @Produce      json
// @Success      200  {array}   reservationResponse
// @Failure      401  {object}  map[string]string
// @Router       /reservations [get]
func (h *ReservationHandler) List(c echo.Context) error {
	userID, _ := c.Get(middleware.CtxUserID).(string)
	token, _ := c.Get(middleware.CtxToken).(string)

	reservations, err := h.reservations.ListByUser(c.Request().Context(), userID, token)
	if err != nil {
		return err
	}

	out := make([]reservationResponse, len(reservations))
	for i, r := range reservations {
		out[i] = reservationResponse{
			Enrollment: r.Enrollment,
			Activity:   r.Activity,
			Session:    r.Session,
		}
	}
	return c.JSON(http.StatusOK, out)
}

// Enroll books a session for the current user.
//
// @Summary      Enroll in a session
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        body  body      enrollRequest  true  "Session to book"
// @Success      201   {object}  domain.Enrollment
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /reservations [post]
func (h *ReservationHandler) Enroll(c echo.Context) error {
	var req enrollRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	token, _ := c.Get(middleware.CtxToken).(string)

	enrollment, err := h.reservations.Enroll(c.Request().Context(), req.SessionID, token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, enrollment)
}

// Cancel cancels one reservation.
//
// @Summary      Cancel a reservation
// @Tags         reservations
// @Produce      json
// @Param        id   path      int  true  "Enrollment id"
// @Success      200  {object}  domain.Enrollment
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /reservations/{id}/cancel [patch]
func (h *ReservationHandler) Cancel(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid enrollment id")
	}
	token, _ := c.Get(middleware.CtxToken).(string)

	enrollment, err := h.reservations.Cancel(c.Request().Context(), id, token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, enrollment)
}
