package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sporthub/webapp/internal/core/domain"
	"github.com/sporthub/webapp/internal/core/ports"
)

// AuthHandler exposes the sign-in, registration and sign-out views.
type AuthHandler struct {
	sessions ports.SessionStore
}

func NewAuthHandler(sessions ports.SessionStore) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

type loginViewRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerViewRequest struct {
	Username        string `json:"username" validate:"required,min=3"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type authViewResponse struct {
	User     *domain.User `json:"user"`
	Redirect string       `json:"redirect"`
}

type sessionViewResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *domain.User `json:"user,omitempty"`
}

// Login signs the user in.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginViewRequest  true  "Credentials"
// @Success      200   {object}  authViewResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginViewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.sessions.Login(c.Request().Context(), req.Email, req.Password); err != nil {
		return err
	}

	_, user := h.sessions.Current()
	return c.JSON(http.StatusOK, authViewResponse{User: user, Redirect: "/home"})
}

// Register creates an account and signs the user in.
//
// @Summary      Register
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerViewRequest  true  "Registration form"
// @Success      201   {object}  authViewResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerViewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.sessions.Register(c.Request().Context(), req.Username, req.Email, req.Password); err != nil {
		return err
	}

	_, user := h.sessions.Current()
	return c.JSON(http.StatusCreated, authViewResponse{User: user, Redirect: "/home"})
}

// Logout signs the user out. Idempotent.
//
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Logout()
	return c.JSON(http.StatusOK, map[string]string{"redirect": "/login"})
}

// Session reports the current session state.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionViewResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	_, user := h.sessions.Current()
	return c.JSON(http.StatusOK, sessionViewResponse{
		Authenticated: h.sessions.IsAuthenticated(),
		User:          user,
	})
}
