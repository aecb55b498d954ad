package service

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/sporthub/webapp/internal/api/metrics"
	"github.com/sporthub/webapp/internal/core/domain"
	"github.com/sporthub/webapp/internal/core/ports"
)

const (
	routeHome  = "/home"
	routeLogin = "/login"
)

// SessionService is the ambient auth context of the application: the single
// source of truth for the logged-in user and the bearer token attached to
// outgoing requests. It persists the pair through a StateStore so the session
// survives restarts, and signals view transitions through a Navigator.
//
// Token and user are always set and cleared together under one lock and one
// atomic state write.
type SessionService struct {
	users ports.UsersGateway
	state ports.StateStore
	nav   ports.Navigator
	log   zerolog.Logger

	mu          sync.RWMutex
	token       string
	user        *domain.User
	initialized bool
}

func NewSessionService(users ports.UsersGateway, state ports.StateStore, nav ports.Navigator, log zerolog.Logger) *SessionService {
	return &SessionService{users: users, state: state, nav: nav, log: log}
}

// Initialize restores a persisted session. It runs its restore logic once
// per process; later calls return immediately. Any defect in the persisted
// data (missing half of the pair, malformed user JSON, expired token)
// resolves to the signed-out state and clears the store, never an error.
func (s *SessionService) Initialize(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return
	}
	s.initialized = true

	token, rawUser, err := s.state.Read()
	if err != nil {
		s.log.Warn().Err(err).Msg("discarding unreadable session state")
		s.discardLocked()
		return
	}
	if token == "" || len(rawUser) == 0 {
		s.discardLocked()
		return
	}

	var user domain.User
	if err := json.Unmarshal(rawUser, &user); err != nil {
		s.log.Warn().Err(err).Msg("discarding corrupt session state")
		s.discardLocked()
		return
	}

	if claims := inspectToken(token); claims.expiresAt != nil && claims.expiresAt.Before(time.Now()) {
		s.log.Info().Str("user_id", user.ID).Msg("discarding expired session")
		s.discardLocked()
		return
	}

	s.token = token
	s.user = &user
	metrics.AuthEventsTotal.WithLabelValues("restore", "success").Inc()
	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("session restored")
}

// discardLocked resets to signed-out and clears any partial persisted data.
// Callers must hold s.mu.
func (s *SessionService) discardLocked() {
	s.token = ""
	s.user = nil
	if err := s.state.Clear(); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear session state")
	}
}

// Login authenticates against the users service. On success the derived user
// record and token are persisted as a pair, in-memory state is updated, and
// the navigator is pointed at the home view. The gateway error propagates
// unchanged on failure; there is no retry.
func (s *SessionService) Login(ctx context.Context, email, password string) error {
	result, err := s.users.Login(ctx, email, password)
	if err != nil {
		metrics.AuthEventsTotal.WithLabelValues("login", "failure").Inc()
		return err
	}

	user := deriveUser(email, result)
	rawUser, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.state.Write(result.Token, rawUser); err != nil {
		return err
	}

	s.mu.Lock()
	s.token = result.Token
	s.user = user
	s.mu.Unlock()

	metrics.AuthEventsTotal.WithLabelValues("login", "success").Inc()
	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("session started")
	s.nav.NavigateTo(routeHome)
	return nil
}

// Register creates the account, then logs in with the same credentials. When
// registration succeeds but the follow-up login fails, that login error
// propagates and the caller is left unauthenticated.
func (s *SessionService) Register(ctx context.Context, username, email, password string) error {
	_, err := s.users.Register(ctx, ports.RegisterInput{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		metrics.AuthEventsTotal.WithLabelValues("register", "failure").Inc()
		return err
	}
	metrics.AuthEventsTotal.WithLabelValues("register", "success").Inc()

	return s.Login(ctx, email, password)
}

// Logout clears persisted and in-memory state and signals navigation to the
// sign-in view. Safe to call when already signed out.
func (s *SessionService) Logout() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	if err := s.state.Clear(); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear session state")
	}
	s.mu.Unlock()

	metrics.AuthEventsTotal.WithLabelValues("logout", "success").Inc()
	s.nav.NavigateTo(routeLogin)
}

func (s *SessionService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// Current returns the token and a copy of the user record.
func (s *SessionService) Current() (string, *domain.User) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return s.token, nil
	}
	user := *s.user
	return s.token, &user
}

// deriveUser builds the local user record from a login response: id from the
// response, username from the local part of the email, role defaulting to
// "user". The users service signs its tokens with {sub, rol, exp} claims, so
// an unverified read of those claims backfills anything the response omits.
func deriveUser(email string, result *ports.LoginResult) *domain.User {
	claims := inspectToken(result.Token)

	id := result.UserID.String()
	if id == "" {
		id = claims.subject
	}
	role := result.Role
	if role == "" {
		role = claims.role
	}
	if role == "" {
		role = domain.RoleUser
	}

	return &domain.User{
		ID:       id,
		Username: strings.Split(email, "@")[0],
		Email:    email,
		Role:     role,
	}
}

type tokenClaims struct {
	subject   string
	role      string
	expiresAt *time.Time
}

// inspectToken reads claims without verifying the signature; verification is
// the backends' job. A token that is not a JWT yields empty claims and is
// treated as opaque.
func inspectToken(token string) tokenClaims {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return tokenClaims{}
	}

	var out tokenClaims
	if sub, err := claims.GetSubject(); err == nil {
		out.subject = sub
	}
	if rol, ok := claims["rol"].(string); ok {
		out.role = rol
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		t := exp.Time
		out.expiresAt = &t
	}
	return out
}
