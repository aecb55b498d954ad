package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/sporthub/webapp/internal/core/domain"
	"github.com/sporthub/webapp/internal/core/ports"
)

type stubUsersGateway struct {
	loginResult   *ports.LoginResult
	loginErr      error
	registerErr   error
	loginCalls    int
	registerCalls int
	lastLogin     string
	lastPassword  string
}

func (s *stubUsersGateway) Login(_ context.Context, login, password string) (*ports.LoginResult, error) {
	s.loginCalls++
	s.lastLogin = login
	s.lastPassword = password
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.loginResult, nil
}

func (s *stubUsersGateway) Register(_ context.Context, input ports.RegisterInput) (*domain.User, error) {
	s.registerCalls++
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return &domain.User{Username: input.Username, Email: input.Email, Role: domain.RoleUser}, nil
}

func (s *stubUsersGateway) GetUserByID(context.Context, string, string) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

func (s *stubUsersGateway) Health(context.Context) error { return nil }

type memState struct {
	token   string
	user    []byte
	readErr error
}

func (m *memState) Read() (string, []byte, error) { return m.token, m.user, m.readErr }

func (m *memState) Write(token string, user []byte) error {
	m.token = token
	m.user = user
	return nil
}

func (m *memState) Clear() error {
	m.token = ""
	m.user = nil
	return nil
}

type recordingNavigator struct {
	routes []string
}

func (r *recordingNavigator) NavigateTo(route string) { r.routes = append(r.routes, route) }

func newTestSession(users *stubUsersGateway, state *memState) (*SessionService, *recordingNavigator) {
	nav := &recordingNavigator{}
	return NewSessionService(users, state, nav, zerolog.Nop()), nav
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestSessionService_InitializeRestoresPersistedPair(t *testing.T) {
	user, _ := json.Marshal(domain.User{ID: "7", Username: "alice", Email: "alice@example.com", Role: domain.RoleAdmin})
	state := &memState{token: "tok-7", user: user}
	svc, _ := newTestSession(&stubUsersGateway{}, state)

	svc.Initialize(context.Background())

	if !svc.IsAuthenticated() {
		t.Fatalf("expected authenticated session")
	}
	token, current := svc.Current()
	if token != "tok-7" {
		t.Fatalf("unexpected token: %q", token)
	}
	if current == nil || current.ID != "7" || current.Role != domain.RoleAdmin {
		t.Fatalf("unexpected user: %+v", current)
	}
}

func TestSessionService_InitializeCorruptUser(t *testing.T) {
	state := &memState{token: "tok", user: []byte("{broken")}
	svc, _ := newTestSession(&stubUsersGateway{}, state)

	svc.Initialize(context.Background())

	if svc.IsAuthenticated() {
		t.Fatalf("expected signed-out state")
	}
	if state.token != "" || state.user != nil {
		t.Fatalf("expected persisted pair cleared, got %q / %s", state.token, state.user)
	}
}

func TestSessionService_InitializeHalfPair(t *testing.T) {
	state := &memState{token: "tok"} // token without user record
	svc, _ := newTestSession(&stubUsersGateway{}, state)

	svc.Initialize(context.Background())

	if svc.IsAuthenticated() {
		t.Fatalf("expected signed-out state")
	}
	if state.token != "" {
		t.Fatalf("expected partial pair cleared")
	}
}

func TestSessionService_InitializeUnreadableState(t *testing.T) {
	state := &memState{readErr: errors.New("disk gone")}
	svc, _ := newTestSession(&stubUsersGateway{}, state)

	svc.Initialize(context.Background())

	if svc.IsAuthenticated() {
		t.Fatalf("expected signed-out state")
	}
}

func TestSessionService_InitializeExpiredToken(t *testing.T) {
	expired := signedToken(t, jwt.MapClaims{
		"sub": "7",
		"rol": domain.RoleUser,
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	user, _ := json.Marshal(domain.User{ID: "7", Username: "alice", Role: domain.RoleUser})
	state := &memState{token: expired, user: user}
	svc, _ := newTestSession(&stubUsersGateway{}, state)

	svc.Initialize(context.Background())

	if svc.IsAuthenticated() {
		t.Fatalf("expected expired session to be discarded")
	}
	if state.token != "" {
		t.Fatalf("expected expired pair cleared")
	}
}

func TestSessionService_InitializeOpaqueTokenAccepted(t *testing.T) {
	user, _ := json.Marshal(domain.User{ID: "7", Username: "alice", Role: domain.RoleUser})
	state := &memState{token: "not-a-jwt", user: user}
	svc, _ := newTestSession(&stubUsersGateway{}, state)

	svc.Initialize(context.Background())

	if !svc.IsAuthenticated() {
		t.Fatalf("opaque tokens must be accepted as-is")
	}
}

func TestSessionService_InitializeRunsOnce(t *testing.T) {
	state := &memState{}
	svc, _ := newTestSession(&stubUsersGateway{}, state)

	svc.Initialize(context.Background())

	user, _ := json.Marshal(domain.User{ID: "7"})
	state.token = "tok"
	state.user = user
	svc.Initialize(context.Background())

	if svc.IsAuthenticated() {
		t.Fatalf("second Initialize must not restore state")
	}
}

func TestSessionService_LoginDerivesUser(t *testing.T) {
	users := &stubUsersGateway{loginResult: &ports.LoginResult{Token: "tok-1", UserID: json.Number("42")}}
	state := &memState{}
	svc, nav := newTestSession(users, state)

	if err := svc.Login(context.Background(), "carol@example.com", "s3cret"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	token, user := svc.Current()
	if token != "tok-1" {
		t.Fatalf("unexpected token: %q", token)
	}
	if user.ID != "42" {
		t.Fatalf("expected id from response, got %q", user.ID)
	}
	if user.Username != "carol" {
		t.Fatalf("expected username from email local part, got %q", user.Username)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role, got %q", user.Role)
	}
	if state.token != "tok-1" || len(state.user) == 0 {
		t.Fatalf("expected pair persisted")
	}
	if len(nav.routes) != 1 || nav.routes[0] != "/home" {
		t.Fatalf("expected navigation to /home, got %v", nav.routes)
	}
}

func TestSessionService_LoginRoleFromTokenClaims(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"sub": "7",
		"rol": domain.RoleAdmin,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	users := &stubUsersGateway{loginResult: &ports.LoginResult{Token: token, UserID: json.Number("7")}}
	svc, _ := newTestSession(users, &memState{})

	if err := svc.Login(context.Background(), "admin@example.com", "pw"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	_, user := svc.Current()
	if user.Role != domain.RoleAdmin {
		t.Fatalf("expected role from token claims, got %q", user.Role)
	}
}

func TestSessionService_LoginFailurePropagates(t *testing.T) {
	wantErr := errors.New("invalid credentials")
	users := &stubUsersGateway{loginErr: wantErr}
	state := &memState{}
	svc, nav := newTestSession(users, state)

	err := svc.Login(context.Background(), "carol@example.com", "bad")
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected gateway error unchanged, got %v", err)
	}
	if users.loginCalls != 1 {
		t.Fatalf("expected exactly one login attempt, got %d", users.loginCalls)
	}
	if svc.IsAuthenticated() || state.token != "" {
		t.Fatalf("failed login must not leave session state")
	}
	if len(nav.routes) != 0 {
		t.Fatalf("failed login must not navigate, got %v", nav.routes)
	}
}

func TestSessionService_LoginThenLogout(t *testing.T) {
	users := &stubUsersGateway{loginResult: &ports.LoginResult{Token: "tok", UserID: json.Number("1")}}
	state := &memState{}
	svc, nav := newTestSession(users, state)

	if err := svc.Login(context.Background(), "a@b.com", "pw"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	svc.Logout()

	if svc.IsAuthenticated() {
		t.Fatalf("expected signed-out state after logout")
	}
	if state.token != "" || state.user != nil {
		t.Fatalf("expected persisted storage empty after logout")
	}
	if len(nav.routes) != 2 || nav.routes[1] != "/login" {
		t.Fatalf("expected navigation to /login, got %v", nav.routes)
	}

	// Idempotent when already signed out.
	svc.Logout()
	if svc.IsAuthenticated() {
		t.Fatalf("second logout changed state")
	}
}

func TestSessionService_RegisterAutoLogin(t *testing.T) {
	users := &stubUsersGateway{loginResult: &ports.LoginResult{Token: "tok", UserID: json.Number("5"), Role: domain.RoleUser}}
	svc, nav := newTestSession(users, &memState{})

	if err := svc.Register(context.Background(), "dave", "dave@example.com", "longenough"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if users.registerCalls != 1 || users.loginCalls != 1 {
		t.Fatalf("expected register then login, got %d/%d", users.registerCalls, users.loginCalls)
	}
	if users.lastLogin != "dave@example.com" || users.lastPassword != "longenough" {
		t.Fatalf("auto-login must reuse the registration credentials")
	}
	if !svc.IsAuthenticated() {
		t.Fatalf("expected authenticated session after register")
	}
	if len(nav.routes) != 1 || nav.routes[0] != "/home" {
		t.Fatalf("expected navigation to /home, got %v", nav.routes)
	}
}

func TestSessionService_RegisterThenLoginFails(t *testing.T) {
	wantErr := errors.New("service restarting")
	users := &stubUsersGateway{loginErr: wantErr}
	svc, _ := newTestSession(users, &memState{})

	err := svc.Register(context.Background(), "dave", "dave@example.com", "longenough")
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected the login error to propagate, got %v", err)
	}
	if users.registerCalls != 1 {
		t.Fatalf("expected registration attempted once")
	}
	if svc.IsAuthenticated() {
		t.Fatalf("caller must be left unauthenticated")
	}
}
