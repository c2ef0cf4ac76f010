package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/eduai/eduai/internal/api"
)

// mockAuthService implements Service for store tests.
type mockAuthService struct {
	resp *api.TokenResponse
	err  error

	loginCalls    int
	registerCalls int
	started       chan struct{}
	block         chan struct{}
}

func (m *mockAuthService) Login(_ context.Context, _ api.LoginRequest) (*api.TokenResponse, error) {
	m.loginCalls++
	if m.started != nil {
		close(m.started)
	}
	if m.block != nil {
		<-m.block
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func (m *mockAuthService) Register(_ context.Context, _ api.RegisterRequest) (*api.TokenResponse, error) {
	m.registerCalls++
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

// memPersister keeps the record in memory.
type memPersister struct {
	saved []Session
	load  Session
}

func (m *memPersister) Save(s Session) error {
	m.saved = append(m.saved, s)
	return nil
}

func (m *memPersister) Load() Session { return m.load }

func studentToken() *api.TokenResponse {
	return &api.TokenResponse{
		AccessToken:  "access-abc",
		RefreshToken: "refresh-xyz",
		TokenType:    "bearer",
		User: api.User{
			ID:       7,
			Email:    "student@example.com",
			FullName: "Sam Student",
			Role:     api.RoleStudent,
		},
	}
}

func TestLoginInstallsSession(t *testing.T) {
	svc := &mockAuthService{resp: studentToken()}
	persist := &memPersister{}
	store := NewStore(svc, persist)

	if err := store.Login(context.Background(), "student@example.com", "pw"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	sess := store.Current()
	if !sess.IsAuthenticated() {
		t.Fatal("not authenticated after login")
	}
	if sess.User == nil || sess.User.Email != "student@example.com" {
		t.Errorf("User = %+v, want student@example.com", sess.User)
	}
	if sess.Token != "access-abc" || sess.RefreshToken != "refresh-xyz" {
		t.Errorf("tokens = %q/%q, want access-abc/refresh-xyz", sess.Token, sess.RefreshToken)
	}
	if sess.IsAdmin() {
		t.Error("student session reports IsAdmin")
	}
	if len(persist.saved) != 1 {
		t.Errorf("persisted %d times, want 1", len(persist.saved))
	}
	if store.AccessToken() != "access-abc" {
		t.Errorf("AccessToken = %q, want access-abc", store.AccessToken())
	}
}

func TestLoginFailureLeavesStoreUntouched(t *testing.T) {
	svc := &mockAuthService{err: errors.New("invalid credentials")}
	persist := &memPersister{}
	store := NewStore(svc, persist)

	if err := store.Login(context.Background(), "student@example.com", "bad"); err == nil {
		t.Fatal("Login succeeded, want error")
	}
	if store.Current().IsAuthenticated() {
		t.Error("authenticated after failed login")
	}
	if len(persist.saved) != 0 {
		t.Errorf("persisted %d times after failure, want 0", len(persist.saved))
	}
	if svc.loginCalls != 1 {
		t.Errorf("login called %d times, want 1 (no retries)", svc.loginCalls)
	}
}

func TestRegisterInstallsSession(t *testing.T) {
	svc := &mockAuthService{resp: studentToken()}
	store := NewStore(svc, &memPersister{})

	err := store.Register(context.Background(), api.RegisterRequest{
		Email:    "student@example.com",
		Password: "pw",
		FullName: "Sam Student",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if !store.Current().IsAuthenticated() {
		t.Error("not authenticated after register")
	}
	if svc.registerCalls != 1 {
		t.Errorf("register called %d times, want 1", svc.registerCalls)
	}
}

func TestLogoutClearsEverything(t *testing.T) {
	svc := &mockAuthService{resp: studentToken()}
	persist := &memPersister{}
	store := NewStore(svc, persist)

	if err := store.Login(context.Background(), "student@example.com", "pw"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := store.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	sess := store.Current()
	if sess.IsAuthenticated() {
		t.Error("authenticated after logout")
	}
	if sess.User != nil || sess.Token != "" || sess.RefreshToken != "" {
		t.Errorf("session not fully cleared: %+v", sess)
	}
	if store.AccessToken() != "" {
		t.Errorf("AccessToken = %q after logout, want empty", store.AccessToken())
	}

	// The cleared state was persisted too.
	last := persist.saved[len(persist.saved)-1]
	if last.User != nil || last.Token != "" {
		t.Errorf("persisted session not cleared: %+v", last)
	}
}

func TestIsAdminComputedFromRole(t *testing.T) {
	tr := studentToken()
	tr.User.Role = api.RoleAdmin
	svc := &mockAuthService{resp: tr}
	store := NewStore(svc, &memPersister{})

	if err := store.Login(context.Background(), "admin@example.com", "pw"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !store.Current().IsAdmin() {
		t.Error("admin session does not report IsAdmin")
	}
}

func TestLoadRehydratesFromPersister(t *testing.T) {
	user := api.User{ID: 7, Email: "student@example.com", FullName: "Sam Student", Role: api.RoleStudent}
	persist := &memPersister{load: Session{User: &user, Token: "access-abc", RefreshToken: "refresh-xyz"}}
	store := NewStore(&mockAuthService{}, persist)

	store.Load()

	sess := store.Current()
	if !sess.IsAuthenticated() {
		t.Fatal("not authenticated after Load")
	}
	if sess.User.Email != "student@example.com" {
		t.Errorf("User.Email = %q, want student@example.com", sess.User.Email)
	}
}

func TestSubscribeNotifiedOnEveryChange(t *testing.T) {
	svc := &mockAuthService{resp: studentToken()}
	store := NewStore(svc, &memPersister{})

	var seen []Session
	store.Subscribe(func(s Session) { seen = append(seen, s) })

	if err := store.Login(context.Background(), "student@example.com", "pw"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := store.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	if len(seen) != 2 {
		t.Fatalf("notified %d times, want 2", len(seen))
	}
	if !seen[0].IsAuthenticated() {
		t.Error("first notification not authenticated")
	}
	if seen[1].IsAuthenticated() {
		t.Error("second notification still authenticated")
	}
}

func TestConcurrentLoginRejected(t *testing.T) {
	svc := &mockAuthService{
		resp:    studentToken(),
		started: make(chan struct{}),
		block:   make(chan struct{}),
	}
	store := NewStore(svc, &memPersister{})

	first := make(chan error, 1)
	go func() {
		first <- store.Login(context.Background(), "student@example.com", "pw")
	}()

	// Wait until the first call is inside the service.
	<-svc.started

	if err := store.Login(context.Background(), "student@example.com", "pw"); !errors.Is(err, ErrAuthInFlight) {
		t.Errorf("second Login = %v, want ErrAuthInFlight", err)
	}

	close(svc.block)
	if err := <-first; err != nil {
		t.Fatalf("first Login: %v", err)
	}
	if !store.Current().IsAuthenticated() {
		t.Error("first login did not complete")
	}
}
