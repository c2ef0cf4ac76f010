package auth

import (
	"context"
	"errors"
	"sync"

	"github.com/eduai/eduai/internal/api"
)

// ErrAuthInFlight is returned when a login or registration is requested
// while a previous one has not resolved yet.
var ErrAuthInFlight = errors.New("authentication request already in flight")

// Service is the slice of the platform API the store drives. Both calls are
// unauthenticated; the resulting token pair is installed via SetAuth.
type Service interface {
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)
	Register(ctx context.Context, req api.RegisterRequest) (*api.TokenResponse, error)
}

// Persister saves and restores the session record. Load must degrade to the
// zero Session on missing or corrupt data instead of failing.
type Persister interface {
	Save(s Session) error
	Load() Session
}

// Store is the single authoritative holder of the current Session. It has
// one writer path (SetAuth/Logout) and many readers; every mutation replaces
// the whole record, persists it, and notifies subscribers.
type Store struct {
	mu        sync.Mutex
	svc       Service
	persist   Persister
	session   Session
	inFlight  bool
	listeners []func(Session)
}

// NewStore creates a Store. Call Load before rendering any protected view.
func NewStore(svc Service, persist Persister) *Store {
	return &Store{svc: svc, persist: persist}
}

// Load rehydrates the session from durable storage. Corrupt or partial
// records come back as the logged-out state, never an error.
func (s *Store) Load() {
	sess := s.persist.Load()
	s.mu.Lock()
	s.session = sess
	s.mu.Unlock()
}

// Current returns a snapshot of the session.
func (s *Store) Current() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// AccessToken implements api.TokenSource.
func (s *Store) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Token
}

// Subscribe registers a listener notified after every state change.
func (s *Store) Subscribe(fn func(Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Login exchanges credentials for a session. On failure the store is left
// untouched and the error is returned for user-facing reporting; the store
// never retries. A concurrent call returns ErrAuthInFlight.
func (s *Store) Login(ctx context.Context, email, password string) error {
	release, err := s.acquire()
	if err != nil {
		return err
	}
	defer release()

	resp, err := s.svc.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}
	return s.SetAuth(resp)
}

// Register creates an account and installs its first session. Same failure
// contract as Login.
func (s *Store) Register(ctx context.Context, req api.RegisterRequest) error {
	release, err := s.acquire()
	if err != nil {
		return err
	}
	defer release()

	resp, err := s.svc.Register(ctx, req)
	if err != nil {
		return err
	}
	return s.SetAuth(resp)
}

// SetAuth atomically replaces the identity and both tokens. This is the only
// path from logged-out to logged-in.
func (s *Store) SetAuth(tr *api.TokenResponse) error {
	user := tr.User
	s.mu.Lock()
	s.session = Session{
		User:         &user,
		Token:        tr.AccessToken,
		RefreshToken: tr.RefreshToken,
	}
	snap := s.session
	s.mu.Unlock()

	err := s.persist.Save(snap)
	s.notify(snap)
	return err
}

// Logout clears the identity and both tokens. It is a pure local state
// transition; remote token invalidation is the caller's concern.
func (s *Store) Logout() error {
	s.mu.Lock()
	s.session = Session{}
	snap := s.session
	s.mu.Unlock()

	err := s.persist.Save(snap)
	s.notify(snap)
	return err
}

// acquire takes the in-flight slot for an auth call, returning a release
// func, or ErrAuthInFlight if one is already outstanding.
func (s *Store) acquire() (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return nil, ErrAuthInFlight
	}
	s.inFlight = true
	return func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}, nil
}

// notify calls subscribers outside the lock with a state snapshot.
func (s *Store) notify(snap Session) {
	s.mu.Lock()
	listeners := make([]func(Session), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
}
