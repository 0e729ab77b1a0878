package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenKey is the storage key the bearer token persists under.
const tokenKey = "auth.token"

// Session is the client-local authentication state. Identity is non-nil
// exactly when Token is non-empty and was successfully decoded.
type Session struct {
	Token    string
	Identity *Identity
	// Loading is true until the first Rehydrate settles. No routing
	// decision may be made while it is set.
	Loading bool
	// Err holds the failure of the most recent operation, if any. A set
	// Err never coexists with a valid Identity.
	Err error
}

// Authenticated reports whether the session carries a decoded identity.
func (s Session) Authenticated() bool {
	return s.Identity != nil
}

// Store holds the Session and serializes all mutations. Exactly one
// sign-in/sign-up/sign-out/rehydrate runs at a time; the latest completed
// operation is authoritative.
type Store struct {
	api     API
	storage Storage
	now     func() time.Time

	mu   sync.Mutex
	cur  Session
	subs []chan Session
}

// NewStore creates a Store in the loading state. Call Rehydrate before
// consulting the session for routing.
func NewStore(api API, storage Storage) *Store {
	return &Store{
		api:     api,
		storage: storage,
		now:     time.Now,
		cur:     Session{Loading: true},
	}
}

// Current returns a snapshot of the session.
func (s *Store) Current() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

// Subscribe returns a channel receiving session snapshots. The channel
// holds only the latest snapshot: a slow consumer observes the newest
// state, never a backlog of stale ones.
func (s *Store) Subscribe() <-chan Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan Session, 1)
	ch <- s.cur
	s.subs = append(s.subs, ch)
	return ch
}

// Rehydrate reads the persisted token and restores the session from it.
// Any failure (missing key, storage error, expired or undecodable token)
// settles the session as unauthenticated. Always flips Loading off.
func (s *Store) Rehydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tok, err := s.storage.Get(ctx, tokenKey)
	if err != nil {
		next := Session{}
		if !errors.Is(err, ErrKeyNotFound) {
			next.Err = err
		}
		s.publish(next)
		return
	}

	identity, err := decodeIdentity(tok, s.now())
	if err != nil {
		// Stale or corrupt token: drop it so the next start is clean.
		_ = s.storage.Delete(ctx, tokenKey)
		s.publish(Session{})
		return
	}

	s.publish(Session{Token: tok, Identity: &identity})
}

// SignIn authenticates against the backend and persists the token. On
// failure the session stays unauthenticated with Err set.
func (s *Store) SignIn(ctx context.Context, email, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.api.SignIn(ctx, email, password)
	if err != nil {
		s.publish(Session{Err: err})
		return err
	}
	return s.adopt(ctx, result)
}

// SignUp registers a new account and signs the session in with the
// returned token.
func (s *Store) SignUp(ctx context.Context, profile SignUpProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.api.SignUp(ctx, profile)
	if err != nil {
		s.publish(Session{Err: err})
		return err
	}
	return s.adopt(ctx, result)
}

// SignOut clears the session. Storage deletion is best-effort: the
// in-memory session is cleared even when the delete fails, and calling
// SignOut on a signed-out session is a no-op with the same outcome.
func (s *Store) SignOut(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.storage.Delete(ctx, tokenKey)
	s.publish(Session{Err: err})
	return err
}

// adopt persists and installs a fresh auth result. Caller holds mu.
func (s *Store) adopt(ctx context.Context, result AuthResult) error {
	identity, err := decodeIdentity(result.Token, s.now())
	if err != nil {
		// Fall back to the identity the server reported alongside the token.
		if result.User.ID == "" {
			s.publish(Session{Err: err})
			return err
		}
		identity = result.User
	}

	if err := s.storage.Set(ctx, tokenKey, result.Token); err != nil {
		// Persistence is best-effort: the session is still signed in for
		// this process, it just will not survive a restart.
		s.publish(Session{Token: result.Token, Identity: &identity})
		return nil
	}

	s.publish(Session{Token: result.Token, Identity: &identity})
	return nil
}

// publish installs next as the current session and notifies subscribers.
// Caller holds mu.
func (s *Store) publish(next Session) {
	s.cur = next
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		ch <- next
	}
}

// tokenClaims is the subset of the JWT the client reads locally.
type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// decodeIdentity extracts the identity from a token without verifying the
// signature (the client does not hold the signing key; the server verifies
// every request). Expiry and claim shape are still checked so a stale
// token is not rehydrated into a dead session.
func decodeIdentity(tok string, now time.Time) (Identity, error) {
	var claims tokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(tok, &claims); err != nil {
		return Identity{}, err
	}
	if claims.Subject == "" || claims.Role == "" {
		return Identity{}, errors.New("token missing identity claims")
	}
	if claims.ExpiresAt == nil || !now.Before(claims.ExpiresAt.Time) {
		return Identity{}, errors.New("token expired")
	}
	return Identity{ID: claims.Subject, Role: claims.Role}, nil
}
