// ABOUTME: Identity store: registered accounts and the current session identity
// ABOUTME: bcrypt credentials, case-insensitive email lookup, JWT-persisted sessions

package identity

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/quillworks/storywizard/internal/kv"
)

// Persisted keys. Both are global: accounts and the session are shared
// across user namespaces by definition.
const (
	accountsKey = "storywizard-users"
	sessionKey  = "storywizard-user"
)

// Identity errors, surfaced inline to the user and never fatal.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDuplicateAccount   = errors.New("an account with this email already exists")
	ErrDisposableEmail    = errors.New("disposable email addresses are not allowed")
)

// dummyHash is compared against when no account matches, so a login miss
// costs the same as a mismatch and usernames cannot be enumerated by timing.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Temporary-mail domains rejected at signup.
var disposableDomains = map[string]bool{
	"10minutemail.com":  true,
	"temp-mail.org":     true,
	"guerrillamail.com": true,
	"mailinator.com":    true,
	"throwawaymail.com": true,
	"getairmail.com":    true,
	"yopmail.com":       true,
}

// User is the session identity exposed to the rest of the application. It
// never carries credential material.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// account is the stored form of a registered user. The password hash never
// leaves this package.
type account struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"passwordHash"`
}

// Listener is notified after every session transition. The user is nil after
// logout. Listeners are how namespaced stores learn to re-resolve.
type Listener func(*User)

// Service manages registered accounts and the current session identity.
type Service struct {
	store  kv.Store
	tokens *SessionTokens
	logger *slog.Logger

	mu        sync.Mutex
	current   *User
	listeners []Listener
}

// NewService loads any persisted session from the store. A missing, invalid,
// or expired session token simply means logged out.
func NewService(ctx context.Context, store kv.Store, sessionSecret []byte) (*Service, error) {
	s := &Service{
		store:  store,
		tokens: NewSessionTokens(sessionSecret),
		logger: slog.Default().With("component", "identity"),
	}

	var token string
	if err := kv.GetJSON(ctx, store, sessionKey, &token, func() { token = "" }); err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	if token == "" {
		return s, nil
	}

	userID, err := s.tokens.Verify(token)
	if err != nil {
		s.logger.Warn("discarding stale session token", "error", err)
		return s, nil
	}

	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		if a.ID == userID {
			s.current = &User{ID: a.ID, Email: a.Email, Name: a.Name}
			break
		}
	}
	return s, nil
}

// DeriveID returns the stable account id for an email address.
func DeriveID(email string) string {
	return base64.StdEncoding.EncodeToString([]byte(strings.ToLower(email)))
}

func (s *Service) loadAccounts(ctx context.Context) ([]account, error) {
	var accounts []account
	if err := kv.GetJSON(ctx, s.store, accountsKey, &accounts, func() { accounts = nil }); err != nil {
		return nil, fmt.Errorf("loading accounts: %w", err)
	}
	return accounts, nil
}

func (s *Service) saveAccounts(ctx context.Context, accounts []account) error {
	if err := kv.SetJSON(ctx, s.store, accountsKey, accounts); err != nil {
		return fmt.Errorf("saving accounts: %w", err)
	}
	return nil
}

// setSession persists the session identity and notifies listeners. Passing
// nil clears the session.
func (s *Service) setSession(ctx context.Context, u *User) error {
	token := ""
	if u != nil {
		var err error
		token, err = s.tokens.Issue(u.ID)
		if err != nil {
			return fmt.Errorf("issuing session token: %w", err)
		}
	}
	if err := kv.SetJSON(ctx, s.store, sessionKey, token); err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}

	s.mu.Lock()
	s.current = u
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(u)
	}
	return nil
}

// Signup registers a new account and immediately establishes the session.
// The account id is derived deterministically from the email.
func (s *Service) Signup(ctx context.Context, email, name, password string) (*User, error) {
	if domain := emailDomain(email); disposableDomains[domain] {
		return nil, ErrDisposableEmail
	}

	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		if strings.EqualFold(a.Email, email) {
			return nil, ErrDuplicateAccount
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	acct := account{
		ID:           DeriveID(email),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
	}
	if err := s.saveAccounts(ctx, append(accounts, acct)); err != nil {
		return nil, err
	}

	u := &User{ID: acct.ID, Email: acct.Email, Name: acct.Name}
	if err := s.setSession(ctx, u); err != nil {
		return nil, err
	}
	s.logger.Info("account created", "user_id", u.ID)
	return u, nil
}

// Login verifies the credentials against the stored account matched by
// case-insensitive email. On failure the session identity is unchanged.
func (s *Service) Login(ctx context.Context, email, password string) (*User, error) {
	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return nil, err
	}

	var found *account
	for i := range accounts {
		if strings.EqualFold(accounts[i].Email, email) {
			found = &accounts[i]
			break
		}
	}
	if found == nil {
		// Burn a bcrypt comparison anyway to keep timing constant
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	u := &User{ID: found.ID, Email: found.Email, Name: found.Name}
	if err := s.setSession(ctx, u); err != nil {
		return nil, err
	}
	s.logger.Info("login", "user_id", u.ID)
	return u, nil
}

// Logout clears the session identity unconditionally. The account survives.
func (s *Service) Logout(ctx context.Context) error {
	return s.setSession(ctx, nil)
}

// CurrentUser returns the session identity, or false when logged out.
func (s *Service) CurrentUser() (*User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, false
	}
	u := *s.current
	return &u, true
}

// Subscribe registers a listener for session transitions. Listeners are
// invoked synchronously after login, signup, and logout.
func (s *Service) Subscribe(fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func emailDomain(email string) string {
	_, domain, ok := strings.Cut(email, "@")
	if !ok {
		return ""
	}
	return strings.ToLower(domain)
}
