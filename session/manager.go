package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/Senethlakshan/wanderlust-tales/auth"
	"github.com/Senethlakshan/wanderlust-tales/common"
	"github.com/Senethlakshan/wanderlust-tales/models"
	"github.com/Senethlakshan/wanderlust-tales/utils"
)

// Mailer delivers the welcome note sent after registration.
type Mailer interface {
	SendWelcome(ctx context.Context, to, username string) error
}

type RegisterResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Manager moves the session between the anonymous and authenticated states.
type Manager struct {
	store    Store
	verifier auth.Verifier
	signer   *utils.Signer
	mailer   Mailer

	// mu makes the two-key record read and written as one value.
	mu   sync.Mutex
	feed *feed
}

type ManagerOption func(*Manager)

func WithMailer(m Mailer) ManagerOption {
	return func(mg *Manager) { mg.mailer = m }
}

func NewManager(store Store, verifier auth.Verifier, signer *utils.Signer, opts ...ManagerOption) *Manager {
	m := &Manager{
		store:    store,
		verifier: verifier,
		signer:   signer,
		feed:     newFeed(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Login authenticates the credentials and, on success, replaces any stored
// session with a freshly minted one. On failure the stored state is untouched.
func (m *Manager) Login(ctx context.Context, email, password string) (models.Session, error) {
	user, err := m.verifier.Verify(ctx, email, password)
	if err != nil {
		common.InfoLogger.Printf("login rejected for %q: %v", email, err)
		return models.Session{}, err
	}

	token, err := m.signer.GenerateToken(user.ID, user.Username, user.Email)
	if err != nil {
		return models.Session{}, common.SystemError(err)
	}
	s := models.Session{Token: token, User: user}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.save(ctx, s); err != nil {
		return models.Session{}, err
	}
	common.InfoLogger.Printf("%s logged in", user.Username)
	m.feed.publish(Event{Type: EventLogin, User: &s.User})
	return s, nil
}

func (m *Manager) save(ctx context.Context, s models.Session) error {
	raw, err := json.Marshal(s.User)
	if err != nil {
		return common.SystemError(err)
	}
	if err := m.store.Set(ctx, UserKey, string(raw)); err != nil {
		return common.SystemError(err)
	}
	if err := m.store.Set(ctx, TokenKey, s.Token); err != nil {
		if derr := m.store.Delete(ctx, UserKey); derr != nil {
			common.ErrorLogger.Println("rollback of session user failed:", derr)
		}
		return common.SystemError(err)
	}
	return nil
}

// Register acknowledges a sign-up. No account is created and the session is
// not touched. The welcome mail is best effort.
func (m *Manager) Register(ctx context.Context, username, email, password string) RegisterResult {
	res := RegisterResult{Success: true, Message: "Registration successful (demo)"}
	if im, ok := m.verifier.(auth.IdentityMatcher); ok && im.Matches(username, email) {
		res.Message = "Registration successful"
	}

	if m.mailer != nil && email != "" {
		if err := m.mailer.SendWelcome(ctx, email, username); err != nil {
			common.WarningLogger.Printf("welcome mail to %s failed: %v", email, err)
		}
	}
	return res
}

// Logout clears the stored session. It is safe to call when nobody is logged in.
func (m *Manager) Logout(ctx context.Context) error {
	return m.end(ctx, EventLogout)
}

// Invalidate clears the stored session after an authorization failure.
func (m *Manager) Invalidate(ctx context.Context, reason string) {
	if err := m.end(ctx, EventInvalidated); err != nil {
		common.ErrorLogger.Printf("session invalidation (%s) failed: %v", reason, err)
		return
	}
	common.InfoLogger.Printf("session invalidated: %s", reason)
}

func (m *Manager) end(ctx context.Context, kind EventType) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, had := m.current(ctx)
	if err := m.clear(ctx); err != nil {
		return err
	}
	if had {
		m.feed.publish(Event{Type: kind})
	}
	return nil
}

// clear removes both keys, falling back to one key at a time if the batch delete fails.
func (m *Manager) clear(ctx context.Context) error {
	err := m.store.Delete(ctx, TokenKey, UserKey)
	if err == nil {
		return nil
	}
	common.WarningLogger.Println("clearing session failed, retrying per key:", err)

	var errs []error
	for _, k := range []string{TokenKey, UserKey} {
		if err := m.store.Delete(ctx, k); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return common.SystemError(errors.Join(errs...))
	}
	return nil
}

// Current returns the stored session, if a consistent one exists. It never fails:
// unreadable state reads as anonymous.
func (m *Manager) Current(ctx context.Context) (models.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current(ctx)
}

func (m *Manager) current(ctx context.Context) (models.Session, bool) {
	token, hasToken, err := m.store.Get(ctx, TokenKey)
	if err != nil {
		common.ErrorLogger.Println("reading session token:", err)
		return models.Session{}, false
	}
	raw, hasUser, err := m.store.Get(ctx, UserKey)
	if err != nil {
		common.ErrorLogger.Println("reading session user:", err)
		return models.Session{}, false
	}
	if !hasToken && !hasUser {
		return models.Session{}, false
	}

	var user models.User
	if hasToken != hasUser || token == "" || json.Unmarshal([]byte(raw), &user) != nil {
		common.WarningLogger.Println("inconsistent session record, clearing it")
		if err := m.clear(ctx); err != nil {
			common.ErrorLogger.Println("clearing inconsistent session:", err)
		}
		return models.Session{}, false
	}
	return models.Session{Token: token, User: user}, true
}

// CurrentUser returns the logged-in user or nil.
func (m *Manager) CurrentUser(ctx context.Context) *models.User {
	s, ok := m.Current(ctx)
	if !ok {
		return nil
	}
	return &s.User
}

func (m *Manager) IsAuthenticated(ctx context.Context) bool {
	_, ok := m.Current(ctx)
	return ok
}

// Authorize checks a presented bearer token against the stored session.
func (m *Manager) Authorize(ctx context.Context, token string) (models.User, error) {
	if token == "" {
		return models.User{}, common.UnauthorizedError(nil, "Authorization header is missing")
	}
	if _, err := m.signer.ValidateToken(token); err != nil {
		return models.User{}, common.UnauthorizedError(err, "Invalid or expired token")
	}
	s, ok := m.Current(ctx)
	if !ok || s.Token != token {
		return models.User{}, common.UnauthorizedError(nil, "No active session for this token")
	}
	return s.User, nil
}

// Subscribe returns a feed of session changes. Call cancel to stop receiving.
func (m *Manager) Subscribe() (<-chan Event, func()) {
	return m.feed.subscribe()
}
