package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Senethlakshan/wanderlust-tales/auth"
	"github.com/Senethlakshan/wanderlust-tales/common"
	"github.com/Senethlakshan/wanderlust-tales/models"
	"github.com/Senethlakshan/wanderlust-tales/utils"
)

var demo = models.User{ID: "demo1", Username: "testuser", Name: "Test User", Email: "test@example.com"}

type stubMailer struct {
	to, username string
	err          error
}

func (m *stubMailer) SendWelcome(ctx context.Context, to, username string) error {
	m.to, m.username = to, username
	return m.err
}

func newTestManager(t *testing.T, store Store, opts ...ManagerOption) *Manager {
	t.Helper()
	v, err := auth.NewDemoVerifier(demo, "Password123")
	if err != nil {
		t.Fatal(err)
	}
	return NewManager(store, v, utils.NewSigner("test-secret"), opts...)
}

func nextEvent(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case e := <-ch:
		return e
	case <-time.After(time.Second):
		t.Fatal("no session event received")
		return Event{}
	}
}

func TestLoginAuthenticates(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, NewMemoryStore())
	events, cancel := m.Subscribe()
	defer cancel()

	s, err := m.Login(ctx, "test@example.com", "Password123")
	if err != nil {
		t.Fatal(err)
	}
	if s.Token == "" {
		t.Fatal("empty token")
	}
	if !m.IsAuthenticated(ctx) {
		t.Fatal("not authenticated after login")
	}
	u := m.CurrentUser(ctx)
	if u == nil || u.Username != "testuser" {
		t.Fatalf("current user = %+v", u)
	}

	e := nextEvent(t, events)
	if e.Type != EventLogin || e.User == nil || e.User.ID != "demo1" {
		t.Fatalf("event = %+v", e)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	m := newTestManager(t, store)

	_, err := m.Login(ctx, "wrong@x.com", "bad")
	if !errors.Is(err, common.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want invalid credentials", err)
	}
	if m.IsAuthenticated(ctx) {
		t.Fatal("authenticated after failed login")
	}
	if m.CurrentUser(ctx) != nil {
		t.Fatal("current user after failed login")
	}
	if store.Len() != 0 {
		t.Fatalf("store has %d entries", store.Len())
	}
}

func TestFailedLoginKeepsExistingSession(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, NewMemoryStore())
	s, err := m.Login(ctx, "test@example.com", "Password123")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Login(ctx, "test@example.com", "nope"); err == nil {
		t.Fatal("bad password accepted")
	}
	cur, ok := m.Current(ctx)
	if !ok || cur.Token != s.Token {
		t.Fatal("failed login disturbed the existing session")
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	m := newTestManager(t, store)

	if err := m.Logout(ctx); err != nil {
		t.Fatalf("logout while anonymous: %v", err)
	}
	if _, err := m.Login(ctx, "test@example.com", "Password123"); err != nil {
		t.Fatal(err)
	}
	events, cancel := m.Subscribe()
	defer cancel()

	for i := 0; i < 2; i++ {
		if err := m.Logout(ctx); err != nil {
			t.Fatal(err)
		}
	}
	if m.IsAuthenticated(ctx) || store.Len() != 0 {
		t.Fatal("session survived logout")
	}
	if e := nextEvent(t, events); e.Type != EventLogout {
		t.Fatalf("event = %+v", e)
	}
	select {
	case e := <-events:
		t.Fatalf("second logout emitted %+v", e)
	default:
	}
}

func TestInconsistentRecordReadsAsAnonymous(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	m := newTestManager(t, store)

	if err := store.Set(ctx, TokenKey, "orphan"); err != nil {
		t.Fatal(err)
	}
	if m.IsAuthenticated(ctx) {
		t.Fatal("token without user counted as a session")
	}
	if store.Len() != 0 {
		t.Fatal("stray token not cleared")
	}

	if err := store.Set(ctx, UserKey, `{"id":"demo1"}`); err != nil {
		t.Fatal(err)
	}
	if m.CurrentUser(ctx) != nil {
		t.Fatal("user without token counted as a session")
	}

	_ = store.Set(ctx, TokenKey, "t")
	_ = store.Set(ctx, UserKey, "{not json")
	if m.IsAuthenticated(ctx) {
		t.Fatal("malformed user record counted as a session")
	}
}

func TestAuthorize(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, NewMemoryStore())

	if _, err := m.Authorize(ctx, ""); !errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("empty token err = %v", err)
	}

	first, err := m.Login(ctx, "test@example.com", "Password123")
	if err != nil {
		t.Fatal(err)
	}
	u, err := m.Authorize(ctx, first.Token)
	if err != nil {
		t.Fatal(err)
	}
	if u.ID != "demo1" {
		t.Fatalf("user = %+v", u)
	}

	second, err := m.Login(ctx, "test@example.com", "Password123")
	if err != nil {
		t.Fatal(err)
	}
	if second.Token == first.Token {
		t.Fatal("login reused a token")
	}
	if _, err := m.Authorize(ctx, first.Token); !errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("replaced token err = %v", err)
	}
	if _, err := m.Authorize(ctx, "garbage"); !errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("garbage token err = %v", err)
	}

	_ = m.Logout(ctx)
	if _, err := m.Authorize(ctx, second.Token); !errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("token after logout err = %v", err)
	}
}

func TestInvalidateClearsSession(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	m := newTestManager(t, store)
	if _, err := m.Login(ctx, "test@example.com", "Password123"); err != nil {
		t.Fatal(err)
	}
	events, cancel := m.Subscribe()
	defer cancel()

	m.Invalidate(ctx, "test")
	if m.IsAuthenticated(ctx) || store.Len() != 0 {
		t.Fatal("session survived invalidation")
	}
	if e := nextEvent(t, events); e.Type != EventInvalidated {
		t.Fatalf("event = %+v", e)
	}
}

func TestRegisterAlwaysSucceeds(t *testing.T) {
	ctx := context.Background()
	mailer := &stubMailer{}
	store := NewMemoryStore()
	m := newTestManager(t, store, WithMailer(mailer))

	res := m.Register(ctx, "testuser", "test@example.com", "whatever")
	if !res.Success || res.Message != "Registration successful" {
		t.Fatalf("result = %+v", res)
	}
	if mailer.to != "test@example.com" || mailer.username != "testuser" {
		t.Fatalf("mailer got %q/%q", mailer.to, mailer.username)
	}

	mailer.err = errors.New("smtp down")
	res = m.Register(ctx, "someone", "someone@x.com", "")
	if !res.Success || res.Message != "Registration successful (demo)" {
		t.Fatalf("result = %+v", res)
	}
	if m.IsAuthenticated(ctx) || store.Len() != 0 {
		t.Fatal("register touched the session")
	}
}

// batchFailStore rejects multi-key deletes so the per-key fallback is exercised.
type batchFailStore struct {
	*MemoryStore
}

func (s batchFailStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) > 1 {
		return errors.New("batch delete unsupported")
	}
	return s.MemoryStore.Delete(ctx, keys...)
}

func TestLogoutFallsBackToPerKeyDelete(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStore()
	m := newTestManager(t, batchFailStore{mem})
	if _, err := m.Login(ctx, "test@example.com", "Password123"); err != nil {
		t.Fatal(err)
	}
	if err := m.Logout(ctx); err != nil {
		t.Fatal(err)
	}
	if mem.Len() != 0 {
		t.Fatalf("store has %d entries after logout", mem.Len())
	}
}

func TestSubscribeCancelClosesChannel(t *testing.T) {
	m := newTestManager(t, NewMemoryStore())
	events, cancel := m.Subscribe()
	cancel()
	cancel()
	if _, open := <-events; open {
		t.Fatal("channel still open after cancel")
	}
}
