// Package session holds the authenticated principal for the lifetime
// of the process and gates every catalog/log operation on its
// presence. The principal is mirrored into the restorable store so a
// restart can rehydrate the session without a fresh login.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"fittrack/internal/domain"
	"fittrack/internal/notify"
	"fittrack/internal/remote"
	"fittrack/internal/store"
)

// StoreKey is where the serialized principal lives in the restorable
// store.
const StoreKey = "fittrack/session"

// Manager implements Identity & Session.
type Manager struct {
	auth     remote.AuthAPI
	store    store.Store
	notifier notify.Notifier

	mu      sync.RWMutex
	current *domain.Principal
}

func NewManager(auth remote.AuthAPI, st store.Store, notifier notify.Notifier) *Manager {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	return &Manager{
		auth:     auth,
		store:    st,
		notifier: notifier,
	}
}

// Current returns the active principal, if any.
func (m *Manager) Current() (*domain.Principal, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return nil, false
	}
	p := *m.current
	return &p, true
}

// Token returns the active session token, or "" when logged out. It
// satisfies rest.TokenSource.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return ""
	}
	return m.current.SessionToken
}

// Login authenticates against the collaborator and establishes the
// principal. On failure the prior state is left untouched and the
// error is returned so the caller can keep its form open.
func (m *Manager) Login(ctx context.Context, email, password string) (*domain.Principal, error) {
	creds, err := m.auth.Authenticate(ctx, email, password)
	if err != nil {
		m.notifier.Notify(notify.KindError, "Login failed", err.Error())
		return nil, err
	}
	return m.establish(creds, "Login successful", "Welcome back!")
}

// Register creates a new account and behaves like Login on success.
func (m *Manager) Register(ctx context.Context, name, email, password string) (*domain.Principal, error) {
	creds, err := m.auth.CreateAccount(ctx, name, email, password)
	if err != nil {
		m.notifier.Notify(notify.KindError, "Registration failed", err.Error())
		return nil, err
	}
	return m.establish(creds, "Registration complete", "Your account was created.")
}

func (m *Manager) establish(creds *remote.Credentials, title, message string) (*domain.Principal, error) {
	principal := &domain.Principal{
		ID:           creds.UserID,
		DisplayName:  creds.Username,
		Email:        creds.Email,
		Role:         creds.Role,
		SessionToken: creds.Token,
	}

	blob, err := json.Marshal(principal)
	if err != nil {
		return nil, fmt.Errorf("serialize principal: %w", err)
	}
	if err := m.store.Set(StoreKey, blob); err != nil {
		// The session is still usable for this process; it just will
		// not survive a restart.
		m.notifier.Notify(notify.KindError, "Session not persisted", err.Error())
	}

	m.mu.Lock()
	m.current = principal
	m.mu.Unlock()

	m.notifier.Notify(notify.KindSuccess, title, message)
	p := *principal
	return &p, nil
}

// Logout clears the principal from memory and from the restorable
// store. Idempotent: logging out while logged out is a no-op.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	wasActive := m.current != nil
	m.current = nil
	m.mu.Unlock()

	if err := m.store.Delete(StoreKey); err != nil {
		return fmt.Errorf("clear persisted session: %w", err)
	}
	if wasActive {
		m.notifier.Notify(notify.KindSuccess, "Logged out", "You have been signed out.")
	}
	return nil
}

// Restore rehydrates the principal from the restorable store. A
// missing or malformed blob leaves the session empty; malformed blobs
// are discarded rather than reported, matching a cleared login. Must
// complete before any catalog/log operation runs.
func (m *Manager) Restore(ctx context.Context) error {
	blob, ok, err := m.store.Get(StoreKey)
	if err != nil {
		return fmt.Errorf("read persisted session: %w", err)
	}
	if !ok {
		return nil
	}

	var principal domain.Principal
	if err := json.Unmarshal(blob, &principal); err != nil || !principal.WellFormed() {
		_ = m.store.Delete(StoreKey)
		return nil
	}

	m.mu.Lock()
	m.current = &principal
	m.mu.Unlock()
	return nil
}
