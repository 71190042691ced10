package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittrack/internal/domain"
	"fittrack/internal/notify"
	"fittrack/internal/remote/memory"
	"fittrack/internal/session"
	"fittrack/internal/store"
)

func newManager(t *testing.T) (*session.Manager, *memory.AuthAPI, *store.MemoryStore, *notify.Recorder) {
	t.Helper()
	auth := memory.NewAuthAPI()
	st := store.NewMemoryStore()
	recorder := &notify.Recorder{}
	return session.NewManager(auth, st, recorder), auth, st, recorder
}

func TestRegisterEstablishesSession(t *testing.T) {
	ctx := context.Background()
	manager, _, st, recorder := newManager(t)

	principal, err := manager.Register(ctx, "Ana", "ana@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "Ana", principal.DisplayName)
	assert.NotEmpty(t, principal.SessionToken)

	current, ok := manager.Current()
	require.True(t, ok)
	assert.Equal(t, principal.ID, current.ID)

	// Principal was mirrored into the restorable store.
	_, stored, err := st.Get(session.StoreKey)
	require.NoError(t, err)
	assert.True(t, stored)

	assert.Equal(t, notify.KindSuccess, recorder.Last().Kind)
}

func TestRegisterDuplicateAccount(t *testing.T) {
	ctx := context.Background()
	manager, _, _, recorder := newManager(t)

	_, err := manager.Register(ctx, "Ana", "ana@example.com", "s3cret-pass")
	require.NoError(t, err)
	require.NoError(t, manager.Logout(ctx))

	_, err = manager.Register(ctx, "Other", "ana@example.com", "other-pass")
	require.ErrorIs(t, err, domain.ErrDuplicateAccount)

	// Failure leaves the (empty) session untouched.
	_, ok := manager.Current()
	assert.False(t, ok)
	assert.Equal(t, notify.KindError, recorder.Last().Kind)
}

func TestLoginInvalidCredentials(t *testing.T) {
	ctx := context.Background()
	manager, _, _, _ := newManager(t)

	_, err := manager.Login(ctx, "nobody@example.com", "nope")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, ok := manager.Current()
	assert.False(t, ok)
}

func TestLogoutIsIdempotent(t *testing.T) {
	ctx := context.Background()
	manager, _, st, _ := newManager(t)

	_, err := manager.Register(ctx, "Ana", "ana@example.com", "s3cret-pass")
	require.NoError(t, err)

	require.NoError(t, manager.Logout(ctx))
	_, ok := manager.Current()
	assert.False(t, ok)
	_, stored, err := st.Get(session.StoreKey)
	require.NoError(t, err)
	assert.False(t, stored)

	// Logging out again is a no-op, not an error.
	require.NoError(t, manager.Logout(ctx))
}

func TestRestoreRehydratesPrincipal(t *testing.T) {
	ctx := context.Background()
	auth := memory.NewAuthAPI()
	st := store.NewMemoryStore()

	first := session.NewManager(auth, st, nil)
	principal, err := first.Register(ctx, "Ana", "ana@example.com", "s3cret-pass")
	require.NoError(t, err)

	// A fresh manager over the same store simulates a restart.
	second := session.NewManager(auth, st, nil)
	require.NoError(t, second.Restore(ctx))

	restored, ok := second.Current()
	require.True(t, ok)
	assert.Equal(t, principal.ID, restored.ID)
	assert.Equal(t, principal.SessionToken, restored.SessionToken)
	assert.Equal(t, principal.SessionToken, second.Token())
}

func TestRestoreEmptyStoreLeavesSessionEmpty(t *testing.T) {
	manager, _, _, _ := newManager(t)
	require.NoError(t, manager.Restore(context.Background()))
	_, ok := manager.Current()
	assert.False(t, ok)
}

func TestRestoreDiscardsMalformedBlob(t *testing.T) {
	ctx := context.Background()
	auth := memory.NewAuthAPI()
	st := store.NewMemoryStore()
	require.NoError(t, st.Set(session.StoreKey, []byte("{not json")))

	manager := session.NewManager(auth, st, nil)
	require.NoError(t, manager.Restore(ctx))

	_, ok := manager.Current()
	assert.False(t, ok)
	// The corrupt blob is gone.
	_, stored, err := st.Get(session.StoreKey)
	require.NoError(t, err)
	assert.False(t, stored)
}

func TestRestoreDiscardsIncompletePrincipal(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	require.NoError(t, st.Set(session.StoreKey, []byte(`{"id":"","sessionToken":""}`)))

	manager := session.NewManager(memory.NewAuthAPI(), st, nil)
	require.NoError(t, manager.Restore(ctx))

	_, ok := manager.Current()
	assert.False(t, ok)
}
