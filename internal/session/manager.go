// Package session owns the signed-in identity. It is the only consumer of
// the force-logout event the HTTP layer raises.
package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/reelmates/reelmates-client/internal/events"
	"github.com/reelmates/reelmates-client/internal/models"
	"github.com/reelmates/reelmates-client/internal/repo/users"
	"github.com/reelmates/reelmates-client/internal/store"
	"github.com/reelmates/reelmates-client/pkg/validator"
)

type Manager struct {
	users    users.Client
	session  *store.SessionStore
	validate *validator.Validator
	log      *zap.SugaredLogger

	mu          sync.Mutex
	identity    *models.UserIdentity
	unsubscribe func()
}

func NewManager(
	usersClient users.Client,
	sessionStore *store.SessionStore,
	bus *events.Bus,
	validate *validator.Validator,
	log *zap.Logger,
) *Manager {
	m := &Manager{
		users:    usersClient,
		session:  sessionStore,
		validate: validate,
		log:      log.Named("session").Sugar(),
	}
	m.unsubscribe = bus.Subscribe(events.ForceLogout, m.onForceLogout)
	return m
}

// Restore loads the cached identity from the device store, if any. Called
// once at startup so screens see the signed-in state without a network
// round trip.
func (m *Manager) Restore(ctx context.Context) error {
	identity, err := m.session.Identity(ctx)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.identity = identity
	m.mu.Unlock()
	return nil
}

// SignIn validates the form, authenticates, and persists token + identity.
func (m *Manager) SignIn(ctx context.Context, params users.SignInParams) (*models.User, error) {
	if err := m.validate.Validate(params); err != nil {
		return nil, err
	}

	result, err := m.users.SignIn(ctx, params)
	if err != nil {
		return nil, err
	}

	if err := m.session.SaveToken(ctx, result.Token); err != nil {
		return nil, err
	}
	identity := result.User.Identity()
	if err := m.session.SaveIdentity(ctx, identity); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.identity = &identity
	m.mu.Unlock()
	return &result.User, nil
}

func (m *Manager) SignOut(ctx context.Context) error {
	if err := m.session.Clear(ctx); err != nil {
		return err
	}
	m.mu.Lock()
	m.identity = nil
	m.mu.Unlock()
	return nil
}

// onForceLogout reacts to the HTTP layer's 401 signal. The token is already
// cleared by the publisher; here the cached identity goes too.
func (m *Manager) onForceLogout(e events.Event) {
	m.log.Infow("forced logout", "reason", e.Payload)

	ctx := context.Background()
	if err := m.session.Clear(ctx); err != nil {
		m.log.Errorw("could not clear session after forced logout", "error", err)
	}
	m.mu.Lock()
	m.identity = nil
	m.mu.Unlock()
}

func (m *Manager) Identity() *models.UserIdentity {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.identity
}

func (m *Manager) SignedIn() bool {
	return m.Identity() != nil
}

// Close detaches the manager from the event bus.
func (m *Manager) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}
