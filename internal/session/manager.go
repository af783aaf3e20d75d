// Package session implements the sign-in lifecycle over the single
// device account: registration, login, silent restore, PIN change,
// profile management, and logout.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/tobim/famvault/internal/account"
	"github.com/tobim/famvault/internal/common"
	"github.com/tobim/famvault/internal/logging"
	"github.com/tobim/famvault/internal/store"
)

// PinChangeResult is the structured outcome of ChangePin. A PIN mismatch
// is a normal outcome, not an error.
type PinChangeResult struct {
	Success bool
	Reason  string
}

const (
	ReasonOldPinMismatch = "old pin mismatch"
	ReasonNewPinMismatch = "new pin mismatch"
)

// Manager holds the current signed-in account, if any, and mediates every
// operation against it. It is an explicit session object owned by the
// caller; constructing a Manager does not sign anyone in.
//
// A mutex serializes all operations, so concurrent calls against one
// Manager cannot lose updates. Mutations follow clone, mutate, persist,
// swap: if the store rejects the new record, both the in-memory account
// and the persisted state stay as they were.
type Manager struct {
	mu      sync.Mutex
	store   store.Store
	log     logging.Logger
	current *account.UserAccount
}

func NewManager(s store.Store, log logging.Logger) *Manager {
	return &Manager{store: s, log: log.With("component", "session")}
}

// TrySignIn restores the session from the persisted account record, the
// "remember me" policy: a record present on the device signs its owner
// back in without re-authentication. Returns true if a session was
// restored and false if no record exists.
func (m *Manager) TrySignIn(ctx context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, err := m.store.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}
	if r == nil {
		return false, nil
	}
	acc, err := account.FromRecord(r)
	if err != nil {
		return false, fmt.Errorf("error restoring account: %w", err)
	}
	m.current = acc
	m.log.Info(ctx, "session restored", "email", acc.Email)
	return true, nil
}

// Register creates the device account and signs it in, overwriting any
// previously persisted account. The PIN is routed through UpdatePin so it
// is stored hashed. Returns common.ErrMissingCredentials if any input is
// empty.
func (m *Manager) Register(ctx context.Context, name, email, pin string) error {
	if name == "" || email == "" || pin == "" {
		return common.ErrMissingCredentials
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	acc := account.NewUserAccount(name, email)
	if err := acc.UpdatePin(pin); err != nil {
		return err
	}
	if err := m.persist(ctx, acc); err != nil {
		return err
	}
	m.current = acc
	m.log.Info(ctx, "account registered", "email", email)
	return nil
}

// Login re-validates credentials against the persisted record. A mismatch
// or a missing record yields false, not an error; on success the restored
// account becomes current.
func (m *Manager) Login(ctx context.Context, email, pin string) (bool, error) {
	if email == "" || pin == "" {
		return false, common.ErrMissingCredentials
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	r, err := m.store.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}
	if r == nil {
		return false, nil
	}
	acc, err := account.FromRecord(r)
	if err != nil {
		return false, fmt.Errorf("error restoring account: %w", err)
	}
	if !acc.CheckCredentials(email, pin) {
		m.log.Warn(ctx, "login rejected", "email", email)
		return false, nil
	}
	m.current = acc
	m.log.Info(ctx, "login accepted", "email", email)
	return true, nil
}

// ChangePin replaces the account PIN. The old PIN must match and the new
// PIN must equal its retyped confirmation; both failures are reported as
// a PinChangeResult, leaving the credential untouched.
func (m *Manager) ChangePin(ctx context.Context, oldPin, newPin, retypePin string) (PinChangeResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return PinChangeResult{}, common.ErrNotSignedIn
	}
	if !m.current.CheckPin(oldPin) {
		return PinChangeResult{Success: false, Reason: ReasonOldPinMismatch}, nil
	}
	if newPin != retypePin {
		return PinChangeResult{Success: false, Reason: ReasonNewPinMismatch}, nil
	}

	next := m.current.Clone()
	if err := next.UpdatePin(newPin); err != nil {
		return PinChangeResult{}, err
	}
	if err := m.persist(ctx, next); err != nil {
		return PinChangeResult{}, err
	}
	m.current = next
	m.log.Info(ctx, "pin changed", "email", next.Email)
	return PinChangeResult{Success: true}, nil
}

// CreateProfile adds a profile to the current account and returns its id.
// Returns common.ErrMissingCredentials if the name is empty.
func (m *Manager) CreateProfile(ctx context.Context, name string, avatarID int, isChild bool) (string, error) {
	if name == "" {
		return "", common.ErrMissingCredentials
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return "", common.ErrNotSignedIn
	}
	next := m.current.Clone()
	id, err := next.AddProfile(name, avatarID, isChild)
	if err != nil {
		return "", err
	}
	if err := m.persist(ctx, next); err != nil {
		return "", err
	}
	m.current = next
	m.log.Info(ctx, "profile created", "profile_id", id, "name", name)
	return id, nil
}

// DeleteProfile removes a profile from the current account. Removing the
// active profile clears the active selection. Returns
// common.ErrProfileNotFound for an unknown id.
func (m *Manager) DeleteProfile(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return common.ErrNotSignedIn
	}
	next := m.current.Clone()
	if err := next.RemoveProfile(id); err != nil {
		return err
	}
	if err := m.persist(ctx, next); err != nil {
		return err
	}
	m.current = next
	m.log.Info(ctx, "profile deleted", "profile_id", id)
	return nil
}

// SetActiveProfile selects the active profile of the current account.
// Returns common.ErrProfileNotFound for an unknown id.
func (m *Manager) SetActiveProfile(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return common.ErrNotSignedIn
	}
	next := m.current.Clone()
	if err := next.SetActiveProfile(id); err != nil {
		return err
	}
	if err := m.persist(ctx, next); err != nil {
		return err
	}
	m.current = next
	m.log.Info(ctx, "active profile set", "profile_id", id)
	return nil
}

// ActiveProfile returns the active profile of the current account. Pure
// in-memory read, no I/O.
func (m *Manager) ActiveProfile() (*account.UserProfile, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return nil, false
	}
	return m.current.ActiveProfile()
}

// Profiles lists the profiles of the current account; nil when signed out.
func (m *Manager) Profiles() []*account.UserProfile {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return nil
	}
	return m.current.Profiles()
}

// Account returns the current account, or nil when signed out.
func (m *Manager) Account() *account.UserAccount {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// SignedIn reports whether an account is currently signed in.
func (m *Manager) SignedIn() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current != nil
}

// CheckPin verifies a candidate PIN against the current account. This is
// the hook for PIN prompts; signed out it matches nothing.
func (m *Manager) CheckPin(pin string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return false
	}
	return m.current.CheckPin(pin)
}

// Logout clears the session and erases the persisted record. Safe to call
// repeatedly; calling it signed out is a no-op on the in-memory side and
// still clears the store.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Clear(ctx); err != nil {
		return fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}
	if m.current != nil {
		m.log.Info(ctx, "logged out", "email", m.current.Email)
	}
	m.current = nil
	return nil
}

// persist writes the full aggregate; there is no partial-persistence path.
func (m *Manager) persist(ctx context.Context, acc *account.UserAccount) error {
	if err := m.store.Save(ctx, acc.ToRecord()); err != nil {
		return fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}
	return nil
}
