package account

import (
	"sort"

	"github.com/tobim/famvault/internal/common"
)

// UserAccount is the aggregate root for the single per-device account:
// identity, PIN credential, the profile set, and the active profile
// selection. It owns its profiles exclusively.
type UserAccount struct {
	Name  string
	Email string

	credential      *PinCredential
	profiles        map[string]*UserProfile
	activeProfileID string
}

// NewUserAccount builds an account without a credential. The PIN is set
// separately via UpdatePin so it always goes through hashing.
func NewUserAccount(name, email string) *UserAccount {
	return &UserAccount{
		Name:     name,
		Email:    email,
		profiles: make(map[string]*UserProfile),
	}
}

// AddProfile inserts a new profile with a fresh unique id and returns the id.
// Returns common.ErrInvalidProfileInput if the name is empty.
func (a *UserAccount) AddProfile(name string, avatarID int, isChild bool) (string, error) {
	if name == "" {
		return "", common.ErrInvalidProfileInput
	}
	p := newUserProfile(name, avatarID, isChild)
	a.profiles[p.ID] = p
	return p.ID, nil
}

// RemoveProfile deletes the profile with the given id. If it was the active
// profile, the active selection is cleared; no other profile is promoted.
// Returns common.ErrProfileNotFound for an unknown id.
func (a *UserAccount) RemoveProfile(id string) error {
	if _, ok := a.profiles[id]; !ok {
		return common.ErrProfileNotFound
	}
	delete(a.profiles, id)
	if a.activeProfileID == id {
		a.activeProfileID = ""
	}
	return nil
}

// SetActiveProfile marks the profile with the given id as active.
// Returns common.ErrProfileNotFound for an unknown id.
func (a *UserAccount) SetActiveProfile(id string) error {
	if _, ok := a.profiles[id]; !ok {
		return common.ErrProfileNotFound
	}
	a.activeProfileID = id
	return nil
}

// ActiveProfile returns the active profile, if one is selected.
func (a *UserAccount) ActiveProfile() (*UserProfile, bool) {
	if a.activeProfileID == "" {
		return nil, false
	}
	p, ok := a.profiles[a.activeProfileID]
	return p, ok
}

// Profile returns the profile with the given id, if present.
func (a *UserAccount) Profile(id string) (*UserProfile, bool) {
	p, ok := a.profiles[id]
	return p, ok
}

// Profiles returns all profiles sorted by name (id as tiebreaker) for
// stable listings.
func (a *UserAccount) Profiles() []*UserProfile {
	result := make([]*UserProfile, 0, len(a.profiles))
	for _, p := range a.profiles {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].ID < result[j].ID
	})
	return result
}

// CheckPin reports whether the candidate PIN matches the account credential.
// An account without a credential matches nothing.
func (a *UserAccount) CheckPin(candidate string) bool {
	if a.credential == nil {
		return false
	}
	return a.credential.Matches(candidate)
}

// CheckCredentials reports whether both the email and the PIN match.
func (a *UserAccount) CheckCredentials(email, pin string) bool {
	return email == a.Email && a.CheckPin(pin)
}

// UpdatePin replaces the account credential with one derived from newPin.
// Returns common.ErrInvalidCredentialInput for an empty PIN.
func (a *UserAccount) UpdatePin(newPin string) error {
	var (
		cred *PinCredential
		err  error
	)
	if a.credential == nil {
		cred, err = NewPinCredential(newPin)
	} else {
		cred, err = a.credential.Update(newPin)
	}
	if err != nil {
		return err
	}
	a.credential = cred
	return nil
}

// Clone returns a deep copy of the account. The session layer mutates a
// clone and swaps it in only after the store accepted the new record.
func (a *UserAccount) Clone() *UserAccount {
	cp := &UserAccount{
		Name:            a.Name,
		Email:           a.Email,
		activeProfileID: a.activeProfileID,
		profiles:        make(map[string]*UserProfile, len(a.profiles)),
	}
	if a.credential != nil {
		cp.credential = a.credential.clone()
	}
	for id, p := range a.profiles {
		cp.profiles[id] = p.clone()
	}
	return cp
}
