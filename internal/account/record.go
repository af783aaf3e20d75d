package account

import (
	"fmt"

	"github.com/tobim/famvault/internal/common"
)

// Record is the serialized form of a UserAccount as held by the account
// store. The store keeps exactly one record per device.
type Record struct {
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	PinSecret       string          `json:"pinSecret"`
	Profiles        []ProfileRecord `json:"profiles"`
	ActiveProfileID string          `json:"activeProfileId,omitempty"`
}

// ProfileRecord is the serialized form of a single profile.
type ProfileRecord struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	AvatarID int    `json:"avatarId"`
	IsChild  bool   `json:"isChild"`
}

// ToRecord renders the account in its persisted form.
func (a *UserAccount) ToRecord() *Record {
	r := &Record{
		Name:            a.Name,
		Email:           a.Email,
		ActiveProfileID: a.activeProfileID,
	}
	if a.credential != nil {
		r.PinSecret = a.credential.Encode()
	}
	r.Profiles = make([]ProfileRecord, 0, len(a.profiles))
	for _, p := range a.Profiles() {
		r.Profiles = append(r.Profiles, ProfileRecord{
			ID:       p.ID,
			Name:     p.Name,
			AvatarID: p.AvatarID,
			IsChild:  p.IsChild,
		})
	}
	return r
}

// FromRecord reconstructs an account from its persisted form. A record whose
// active profile id does not reference one of its profiles is rejected as
// corrupt.
func FromRecord(r *Record) (*UserAccount, error) {
	a := NewUserAccount(r.Name, r.Email)

	if r.PinSecret != "" {
		cred, err := DecodePinCredential(r.PinSecret)
		if err != nil {
			return nil, err
		}
		a.credential = cred
	}

	for _, pr := range r.Profiles {
		if pr.ID == "" || pr.Name == "" {
			return nil, fmt.Errorf("profile record %q: %w", pr.ID, common.ErrInvalidProfileInput)
		}
		a.profiles[pr.ID] = &UserProfile{
			ID:       pr.ID,
			Name:     pr.Name,
			AvatarID: pr.AvatarID,
			IsChild:  pr.IsChild,
		}
	}

	if r.ActiveProfileID != "" {
		if _, ok := a.profiles[r.ActiveProfileID]; !ok {
			return nil, fmt.Errorf("active profile %q: %w", r.ActiveProfileID, common.ErrProfileNotFound)
		}
		a.activeProfileID = r.ActiveProfileID
	}

	return a, nil
}
