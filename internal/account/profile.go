package account

import "github.com/google/uuid"

// UserProfile is a named sub-identity within the account, e.g. one family
// member. The ID is assigned at creation and never changes.
type UserProfile struct {
	ID       string
	Name     string
	AvatarID int
	IsChild  bool
}

func newUserProfile(name string, avatarID int, isChild bool) *UserProfile {
	return &UserProfile{
		ID:       uuid.NewString(),
		Name:     name,
		AvatarID: avatarID,
		IsChild:  isChild,
	}
}

func (p *UserProfile) clone() *UserProfile {
	cp := *p
	return &cp
}
