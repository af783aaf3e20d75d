package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/tobim/famvault/internal/account"
)

// Profiles lists the profiles of the current account, marking the active
// one with an asterisk.
func (a *App) Profiles(ctx context.Context) error {
	profiles := a.manager.Profiles()
	if len(profiles) == 0 {
		printlnFn("No profiles yet. Use 'addprofile' to create one.")
		return nil
	}
	active, _ := a.manager.ActiveProfile()
	for i, p := range profiles {
		marker := " "
		if active != nil && active.ID == p.ID {
			marker = "*"
		}
		kind := "parent"
		if p.IsChild {
			kind = "child"
		}
		printlnFn(fmt.Sprintf("%s %d. %s (%s, avatar %d)", marker, i+1, p.Name, kind, p.AvatarID))
	}
	return nil
}

// AddProfile collects name, avatar, and child flag and creates a profile.
func (a *App) AddProfile(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Profile name", os.Stdout)
	if err != nil {
		return err
	}
	avatarID, err := GetInt(a.reader, "Avatar id", os.Stdout)
	if err != nil {
		return err
	}
	isChild, err := GetYesNo(a.reader, "Is this a child profile?", os.Stdout)
	if err != nil {
		return err
	}

	opCtx, cancel := a.storeCtx(ctx)
	defer cancel()
	id, err := a.manager.CreateProfile(opCtx, name, avatarID, isChild)
	if err != nil {
		printlnFn("Could not create profile:", err)
		return err
	}
	printlnFn("Profile created:", name, "("+id+")")
	return nil
}

// DeleteProfile removes the profile picked from the listing.
func (a *App) DeleteProfile(ctx context.Context) error {
	p, err := a.pickProfile("Delete which profile?")
	if err != nil || p == nil {
		return err
	}

	opCtx, cancel := a.storeCtx(ctx)
	defer cancel()
	if err := a.manager.DeleteProfile(opCtx, p.ID); err != nil {
		printlnFn("Could not delete profile:", err)
		return err
	}
	printlnFn("Profile deleted:", p.Name)
	return nil
}

// Use sets the active profile picked from the listing.
func (a *App) Use(ctx context.Context) error {
	p, err := a.pickProfile("Switch to which profile?")
	if err != nil || p == nil {
		return err
	}

	opCtx, cancel := a.storeCtx(ctx)
	defer cancel()
	if err := a.manager.SetActiveProfile(opCtx, p.ID); err != nil {
		printlnFn("Could not switch profile:", err)
		return err
	}
	printlnFn("Now using profile:", p.Name)
	return nil
}

// WhoAmI prints the account and the active profile.
func (a *App) WhoAmI(ctx context.Context) error {
	acc := a.manager.Account()
	if acc == nil {
		printlnFn("Not signed in.")
		return nil
	}
	printlnFn(fmt.Sprintf("Account: %s <%s>", acc.Name, acc.Email))
	if p, ok := a.manager.ActiveProfile(); ok {
		printlnFn("Active profile:", p.Name)
	} else {
		printlnFn("No active profile.")
	}
	return nil
}

// pickProfile lists profiles and asks for a number. Returns nil without
// error when there is nothing to pick or the choice is invalid.
func (a *App) pickProfile(prompt string) (*account.UserProfile, error) {
	profiles := a.manager.Profiles()
	if len(profiles) == 0 {
		printlnFn("No profiles.")
		return nil, nil
	}
	if err := a.Profiles(context.Background()); err != nil {
		return nil, err
	}
	n, err := GetInt(a.reader, prompt, os.Stdout)
	if err != nil {
		return nil, err
	}
	if n < 1 || n > len(profiles) {
		printlnFn("No such profile.")
		return nil, nil
	}
	return profiles[n-1], nil
}
