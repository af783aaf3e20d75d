package cli

import (
	"context"
	"os"
)

// Register collects name, email, and PIN and creates the device account.
// The PIN is asked for twice; a mismatch aborts without side effects.
func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	pin, err := GetPin("Choose a PIN", os.Stdout)
	if err != nil {
		return err
	}
	retype, err := GetPin("Retype the PIN", os.Stdout)
	if err != nil {
		return err
	}
	if pin != retype {
		printlnFn("PINs do not match")
		return nil
	}

	opCtx, cancel := a.storeCtx(ctx)
	defer cancel()
	if err := a.manager.Register(opCtx, name, email, pin); err != nil {
		printlnFn("Registration failed:", err)
		return err
	}
	printlnFn("Account created. You are signed in.")
	return nil
}

// Login re-validates email and PIN against the stored account.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	pin, err := GetPin("PIN", os.Stdout)
	if err != nil {
		return err
	}

	opCtx, cancel := a.storeCtx(ctx)
	defer cancel()
	ok, err := a.manager.Login(opCtx, email, pin)
	if err != nil {
		printlnFn("Login failed:", err)
		return err
	}
	if !ok {
		printlnFn("Email or PIN incorrect")
		return nil
	}
	printlnFn("Welcome back,", a.manager.Account().Name)
	return nil
}

// Logout ends the session and erases the stored account record.
func (a *App) Logout(ctx context.Context) error {
	opCtx, cancel := a.storeCtx(ctx)
	defer cancel()
	if err := a.manager.Logout(opCtx); err != nil {
		printlnFn("Logout failed:", err)
		return err
	}
	printlnFn("Logged out.")
	return nil
}

// ChangePin walks through the old/new/retype PIN flow. Mismatches are
// reported with the reason the session manager returns.
func (a *App) ChangePin(ctx context.Context) error {
	oldPin, err := GetPin("Current PIN", os.Stdout)
	if err != nil {
		return err
	}
	newPin, err := GetPin("New PIN", os.Stdout)
	if err != nil {
		return err
	}
	retype, err := GetPin("Retype new PIN", os.Stdout)
	if err != nil {
		return err
	}

	opCtx, cancel := a.storeCtx(ctx)
	defer cancel()
	result, err := a.manager.ChangePin(opCtx, oldPin, newPin, retype)
	if err != nil {
		printlnFn("PIN change failed:", err)
		return err
	}
	if !result.Success {
		printlnFn("PIN not changed:", result.Reason)
		return nil
	}
	printlnFn("PIN changed.")
	return nil
}

// Lock demonstrates the PIN gate: the account stays signed in, but the
// user must confirm the PIN to continue.
func (a *App) Lock(ctx context.Context) error {
	prompt := NewPinPrompt(a.manager.CheckPin, os.Stdout)
	return prompt.Present(
		func(ok bool) {
			if ok {
				printlnFn("Unlocked.")
			} else {
				printlnFn("Wrong PIN.")
			}
		},
		func() {
			printlnFn("Cancelled.")
		},
	)
}
