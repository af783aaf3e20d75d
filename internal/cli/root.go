package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isSignedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profiles(ctx context.Context) error
	AddProfile(ctx context.Context) error
	DeleteProfile(ctx context.Context) error
	Use(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	ChangePin(ctx context.Context) error
	Lock(ctx context.Context) error
}

func (a *App) getStatus() string {
	if !a.isSignedIn() {
		return ""
	}
	s := a.manager.Account().Email
	if p, ok := a.manager.ActiveProfile(); ok {
		s = s + "/" + p.Name
	}
	return fmt.Sprintf("(%s)", s)
}

// Root starts the interactive shell. A persisted account is restored
// silently first ("remember me"); otherwise the user lands signed out.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to FamVault (type 'help' for commands)")

	loadCtx, cancel := a.storeCtx(ctx)
	restored, err := a.manager.TrySignIn(loadCtx)
	cancel()
	if err != nil {
		a.log.Error(ctx, "error restoring session", "error", err)
	}
	if restored {
		printlnFn("Welcome back,", a.manager.Account().Name)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// runREPL reads a command per line and dispatches to methods on a.
// Unknown commands are reported back. The loop exits on scanner EOF or
// when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers
// report their own errors. This keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("fv %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isSignedIn() {
				printlnFn("Available commands: profiles, addprofile, delprofile, use, whoami, pin, lock, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "profiles":
			_ = a.Profiles(ctx)

		case "addprofile":
			_ = a.AddProfile(ctx)

		case "delprofile":
			_ = a.DeleteProfile(ctx)

		case "use":
			_ = a.Use(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "pin":
			_ = a.ChangePin(ctx)

		case "lock":
			_ = a.Lock(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
