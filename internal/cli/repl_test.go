package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	signedIn bool

	calls []string
}

func (f *fakeExec) isSignedIn() bool { return f.signedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	f.signedIn = true
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.signedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.signedIn = false
	return nil
}
func (f *fakeExec) Profiles(ctx context.Context) error {
	f.calls = append(f.calls, "profiles")
	return nil
}
func (f *fakeExec) AddProfile(ctx context.Context) error {
	f.calls = append(f.calls, "addprofile")
	return nil
}
func (f *fakeExec) DeleteProfile(ctx context.Context) error {
	f.calls = append(f.calls, "delprofile")
	return nil
}
func (f *fakeExec) Use(ctx context.Context) error {
	f.calls = append(f.calls, "use")
	return nil
}
func (f *fakeExec) WhoAmI(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}
func (f *fakeExec) ChangePin(ctx context.Context) error {
	f.calls = append(f.calls, "pin")
	return nil
}
func (f *fakeExec) Lock(ctx context.Context) error {
	f.calls = append(f.calls, "lock")
	return nil
}

func TestRunREPL_SignInFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"addprofile",
		"profiles",
		"use",
		"whoami",
		"pin",
		"lock",
		"foobar",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{signedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	want := []string{"login", "addprofile", "profiles", "use", "whoami", "pin", "lock", "logout"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, want)
	}
	for i, c := range exec.calls {
		if c != want[i] {
			t.Fatalf("call %d: got %q, want %q (all: %v)", i, c, want[i], exec.calls)
		}
	}
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	exec := &fakeExec{}
	sc := bufio.NewScanner(strings.NewReader(""))

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("no commands expected, got %v", exec.calls)
	}
}
