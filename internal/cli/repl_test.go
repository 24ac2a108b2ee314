package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) RecordMood(ctx context.Context) error   { return f.record("mood") }
func (f *fakeExec) Calendar(ctx context.Context) error     { return f.record("calendar") }
func (f *fakeExec) LogWater(ctx context.Context) error     { return f.record("water") }
func (f *fakeExec) LogMeal(ctx context.Context) error      { return f.record("meal") }
func (f *fakeExec) LogExercise(ctx context.Context) error  { return f.record("exercise") }
func (f *fakeExec) Stats(ctx context.Context) error        { return f.record("stats") }
func (f *fakeExec) ShowProfile(ctx context.Context) error  { return f.record("profile") }
func (f *fakeExec) EditProfile(ctx context.Context) error  { return f.record("edit") }
func (f *fakeExec) Goals(ctx context.Context) error        { return f.record("goals") }
func (f *fakeExec) RunCheck(ctx context.Context) error     { return f.record("check") }
func (f *fakeExec) CheckHistory(ctx context.Context) error { return f.record("history") }
func (f *fakeExec) Insights(ctx context.Context) error     { return f.record("insights") }

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"mood",
		"login",
		"help",
		"mood",
		"stats",
		"check",
		"insights",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "mood", "stats", "check", "insights"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_GatedWhenLoggedOut(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("mood\nstats\nquit\n")
	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_LogoutGatesAgain(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("logout\nmood\nexit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 1 || exec.calls[0] != "logout" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
