package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the minimal command surface the REPL needs. The App type
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	RecordMood(ctx context.Context) error
	Calendar(ctx context.Context) error
	LogWater(ctx context.Context) error
	LogMeal(ctx context.Context) error
	LogExercise(ctx context.Context) error
	Stats(ctx context.Context) error
	ShowProfile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Goals(ctx context.Context) error
	RunCheck(ctx context.Context) error
	CheckHistory(ctx context.Context) error
	Insights(ctx context.Context) error
}

// runREPL reads a line at a time, parses the first token as the command and
// dispatches to a. Unknown commands are reported back. The loop exits on
// scanner EOF or "exit"/"quit".
//
// Errors returned by handlers are ignored here; handlers print their own
// errors so the loop stays focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("wk> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		if !a.isLoggedIn() {
			switch cmd {
			case "help":
				printlnFn("Available commands: login, exit")
			case "login":
				_ = a.Login(ctx)
			case "exit", "quit":
				return
			default:
				printlnFn("Please login first (type 'login')")
			}
			continue
		}

		switch cmd {
		case "help":
			printlnFn("Available commands: mood, calendar, water, meal, exercise, stats, profile, edit, goals, check, history, insights, logout, exit")

		case "mood":
			_ = a.RecordMood(ctx)

		case "calendar":
			_ = a.Calendar(ctx)

		case "water":
			_ = a.LogWater(ctx)

		case "meal":
			_ = a.LogMeal(ctx)

		case "exercise":
			_ = a.LogExercise(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "profile":
			_ = a.ShowProfile(ctx)

		case "edit":
			_ = a.EditProfile(ctx)

		case "goals":
			_ = a.Goals(ctx)

		case "check":
			_ = a.RunCheck(ctx)

		case "history":
			_ = a.CheckHistory(ctx)

		case "insights":
			_ = a.Insights(ctx)

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
