package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	AddTask(ctx context.Context) error
	ListTasks(ctx context.Context) error
	ToggleTask(ctx context.Context, id string) error
	EditTask(ctx context.Context, id string) error
	RemoveTask(ctx context.Context, id string) error
	SetTaskFilter(ctx context.Context, tag string) error
	SearchTasks(ctx context.Context, query string) error
	TaskStats(ctx context.Context) error
	AddMeeting(ctx context.Context) error
	ListMeetings(ctx context.Context) error
	UpcomingMeetings(ctx context.Context) error
	RemoveMeeting(ctx context.Context, id string) error
	SearchMeetings(ctx context.Context, query string) error
	MeetingStats(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the taskmeet shell.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers report
// their own failures. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("tm %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Tasks: addtask, (t)asks, done <id>, edit <id>, rmtask <id>, filter <tag>, search [query], taskstats")
				printlnFn("Meetings: addmeeting, (m)eetings, upcoming, rmmeeting <id>, msearch [query], meetingstats")
				printlnFn("Session: whoami, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "addtask":
			_ = a.AddTask(ctx)

		case "t", "tasks":
			_ = a.ListTasks(ctx)

		case "done":
			if len(args) == 0 {
				printlnFn("Usage: done <id>")
				continue
			}
			_ = a.ToggleTask(ctx, args[0])

		case "edit":
			if len(args) == 0 {
				printlnFn("Usage: edit <id>")
				continue
			}
			_ = a.EditTask(ctx, args[0])

		case "rmtask":
			if len(args) == 0 {
				printlnFn("Usage: rmtask <id>")
				continue
			}
			_ = a.RemoveTask(ctx, args[0])

		case "filter":
			if len(args) == 0 {
				printlnFn("Usage: filter <all|pending|completed|low|medium|high>")
				continue
			}
			_ = a.SetTaskFilter(ctx, args[0])

		case "search":
			_ = a.SearchTasks(ctx, strings.Join(args, " "))

		case "taskstats":
			_ = a.TaskStats(ctx)

		case "addmeeting":
			_ = a.AddMeeting(ctx)

		case "m", "meetings":
			_ = a.ListMeetings(ctx)

		case "upcoming":
			_ = a.UpcomingMeetings(ctx)

		case "rmmeeting":
			if len(args) == 0 {
				printlnFn("Usage: rmmeeting <id>")
				continue
			}
			_ = a.RemoveMeeting(ctx, args[0])

		case "msearch":
			_ = a.SearchMeetings(ctx, strings.Join(args, " "))

		case "meetingstats":
			_ = a.MeetingStats(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
