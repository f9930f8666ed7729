package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with
// a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ListCourses(ctx context.Context) error
	AddCourse(ctx context.Context) error
	EditCourse(ctx context.Context) error
	DeleteCourse(ctx context.Context) error
	UseCourse(ctx context.Context, id string) error
	ListNotes(ctx context.Context, args []string) error
	AddNote(ctx context.Context) error
	DeleteNote(ctx context.Context, id string) error
	ListTags(ctx context.Context) error
}

// runREPL is a simple read-eval-print loop. It reads a line, parses the
// first token as the command and dispatches to methods on 'a'. Unknown
// commands are reported back. The loop exits on scanner EOF or on
// "exit"/"quit". Errors returned by handlers are ignored here; handlers
// print their own messages, which keeps the loop focused on I/O.
//
// Commands
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - courses        — list courses (selected one is marked)
//	  - addcourse      — add a course (and select it)
//	  - editcourse     — edit the selected course
//	  - delcourse      — delete the selected course
//	  - use <id>       — select a course
//	  - notes [text] [#tag ...] — list notes, optionally filtered
//	  - addnote        — add a note to the selected course
//	  - delnote <id>   — delete a note from the selected course
//	  - tags           — list tags available in the selected course
//	  - logout         — log out
//	  - exit | quit    — leave the program
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("cn> %s > ", statusFn()))
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
				printlnFn("Available commands: courses, addcourse, editcourse, delcourse, use <id>, notes [text] [#tag ...], addnote, delnote <id>, tags, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "courses":
			_ = a.ListCourses(ctx)

		case "addcourse":
			_ = a.AddCourse(ctx)

		case "editcourse":
			_ = a.EditCourse(ctx)

		case "delcourse":
			_ = a.DeleteCourse(ctx)

		case "use":
			if len(args) == 0 {
				printlnFn("Usage: use <course id>")
				continue
			}
			_ = a.UseCourse(ctx, args[0])

		case "notes":
			_ = a.ListNotes(ctx, args)

		case "addnote":
			_ = a.AddNote(ctx)

		case "delnote":
			if len(args) == 0 {
				printlnFn("Usage: delnote <note id>")
				continue
			}
			_ = a.DeleteNote(ctx, args[0])

		case "tags":
			_ = a.ListTags(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func (a *App) getStatus() string {
	if a.account == nil {
		return "(signed out)"
	}
	s := a.account.Email
	if a.selectedCourseID != "" {
		s = s + " / " + a.selectedCourseID
	}
	return "(" + s + ")"
}

// Root runs the interactive loop on stdin.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to CourseNotes CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
