// Package menu is the interactive text shell over the service layer. It is
// the translation layer of the program — it collects input, resolves the
// session, calls the service, and renders results. No business rule lives
// here, with one deliberate exception: gating login-required commands. The
// session ("who is logged in") is a shell-held pointer the core knows
// nothing about, so StatusNotLoggedIn is minted here and only here.
package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rs/xid"

	"github.com/kavya/mytube/internal/model"
	"github.com/kavya/mytube/internal/result"
	"github.com/kavya/mytube/internal/service"
)

const (
	codeShowMenu = 0
	codeExit     = 99
)

// Shell runs the numbered menu loop against a service instance.
type Shell struct {
	tube    *service.Tube
	in      *bufio.Scanner
	out     io.Writer
	prompt  string
	logger  *slog.Logger
	session *model.User // nil when nobody is logged in

	// sessionID correlates every log line of one shell run; handy once
	// several transcript logs end up in the same file.
	sessionID string

	commands []command
}

// command is one menu entry. The dispatch table is a closed set of named
// operations — adding a command means adding a row here, not a case to a
// switch.
type command struct {
	code          int
	title         string
	requiresLogin bool
	run           func(ctx context.Context)
}

// New builds a shell reading from in and writing to out. Output is plain
// text for a human; logs go to the logger, not to out.
func New(tube *service.Tube, in io.Reader, out io.Writer, prompt string, logger *slog.Logger) *Shell {
	s := &Shell{
		tube:      tube,
		in:        bufio.NewScanner(in),
		out:       out,
		prompt:    prompt,
		logger:    logger,
		sessionID: xid.New().String(),
	}
	s.commands = s.commandTable()
	return s
}

// Run executes the menu loop until the user exits, input ends, or the
// context is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	s.logger.Info("shell started", slog.String("session", s.sessionID))
	s.printMenu()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, ok := s.readLine("\n" + s.prompt)
		if !ok {
			return nil // input closed
		}
		if line == "" {
			continue
		}

		code, err := strconv.Atoi(line)
		if err != nil {
			s.println("Enter a number")
			continue
		}

		switch code {
		case codeShowMenu:
			s.printMenu()
			continue
		case codeExit:
			s.println("Goodbye")
			return nil
		}

		cmd, ok := s.lookup(code)
		if !ok {
			s.println("Unknown command")
			continue
		}
		if cmd.requiresLogin && s.session == nil {
			s.printResult(result.NotLoggedIn("Login required"))
			continue
		}

		s.logger.Debug("command dispatched",
			slog.String("session", s.sessionID),
			slog.Int("code", cmd.code),
			slog.String("command", cmd.title),
		)
		cmd.run(ctx)
	}
}

func (s *Shell) lookup(code int) (command, bool) {
	for _, c := range s.commands {
		if c.code == code {
			return c, true
		}
	}
	return command{}, false
}

func (s *Shell) printMenu() {
	s.println("\n--- MyTube ---")
	fmt.Fprintf(s.out, "%-3d%s\n", codeShowMenu, "Show menu")
	for _, c := range s.commands {
		title := c.title
		if c.requiresLogin {
			title += " (logged in)"
		}
		fmt.Fprintf(s.out, "%-3d%s\n", c.code, title)
	}
	fmt.Fprintf(s.out, "%-3d%s\n", codeExit, "Exit")
}

func (s *Shell) println(msg string) {
	fmt.Fprintln(s.out, msg)
}

// printResult renders a result for the user and records its status.
func (s *Shell) printResult(res result.Result) {
	s.println(res.Message)
	s.logger.Debug("operation result",
		slog.String("session", s.sessionID),
		slog.String("status", res.Status.String()),
	)
}

// readLine prompts and reads one line. ok is false once input is exhausted.
func (s *Shell) readLine(prompt string) (line string, ok bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// readInt prompts until it gets a valid integer. An empty line means "give
// up" and yields -1, which no entity id or duration ever is — downstream
// lookups then fail with a normal NotFound.
func (s *Shell) readInt(prompt string) int {
	for {
		line, ok := s.readLine(prompt)
		if !ok || line == "" {
			return -1
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			s.println("Invalid number, try again")
			continue
		}
		return n
	}
}

// readID is readInt for 64-bit entity ids.
func (s *Shell) readID(prompt string) int64 {
	for {
		line, ok := s.readLine(prompt)
		if !ok || line == "" {
			return -1
		}
		n, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			s.println("Invalid number, try again")
			continue
		}
		return n
	}
}
