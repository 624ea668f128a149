// Package console implements the interactive text-menu client: a top-level
// session loop dispatching into the profile, menu and order flows. Every
// interaction is print-a-prompt / read-a-line; state lives on the Session,
// never in package globals.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cafe-console/models"

	"go.uber.org/zap"
)

// errInputClosed is returned by the read helpers when stdin is exhausted;
// it unwinds every flow back to Run, which treats it as an exit.
var errInputClosed = errors.New("input closed")

type Session struct {
	in    *bufio.Reader
	out   io.Writer
	store Store
	log   *zap.Logger

	actor *models.Account // nil until a successful log in
}

func New(in io.Reader, out io.Writer, store Store, log *zap.Logger) *Session {
	return &Session{
		in:    bufio.NewReader(in),
		out:   out,
		store: store,
		log:   log,
	}
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// readLine prints the prompt and reads one whole line. Every read in the
// client goes through here; there are no single-character reads.
func (s *Session) readLine(prompt string) (string, error) {
	s.printf("%s", prompt)
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", errInputClosed
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readChoice reads a numeric menu choice, reprompting indefinitely on
// non-numeric input. Invalid input is never fatal.
func (s *Session) readChoice() (int, error) {
	for {
		line, err := s.readLine("Please make your choice: ")
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			s.printf("Your input is invalid!\n")
			continue
		}
		return n, nil
	}
}

// retryOrCancel presents the standard two-option menu after a validation
// failure. It returns true to try again, false to return to the caller.
func (s *Session) retryOrCancel(retryLabel, cancelLabel string) (bool, error) {
	s.printf("Please select from the following options:\n")
	s.printf("1. %s\n", retryLabel)
	s.printf("2. %s\n", cancelLabel)
	for {
		switch n, err := s.readChoice(); {
		case err != nil:
			return false, err
		case n == 1:
			return true, nil
		case n == 2:
			return false, nil
		default:
			s.printf("Unrecognized choice!\n")
		}
	}
}

// fail reports an abandoned operation: the diagnostic goes to the
// operational log on stderr, a short notice to the user, and the session
// loop continues.
func (s *Session) fail(op string, err error) {
	s.log.Error("operation abandoned", zap.String("op", op), zap.Error(err))
	s.printf("Something went wrong; returning to the menu.\n")
}

// Run drives the session until the user exits or input closes.
func (s *Session) Run(ctx context.Context) {
	for {
		var err error
		if s.actor == nil {
			err = s.anonymousMenu(ctx)
		} else {
			err = s.mainMenu(ctx)
		}
		if err != nil {
			if !errors.Is(err, errInputClosed) && !errors.Is(err, errExit) {
				s.log.Error("session ended", zap.Error(err))
			}
			return
		}
	}
}

// errExit signals the top-level exit choice.
var errExit = errors.New("exit")

func (s *Session) anonymousMenu(ctx context.Context) error {
	s.printf("MAIN MENU\n")
	s.printf("---------\n")
	s.printf("1. Create user\n")
	s.printf("2. Log in\n")
	s.printf("9. < EXIT\n")

	n, err := s.readChoice()
	if err != nil {
		return err
	}
	switch n {
	case 1:
		return s.createUser(ctx)
	case 2:
		return s.logIn(ctx)
	case 9:
		return errExit
	default:
		s.printf("Unrecognized choice!\n")
	}
	return nil
}

func (s *Session) mainMenu(ctx context.Context) error {
	s.printf("MAIN MENU\n")
	s.printf("---------\n")
	s.printf("1. Browse menu\n")
	s.printf("2. Update profile\n")
	s.printf("3. Place an order\n")
	s.printf("4. Order history\n")
	if s.actor.Role.Staff() {
		s.printf("5. Update an order\n")
	}
	if s.actor.Role == models.RoleManager {
		s.printf("6. Maintain menu\n")
	}
	s.printf(".........................\n")
	s.printf("9. Log out\n")

	n, err := s.readChoice()
	if err != nil {
		return err
	}
	switch n {
	case 1:
		return s.browseMenu(ctx)
	case 2:
		return s.updateProfile(ctx)
	case 3:
		return s.placeOrder(ctx)
	case 4:
		return s.orderHistory(ctx)
	case 5:
		if !s.actor.Role.Staff() {
			s.printf("Employees and managers only.\n")
			return nil
		}
		return s.updateOrder(ctx)
	case 6:
		if s.actor.Role != models.RoleManager {
			s.printf("Managers only.\n")
			return nil
		}
		return s.maintainMenu(ctx)
	case 9:
		s.printf("Logged out.\n")
		s.actor = nil
	default:
		s.printf("Unrecognized choice!\n")
	}
	return nil
}
