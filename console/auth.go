package console

import (
	"context"
	"errors"

	"cafe-console/services"

	"go.uber.org/zap"
)

// createUser registers a new customer account. The login and phone prompts
// loop until a free login and a valid, free phone number are supplied; the
// pre-checks are user experience only, the unique constraints decide.
func (s *Session) createUser(ctx context.Context) error {
	var login string
	for {
		l, err := s.readLine("\tEnter user login: ")
		if err != nil {
			return err
		}
		if l == "" {
			s.printf("Login cannot be empty.\n")
			continue
		}
		taken, err := s.store.LoginExists(ctx, l)
		if err != nil {
			s.fail("create user", err)
			return nil
		}
		if taken {
			s.printf("That login is already taken, please choose another.\n")
			continue
		}
		login = l
		break
	}

	password, err := s.readLine("\tEnter user password: ")
	if err != nil {
		return err
	}

	for {
		raw, err := s.readLine("\tEnter user phone (10 digits): ")
		if err != nil {
			return err
		}
		phone, err := services.NormalizePhone(raw)
		if err != nil {
			s.printf("%s\n", err)
			continue
		}
		taken, err := s.store.PhoneExists(ctx, phone)
		if err != nil {
			s.fail("create user", err)
			return nil
		}
		if taken {
			s.printf("That phone number is already in use, please enter another.\n")
			continue
		}

		switch err := s.store.CreateAccount(ctx, login, password, phone); {
		case err == nil:
			s.printf("User successfully created!\n")
			return nil
		case errors.Is(err, services.ErrPhoneTaken):
			// Lost the race after the pre-check.
			s.printf("That phone number is already in use, please enter another.\n")
		case errors.Is(err, services.ErrLoginTaken):
			s.printf("That login was just taken; please start over.\n")
			return nil
		default:
			s.fail("create user", err)
			return nil
		}
	}
}

// logIn authenticates and attaches the account to the session. Failure
// leaves the session at the unauthenticated menu.
func (s *Session) logIn(ctx context.Context) error {
	login, err := s.readLine("\tEnter user login: ")
	if err != nil {
		return err
	}

	wait, err := s.store.LoginCooldownSeconds(ctx, login)
	if err != nil {
		s.fail("log in", err)
		return nil
	}
	if wait > 0 {
		s.printf("Too many failed attempts; try again in %d seconds.\n", wait)
		return nil
	}

	password, err := s.readLine("\tEnter user password: ")
	if err != nil {
		return err
	}

	acc, err := s.store.Authenticate(ctx, login, password)
	if err != nil {
		if errors.Is(err, services.ErrAuthFailed) {
			if rerr := s.store.RecordLoginFailure(ctx, login); rerr != nil {
				s.log.Warn("record login failure", zap.Error(rerr))
			}
			s.printf("Invalid login or password.\n")
			return nil
		}
		s.fail("log in", err)
		return nil
	}
	if rerr := s.store.RecordLoginSuccess(ctx, login); rerr != nil {
		s.log.Warn("record login success", zap.Error(rerr))
	}
	s.actor = acc
	s.printf("Welcome, %s!\n", acc.Login)
	return nil
}
