package console

import (
	"context"
	"errors"

	"cafe-console/models"
	"cafe-console/services"
)

// profileState names the states of the profile update machine:
// selecting a field, editing one of the five fields, or done.
type profileState int

const (
	stateSelectField profileState = iota
	stateEditLogin
	stateEditPassword
	stateEditPhone
	stateEditFavorites
	stateEditRole
	stateDone
)

// updateProfile edits the actor's own account, or, for a manager, any
// account resolved by login lookup. The edit target is carried explicitly
// so a login rename keeps addressing the renamed account.
func (s *Session) updateProfile(ctx context.Context) error {
	target := s.actor.Login
	if s.actor.Role == models.RoleManager {
		t, ok, err := s.chooseProfileTarget(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		target = t
	}

	state := stateSelectField
	for state != stateDone {
		var err error
		switch state {
		case stateSelectField:
			state, err = s.profileSelectField()
		case stateEditLogin:
			target, state, err = s.profileEditLogin(ctx, target)
		case stateEditPassword:
			state, err = s.profileEditPassword(ctx, target)
		case stateEditPhone:
			state, err = s.profileEditPhone(ctx, target)
		case stateEditFavorites:
			state, err = s.profileEditFavorites(ctx, target)
		case stateEditRole:
			state, err = s.profileEditRole(ctx, target)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// chooseProfileTarget resolves the account a manager wants to edit.
// ok is false when the manager cancels back to the main menu.
func (s *Session) chooseProfileTarget(ctx context.Context) (target string, ok bool, err error) {
	for {
		login, err := s.readLine("Enter login of the account to update (blank for your own): ")
		if err != nil {
			return "", false, err
		}
		if login == "" {
			return s.actor.Login, true, nil
		}
		_, gerr := s.store.GetAccount(ctx, login)
		switch {
		case gerr == nil:
			return login, true, nil
		case errors.Is(gerr, services.ErrNotFound):
			s.printf("No account with that login.\n")
			retry, err := s.retryOrCancel("Try a different login", "Back to main menu")
			if err != nil {
				return "", false, err
			}
			if !retry {
				return "", false, nil
			}
		default:
			s.fail("look up account", gerr)
			return "", false, nil
		}
	}
}

func (s *Session) profileSelectField() (profileState, error) {
	s.printf("UPDATE PROFILE MENU\n")
	s.printf("-------------------\n")
	s.printf("1. Update login\n")
	s.printf("2. Update password\n")
	s.printf("3. Update phone number\n")
	s.printf("4. Update favorite items\n")
	s.printf("5. Update user type (MANAGER ONLY)\n")
	s.printf(".........................\n")
	s.printf("9. Back to Main Menu\n")

	for {
		n, err := s.readChoice()
		if err != nil {
			return stateDone, err
		}
		switch n {
		case 1:
			return stateEditLogin, nil
		case 2:
			return stateEditPassword, nil
		case 3:
			return stateEditPhone, nil
		case 4:
			return stateEditFavorites, nil
		case 5:
			if s.actor.Role != models.RoleManager {
				s.printf("********MANAGER ONLY********\n")
				return stateSelectField, nil
			}
			return stateEditRole, nil
		case 9:
			return stateDone, nil
		default:
			s.printf("Unrecognized choice!\n")
		}
	}
}

func (s *Session) profileEditLogin(ctx context.Context, target string) (string, profileState, error) {
	for {
		newLogin, err := s.readLine("Enter updated user login: ")
		if err != nil {
			return target, stateDone, err
		}
		if newLogin == "" {
			s.printf("Login cannot be empty.\n")
			continue
		}

		taken, err := s.store.LoginExists(ctx, newLogin)
		if err != nil {
			s.fail("update login", err)
			return target, stateSelectField, nil
		}
		if !taken {
			err = s.store.UpdateLogin(ctx, target, newLogin)
			if err == nil {
				if s.actor.Login == target {
					s.actor.Login = newLogin
				}
				s.printf("User login successfully updated!\n")
				return newLogin, stateSelectField, nil
			}
			if !errors.Is(err, services.ErrLoginTaken) {
				s.fail("update login", err)
				return target, stateSelectField, nil
			}
			// Constraint beat the pre-check; fall through to retry.
		}

		s.printf("User login already exists!\n")
		retry, err := s.retryOrCancel("Enter a different user login", "Go back to update menu")
		if err != nil {
			return target, stateDone, err
		}
		if !retry {
			return target, stateSelectField, nil
		}
	}
}

func (s *Session) profileEditPassword(ctx context.Context, target string) (profileState, error) {
	password := ""
	if s.actor.Role == models.RoleManager && target != s.actor.Login {
		s.printf("1. Enter a new password\n")
		s.printf("2. Generate a temporary password\n")
		n, err := s.readChoice()
		if err != nil {
			return stateDone, err
		}
		if n == 2 {
			generated, gerr := services.GenerateTempPassword()
			if gerr != nil {
				s.fail("generate password", gerr)
				return stateSelectField, nil
			}
			password = generated
			s.printf("Temporary password for '%s': %s\n", target, generated)
		}
	}
	if password == "" {
		p, err := s.readLine("Enter new user password: ")
		if err != nil {
			return stateDone, err
		}
		password = p
	}

	if err := s.store.UpdatePassword(ctx, target, password); err != nil {
		s.fail("update password", err)
		return stateSelectField, nil
	}
	s.printf("User password successfully updated!\n")
	return stateSelectField, nil
}

func (s *Session) profileEditPhone(ctx context.Context, target string) (profileState, error) {
	for {
		raw, err := s.readLine("Enter updated user phone number (10 digits): ")
		if err != nil {
			return stateDone, err
		}

		phone, perr := services.NormalizePhone(raw)
		if perr != nil {
			s.printf("%s\n", perr)
			retry, err := s.retryOrCancel("Enter a different phone number", "Go back to update menu")
			if err != nil {
				return stateDone, err
			}
			if !retry {
				return stateSelectField, nil
			}
			continue
		}

		taken, err := s.store.PhoneExists(ctx, phone)
		if err != nil {
			s.fail("update phone", err)
			return stateSelectField, nil
		}
		if !taken {
			err = s.store.UpdatePhone(ctx, target, phone)
			if err == nil {
				s.printf("User phone number successfully updated!\n")
				return stateSelectField, nil
			}
			if !errors.Is(err, services.ErrPhoneTaken) {
				s.fail("update phone", err)
				return stateSelectField, nil
			}
		}

		s.printf("That phone number is already in use!\n")
		retry, err := s.retryOrCancel("Enter a different phone number", "Go back to update menu")
		if err != nil {
			return stateDone, err
		}
		if !retry {
			return stateSelectField, nil
		}
	}
}

func (s *Session) profileEditFavorites(ctx context.Context, target string) (profileState, error) {
	fav, err := s.readLine("Enter new favorite items: ")
	if err != nil {
		return stateDone, err
	}
	if err := s.store.UpdateFavItems(ctx, target, fav); err != nil {
		s.fail("update favorite items", err)
		return stateSelectField, nil
	}
	s.printf("User favorite items successfully updated!\n")
	return stateSelectField, nil
}

// profileEditRole is reachable only when the actor is a manager. A manager
// downgrading their own account loses manager menus immediately, without
// re-authentication.
func (s *Session) profileEditRole(ctx context.Context, target string) (profileState, error) {
	s.printf("Select new user type for '%s':\n", target)
	s.printf("1. Customer\n")
	s.printf("2. Employee\n")
	s.printf("3. Manager\n")
	s.printf("9. Cancel\n")

	var role models.Role
	for role == "" {
		n, err := s.readChoice()
		if err != nil {
			return stateDone, err
		}
		switch n {
		case 1:
			role = models.RoleCustomer
		case 2:
			role = models.RoleEmployee
		case 3:
			role = models.RoleManager
		case 9:
			return stateSelectField, nil
		default:
			s.printf("Unrecognized choice!\n")
		}
	}

	if err := s.store.UpdateRole(ctx, target, role); err != nil {
		s.fail("update user type", err)
		return stateSelectField, nil
	}
	if s.actor.Login == target {
		s.actor.Role = role
	}
	s.printf("User type successfully updated!\n")
	return stateSelectField, nil
}
