package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cafe-console/db"
	"cafe-console/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrAuthFailed = errors.New("invalid login or password")
	ErrNotFound   = errors.New("not found")
	ErrLoginTaken = errors.New("login already taken")
	ErrPhoneTaken = errors.New("phone number already in use")
)

const uniqueViolation = "23505"

// accountConstraintErr maps a unique-constraint violation on the users table
// to the matching sentinel. The database constraint, not the pre-check, is
// the authoritative rejection for a taken login or phone number.
func accountConstraintErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		if strings.Contains(pgErr.ConstraintName, "phone") {
			return ErrPhoneTaken
		}
		return ErrLoginTaken
	}
	return err
}

func scanAccount(row pgx.Row) (*models.Account, error) {
	var a models.Account
	var rawRole string
	if err := row.Scan(&a.Login, &a.Phone, &a.FavItems, &rawRole); err != nil {
		return nil, err
	}
	role, err := models.ParseRole(rawRole)
	if err != nil {
		return nil, fmt.Errorf("account %s: %w", a.Login, err)
	}
	a.Role = role
	return &a, nil
}

// Authenticate checks login and password, returning ErrAuthFailed on any
// mismatch without revealing whether the login exists.
func Authenticate(ctx context.Context, login, password string) (*models.Account, error) {
	var hash string
	err := db.Pool.QueryRow(ctx, `
		SELECT password_hash FROM users WHERE login = $1`,
		login,
	).Scan(&hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAuthFailed
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, ErrAuthFailed
	}
	return GetAccount(ctx, login)
}

// CreateAccount registers a new customer with empty favorites. The phone
// must already be in display format (see NormalizePhone).
func CreateAccount(ctx context.Context, login, password, phone string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	_, err = db.Pool.Exec(ctx, `
		INSERT INTO users (login, password_hash, phone_num, fav_items, type)
		VALUES ($1, $2, $3, '', $4)`,
		login, string(hash), phone, string(models.RoleCustomer),
	)
	return accountConstraintErr(err)
}

func GetAccount(ctx context.Context, login string) (*models.Account, error) {
	acc, err := scanAccount(db.Pool.QueryRow(ctx, `
		SELECT login, phone_num, fav_items, type FROM users WHERE login = $1`,
		login,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return acc, nil
}

// LoginExists is a user-experience pre-check only; CreateAccount and
// UpdateLogin remain the authority via the unique constraint.
func LoginExists(ctx context.Context, login string) (bool, error) {
	var one int
	err := db.Pool.QueryRow(ctx, `SELECT 1 FROM users WHERE login = $1`, login).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func PhoneExists(ctx context.Context, phone string) (bool, error) {
	var one int
	err := db.Pool.QueryRow(ctx, `SELECT 1 FROM users WHERE phone_num = $1`, phone).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// UpdateLogin renames the account key in place. Order rows follow via
// ON UPDATE CASCADE, so the old login becomes unresolvable and the new one
// resolvable for every subsequent lookup.
func UpdateLogin(ctx context.Context, login, newLogin string) error {
	tag, err := db.Pool.Exec(ctx, `
		UPDATE users SET login = $1 WHERE login = $2`,
		newLogin, login,
	)
	if err != nil {
		return accountConstraintErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func UpdatePassword(ctx context.Context, login, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return updateAccountField(ctx, login, "password_hash", string(hash))
}

// UpdatePhone stores an already-normalized phone number.
func UpdatePhone(ctx context.Context, login, phone string) error {
	return updateAccountField(ctx, login, "phone_num", phone)
}

func UpdateFavItems(ctx context.Context, login, favItems string) error {
	return updateAccountField(ctx, login, "fav_items", favItems)
}

func UpdateRole(ctx context.Context, login string, role models.Role) error {
	return updateAccountField(ctx, login, "type", string(role))
}

func updateAccountField(ctx context.Context, login, column, value string) error {
	tag, err := db.Pool.Exec(ctx,
		fmt.Sprintf(`UPDATE users SET %s = $1 WHERE login = $2`, column),
		value, login,
	)
	if err != nil {
		return accountConstraintErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
