package services

import (
	"context"
	"errors"
	"fmt"

	"cafe-console/db"
	"cafe-console/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrItemTaken = errors.New("menu item name already exists")

func itemConstraintErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrItemTaken
	}
	return err
}

func ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT name, type, price, description, image_url FROM menu_items
		ORDER BY type, name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectItems(rows)
}

func ListMenuByType(ctx context.Context, t models.ItemType) ([]models.MenuItem, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT name, type, price, description, image_url FROM menu_items
		WHERE type = $1
		ORDER BY name`,
		string(t),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectItems(rows)
}

func collectItems(rows pgx.Rows) ([]models.MenuItem, error) {
	var items []models.MenuItem
	for rows.Next() {
		var it models.MenuItem
		var rawType string
		if err := rows.Scan(&it.Name, &rawType, &it.Price, &it.Description, &it.ImageURL); err != nil {
			return nil, err
		}
		t, err := models.ParseItemType(rawType)
		if err != nil {
			return nil, fmt.Errorf("item %s: %w", it.Name, err)
		}
		it.Type = t
		items = append(items, it)
	}
	return items, rows.Err()
}

// GetMenuItem resolves an item by its exact name.
func GetMenuItem(ctx context.Context, name string) (*models.MenuItem, error) {
	var it models.MenuItem
	var rawType string
	err := db.Pool.QueryRow(ctx, `
		SELECT name, type, price, description, image_url FROM menu_items
		WHERE name = $1`,
		name,
	).Scan(&it.Name, &rawType, &it.Price, &it.Description, &it.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	t, err := models.ParseItemType(rawType)
	if err != nil {
		return nil, fmt.Errorf("item %s: %w", it.Name, err)
	}
	it.Type = t
	return &it, nil
}

func ItemExists(ctx context.Context, name string) (bool, error) {
	var one int
	err := db.Pool.QueryRow(ctx, `SELECT 1 FROM menu_items WHERE name = $1`, name).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func AddMenuItem(ctx context.Context, it models.MenuItem) error {
	if _, err := PriceToCents(it.Price); err != nil {
		return err
	}
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO menu_items (name, type, price, description, image_url)
		VALUES ($1, $2, $3, $4, $5)`,
		it.Name, string(it.Type), it.Price, it.Description, it.ImageURL,
	)
	return itemConstraintErr(err)
}

// RenameMenuItem changes the item key; a collision with another existing
// item surfaces as ErrItemTaken.
func RenameMenuItem(ctx context.Context, name, newName string) error {
	tag, err := db.Pool.Exec(ctx, `
		UPDATE menu_items SET name = $1 WHERE name = $2`,
		newName, name,
	)
	if err != nil {
		return itemConstraintErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func UpdateItemType(ctx context.Context, name string, t models.ItemType) error {
	return updateItemField(ctx, name, "type", string(t))
}

func UpdateItemPrice(ctx context.Context, name, price string) error {
	if _, err := PriceToCents(price); err != nil {
		return err
	}
	return updateItemField(ctx, name, "price", price)
}

func UpdateItemDescription(ctx context.Context, name, description string) error {
	return updateItemField(ctx, name, "description", description)
}

func UpdateItemImageURL(ctx context.Context, name, imageURL string) error {
	return updateItemField(ctx, name, "image_url", imageURL)
}

func DeleteMenuItem(ctx context.Context, name string) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM menu_items WHERE name = $1`, name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func updateItemField(ctx context.Context, name, column, value string) error {
	tag, err := db.Pool.Exec(ctx,
		fmt.Sprintf(`UPDATE menu_items SET %s = $1 WHERE name = $2`, column),
		value, name,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
