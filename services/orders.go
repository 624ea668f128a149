package services

import (
	"context"
	"errors"
	"fmt"

	"cafe-console/db"
	"cafe-console/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PlaceOrder inserts the order and its lines in one transaction, pricing
// each line from the stored price at order time. The transaction closes the
// gap the old two-statement sequence left open: either the whole order
// lands or none of it does.
func PlaceOrder(ctx context.Context, login string, lines []models.OrderLine) (*models.Order, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("order has no items")
	}

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var totalCents int64
	for _, line := range lines {
		var price string
		err := tx.QueryRow(ctx, `SELECT price FROM menu_items WHERE name = $1`, line.ItemName).Scan(&price)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, fmt.Errorf("menu item %q: %w", line.ItemName, ErrNotFound)
			}
			return nil, err
		}
		cents, err := PriceToCents(price)
		if err != nil {
			return nil, fmt.Errorf("menu item %q: %w", line.ItemName, err)
		}
		totalCents += cents * int64(line.Qty)
	}

	order := models.Order{
		Ref:   uuid.New(),
		Login: login,
		Total: FormatCents(totalCents),
	}
	err = tx.QueryRow(ctx, `
		INSERT INTO orders (ref, login, paid, total)
		VALUES ($1, $2, false, $3)
		RETURNING id, placed_at`,
		order.Ref, order.Login, order.Total,
	).Scan(&order.ID, &order.PlacedAt)
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		_, err := tx.Exec(ctx, `
			INSERT INTO order_items (order_id, item_name, qty)
			VALUES ($1, $2, $3)
			ON CONFLICT (order_id, item_name) DO UPDATE
				SET qty = order_items.qty + EXCLUDED.qty, last_updated = now()`,
			order.ID, line.ItemName, line.Qty,
		)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &order, nil
}

func GetOrderByRef(ctx context.Context, ref uuid.UUID) (*models.Order, error) {
	var o models.Order
	err := db.Pool.QueryRow(ctx, `
		SELECT id, ref, login, paid, placed_at, total FROM orders WHERE ref = $1`,
		ref,
	).Scan(&o.ID, &o.Ref, &o.Login, &o.Paid, &o.PlacedAt, &o.Total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func SetOrderPaid(ctx context.Context, ref uuid.UUID, paid bool) error {
	tag, err := db.Pool.Exec(ctx, `UPDATE orders SET paid = $1 WHERE ref = $2`, paid, ref)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func ListOrdersForAccount(ctx context.Context, login string) ([]models.Order, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, ref, login, paid, placed_at, total FROM orders
		WHERE login = $1
		ORDER BY placed_at DESC`,
		login,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

// ListRecentOrders is the staff view used when updating payment state.
func ListRecentOrders(ctx context.Context, limit int) ([]models.Order, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, ref, login, paid, placed_at, total FROM orders
		ORDER BY placed_at DESC
		LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

func collectOrders(rows pgx.Rows) ([]models.Order, error) {
	var orders []models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.Ref, &o.Login, &o.Paid, &o.PlacedAt, &o.Total); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
