package console

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"cafe-console/models"
	"cafe-console/services"

	"github.com/google/uuid"
)

const recentOrdersLimit = 20

// placeOrder gathers order lines interactively, then inserts the order in
// one transaction and prints a receipt with the order reference.
func (s *Session) placeOrder(ctx context.Context) error {
	var lines []models.OrderLine
	for {
		name, ok, err := s.chooseExistingItem(ctx)
		if err != nil {
			return err
		}
		if !ok {
			if len(lines) == 0 {
				return nil
			}
		} else {
			qty, err := s.readQty()
			if err != nil {
				return err
			}
			lines = append(lines, models.OrderLine{ItemName: name, Qty: qty})
		}

		s.printf("1. Add another item\n")
		s.printf("2. Checkout (%d item line(s))\n", len(lines))
		s.printf("9. Cancel order\n")
	choice:
		for {
			n, err := s.readChoice()
			if err != nil {
				return err
			}
			switch n {
			case 1:
				break choice
			case 2:
				if len(lines) == 0 {
					s.printf("Nothing to check out yet.\n")
					continue
				}
				return s.checkout(ctx, lines)
			case 9:
				s.printf("Order cancelled.\n")
				return nil
			default:
				s.printf("Unrecognized choice!\n")
			}
		}
	}
}

func (s *Session) readQty() (int, error) {
	for {
		line, err := s.readLine("Enter quantity: ")
		if err != nil {
			return 0, err
		}
		n, cerr := strconv.Atoi(strings.TrimSpace(line))
		if cerr != nil || n <= 0 {
			s.printf("Quantity must be a positive number.\n")
			continue
		}
		return n, nil
	}
}

func (s *Session) checkout(ctx context.Context, lines []models.OrderLine) error {
	order, err := s.store.PlaceOrder(ctx, s.actor.Login, lines)
	if err != nil {
		s.fail("place order", err)
		return nil
	}
	s.printf("Order placed!\n")
	s.printf("Reference: %s\n", order.Ref)
	s.printf("Total:     %s\n", order.Total)
	return nil
}

func (s *Session) orderHistory(ctx context.Context) error {
	orders, err := s.store.ListOrdersForAccount(ctx, s.actor.Login)
	if err != nil {
		s.fail("order history", err)
		return nil
	}
	s.printOrders(orders)
	return nil
}

func (s *Session) printOrders(orders []models.Order) {
	if len(orders) == 0 {
		s.printf("No orders found.\n")
		return
	}
	for _, o := range orders {
		paid := "unpaid"
		if o.Paid {
			paid = "paid"
		}
		s.printf("%s\t%s\t%s\t%s\t%s\n",
			o.Ref, o.Login, o.PlacedAt.Format("2006-01-02 15:04"), o.Total, paid)
	}
	s.printf("%d order(s).\n", len(orders))
}

// updateOrder lets an employee or manager toggle an order's paid flag. The
// paid/unpaid choice is a numbered whole-line menu like every other prompt.
func (s *Session) updateOrder(ctx context.Context) error {
	orders, err := s.store.ListRecentOrders(ctx, recentOrdersLimit)
	if err != nil {
		s.fail("list orders", err)
		return nil
	}
	s.printOrders(orders)

	order, ok, err := s.chooseOrder(ctx)
	if err != nil || !ok {
		return err
	}

	paidNow := "unpaid"
	if order.Paid {
		paidNow = "paid"
	}
	s.printf("Order %s for '%s' is currently %s.\n", order.Ref, order.Login, paidNow)
	s.printf("1. Mark paid\n")
	s.printf("2. Mark unpaid\n")
	s.printf("9. Back\n")
	for {
		n, err := s.readChoice()
		if err != nil {
			return err
		}
		var paid bool
		switch n {
		case 1:
			paid = true
		case 2:
			paid = false
		case 9:
			return nil
		default:
			s.printf("Unrecognized choice!\n")
			continue
		}
		if uerr := s.store.SetOrderPaid(ctx, order.Ref, paid); uerr != nil {
			s.fail("update order", uerr)
			return nil
		}
		s.printf("Order payment state successfully updated!\n")
		return nil
	}
}

// chooseOrder resolves an order by its reference with retry-or-cancel on a
// malformed reference or a miss.
func (s *Session) chooseOrder(ctx context.Context) (*models.Order, bool, error) {
	for {
		raw, err := s.readLine("Enter order reference: ")
		if err != nil {
			return nil, false, err
		}

		ref, perr := uuid.Parse(strings.TrimSpace(raw))
		if perr != nil {
			s.printf("That is not a valid order reference.\n")
			retry, err := s.retryOrCancel("Try a different reference", "Back to main menu")
			if err != nil {
				return nil, false, err
			}
			if !retry {
				return nil, false, nil
			}
			continue
		}

		order, gerr := s.store.GetOrderByRef(ctx, ref)
		switch {
		case gerr == nil:
			return order, true, nil
		case errors.Is(gerr, services.ErrNotFound):
			s.printf("No order with that reference.\n")
			retry, err := s.retryOrCancel("Try a different reference", "Back to main menu")
			if err != nil {
				return nil, false, err
			}
			if !retry {
				return nil, false, nil
			}
		default:
			s.fail("look up order", gerr)
			return nil, false, nil
		}
	}
}
