package console

import (
	"context"

	"cafe-console/models"
	"cafe-console/services"

	"github.com/google/uuid"
)

// Store is everything the session flows need from storage. The production
// implementation delegates to the services package; tests substitute an
// in-memory fake.
type Store interface {
	Authenticate(ctx context.Context, login, password string) (*models.Account, error)
	CreateAccount(ctx context.Context, login, password, phone string) error
	GetAccount(ctx context.Context, login string) (*models.Account, error)
	LoginExists(ctx context.Context, login string) (bool, error)
	PhoneExists(ctx context.Context, phone string) (bool, error)
	UpdateLogin(ctx context.Context, login, newLogin string) error
	UpdatePassword(ctx context.Context, login, password string) error
	UpdatePhone(ctx context.Context, login, phone string) error
	UpdateFavItems(ctx context.Context, login, favItems string) error
	UpdateRole(ctx context.Context, login string, role models.Role) error

	ListMenu(ctx context.Context) ([]models.MenuItem, error)
	ListMenuByType(ctx context.Context, t models.ItemType) ([]models.MenuItem, error)
	GetMenuItem(ctx context.Context, name string) (*models.MenuItem, error)
	ItemExists(ctx context.Context, name string) (bool, error)
	AddMenuItem(ctx context.Context, it models.MenuItem) error
	RenameMenuItem(ctx context.Context, name, newName string) error
	UpdateItemType(ctx context.Context, name string, t models.ItemType) error
	UpdateItemPrice(ctx context.Context, name, price string) error
	UpdateItemDescription(ctx context.Context, name, description string) error
	UpdateItemImageURL(ctx context.Context, name, imageURL string) error
	DeleteMenuItem(ctx context.Context, name string) error

	PlaceOrder(ctx context.Context, login string, lines []models.OrderLine) (*models.Order, error)
	GetOrderByRef(ctx context.Context, ref uuid.UUID) (*models.Order, error)
	SetOrderPaid(ctx context.Context, ref uuid.UUID, paid bool) error
	ListOrdersForAccount(ctx context.Context, login string) ([]models.Order, error)
	ListRecentOrders(ctx context.Context, limit int) ([]models.Order, error)

	LoginCooldownSeconds(ctx context.Context, login string) (int, error)
	RecordLoginFailure(ctx context.Context, login string) error
	RecordLoginSuccess(ctx context.Context, login string) error
}

// pgStore is the Postgres-backed Store.
type pgStore struct{}

// NewStore returns the Store backed by the services package.
func NewStore() Store {
	return pgStore{}
}

func (pgStore) Authenticate(ctx context.Context, login, password string) (*models.Account, error) {
	return services.Authenticate(ctx, login, password)
}

func (pgStore) CreateAccount(ctx context.Context, login, password, phone string) error {
	return services.CreateAccount(ctx, login, password, phone)
}

func (pgStore) GetAccount(ctx context.Context, login string) (*models.Account, error) {
	return services.GetAccount(ctx, login)
}

func (pgStore) LoginExists(ctx context.Context, login string) (bool, error) {
	return services.LoginExists(ctx, login)
}

func (pgStore) PhoneExists(ctx context.Context, phone string) (bool, error) {
	return services.PhoneExists(ctx, phone)
}

func (pgStore) UpdateLogin(ctx context.Context, login, newLogin string) error {
	return services.UpdateLogin(ctx, login, newLogin)
}

func (pgStore) UpdatePassword(ctx context.Context, login, password string) error {
	return services.UpdatePassword(ctx, login, password)
}

func (pgStore) UpdatePhone(ctx context.Context, login, phone string) error {
	return services.UpdatePhone(ctx, login, phone)
}

func (pgStore) UpdateFavItems(ctx context.Context, login, favItems string) error {
	return services.UpdateFavItems(ctx, login, favItems)
}

func (pgStore) UpdateRole(ctx context.Context, login string, role models.Role) error {
	return services.UpdateRole(ctx, login, role)
}

func (pgStore) ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	return services.ListMenu(ctx)
}

func (pgStore) ListMenuByType(ctx context.Context, t models.ItemType) ([]models.MenuItem, error) {
	return services.ListMenuByType(ctx, t)
}

func (pgStore) GetMenuItem(ctx context.Context, name string) (*models.MenuItem, error) {
	return services.GetMenuItem(ctx, name)
}

func (pgStore) ItemExists(ctx context.Context, name string) (bool, error) {
	return services.ItemExists(ctx, name)
}

func (pgStore) AddMenuItem(ctx context.Context, it models.MenuItem) error {
	return services.AddMenuItem(ctx, it)
}

func (pgStore) RenameMenuItem(ctx context.Context, name, newName string) error {
	return services.RenameMenuItem(ctx, name, newName)
}

func (pgStore) UpdateItemType(ctx context.Context, name string, t models.ItemType) error {
	return services.UpdateItemType(ctx, name, t)
}

func (pgStore) UpdateItemPrice(ctx context.Context, name, price string) error {
	return services.UpdateItemPrice(ctx, name, price)
}

func (pgStore) UpdateItemDescription(ctx context.Context, name, description string) error {
	return services.UpdateItemDescription(ctx, name, description)
}

func (pgStore) UpdateItemImageURL(ctx context.Context, name, imageURL string) error {
	return services.UpdateItemImageURL(ctx, name, imageURL)
}

func (pgStore) DeleteMenuItem(ctx context.Context, name string) error {
	return services.DeleteMenuItem(ctx, name)
}

func (pgStore) PlaceOrder(ctx context.Context, login string, lines []models.OrderLine) (*models.Order, error) {
	return services.PlaceOrder(ctx, login, lines)
}

func (pgStore) GetOrderByRef(ctx context.Context, ref uuid.UUID) (*models.Order, error) {
	return services.GetOrderByRef(ctx, ref)
}

func (pgStore) SetOrderPaid(ctx context.Context, ref uuid.UUID, paid bool) error {
	return services.SetOrderPaid(ctx, ref, paid)
}

func (pgStore) ListOrdersForAccount(ctx context.Context, login string) ([]models.Order, error) {
	return services.ListOrdersForAccount(ctx, login)
}

func (pgStore) ListRecentOrders(ctx context.Context, limit int) ([]models.Order, error) {
	return services.ListRecentOrders(ctx, limit)
}

func (pgStore) LoginCooldownSeconds(ctx context.Context, login string) (int, error) {
	return services.LoginCooldownSeconds(ctx, login)
}

func (pgStore) RecordLoginFailure(ctx context.Context, login string) error {
	return services.RecordLoginFailure(ctx, login)
}

func (pgStore) RecordLoginSuccess(ctx context.Context, login string) error {
	return services.RecordLoginSuccess(ctx, login)
}
