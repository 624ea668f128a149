package console

import (
	"context"
	"sort"

	"cafe-console/models"
	"cafe-console/services"

	"github.com/google/uuid"
)

// fakeStore is an in-memory Store mirroring the database's uniqueness
// semantics, so the state machines can be driven without Postgres.
type fakeStore struct {
	accounts  map[string]*fakeAccount // by login
	items     map[string]models.MenuItem
	orders    map[uuid.UUID]*models.Order
	nextOrder int64
	failures  map[string]int
	cooldowns map[string]int
}

type fakeAccount struct {
	models.Account
	password string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		accounts:  make(map[string]*fakeAccount),
		items:     make(map[string]models.MenuItem),
		orders:    make(map[uuid.UUID]*models.Order),
		failures:  make(map[string]int),
		cooldowns: make(map[string]int),
	}
}

func (f *fakeStore) seedAccount(login, password, phone string, role models.Role) {
	f.accounts[login] = &fakeAccount{
		Account:  models.Account{Login: login, Phone: phone, Role: role},
		password: password,
	}
}

func (f *fakeStore) phoneInUse(phone string) bool {
	for _, a := range f.accounts {
		if a.Phone == phone {
			return true
		}
	}
	return false
}

func (f *fakeStore) Authenticate(_ context.Context, login, password string) (*models.Account, error) {
	a, ok := f.accounts[login]
	if !ok || a.password != password {
		return nil, services.ErrAuthFailed
	}
	acc := a.Account
	return &acc, nil
}

func (f *fakeStore) CreateAccount(_ context.Context, login, password, phone string) error {
	if _, ok := f.accounts[login]; ok {
		return services.ErrLoginTaken
	}
	if f.phoneInUse(phone) {
		return services.ErrPhoneTaken
	}
	f.accounts[login] = &fakeAccount{
		Account:  models.Account{Login: login, Phone: phone, Role: models.RoleCustomer},
		password: password,
	}
	return nil
}

func (f *fakeStore) GetAccount(_ context.Context, login string) (*models.Account, error) {
	a, ok := f.accounts[login]
	if !ok {
		return nil, services.ErrNotFound
	}
	acc := a.Account
	return &acc, nil
}

func (f *fakeStore) LoginExists(_ context.Context, login string) (bool, error) {
	_, ok := f.accounts[login]
	return ok, nil
}

func (f *fakeStore) PhoneExists(_ context.Context, phone string) (bool, error) {
	return f.phoneInUse(phone), nil
}

func (f *fakeStore) UpdateLogin(_ context.Context, login, newLogin string) error {
	a, ok := f.accounts[login]
	if !ok {
		return services.ErrNotFound
	}
	if _, taken := f.accounts[newLogin]; taken {
		return services.ErrLoginTaken
	}
	delete(f.accounts, login)
	a.Login = newLogin
	f.accounts[newLogin] = a
	for _, o := range f.orders {
		if o.Login == login {
			o.Login = newLogin
		}
	}
	return nil
}

func (f *fakeStore) UpdatePassword(_ context.Context, login, password string) error {
	a, ok := f.accounts[login]
	if !ok {
		return services.ErrNotFound
	}
	a.password = password
	return nil
}

func (f *fakeStore) UpdatePhone(_ context.Context, login, phone string) error {
	a, ok := f.accounts[login]
	if !ok {
		return services.ErrNotFound
	}
	if a.Phone != phone && f.phoneInUse(phone) {
		return services.ErrPhoneTaken
	}
	a.Phone = phone
	return nil
}

func (f *fakeStore) UpdateFavItems(_ context.Context, login, favItems string) error {
	a, ok := f.accounts[login]
	if !ok {
		return services.ErrNotFound
	}
	a.FavItems = favItems
	return nil
}

func (f *fakeStore) UpdateRole(_ context.Context, login string, role models.Role) error {
	a, ok := f.accounts[login]
	if !ok {
		return services.ErrNotFound
	}
	a.Role = role
	return nil
}

func (f *fakeStore) ListMenu(_ context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	for _, it := range f.items {
		items = append(items, it)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (f *fakeStore) ListMenuByType(_ context.Context, t models.ItemType) ([]models.MenuItem, error) {
	var items []models.MenuItem
	for _, it := range f.items {
		if it.Type == t {
			items = append(items, it)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (f *fakeStore) GetMenuItem(_ context.Context, name string) (*models.MenuItem, error) {
	it, ok := f.items[name]
	if !ok {
		return nil, services.ErrNotFound
	}
	return &it, nil
}

func (f *fakeStore) ItemExists(_ context.Context, name string) (bool, error) {
	_, ok := f.items[name]
	return ok, nil
}

func (f *fakeStore) AddMenuItem(_ context.Context, it models.MenuItem) error {
	if _, ok := f.items[it.Name]; ok {
		return services.ErrItemTaken
	}
	f.items[it.Name] = it
	return nil
}

func (f *fakeStore) RenameMenuItem(_ context.Context, name, newName string) error {
	it, ok := f.items[name]
	if !ok {
		return services.ErrNotFound
	}
	if _, taken := f.items[newName]; taken {
		return services.ErrItemTaken
	}
	delete(f.items, name)
	it.Name = newName
	f.items[newName] = it
	return nil
}

func (f *fakeStore) UpdateItemType(_ context.Context, name string, t models.ItemType) error {
	it, ok := f.items[name]
	if !ok {
		return services.ErrNotFound
	}
	it.Type = t
	f.items[name] = it
	return nil
}

func (f *fakeStore) UpdateItemPrice(_ context.Context, name, price string) error {
	it, ok := f.items[name]
	if !ok {
		return services.ErrNotFound
	}
	it.Price = price
	f.items[name] = it
	return nil
}

func (f *fakeStore) UpdateItemDescription(_ context.Context, name, description string) error {
	it, ok := f.items[name]
	if !ok {
		return services.ErrNotFound
	}
	it.Description = description
	f.items[name] = it
	return nil
}

func (f *fakeStore) UpdateItemImageURL(_ context.Context, name, imageURL string) error {
	it, ok := f.items[name]
	if !ok {
		return services.ErrNotFound
	}
	it.ImageURL = imageURL
	f.items[name] = it
	return nil
}

func (f *fakeStore) DeleteMenuItem(_ context.Context, name string) error {
	if _, ok := f.items[name]; !ok {
		return services.ErrNotFound
	}
	delete(f.items, name)
	return nil
}

func (f *fakeStore) PlaceOrder(_ context.Context, login string, lines []models.OrderLine) (*models.Order, error) {
	var totalCents int64
	for _, line := range lines {
		it, ok := f.items[line.ItemName]
		if !ok {
			return nil, services.ErrNotFound
		}
		cents, err := services.PriceToCents(it.Price)
		if err != nil {
			return nil, err
		}
		totalCents += cents * int64(line.Qty)
	}
	f.nextOrder++
	o := &models.Order{
		ID:    f.nextOrder,
		Ref:   uuid.New(),
		Login: login,
		Total: services.FormatCents(totalCents),
	}
	f.orders[o.Ref] = o
	return o, nil
}

func (f *fakeStore) GetOrderByRef(_ context.Context, ref uuid.UUID) (*models.Order, error) {
	o, ok := f.orders[ref]
	if !ok {
		return nil, services.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeStore) SetOrderPaid(_ context.Context, ref uuid.UUID, paid bool) error {
	o, ok := f.orders[ref]
	if !ok {
		return services.ErrNotFound
	}
	o.Paid = paid
	return nil
}

func (f *fakeStore) ListOrdersForAccount(_ context.Context, login string) ([]models.Order, error) {
	var orders []models.Order
	for _, o := range f.orders {
		if o.Login == login {
			orders = append(orders, *o)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

func (f *fakeStore) ListRecentOrders(_ context.Context, limit int) ([]models.Order, error) {
	var orders []models.Order
	for _, o := range f.orders {
		orders = append(orders, *o)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID > orders[j].ID })
	if len(orders) > limit {
		orders = orders[:limit]
	}
	return orders, nil
}

func (f *fakeStore) LoginCooldownSeconds(_ context.Context, login string) (int, error) {
	return f.cooldowns[login], nil
}

func (f *fakeStore) RecordLoginFailure(_ context.Context, login string) error {
	f.failures[login]++
	return nil
}

func (f *fakeStore) RecordLoginSuccess(_ context.Context, login string) error {
	f.failures[login] = 0
	return nil
}
