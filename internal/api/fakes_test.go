package api_test

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/nikolayk812/ezcheckout/internal/auth"
	"github.com/nikolayk812/ezcheckout/internal/domain"
	"github.com/nikolayk812/ezcheckout/internal/repository"
)

// In-memory stand-ins for the Postgres repositories and the Redis session
// store, enough to drive the handlers through httptest.

type fakeItemRepository struct {
	items       map[int]domain.Item
	nextID      int
	updateCalls int
}

func newFakeItemRepository() *fakeItemRepository {
	return &fakeItemRepository{
		items:  make(map[int]domain.Item),
		nextID: 1,
	}
}

func (f *fakeItemRepository) CreateItem(_ context.Context, item domain.Item) (domain.Item, error) {
	item.Identifier = f.nextID
	f.nextID++
	f.items[item.Identifier] = item
	return item, nil
}

func (f *fakeItemRepository) GetItem(_ context.Context, identifier int) (domain.Item, error) {
	item, ok := f.items[identifier]
	if !ok {
		return domain.Item{}, repository.ErrNotFound
	}
	return item, nil
}

func (f *fakeItemRepository) ListItems(_ context.Context) ([]domain.Item, error) {
	items := make([]domain.Item, 0, len(f.items))
	for _, item := range f.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Identifier < items[j].Identifier
	})
	return items, nil
}

func (f *fakeItemRepository) UpdateItem(_ context.Context, item domain.Item) (domain.Item, error) {
	f.updateCalls++
	f.items[item.Identifier] = item
	return item, nil
}

func (f *fakeItemRepository) DeleteItem(_ context.Context, identifier int) (domain.Item, error) {
	item, ok := f.items[identifier]
	if !ok {
		return domain.Item{}, repository.ErrNotFound
	}
	delete(f.items, identifier)
	return item, nil
}

type fakeCheckoutRepository struct {
	checkouts map[int]domain.Checkout
	nextID    int
}

func newFakeCheckoutRepository() *fakeCheckoutRepository {
	return &fakeCheckoutRepository{
		checkouts: make(map[int]domain.Checkout),
		nextID:    1,
	}
}

func (f *fakeCheckoutRepository) CreateCheckout(_ context.Context, checkout domain.Checkout) (domain.Checkout, error) {
	checkout.Identifier = f.nextID
	f.nextID++
	f.checkouts[checkout.Identifier] = checkout
	return checkout, nil
}

func (f *fakeCheckoutRepository) GetCheckout(_ context.Context, identifier int) (domain.Checkout, error) {
	checkout, ok := f.checkouts[identifier]
	if !ok {
		return domain.Checkout{}, repository.ErrNotFound
	}
	return checkout, nil
}

func (f *fakeCheckoutRepository) ListCheckouts(_ context.Context) ([]domain.Checkout, error) {
	checkouts := make([]domain.Checkout, 0, len(f.checkouts))
	for _, checkout := range f.checkouts {
		checkouts = append(checkouts, checkout)
	}
	sort.Slice(checkouts, func(i, j int) bool {
		return checkouts[i].Identifier < checkouts[j].Identifier
	})
	return checkouts, nil
}

func (f *fakeCheckoutRepository) UpdateCheckout(_ context.Context, checkout domain.Checkout) (domain.Checkout, error) {
	f.checkouts[checkout.Identifier] = checkout
	return checkout, nil
}

func (f *fakeCheckoutRepository) DeleteCheckout(_ context.Context, identifier int) error {
	if _, ok := f.checkouts[identifier]; !ok {
		return repository.ErrNotFound
	}
	delete(f.checkouts, identifier)
	return nil
}

func (f *fakeCheckoutRepository) AddItem(_ context.Context, checkoutID, itemID int) error {
	checkout, ok := f.checkouts[checkoutID]
	if !ok {
		return repository.ErrNotFound
	}

	for _, item := range checkout.AvailableItems {
		if item.Identifier == itemID {
			return nil
		}
	}

	checkout.AvailableItems = append(checkout.AvailableItems, domain.Item{Identifier: itemID})
	f.checkouts[checkoutID] = checkout
	return nil
}

func (f *fakeCheckoutRepository) RemoveItem(_ context.Context, checkoutID, itemID int) error {
	checkout, ok := f.checkouts[checkoutID]
	if !ok {
		return repository.ErrNotFound
	}

	for i, item := range checkout.AvailableItems {
		if item.Identifier == itemID {
			checkout.AvailableItems = append(checkout.AvailableItems[:i], checkout.AvailableItems[i+1:]...)
			f.checkouts[checkoutID] = checkout
			return nil
		}
	}

	return repository.ErrNotFound
}

type fakeOrderRepository struct {
	orders map[int]domain.Order
	nextID int
}

func newFakeOrderRepository() *fakeOrderRepository {
	return &fakeOrderRepository{
		orders: make(map[int]domain.Order),
		nextID: 1,
	}
}

func (f *fakeOrderRepository) CreateOrder(_ context.Context, order domain.Order) (domain.Order, error) {
	order.Identifier = f.nextID
	f.nextID++
	f.orders[order.Identifier] = order
	return order, nil
}

func (f *fakeOrderRepository) GetOrder(_ context.Context, identifier int) (domain.Order, error) {
	order, ok := f.orders[identifier]
	if !ok {
		return domain.Order{}, repository.ErrNotFound
	}
	return order, nil
}

func (f *fakeOrderRepository) ListOrders(_ context.Context) ([]domain.Order, error) {
	orders := make([]domain.Order, 0, len(f.orders))
	for _, order := range f.orders {
		orders = append(orders, order)
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].Identifier < orders[j].Identifier
	})
	return orders, nil
}

func (f *fakeOrderRepository) CompleteOrder(_ context.Context, identifier int) (domain.Order, error) {
	order, ok := f.orders[identifier]
	if !ok {
		return domain.Order{}, repository.ErrNotFound
	}
	if err := order.Complete(); err != nil {
		return domain.Order{}, err
	}
	f.orders[identifier] = order
	return order, nil
}

func (f *fakeOrderRepository) DeleteOrder(_ context.Context, identifier int) error {
	if _, ok := f.orders[identifier]; !ok {
		return repository.ErrNotFound
	}
	delete(f.orders, identifier)
	return nil
}

type fakeUserRepository struct {
	users  map[string]domain.User
	hashes map[string]string
	nextID int
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		users:  make(map[string]domain.User),
		hashes: make(map[string]string),
		nextID: 1,
	}
}

func (f *fakeUserRepository) CreateUser(_ context.Context, user domain.User, passwordHash string) (domain.User, error) {
	if _, ok := f.users[user.Username]; ok {
		return domain.User{}, repository.ErrUsernameTaken
	}

	user.ID = f.nextID
	f.nextID++
	user.Created = time.Now().UTC()

	f.users[user.Username] = user
	f.hashes[user.Username] = passwordHash
	return user, nil
}

func (f *fakeUserRepository) GetUserByUsername(_ context.Context, username string) (domain.User, string, error) {
	user, ok := f.users[username]
	if !ok {
		return domain.User{}, "", repository.ErrNotFound
	}
	return user, f.hashes[username], nil
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, id int) (domain.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return domain.User{}, repository.ErrNotFound
}

type fakeSessionStore struct {
	sessions map[string]int
	nextID   int
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]int)}
}

func (f *fakeSessionStore) Create(_ context.Context, userID int, _ time.Duration) (string, error) {
	f.nextID++
	token := fmt.Sprintf("token-%d", f.nextID)
	f.sessions[token] = userID
	return token, nil
}

func (f *fakeSessionStore) Resolve(_ context.Context, token string) (int, error) {
	userID, ok := f.sessions[token]
	if !ok {
		return 0, auth.ErrNoSession
	}
	return userID, nil
}

func (f *fakeSessionStore) Delete(_ context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}
