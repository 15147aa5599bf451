package commands_test

import (
	"context"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/review"
	"foodorder/internal/core/domain/model/tracking"
	"foodorder/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForShare(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) ExistsForCustomerAndRestaurant(ctx context.Context, customerID, restaurantID kernel.UUID) (bool, error) {
	args := m.Called(ctx, customerID, restaurantID)
	return args.Bool(0), args.Error(1)
}

type MockTrackingRepository struct{ mock.Mock }

func (m *MockTrackingRepository) GetOrCreateForUpdate(ctx context.Context, orderID, partnerID kernel.UUID, now time.Time) (*tracking.Tracking, error) {
	args := m.Called(ctx, orderID, partnerID, now)
	t, _ := args.Get(0).(*tracking.Tracking)
	return t, args.Error(1)
}

func (m *MockTrackingRepository) GetForUpdate(ctx context.Context, orderID kernel.UUID) (*tracking.Tracking, error) {
	args := m.Called(ctx, orderID)
	t, _ := args.Get(0).(*tracking.Tracking)
	return t, args.Error(1)
}

func (m *MockTrackingRepository) Save(ctx context.Context, t *tracking.Tracking) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTrackingRepository) History(ctx context.Context, orderID kernel.UUID) ([]tracking.Entry, error) {
	args := m.Called(ctx, orderID)
	entries, _ := args.Get(0).([]tracking.Entry)
	return entries, args.Error(1)
}

func (m *MockTrackingRepository) ListArchivable(ctx context.Context, limit int) ([]kernel.UUID, error) {
	args := m.Called(ctx, limit)
	ids, _ := args.Get(0).([]kernel.UUID)
	return ids, args.Error(1)
}

type MockReviewRepository struct{ mock.Mock }

func (m *MockReviewRepository) Add(ctx context.Context, r *review.Review) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockReviewRepository) Update(ctx context.Context, r *review.Review) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockReviewRepository) Get(ctx context.Context, id kernel.UUID) (*review.Review, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*review.Review)
	return r, args.Error(1)
}

func (m *MockReviewRepository) ExistsForCustomerAndTarget(ctx context.Context, customerID kernel.UUID, target review.Target) (bool, error) {
	args := m.Called(ctx, customerID, target)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewRepository) RatingsOf(ctx context.Context, target review.Target) ([]review.Rating, error) {
	args := m.Called(ctx, target)
	ratings, _ := args.Get(0).([]review.Rating)
	return ratings, args.Error(1)
}

func (m *MockReviewRepository) ReviewedTargets(ctx context.Context) ([]review.Target, error) {
	args := m.Called(ctx)
	targets, _ := args.Get(0).([]review.Target)
	return targets, args.Error(1)
}

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Restaurant, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*catalog.Restaurant)
	return r, args.Error(1)
}

type MockMenuItemRepository struct{ mock.Mock }

func (m *MockMenuItemRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.MenuItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*catalog.MenuItem)
	return item, args.Error(1)
}

type MockRatingRepository struct{ mock.Mock }

func (m *MockRatingRepository) LockTarget(ctx context.Context, target review.Target) error {
	return m.Called(ctx, target).Error(0)
}

func (m *MockRatingRepository) SetRating(ctx context.Context, target review.Target, value float64) error {
	return m.Called(ctx, target, value).Error(0)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*account.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*account.User)
	return u, args.Error(1)
}

type MockAddressRepository struct{ mock.Mock }

func (m *MockAddressRepository) Get(ctx context.Context, id kernel.UUID) (*account.Address, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*account.Address)
	return a, args.Error(1)
}

// MockUoW mocks the transaction calls and hands out the repositories it was
// built with. It satisfies every unit of work interface of the package.
type MockUoW struct {
	mock.Mock

	orders      *MockOrderRepository
	trackings   *MockTrackingRepository
	reviews     *MockReviewRepository
	restaurants *MockRestaurantRepository
	menuItems   *MockMenuItemRepository
	ratings     *MockRatingRepository
	users       *MockUserRepository
	addresses   *MockAddressRepository
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		orders:      new(MockOrderRepository),
		trackings:   new(MockTrackingRepository),
		reviews:     new(MockReviewRepository),
		restaurants: new(MockRestaurantRepository),
		menuItems:   new(MockMenuItemRepository),
		ratings:     new(MockRatingRepository),
		users:       new(MockUserRepository),
		addresses:   new(MockAddressRepository),
	}
}

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository           { return m.orders }
func (m *MockUoW) TrackingRepository() ports.TrackingRepository     { return m.trackings }
func (m *MockUoW) ReviewRepository() ports.ReviewRepository         { return m.reviews }
func (m *MockUoW) RestaurantRepository() ports.RestaurantRepository { return m.restaurants }
func (m *MockUoW) MenuItemRepository() ports.MenuItemRepository     { return m.menuItems }
func (m *MockUoW) RatingRepository() ports.RatingRepository         { return m.ratings }
func (m *MockUoW) UserRepository() ports.UserRepository             { return m.users }
func (m *MockUoW) AddressRepository() ports.AddressRepository       { return m.addresses }

// assertExpectations checks the uow and every repository mock.
func (m *MockUoW) assertExpectations(t mock.TestingT) {
	m.AssertExpectations(t)
	m.orders.AssertExpectations(t)
	m.trackings.AssertExpectations(t)
	m.reviews.AssertExpectations(t)
	m.restaurants.AssertExpectations(t)
	m.menuItems.AssertExpectations(t)
	m.ratings.AssertExpectations(t)
	m.users.AssertExpectations(t)
	m.addresses.AssertExpectations(t)
}

// expectTx expects a transaction that ends with commitErr, or without a
// commit when commit is false. The deferred rollback always runs.
func (m *MockUoW) expectTx(ctx context.Context, commit bool, commitErr error) {
	m.On("Begin", ctx).Return(nil).Once()
	if commit {
		m.On("Commit", ctx).Return(commitErr).Once()
	}
	m.On("Rollback", ctx).Return(nil).Once()
}

// nextUoW hands out the configured units of work in order and keeps
// returning the last one.
func nextUoW(uows *[]*MockUoW) *MockUoW {
	uow := (*uows)[0]
	if len(*uows) > 1 {
		*uows = (*uows)[1:]
	}
	return uow
}

type MockOrderUoWFactory struct{ uows []*MockUoW }

func (f *MockOrderUoWFactory) Create() commands.OrderUoW { return nextUoW(&f.uows) }

type MockTrackingUoWFactory struct{ uows []*MockUoW }

func (f *MockTrackingUoWFactory) Create() commands.TrackingUoW { return nextUoW(&f.uows) }

type MockReviewUoWFactory struct{ uows []*MockUoW }

func (f *MockReviewUoWFactory) Create() commands.ReviewUoW { return nextUoW(&f.uows) }

type MockIdempotencyStore struct{ mock.Mock }

func (m *MockIdempotencyStore) Reserve(ctx context.Context, scope, key string) (kernel.UUID, bool, error) {
	args := m.Called(ctx, scope, key)
	id, _ := args.Get(0).(kernel.UUID)
	return id, args.Bool(1), args.Error(2)
}

func (m *MockIdempotencyStore) Complete(ctx context.Context, scope, key string, orderID kernel.UUID) error {
	return m.Called(ctx, scope, key, orderID).Error(0)
}

func (m *MockIdempotencyStore) Release(ctx context.Context, scope, key string) error {
	return m.Called(ctx, scope, key).Error(0)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, userID kernel.UUID, eventType string, payload any) error {
	return m.Called(ctx, userID, eventType, payload).Error(0)
}

type MockTrackingArchive struct{ mock.Mock }

func (m *MockTrackingArchive) Store(ctx context.Context, orderID kernel.UUID, entries []tracking.Entry) (string, error) {
	args := m.Called(ctx, orderID, entries)
	return args.String(0), args.Error(1)
}

func mustActor(role kernel.Role) kernel.Actor {
	actor, err := kernel.NewActor(kernel.NewUUID(), role)
	if err != nil {
		panic(err)
	}
	return actor
}

func mustMoney(s string) kernel.Money {
	m, err := kernel.MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// restoredOrder is an order of customerID at restaurantID in status with
// an optional partner.
func restoredOrder(customerID, restaurantID kernel.UUID, status order.Status, partnerID *kernel.UUID) *order.Order {
	item, err := order.NewLineItem(kernel.NewUUID(), 2, mustMoney("150.00"))
	if err != nil {
		panic(err)
	}
	now := time.Now().UTC()
	return order.RestoreOrder(
		kernel.NewUUID(), customerID, restaurantID, kernel.NewUUID(),
		[]order.LineItem{item}, mustMoney("300.00"), status, partnerID,
		order.RestorePayment(order.PaymentMethodUPI, order.PaymentStatusPending, ""),
		now, now, 1,
	)
}
