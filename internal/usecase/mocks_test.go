package usecase

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/mock"
)

// Mocking repositories

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID int64) (model.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (model.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(model.User), args.Error(1)
}

type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) ListAll(ctx context.Context) ([]model.Item, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Item), args.Error(1)
}

func (m *MockItemRepository) FindByID(ctx context.Context, itemID int64) (model.Item, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(model.Item), args.Error(1)
}

func (m *MockItemRepository) FindByName(ctx context.Context, name string) ([]model.Item, error) {
	args := m.Called(ctx, name)
	return args.Get(0).([]model.Item), args.Error(1)
}

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) FindByUserID(ctx context.Context, userID int64) (model.Cart, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.Cart), args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, cart *model.Cart) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]model.Order), args.Error(1)
}

// WithinTxをそのまま実行するテスト用TransactionManager

type stubTxRepos struct {
	users  *MockUserRepository
	items  *MockItemRepository
	carts  *MockCartRepository
	orders *MockOrderRepository
}

func (r *stubTxRepos) Users() repo.UserRepository   { return r.users }
func (r *stubTxRepos) Items() repo.ItemRepository   { return r.items }
func (r *stubTxRepos) Carts() repo.CartRepository   { return r.carts }
func (r *stubTxRepos) Orders() repo.OrderRepository { return r.orders }

type stubTxManager struct {
	repos *stubTxRepos
	calls int
}

func (m *stubTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	m.calls++
	return fn(m.repos)
}

func newStubTx() (*stubTxManager, *stubTxRepos) {
	repos := &stubTxRepos{
		users:  new(MockUserRepository),
		items:  new(MockItemRepository),
		carts:  new(MockCartRepository),
		orders: new(MockOrderRepository),
	}
	return &stubTxManager{repos: repos}, repos
}
