package usecase

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Test: 確定で注文ができて、カートは空で保存される
func TestSubmitOrderDrainsCart(t *testing.T) {
	tx, r := newStubTx()
	uc := NewOrderUsecase(tx)

	cart := model.Cart{ID: 10, UserID: 1}
	cart.AddItem(model.Item{ID: 1, Name: "Round Widget", Price: decimal.RequireFromString("10.95")})
	cart.AddItem(model.Item{ID: 2, Name: "Square Widget", Price: decimal.RequireFromString("13.90")})

	r.users.On("FindByUsername", mock.Anything, "test").Return(testUser(), nil)
	r.carts.On("FindByUserID", mock.Anything, int64(1)).Return(cart, nil)

	var createdOrder model.Order
	r.orders.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).
		Run(func(args mock.Arguments) {
			o := args.Get(1).(*model.Order)
			o.ID = 100
			createdOrder = *o
		}).
		Return(nil)

	var savedCart model.Cart
	r.carts.On("Save", mock.Anything, mock.AnythingOfType("*model.Cart")).
		Run(func(args mock.Arguments) {
			savedCart = *args.Get(1).(*model.Cart)
		}).
		Return(nil)

	out, err := uc.SubmitOrder(context.Background(), "test")

	assert.NoError(t, err)

	// 注文は確定前のカートの中身と合計を持つ
	assert.Equal(t, int64(1), createdOrder.UserID)
	assert.Len(t, createdOrder.Items, 2)
	assert.True(t, createdOrder.Total.Equal(decimal.RequireFromString("24.85")))
	assert.Equal(t, "Round Widget", createdOrder.Items[0].Name)

	// カートは空・合計ゼロで保存される
	assert.Len(t, savedCart.Items, 0)
	assert.True(t, savedCart.Total.IsZero())

	assert.Equal(t, int64(100), out.ID)
	assert.Equal(t, "test", out.Username)
	assert.Len(t, out.Items, 2)
	assert.True(t, out.Total.Equal(decimal.RequireFromString("24.85")))
}

// Test: 空カートの確定は400で、注文は作られない
func TestSubmitOrderEmptyCart(t *testing.T) {
	tx, r := newStubTx()
	uc := NewOrderUsecase(tx)

	r.users.On("FindByUsername", mock.Anything, "test").Return(testUser(), nil)
	r.carts.On("FindByUserID", mock.Anything, int64(1)).Return(model.Cart{ID: 10, UserID: 1}, nil)

	_, err := uc.SubmitOrder(context.Background(), "test")

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
	assert.Equal(t, "cart empty", he.Message)

	r.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	r.carts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

// Test: 不明ユーザーの確定は404
func TestSubmitOrderUnknownUser(t *testing.T) {
	tx, r := newStubTx()
	uc := NewOrderUsecase(tx)

	r.users.On("FindByUsername", mock.Anything, "nobody").Return(model.User{}, repo.ErrNotFound)

	_, err := uc.SubmitOrder(context.Background(), "nobody")

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, he.Status)

	r.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// Test: 履歴はユーザーの注文を出力形式に詰め替えて返す
func TestListOrderHistory(t *testing.T) {
	tx, r := newStubTx()
	uc := NewOrderUsecase(tx)

	orders := []model.Order{
		{
			ID:     100,
			UserID: 1,
			Total:  decimal.RequireFromString("24.85"),
			Items: []model.OrderItem{
				{ItemID: 1, Name: "Round Widget", Price: decimal.RequireFromString("10.95")},
				{ItemID: 2, Name: "Square Widget", Price: decimal.RequireFromString("13.90")},
			},
		},
	}

	r.users.On("FindByUsername", mock.Anything, "test").Return(testUser(), nil)
	r.orders.On("ListByUserID", mock.Anything, int64(1)).Return(orders, nil)

	outs, err := uc.ListOrderHistory(context.Background(), "test")

	assert.NoError(t, err)
	assert.Len(t, outs, 1)
	assert.Equal(t, int64(100), outs[0].ID)
	assert.Len(t, outs[0].Items, 2)
	assert.True(t, outs[0].Total.Equal(decimal.RequireFromString("24.85")))
}

// Test: 履歴も不明ユーザーは404
func TestListOrderHistoryUnknownUser(t *testing.T) {
	tx, r := newStubTx()
	uc := NewOrderUsecase(tx)

	r.users.On("FindByUsername", mock.Anything, "nobody").Return(model.User{}, repo.ErrNotFound)

	_, err := uc.ListOrderHistory(context.Background(), "nobody")

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, he.Status)
}
