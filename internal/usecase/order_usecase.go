package usecase

import (
	"context"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

// OrderUsecase は注文確定と履歴の業務ロジック。
type OrderUsecase struct {
	tx repo.TransactionManager
}

// DI
func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

type OrderItemOutput struct {
	ItemID      int64           `json:"item_id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}

type OrderOutput struct {
	ID        int64             `json:"id"`
	Username  string            `json:"username"`
	Items     []OrderItemOutput `json:"items"`
	Total     decimal.Decimal   `json:"total"`
	CreatedAt time.Time         `json:"created_at"`
}

// SubmitOrder はカートの中身から注文を作り、カートを空に戻す。
// 注文作成とカート保存は同一トランザクション。
func (u *OrderUsecase) SubmitOrder(ctx context.Context, username string) (OrderOutput, error) {
	if username == "" {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid username")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		user, err := r.Users().FindByUsername(ctx, username)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "user not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		cart, err := r.Carts().FindByUserID(ctx, user.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		// 空カートは確定できない
		if cart.IsEmpty() {
			return NewHTTPError(http.StatusBadRequest, "cart empty")
		}

		items, total := cart.Drain()
		order := model.NewOrder(user.ID, items, total)

		if err := r.Orders().Create(ctx, &order); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		// 空になったカートも保存する
		if err := r.Carts().Save(ctx, &cart); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toOrderOutput(user, order)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// ListOrderHistory はユーザーの注文履歴を返す。
func (u *OrderUsecase) ListOrderHistory(ctx context.Context, username string) ([]OrderOutput, error) {
	if username == "" {
		return []OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid username")
	}

	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		user, err := r.Users().FindByUsername(ctx, username)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "user not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		orders, err := r.Orders().ListByUserID(ctx, user.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			outs = append(outs, toOrderOutput(user, o))
		}
		return nil
	})

	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

func toOrderOutput(user model.User, o model.Order) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(o.Items))
	for _, it := range o.Items {
		outItems = append(outItems, OrderItemOutput{
			ItemID:      it.ItemID,
			Name:        it.Name,
			Price:       it.Price,
			Description: it.Description,
		})
	}

	return OrderOutput{
		ID:        o.ID,
		Username:  user.Username,
		Items:     outItems,
		Total:     o.Total,
		CreatedAt: o.CreatedAt,
	}
}
