package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

// CartUsecase は /api/cart の業務ロジック。
// ユーザー解決→商品解決→カート更新→保存を1トランザクションで行う。
type CartUsecase struct {
	tx repo.TransactionManager
}

// DI
func NewCartUsecase(tx repo.TransactionManager) *CartUsecase {
	return &CartUsecase{tx: tx}
}

type ModifyCartInput struct {
	Username string
	ItemID   int64
	Quantity int64
}

type CartOutput struct {
	ID       int64           `json:"id"`
	Username string          `json:"username"`
	Items    []model.Item    `json:"items"`
	Total    decimal.Decimal `json:"total"`
}

// AddToCart は商品をquantity個追加する。
// 1個ずつAddItemを繰り返す（エントリ列の意味に合わせる）。
func (u *CartUsecase) AddToCart(ctx context.Context, in ModifyCartInput) (CartOutput, error) {
	if err := validateModifyCartInput(in); err != nil {
		return CartOutput{}, err
	}

	var out CartOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		user, cart, item, err := resolveCartAndItem(ctx, r, in)
		if err != nil {
			return err
		}

		for i := int64(0); i < in.Quantity; i++ {
			cart.AddItem(item)
		}

		if err := r.Carts().Save(ctx, &cart); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toCartOutput(user, cart)
		return nil
	})

	if err != nil {
		return CartOutput{}, err
	}
	return out, nil
}

// RemoveFromCart は一致する商品を最大quantity個削除する。
// 追加と違って一括削除。足りなくてもエラーにしない。
func (u *CartUsecase) RemoveFromCart(ctx context.Context, in ModifyCartInput) (CartOutput, error) {
	if err := validateModifyCartInput(in); err != nil {
		return CartOutput{}, err
	}

	var out CartOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		user, cart, item, err := resolveCartAndItem(ctx, r, in)
		if err != nil {
			return err
		}

		cart.RemoveItem(item, in.Quantity)

		if err := r.Carts().Save(ctx, &cart); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toCartOutput(user, cart)
		return nil
	})

	if err != nil {
		return CartOutput{}, err
	}
	return out, nil
}

func validateModifyCartInput(in ModifyCartInput) error {
	if in.Username == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid username")
	}
	if in.ItemID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid item_id")
	}
	if in.Quantity < 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}
	return nil
}

// ユーザー・カート・商品をまとめて解決する。
// ユーザーと商品が無いのは404。カートはユーザー作成時に必ずあるはずなので、無いのは500。
func resolveCartAndItem(ctx context.Context, r repo.TxRepos, in ModifyCartInput) (model.User, model.Cart, model.Item, error) {
	user, err := r.Users().FindByUsername(ctx, in.Username)
	if err == repo.ErrNotFound {
		return model.User{}, model.Cart{}, model.Item{}, NewHTTPError(http.StatusNotFound, "user not found")
	}
	if err != nil {
		return model.User{}, model.Cart{}, model.Item{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	item, err := r.Items().FindByID(ctx, in.ItemID)
	if err == repo.ErrNotFound {
		return model.User{}, model.Cart{}, model.Item{}, NewHTTPError(http.StatusNotFound, "item not found")
	}
	if err != nil {
		return model.User{}, model.Cart{}, model.Item{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	cart, err := r.Carts().FindByUserID(ctx, user.ID)
	if err != nil {
		return model.User{}, model.Cart{}, model.Item{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return user, cart, item, nil
}

func toCartOutput(user model.User, cart model.Cart) CartOutput {
	return CartOutput{
		ID:       cart.ID,
		Username: user.Username,
		Items:    cart.Items,
		Total:    cart.Total,
	}
}
