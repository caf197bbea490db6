package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// ItemUsecase は商品カタログの参照ロジック。
type ItemUsecase struct {
	itemRepo repo.ItemRepository
}

// DI
func NewItemUsecase(itemRepo repo.ItemRepository) *ItemUsecase {
	return &ItemUsecase{itemRepo: itemRepo}
}

func (u *ItemUsecase) ListItems(ctx context.Context) ([]model.Item, error) {
	items, err := u.itemRepo.ListAll(ctx)
	if err != nil {
		return []model.Item{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *ItemUsecase) GetItemByID(ctx context.Context, itemID int64) (model.Item, error) {
	if itemID <= 0 {
		return model.Item{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	item, err := u.itemRepo.FindByID(ctx, itemID)
	if err == repo.ErrNotFound {
		return model.Item{}, NewHTTPError(http.StatusNotFound, "item not found")
	}
	if err != nil {
		return model.Item{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return item, nil
}

// 名前検索。0件は404にする
func (u *ItemUsecase) FindItemsByName(ctx context.Context, name string) ([]model.Item, error) {
	if name == "" {
		return []model.Item{}, NewHTTPError(http.StatusBadRequest, "invalid name")
	}

	items, err := u.itemRepo.FindByName(ctx, name)
	if err != nil {
		return []model.Item{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(items) == 0 {
		return []model.Item{}, NewHTTPError(http.StatusNotFound, "item not found")
	}
	return items, nil
}
