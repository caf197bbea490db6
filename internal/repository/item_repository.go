package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 商品カタログの取得だけを約束（実行時は読み取り専用）。
type ItemRepository interface {
	ListAll(ctx context.Context) ([]model.Item, error)
	FindByID(ctx context.Context, itemID int64) (model.Item, error)
	// 名前の完全一致で検索。0件なら空スライス
	FindByName(ctx context.Context, name string) ([]model.Item, error)
}
