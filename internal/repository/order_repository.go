package repository

import (
	"app/internal/domain/model"
	"context"
)

type OrderRepository interface {
	// 注文を明細ごと保存。保存後はIDが埋まる
	Create(ctx context.Context, order *model.Order) error
	// ユーザーの注文履歴を明細込みで取得
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)
}
