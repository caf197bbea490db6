package repository

import (
	"app/internal/domain/model"
	"context"
)

type CartRepository interface {
	// ユーザーのカートを明細込みで取得
	FindByUserID(ctx context.Context, userID int64) (model.Cart, error)
	// カート本体と明細行をまとめて保存（明細は総入れ替え）
	Save(ctx context.Context, cart *model.Cart) error
}
