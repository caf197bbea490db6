package repository

import (
	"app/internal/domain/model"
	"context"
)

// ユーザーの保存・取得を約束。
// 見つからない場合はnilではなくErrNotFoundを返す。
type UserRepository interface {
	//新規ユーザー作成。作成後はIDが埋まる
	Create(ctx context.Context, user *model.User) error
	// IDからユーザーを1件取得
	FindByID(ctx context.Context, userID int64) (model.User, error)
	// usernameからユーザーを1件取得
	FindByUsername(ctx context.Context, username string) (model.User, error)
}
