package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// bcryptハッシュ化
type BcryptPasswordHasher struct {
	cost int
}

func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// UserUsecase は会員登録とユーザー取得の業務ロジック。
type UserUsecase struct {
	tx     repo.TransactionManager
	hasher PasswordHasher
}

// DI
func NewUserUsecase(tx repo.TransactionManager, hasher PasswordHasher) *UserUsecase {
	return &UserUsecase{tx: tx, hasher: hasher}
}

type CreateUserInput struct {
	Username        string
	Password        string
	ConfirmPassword string
}

type UserOutput struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// CreateUser はユーザーと空のカートを同一トランザクションで作る。
func (u *UserUsecase) CreateUser(ctx context.Context, in CreateUserInput) (UserOutput, error) {
	if in.Username == "" {
		return UserOutput{}, NewHTTPError(http.StatusBadRequest, "invalid username")
	}
	if in.Password != in.ConfirmPassword {
		return UserOutput{}, NewHTTPError(http.StatusBadRequest, "passwords do not match")
	}
	// 最低7文字
	if len(in.Password) < 7 {
		return UserOutput{}, NewHTTPError(http.StatusBadRequest, "password must be at least 7 characters")
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return UserOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	var out UserOutput

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// username重複チェック
		_, err := r.Users().FindByUsername(ctx, in.Username)
		if err == nil {
			return NewHTTPError(http.StatusBadRequest, "user already exists")
		}
		if err != repo.ErrNotFound {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		user := model.User{
			Username:     in.Username,
			PasswordHash: hash,
		}
		if err := r.Users().Create(ctx, &user); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		// ユーザー作成と同時に空カートを作る（1:1）
		cart := model.Cart{
			UserID: user.ID,
			Items:  []model.Item{},
		}
		if err := r.Carts().Save(ctx, &cart); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = UserOutput{ID: user.ID, Username: user.Username}
		return nil
	})

	if err != nil {
		return UserOutput{}, err
	}
	return out, nil
}

func (u *UserUsecase) GetUserByUsername(ctx context.Context, username string) (UserOutput, error) {
	if username == "" {
		return UserOutput{}, NewHTTPError(http.StatusBadRequest, "invalid username")
	}

	var out UserOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		user, err := r.Users().FindByUsername(ctx, username)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "user not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = UserOutput{ID: user.ID, Username: user.Username}
		return nil
	})

	if err != nil {
		return UserOutput{}, err
	}
	return out, nil
}

func (u *UserUsecase) GetUserByID(ctx context.Context, userID int64) (UserOutput, error) {
	if userID <= 0 {
		return UserOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out UserOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		user, err := r.Users().FindByID(ctx, userID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "user not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = UserOutput{ID: user.ID, Username: user.Username}
		return nil
	})

	if err != nil {
		return UserOutput{}, err
	}
	return out, nil
}
