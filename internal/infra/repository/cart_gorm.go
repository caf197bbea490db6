package repository

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
)

type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

// ユーザーのカートを明細込みで取得
func (r *CartGormRepository) FindByUserID(ctx context.Context, userID int64) (model.Cart, error) {
	var cart model.Cart

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&cart).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Cart{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Cart{}, err
	}

	items, err := r.loadItems(ctx, cart.ID)
	if err != nil {
		return model.Cart{}, err
	}
	cart.Items = items

	return cart, nil
}

// cart_entriesを追加順に引いて、商品内容を組み立てる。
// 同じ商品が複数行あればそのまま複数個として返す。
func (r *CartGormRepository) loadItems(ctx context.Context, cartID int64) ([]model.Item, error) {
	var entries []model.CartEntry

	if err := r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Order("id asc").
		Find(&entries).Error; err != nil {
		return []model.Item{}, err
	}

	if len(entries) == 0 {
		return []model.Item{}, nil
	}

	itemIDs := make([]int64, 0, len(entries))
	for _, e := range entries {
		itemIDs = append(itemIDs, e.ItemID)
	}

	var found []model.Item
	if err := r.db.WithContext(ctx).
		Where("id IN ?", itemIDs).
		Find(&found).Error; err != nil {
		return []model.Item{}, err
	}

	byID := make(map[int64]model.Item, len(found))
	for _, it := range found {
		byID[it.ID] = it
	}

	items := make([]model.Item, 0, len(entries))
	for _, e := range entries {
		it, ok := byID[e.ItemID]
		if !ok {
			// エントリが商品を指していないのはデータ不整合
			return []model.Item{}, gorm.ErrRecordNotFound
		}
		items = append(items, it)
	}

	return items, nil
}

// カート本体と明細行をまとめて保存。明細は全削除してから入れ直す
func (r *CartGormRepository) Save(ctx context.Context, cart *model.Cart) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if cart.ID == 0 {
			if err := tx.Create(cart).Error; err != nil {
				return err
			}
		} else {
			res := tx.Model(&model.Cart{}).
				Where("id = ?", cart.ID).
				Update("total", cart.Total)

			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return repo.ErrNotFound
			}
		}

		if err := tx.Where("cart_id = ?", cart.ID).Delete(&model.CartEntry{}).Error; err != nil {
			return err
		}

		if len(cart.Items) == 0 {
			return nil
		}

		entries := make([]model.CartEntry, 0, len(cart.Items))
		for _, it := range cart.Items {
			entries = append(entries, model.CartEntry{
				CartID: cart.ID,
				ItemID: it.ID,
			})
		}

		return tx.Create(&entries).Error
	})
}
