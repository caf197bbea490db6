package repository

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewItemGormRepository(db *gorm.DB) *ItemGormRepository {
	return &ItemGormRepository{db: db}
}

// 全商品を一覧取得
func (r *ItemGormRepository) ListAll(ctx context.Context) ([]model.Item, error) {
	var items []model.Item

	if err := r.db.WithContext(ctx).
		Order("id asc").
		Find(&items).Error; err != nil {
		return []model.Item{}, err
	}

	return items, nil
}

// IDで商品を1件取得
func (r *ItemGormRepository) FindByID(ctx context.Context, itemID int64) (model.Item, error) {
	var item model.Item

	err := r.db.WithContext(ctx).
		Where("id = ?", itemID).
		First(&item).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Item{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Item{}, err
	}
	return item, nil
}

// 名前の完全一致で商品を検索。0件でもエラーにしない
func (r *ItemGormRepository) FindByName(ctx context.Context, name string) ([]model.Item, error) {
	var items []model.Item

	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		Order("id asc").
		Find(&items).Error; err != nil {
		return []model.Item{}, err
	}

	return items, nil
}
