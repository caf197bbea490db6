package db

import (
	"app/internal/domain/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SeedItems はカタログが空のときだけ初期商品を入れる。
// 商品の作成APIは無いので、起動時にここで用意する。
func SeedItems(gormDB *gorm.DB) error {
	var count int64
	if err := gormDB.Model(&model.Item{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items := []model.Item{
		{Name: "Round Widget", Price: decimal.RequireFromString("2.99"), Description: "A widget that is round"},
		{Name: "Square Widget", Price: decimal.RequireFromString("1.99"), Description: "A widget that is square"},
	}

	return gormDB.Create(&items).Error
}
