package model

import "github.com/shopspring/decimal"

// カタログの商品。作成後は変更しない値オブジェクト。
type Item struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Description string          `gorm:"type:text" json:"description"`
}

// Equals は全フィールドの値で比較する。
// 同じ内容の商品はカート内で入れ替え可能として扱う。
func (i Item) Equals(other Item) bool {
	return i.ID == other.ID &&
		i.Name == other.Name &&
		i.Price.Equal(other.Price) &&
		i.Description == other.Description
}
