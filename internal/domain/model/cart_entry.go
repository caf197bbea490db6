package model

// カートの明細行。商品1個につき1行。
type CartEntry struct {
	ID     int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID int64 `gorm:"not null;index" json:"cart_id"`
	ItemID int64 `gorm:"not null;index" json:"item_id"`
}
