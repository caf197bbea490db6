package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 確定した注文。カートから作った後は一切変更しない。
type Order struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64           `gorm:"not null;index" json:"user_id"`
	Total     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total"`
	CreatedAt time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

// 確定時点のカートの中身から注文を組み立てる。
// 明細は商品1個につき1行のスナップショット。
func NewOrder(userID int64, items []Item, total decimal.Decimal) Order {
	orderItems := make([]OrderItem, 0, len(items))
	for _, it := range items {
		orderItems = append(orderItems, OrderItem{
			ItemID:      it.ID,
			Name:        it.Name,
			Price:       it.Price,
			Description: it.Description,
		})
	}

	return Order{
		UserID: userID,
		Total:  total,
		Items:  orderItems,
	}
}
