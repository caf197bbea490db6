package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 1ユーザーにつきカートは1つ（ユーザー作成時に空で作る）。
// 商品は数量カラムではなく「1個につき1エントリ」の列で持つ。
type Cart struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64           `gorm:"not null;uniqueIndex" json:"user_id"`
	Total     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total"`
	CreatedAt time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`

	// cart_entriesから組み立てる（repository側でロード）
	Items []Item `gorm:"-" json:"items"`
}

// AddItem は商品を1個追加する。重複排除はしない。
func (c *Cart) AddItem(item Item) {
	c.Items = append(c.Items, item)
	c.recalcTotal()
}

// RemoveItem は値が一致するエントリを最大quantity個削除して、削除数を返す。
// 足りない分は削除できた数までで止める（エラーにしない）。
func (c *Cart) RemoveItem(item Item, quantity int64) int64 {
	if quantity <= 0 {
		return 0
	}

	var removed int64 = 0

	// 後ろ（最近追加した分）から消す
	for i := len(c.Items) - 1; i >= 0 && removed < quantity; i-- {
		if c.Items[i].Equals(item) {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			removed++
		}
	}

	c.recalcTotal()
	return removed
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Drain は中身と合計のスナップショットを返してから、カートを空に戻す。
// 注文確定時に使う。カート自体は削除しない。
func (c *Cart) Drain() ([]Item, decimal.Decimal) {
	items := make([]Item, len(c.Items))
	copy(items, c.Items)
	total := c.Total

	c.Items = []Item{}
	c.recalcTotal()

	return items, total
}

// 合計は毎回エントリから計算し直す。キャッシュ値がズレないようにするため。
func (c *Cart) recalcTotal() {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.Price)
	}
	c.Total = total
}
