package model

import "time"

// カートの1行。
// 同じ本を二重に入れないように (user_email, book_id) にユニーク制約を張る。
type CartItem struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserEmail string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_cart_user_book" json:"userEmail"`
	BookID    string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_cart_user_book" json:"bookId"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
