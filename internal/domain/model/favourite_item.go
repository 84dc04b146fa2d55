package model

import "time"

// お気に入りの1行。カートと同じ形だがライフサイクルは独立。
type FavouriteItem struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserEmail string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_fav_user_book" json:"userEmail"`
	BookID    string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_fav_user_book" json:"bookId"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
