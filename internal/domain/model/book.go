package model

import "time"

type Book struct {
	ID              string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	BookTitle       string    `gorm:"type:varchar(255);not null" json:"bookTitle"`
	AuthorName      string    `gorm:"type:varchar(255)" json:"authorName"`
	Category        string    `gorm:"type:varchar(100);index" json:"category"`
	BookDescription string    `gorm:"type:text" json:"bookDescription"`
	Price           float64   `gorm:"not null" json:"price"`
	ImageURL        string    `gorm:"type:text" json:"imageUrl"`
	BookPDFURL      string    `gorm:"type:text" json:"bookPdfUrl"`
	CreatedAt       time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
