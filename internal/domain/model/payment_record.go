package model

import (
	"time"

	"gorm.io/datatypes"
)

// 支払い台帳。作成後は変更しない（append-only）。
type PaymentRecord struct {
	ID            string                      `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserEmail     string                      `gorm:"type:varchar(255);not null;index" json:"userEmail"`
	BookIDs       datatypes.JSONSlice[string] `gorm:"column:book_ids" json:"bookIds"`
	TransactionID string                      `gorm:"type:varchar(255);not null;index" json:"transactionId"`
	Amount        float64                     `gorm:"not null" json:"amount"`
	CreatedAt     time.Time                   `gorm:"not null;autoCreateTime" json:"created_at"`
}
