package model

import (
	"time"

	"gorm.io/datatypes"
)

// 購入の証明。同じtransaction_idでは1件しか作られない（ユニーク制約）。
type PurchaseRecord struct {
	ID            string                      `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserEmail     string                      `gorm:"type:varchar(255);not null;index" json:"userEmail"`
	BookIDs       datatypes.JSONSlice[string] `gorm:"column:book_ids" json:"bookIds"`
	TransactionID string                      `gorm:"type:varchar(255);not null;uniqueIndex" json:"transactionId"`
	CreatedAt     time.Time                   `gorm:"not null;autoCreateTime" json:"created_at"`
}
