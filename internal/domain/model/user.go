package model

import "time"

type Role string

const (
	RoleGuest      Role = "guest"
	RoleCustomer   Role = "customer"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

// IsValid はroleが定義済みのものか確認する。
func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleCustomer, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Name         string    `gorm:"type:varchar(255)" json:"name"`
	Role         Role      `gorm:"type:varchar(20);not null;default:'customer'" json:"role"`
	PhotoURL     string    `gorm:"type:text" json:"photoUrl"`
	About        string    `gorm:"type:text" json:"about"`
	PasswordHash string    `gorm:"column:password_hash" json:"-"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
