package user

import "time"

type User struct {
	ID           uint64    `gorm:"primaryKey;column:id" json:"-"`
	Username     string    `gorm:"size:150;uniqueIndex:ux_users_username" json:"username"`
	Email        string    `gorm:"size:254" json:"email"`
	PasswordHash []byte    `gorm:"column:password_hash" json:"-"`
	IsStaff      bool      `gorm:"default:false" json:"is_staff"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string { return "users" }
