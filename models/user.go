package models

import (
	"time"

	"gorm.io/gorm"
)

// Roles assignable to a user. Staff accounts can view any order.
const (
	RoleUser  = "user"
	RoleStaff = "staff"
)

// User model
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:150;not null" json:"username"`
	Email     string    `gorm:"size:254" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"type:varchar(50);default:'user'" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Migrate runs auto migration for all models
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&User{}, &Product{}, &ProductImage{}, &Order{}, &Article{})
}
