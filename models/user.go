package models

import (
	"gorm.io/gorm"
)

const (
	RoleUser         = "user"
	RoleNutritionist = "nutritionist"
	RoleAdmin        = "admin"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Name     string `gorm:"not null" json:"name"`
	Surname  string `json:"surname"`
	Password string `gorm:"not null" json:"-"`
	Photo    string `json:"photo"`
	Bio      string `json:"bio"`
	Role     string `gorm:"not null;default:user" json:"role"`
	Active   bool   `gorm:"not null;default:true" json:"active"`
}
