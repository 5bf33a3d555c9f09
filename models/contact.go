package models

import "gorm.io/gorm"

// Contact is a plain inbox record submitted through the public form.
type Contact struct {
	gorm.Model
	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Subject string `gorm:"not null" json:"subject"`
	Message string `gorm:"not null" json:"message"`
	Read    bool   `gorm:"not null;default:false" json:"read"`
}
