package model

import "time"

// User is an account managed by the users service.
type User struct {
	ID             int64     `gorm:"primaryKey"`
	Username       string    `gorm:"uniqueIndex;size:50;not null"`
	Email          string    `gorm:"uniqueIndex;size:100;not null"`
	FullName       string    `gorm:"size:100"`
	HashedPassword string    `gorm:"not null"`
	IsActive       bool      `gorm:"not null"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}
