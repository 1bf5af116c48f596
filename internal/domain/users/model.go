package users

import "time"

type User struct {
	ID           uint `gorm:"primaryKey"`
	Name         string
	Email        string  `gorm:"not null;uniqueIndex:idx_users_email"`
	Password     *string // nil for Google-only accounts
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
