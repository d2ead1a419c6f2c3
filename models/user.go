package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User model. Accounts are created at registration and never updated or
// deleted afterwards.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username  string    `gorm:"unique;not null;size:150" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Migrate runs the schema migrations. Safe to call on every startup.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&User{}, &CartLine{})
}
