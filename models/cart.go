package models

import (
	"time"

	"github.com/google/uuid"
)

// CartLine is one item added to a user's cart. The item name and price are
// copied in at creation time rather than foreign-keyed to the catalog, so a
// line survives catalog changes unchanged. Lines are created and deleted,
// never updated.
type CartLine struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ItemName  string    `gorm:"not null;size:150" json:"item_name"`
	ItemPrice float64   `gorm:"not null" json:"item_price"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
