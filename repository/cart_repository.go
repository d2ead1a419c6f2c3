package repository

import (
	"context"

	"github.com/Engel1110/gaming-room-cust/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartLineRepository is the cart ledger contract. Lines are created and
// deleted, never updated; the ownership check on deletion lives in the cart
// service, not here.
type CartLineRepository interface {
	Create(ctx context.Context, line *models.CartLine) error
	FindByID(ctx context.Context, id uint) (*models.CartLine, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.CartLine, error)
	Delete(ctx context.Context, id uint) error
}

type gormCartLineRepository struct {
	db *gorm.DB
}

// NewGormCartLineRepository creates a CartLineRepository backed by gorm.
func NewGormCartLineRepository(db *gorm.DB) CartLineRepository {
	return &gormCartLineRepository{db: db}
}

func (r *gormCartLineRepository) Create(ctx context.Context, line *models.CartLine) error {
	return r.db.WithContext(ctx).Create(line).Error
}

func (r *gormCartLineRepository) FindByID(ctx context.Context, id uint) (*models.CartLine, error) {
	var line models.CartLine
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&line).Error; err != nil {
		return nil, err
	}
	return &line, nil
}

// FindByUserID returns the user's lines in insertion order.
func (r *gormCartLineRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.CartLine, error) {
	var lines []models.CartLine
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id asc").Find(&lines).Error
	return lines, err
}

func (r *gormCartLineRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.CartLine{}, id).Error
}
