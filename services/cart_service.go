package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Engel1110/gaming-room-cust/models"
	"github.com/Engel1110/gaming-room-cust/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CartService owns the per-user cart: adding lines, aggregating the running
// total, and the ownership-checked removal. The store does not enforce
// ownership on deletes; this service does.
type CartService struct {
	cartRepo repository.CartLineRepository
	logger   *zap.Logger
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repository.CartLineRepository, logger *zap.Logger) *CartService {
	return &CartService{cartRepo: cartRepo, logger: logger}
}

// AddToCart persists a new line owned by the user. The name/price pair is
// accepted verbatim; the cart is deliberately catalog-agnostic. Repeated
// calls create duplicate lines.
func (s *CartService) AddToCart(ctx context.Context, userID uuid.UUID, itemName string, itemPrice float64) (*models.CartLine, error) {
	line := &models.CartLine{
		ItemName:  itemName,
		ItemPrice: itemPrice,
		UserID:    userID,
	}
	if err := s.cartRepo.Create(ctx, line); err != nil {
		return nil, fmt.Errorf("create cart line: %w", err)
	}

	s.logger.Info("cart line added",
		zap.String("user_id", userID.String()),
		zap.String("item_name", itemName),
		zap.Float64("item_price", itemPrice),
	)
	return line, nil
}

// ViewCart returns all and only the user's lines in insertion order, plus
// the sum of their prices. An empty cart totals 0.
func (s *CartService) ViewCart(ctx context.Context, userID uuid.UUID) ([]models.CartLine, float64, error) {
	lines, err := s.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("load cart: %w", err)
	}

	var total float64
	for _, line := range lines {
		total += line.ItemPrice
	}
	return lines, total, nil
}

// RemoveFromCart deletes the line when it exists and belongs to the user.
// An absent line and a line owned by someone else are both no-ops; the
// returned bool reports whether anything was deleted.
func (s *CartService) RemoveFromCart(ctx context.Context, userID uuid.UUID, lineID uint) (bool, error) {
	line, err := s.cartRepo.FindByID(ctx, lineID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("load cart line: %w", err)
	}

	if line.UserID != userID {
		s.logger.Warn("cart line removal denied",
			zap.Uint("line_id", lineID),
			zap.String("requester_id", userID.String()),
		)
		return false, nil
	}

	if err := s.cartRepo.Delete(ctx, lineID); err != nil {
		return false, fmt.Errorf("delete cart line: %w", err)
	}
	return true, nil
}
