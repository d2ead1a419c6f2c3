package controllers

import (
	"net/http"
	"strconv"

	"github.com/Engel1110/gaming-room-cust/middleware"
	"github.com/Engel1110/gaming-room-cust/services"

	"github.com/gin-gonic/gin"
)

// CartController handles the cart routes.
type CartController struct {
	cart *services.CartService
}

// NewCartController creates a new CartController.
func NewCartController(cart *services.CartService) *CartController {
	return &CartController{cart: cart}
}

// AddItem handles POST /add_to_cart/:item_name/:item_price. The price is a
// floating-point path segment; there is no body.
func (cc *CartController) AddItem(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	itemName := c.Param("item_name")
	itemPrice, err := strconv.ParseFloat(c.Param("item_price"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item price must be a number"})
		return
	}

	if _, err := cc.cart.AddToCart(c.Request.Context(), userID, itemName, itemPrice); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add item to cart"})
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// ViewCart handles GET /cart.
func (cc *CartController) ViewCart(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	lines, total, err := cc.cart.ViewCart(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": lines, "total": total})
}

// RemoveItem handles POST /remove_from_cart/:line_id. The caller is
// redirected to the cart whether or not anything was deleted; a missing or
// non-owned line is a silent no-op.
func (cc *CartController) RemoveItem(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	lineID, err := strconv.ParseUint(c.Param("line_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "line id must be an integer"})
		return
	}

	if _, err := cc.cart.RemoveFromCart(c.Request.Context(), userID, uint(lineID)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove item from cart"})
		return
	}

	c.Redirect(http.StatusFound, "/cart")
}
