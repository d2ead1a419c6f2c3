package routes

import (
	"github.com/Engel1110/gaming-room-cust/controllers"
	"github.com/Engel1110/gaming-room-cust/middleware"
	"github.com/Engel1110/gaming-room-cust/services"

	"github.com/gin-gonic/gin"
)

// Register sets up all storefront routes. Everything past login sits behind
// the session guard; unauthenticated requests get redirected to /login.
func Register(
	r *gin.Engine,
	auth *controllers.AuthController,
	cart *controllers.CartController,
	catalog *controllers.CatalogController,
	sessions *services.SessionService,
) {
	r.GET("/register", auth.ShowRegister)
	r.POST("/register", auth.Register)
	r.GET("/login", auth.ShowLogin)
	r.POST("/login", auth.Login)

	protected := r.Group("/")
	protected.Use(middleware.RequireSession(sessions))

	protected.GET("", catalog.Index)
	protected.GET("/cart", cart.ViewCart)
	protected.POST("/add_to_cart/:item_name/:item_price", cart.AddItem)
	protected.POST("/remove_from_cart/:line_id", cart.RemoveItem)
	protected.GET("/logout", auth.Logout)
}
