package controllers

import (
	"net/http"

	"github.com/Engel1110/gaming-room-cust/services"

	"github.com/gin-gonic/gin"
)

// CatalogController serves the storefront listing.
type CatalogController struct {
	catalog *services.CatalogService
}

// NewCatalogController creates a new CatalogController.
func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{catalog: catalog}
}

// Index handles GET /.
func (kc *CatalogController) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": kc.catalog.List()})
}
