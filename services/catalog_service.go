package services

import "github.com/Engel1110/gaming-room-cust/models"

// CatalogService exposes the static storefront catalog. The contents are
// fixed at process start; List has no side effects and no failure modes.
type CatalogService struct {
	items []models.CatalogItem
}

// NewCatalogService creates the catalog with the full gaming-room lineup.
func NewCatalogService() *CatalogService {
	return &CatalogService{
		items: []models.CatalogItem{
			{Name: "Gaming Chair", Variants: []models.Variant{
				{Name: "Brand A Chair", Price: 100},
				{Name: "Brand B Chair", Price: 120},
				{Name: "Brand C Chair", Price: 150},
				{Name: "Brand D Chair", Price: 200},
			}},
			{Name: "Gaming Desk", Variants: brandVariants("Desk")},
			{Name: "Gaming Monitor", Variants: brandVariants("Monitor")},
			{Name: "Gaming Headphones", Variants: brandVariants("Headphones")},
			{Name: "Gaming Keyboard", Variants: brandVariants("Keyboard")},
			{Name: "Gaming Mouse", Variants: brandVariants("Mouse")},
			{Name: "Gaming Microphone", Variants: brandVariants("Microphone")},
			{Name: "Gaming Computer", Variants: brandVariants("Computer")},
		},
	}
}

// List returns the catalog items in display order.
func (s *CatalogService) List() []models.CatalogItem {
	return s.items
}

// brandVariants builds the standard A/B/C/D brand ladder used by every item
// except the chair.
func brandVariants(kind string) []models.Variant {
	return []models.Variant{
		{Name: "Brand A " + kind, Price: 200},
		{Name: "Brand B " + kind, Price: 250},
		{Name: "Brand C " + kind, Price: 300},
		{Name: "Brand D " + kind, Price: 350},
	}
}
