package models

// Variant is one purchasable option of a catalog item.
type Variant struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// CatalogItem is a named group of priced variants. Catalog data is static
// and in-memory only; it is never persisted.
type CatalogItem struct {
	Name     string    `json:"name"`
	Variants []Variant `json:"variants"`
}
