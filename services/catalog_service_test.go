package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogList(t *testing.T) {
	catalog := NewCatalogService()
	items := catalog.List()

	assert.Len(t, items, 8)
	assert.Equal(t, "Gaming Chair", items[0].Name)
	assert.Equal(t, "Gaming Computer", items[7].Name)

	chair := items[0]
	assert.Len(t, chair.Variants, 4)
	assert.Equal(t, "Brand A Chair", chair.Variants[0].Name)
	assert.Equal(t, 100.0, chair.Variants[0].Price)
	assert.Equal(t, 200.0, chair.Variants[3].Price)

	for _, item := range items {
		assert.Len(t, item.Variants, 4)
	}

	// Two calls see the same ordering.
	again := catalog.List()
	assert.Equal(t, items, again)
}
