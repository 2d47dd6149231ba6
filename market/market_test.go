package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agroweather/manager"
)

func TestCatalogueThai(t *testing.T) {
	products := Catalogue(manager.Thai)
	require.Len(t, products, 5)

	assert.Equal(t, Product{
		Name:     "ปุ๋ยยูเรีย 46-0-0 (ตรากระต่าย)",
		Category: Fertilizer,
		Price:    890,
		Unit:     "กระสอบ",
		ImageURL: "https://global.cpcdn.com/recipes/24d9c490906a5679/680x482cq70.jpg",
	}, products[0])
	assert.Equal(t, "ทุเรียนหมอนทอง (ราคารับซื้อ)", products[4].Name)
	assert.Equal(t, Other, products[4].Category)
}

func TestCatalogueEnglish(t *testing.T) {
	products := Catalogue(manager.English)
	require.Len(t, products, 5)

	assert.Equal(t, "Hom Mali 105 jasmine rice seed", products[2].Name)
	assert.Equal(t, "kg", products[2].Unit)
	assert.Equal(t, float64(28), products[2].Price)
}

func TestCatalogueReturnsCopy(t *testing.T) {
	first := Catalogue(manager.Thai)
	first[0].Price = 1

	assert.Equal(t, float64(890), Catalogue(manager.Thai)[0].Price)
}

func TestCatalogueUnknownLanguage(t *testing.T) {
	assert.Equal(t, Catalogue(manager.Thai), Catalogue(manager.Language("ja")))
}
