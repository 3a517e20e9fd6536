package entity

// CatalogCategoryAll es el filtro comodín del catálogo público.
const CatalogCategoryAll = "All"

// CatalogCategories filtros visibles en la vitrina pública (incluye "All").
var CatalogCategories = []string{
	CatalogCategoryAll,
	"Whiskey", "Vodka", "Gin", "Rum", "Tequila", "Cognac", "Champagne",
}

// AdminCategories categorías asignables a un producto desde administración.
// Incluye Beer y Wine aunque la vitrina aún no los filtre.
var AdminCategories = []string{
	"Whiskey", "Vodka", "Gin", "Rum", "Tequila", "Cognac", "Champagne", "Beer", "Wine",
}

// IsValidCategory verifica que la categoría pertenezca al conjunto administrable.
func IsValidCategory(category string) bool {
	for _, c := range AdminCategories {
		if c == category {
			return true
		}
	}
	return false
}
