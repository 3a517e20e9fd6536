package memory

import (
	"github.com/greenroad/licorera-api/internal/domain/entity"
	"github.com/greenroad/licorera-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// SeedProducts carga el inventario inicial de la tienda (los 8 productos de
// demostración). Los IDs quedan 1..8 porque el repositorio asigna max+1.
func SeedProducts(repo repository.ProductRepository) error {
	seed := []entity.Product{
		{
			Name:        "Hennessy VS Cognac",
			Category:    "Cognac",
			Price:       decimal.RequireFromString("49.99"),
			Cost:        decimal.RequireFromString("35.00"),
			Stock:       12,
			Description: "Premium French cognac with rich, smooth flavor",
			Image:       "/elegant-cognac.png",
			ABV:         "40%",
		},
		{
			Name:        "Grey Goose Vodka",
			Category:    "Vodka",
			Price:       decimal.RequireFromString("39.99"),
			Cost:        decimal.RequireFromString("28.00"),
			Stock:       8,
			Description: "Ultra-premium French vodka, smooth and crisp",
			Image:       "/grey-goose-vodka.png",
			ABV:         "40%",
		},
		{
			Name:        "Macallan 12 Year Scotch",
			Category:    "Whiskey",
			Price:       decimal.RequireFromString("89.99"),
			Cost:        decimal.RequireFromString("65.00"),
			Stock:       5,
			Description: "Single malt Scotch whisky aged 12 years",
			Image:       "/macallan-whiskey.png",
			ABV:         "43%",
		},
		{
			Name:        "Patron Silver Tequila",
			Category:    "Tequila",
			Price:       decimal.RequireFromString("54.99"),
			Cost:        decimal.RequireFromString("40.00"),
			Stock:       15,
			Description: "100% agave tequila, crystal clear and smooth",
			Image:       "/patron-silver-tequila.png",
			ABV:         "40%",
		},
		{
			Name:        "Dom Pérignon Champagne",
			Category:    "Champagne",
			Price:       decimal.RequireFromString("199.99"),
			Cost:        decimal.RequireFromString("150.00"),
			Stock:       3,
			Description: "Luxury French champagne, vintage quality",
			Image:       "/champagne-bottle.png",
			ABV:         "12.5%",
		},
		{
			Name:        "Jack Daniels Old No. 7",
			Category:    "Whiskey",
			Price:       decimal.RequireFromString("29.99"),
			Cost:        decimal.RequireFromString("22.00"),
			Stock:       20,
			Description: "Tennessee whiskey, charcoal mellowed",
			Image:       "/whiskey-bottle.png",
			ABV:         "40%",
		},
		{
			Name:        "Bombay Sapphire Gin",
			Category:    "Gin",
			Price:       decimal.RequireFromString("24.99"),
			Cost:        decimal.RequireFromString("18.00"),
			Stock:       10,
			Description: "Premium London dry gin with botanical blend",
			Image:       "/bombay-sapphire-gin.png",
			ABV:         "47%",
		},
		{
			Name:        "Bacardi Superior Rum",
			Category:    "Rum",
			Price:       decimal.RequireFromString("19.99"),
			Cost:        decimal.RequireFromString("14.00"),
			Stock:       18,
			Description: "White rum, smooth and mixable",
			Image:       "/bacardi-white-rum.png",
			ABV:         "40%",
		},
	}

	for i := range seed {
		if err := repo.Create(&seed[i]); err != nil {
			return err
		}
	}
	return nil
}
