package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/greenroad/licorera-api/internal/application/catalog"
	"github.com/greenroad/licorera-api/internal/application/dto"
)

// CatalogHandler maneja la vitrina pública (sin autenticación).
type CatalogHandler struct {
	uc *catalog.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Search godoc
// @Summary      Buscar en la vitrina
// @Tags         catalog
// @Produce      json
// @Param        q         query  string  false  "Texto a buscar en nombre o descripción"
// @Param        category  query  string  false  "Categoría o All"  default(All)
// @Success      200  {object}  dto.CatalogResponse
// @Router       /api/catalog [get]
func (h *CatalogHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.Query("q"), c.Query("category"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Categories godoc
// @Summary      Filtros de categoría de la vitrina
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.CategoriesResponse
// @Router       /api/catalog/categories [get]
func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(h.uc.Categories())
}
