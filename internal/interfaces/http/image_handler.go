package http

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/greenroad/licorera-api/internal/application/dto"
	"github.com/greenroad/licorera-api/internal/application/image"
	"github.com/greenroad/licorera-api/internal/domain"
)

// ImageHandler maneja la carga de imágenes de producto (protegido).
type ImageHandler struct {
	uc *image.ImageUseCase
}

// NewImageHandler construye el handler.
func NewImageHandler(uc *image.ImageUseCase) *ImageHandler {
	return &ImageHandler{uc: uc}
}

// Upload godoc
// @Summary      Validar y codificar una imagen de producto
// @Tags         images
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "Archivo JPEG, PNG o WebP (máx. 5 MiB)"
// @Success      200  {object}  dto.EncodedImage
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/images [post]
func (h *ImageHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo multipart 'image' requerido"})
	}

	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "IMAGE_READ_FAILED", Message: "no se pudo leer el archivo de imagen"})
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "IMAGE_READ_FAILED", Message: "no se pudo leer el archivo de imagen"})
	}

	out, err := h.uc.Encode(data)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidImageType):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_IMAGE_TYPE", Message: "suba una imagen válida (JPEG, PNG o WebP)"})
		case errors.Is(err, domain.ErrImageTooLarge):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "IMAGE_TOO_LARGE", Message: "la imagen debe pesar menos de 5 MB"})
		case errors.Is(err, domain.ErrImageUnreadable):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "IMAGE_READ_FAILED", Message: "no se pudo leer el archivo de imagen"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}
