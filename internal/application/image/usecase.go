// Package image valida y codifica imágenes de producto subidas desde el
// panel. El resultado es un data URL autocontenido que el cliente asigna al
// campo image del producto; el servidor no almacena el archivo.
package image

import (
	"encoding/base64"
	"fmt"

	"github.com/gabriel-vasile/mimetype"
	"github.com/greenroad/licorera-api/internal/application/dto"
	"github.com/greenroad/licorera-api/internal/domain"
)

// allowedTypes formatos de imagen aceptados para fotos de producto.
var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// ImageUseCase validación + codificación. Sin estado mutable: Encode es una
// función pura sobre los bytes recibidos.
type ImageUseCase struct {
	maxBytes int64
}

// NewImageUseCase construye el caso de uso. maxBytes ≤ 0 aplica 5 MiB.
func NewImageUseCase(maxBytes int64) *ImageUseCase {
	if maxBytes <= 0 {
		maxBytes = 5 * 1024 * 1024
	}
	return &ImageUseCase{maxBytes: maxBytes}
}

// MaxBytes devuelve el límite de tamaño vigente.
func (uc *ImageUseCase) MaxBytes() int64 {
	return uc.maxBytes
}

// Encode valida en orden (primero tipo, luego tamaño; gana el primer fallo)
// y codifica los bytes como data URL base64. El tipo se detecta por contenido,
// nunca por extensión ni por el Content-Type declarado por el cliente.
func (uc *ImageUseCase) Encode(data []byte) (*dto.EncodedImage, error) {
	if len(data) == 0 {
		return nil, domain.ErrImageUnreadable
	}

	mt := mimetype.Detect(data)
	if !allowedTypes[mt.String()] {
		return nil, domain.ErrInvalidImageType
	}
	if int64(len(data)) > uc.maxBytes {
		return nil, domain.ErrImageTooLarge
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	return &dto.EncodedImage{
		DataURL:     fmt.Sprintf("data:%s;base64,%s", mt.String(), encoded),
		ContentType: mt.String(),
		Size:        len(data),
	}, nil
}
