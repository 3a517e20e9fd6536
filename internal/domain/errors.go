package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidCredentials = errors.New("usuario o contraseña inválidos")
	ErrSessionNotFound    = errors.New("sesión no encontrada o expirada")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInvalidImageType   = errors.New("tipo de imagen no permitido (JPEG, PNG o WebP)")
	ErrImageTooLarge      = errors.New("la imagen supera el tamaño máximo permitido")
	ErrImageUnreadable    = errors.New("no se pudo leer el archivo de imagen")
)
