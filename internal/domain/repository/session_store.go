package repository

import (
	"github.com/greenroad/licorera-api/internal/domain/entity"
)

// SessionStore define el puerto de almacenamiento de sesiones activas.
// Get devuelve nil, nil si la sesión no existe o ya venció.
type SessionStore interface {
	Create(s *entity.Session) error
	Get(id string) (*entity.Session, error)
	Delete(id string) error
}
