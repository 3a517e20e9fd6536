package entity

import "time"

// Rol único del sistema: la credencial demo de la tienda es de administración.
const RoleAdmin = "admin"

// Session representa una sesión autenticada del panel.
// Invariante: una sesión almacenada siempre tiene Username y Role no vacíos;
// que exista en el store ES el estado "autenticado". Se crea en login y se
// destruye en logout o al vencer ExpiresAt.
type Session struct {
	ID        string // identificador opaco (uuid)
	Username  string
	Role      string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired indica si la sesión ya venció respecto a now.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
