package memory

import (
	"sync"
	"time"

	"github.com/greenroad/licorera-api/internal/domain"
	"github.com/greenroad/licorera-api/internal/domain/entity"
)

// SessionStore sesiones activas en memoria con expiración perezosa:
// una sesión vencida se descarta (y se borra) en el siguiente Get.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*entity.Session
	now      func() time.Time // inyectable en tests
}

// NewSessionStore construye el store vacío.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*entity.Session),
		now:      time.Now,
	}
}

// Create almacena la sesión. ID y Username son obligatorios; Role puede venir
// vacío solo en sesiones heredadas (RequireRole las rechaza).
func (s *SessionStore) Create(sess *entity.Session) error {
	if sess == nil || sess.ID == "" || sess.Username == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *sess
	s.sessions[sess.ID] = &cp
	return nil
}

// Get devuelve una copia de la sesión, o nil, nil si no existe o venció.
func (s *SessionStore) Get(id string) (*entity.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	if sess.Expired(s.now()) {
		delete(s.sessions, id)
		return nil, nil
	}
	cp := *sess
	return &cp, nil
}

// Delete elimina la sesión; borrar un ID inexistente no es error.
func (s *SessionStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
