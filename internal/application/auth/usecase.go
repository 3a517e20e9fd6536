// Package auth implementa login, restauración y cierre de la sesión única
// de administración. La tienda funciona con una sola credencial demo
// configurada por entorno; no hay registro ni gestión de usuarios.
package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/greenroad/licorera-api/internal/application/dto"
	"github.com/greenroad/licorera-api/internal/domain"
	"github.com/greenroad/licorera-api/internal/domain/entity"
	"github.com/greenroad/licorera-api/internal/domain/repository"
	"github.com/greenroad/licorera-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Config credencial de administración y vida de la sesión.
type Config struct {
	AdminUsername string
	AdminPassword string
	SessionTTL    time.Duration
	JWT           JWTConfig
}

// AuthUseCase casos de uso de autenticación: login, estado y logout.
type AuthUseCase struct {
	store        repository.SessionStore
	username     string
	passwordHash []byte
	sessionTTL   time.Duration
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso. La contraseña configurada se
// hashea una sola vez aquí; Login compara siempre contra el hash.
func NewAuthUseCase(store repository.SessionStore, cfg Config) (*AuthUseCase, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	return &AuthUseCase{
		store:        store,
		username:     cfg.AdminUsername,
		passwordHash: hash,
		sessionTTL:   ttl,
		jwtCfg:       cfg.JWT,
	}, nil
}

// Login verifica la credencial (comparación exacta, sensible a mayúsculas),
// crea la sesión y genera el JWT que la referencia. Cualquier desajuste de
// usuario o contraseña devuelve el mismo ErrInvalidCredentials: la respuesta
// nunca distingue cuál de los dos campos falló.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username != uc.username {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(uc.passwordHash, []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now()
	sess := &entity.Session{
		ID:        uuid.New().String(),
		Username:  in.Username,
		Role:      entity.RoleAdmin,
		CreatedAt: now,
		ExpiresAt: now.Add(uc.sessionTTL),
	}
	if err := uc.store.Create(sess); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, sess.ID, sess.Username, sess.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		// Sesión huérfana si el token no se pudo firmar; se limpia aquí mismo.
		_ = uc.store.Delete(sess.ID)
		return nil, err
	}

	return &dto.LoginResponse{
		Token:   token,
		Session: toSessionResponse(sess),
	}, nil
}

// Session devuelve el estado actual de una sesión viva (la lectura que hace
// el cliente al recargar). ErrSessionNotFound si fue cerrada o venció.
func (uc *AuthUseCase) Session(sessionID string) (*dto.SessionResponse, error) {
	sess, err := uc.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, domain.ErrSessionNotFound
	}
	out := toSessionResponse(sess)
	return &out, nil
}

// Logout destruye la sesión: el token que la referencia deja de servir de
// inmediato aunque no haya expirado. Cerrar una sesión inexistente no es error.
func (uc *AuthUseCase) Logout(sessionID string) error {
	return uc.store.Delete(sessionID)
}

func toSessionResponse(s *entity.Session) dto.SessionResponse {
	return dto.SessionResponse{
		Username:  s.Username,
		Role:      s.Role,
		ExpiresAt: s.ExpiresAt,
	}
}
