package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/greenroad/licorera-api/internal/application/dto"
	"github.com/greenroad/licorera-api/internal/domain/entity"
	"github.com/greenroad/licorera-api/internal/domain/repository"
	"github.com/greenroad/licorera-api/pkg/jwt"
)

// LocalSession key de la sesión en c.Locals.
const LocalSession = "session"

// AuthMiddleware valida el Bearer Token JWT y carga la sesión viva a c.Locals.
// El token referencia una sesión del store: si fue cerrada con logout o ya
// venció, la petición se rechaza aunque el JWT siga siendo válido. Ningún
// handler protegido llega a ejecutarse sin sesión cargada.
//
// Nota de alcance: toda la autorización del sistema descansa en una única
// credencial demo configurada por entorno; sirve para proteger el panel de la
// tienda, no como frontera de seguridad de un despliegue real.
func AuthMiddleware(jwtSecret string, store repository.SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		sessionID, _, _, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		sess, err := store.Get(sessionID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "SESSION_CHECK_FAILED", Message: "no se pudo verificar la sesión, intente más tarde"})
		}
		if sess == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: "sesión cerrada o expirada"})
		}
		c.Locals(LocalSession, sess)
		return c.Next()
	}
}

// RequireRole autoriza según el rol de la sesión. Debe usarse DESPUÉS de
// AuthMiddleware (necesita LocalSession).
//
// Comportamiento:
//   - 401 MISSING_ROLE → la sesión no trae rol (sesión heredada/corrupta).
//   - 403 FORBIDDEN    → rol presente pero no permitido en esta ruta.
func RequireRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := GetSession(c)
		if sess.Role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "la sesión no tiene rol asignado"})
		}
		for _, role := range allowedRoles {
			if sess.Role == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin acceso a este recurso"})
	}
}

// GetSession devuelve la sesión cargada por AuthMiddleware. Usarla en una
// ruta sin el middleware es un error de programación y falla de inmediato
// con panic en vez de devolver un estado vacío que parezca válido.
func GetSession(c *fiber.Ctx) *entity.Session {
	v := c.Locals(LocalSession)
	if v == nil {
		panic("http: GetSession llamado en una ruta sin AuthMiddleware")
	}
	sess, ok := v.(*entity.Session)
	if !ok {
		panic("http: valor inesperado en Locals para la sesión")
	}
	return sess
}

// GetUsername devuelve el username de la sesión (después del middleware de auth).
func GetUsername(c *fiber.Ctx) string {
	return GetSession(c).Username
}

// GetRole devuelve el rol de la sesión (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	return GetSession(c).Role
}
