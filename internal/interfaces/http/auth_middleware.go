package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/startnet-api/internal/domain"
	"github.com/jhoicas/startnet-api/pkg/jwt"
)

// Locals keys para UserID y AccountType en Fiber.
const (
	LocalUserID      = "user_id"
	LocalAccountType = "account_type"
)

// AuthMiddleware valida el Bearer Token JWT y deja UserID y AccountType en c.Locals.
// Un token vencido responde 401 con isExpired para que el cliente pida login de nuevo.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		scheme, tokenString, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(tokenString) == "" {
			return respondError(c, domain.ErrUnauthorized)
		}
		userID, accountType, err := jwt.Parse(jwtSecret, strings.TrimSpace(tokenString))
		if err != nil {
			if errors.Is(err, jwt.ErrExpired) {
				return respondError(c, domain.ErrTokenExpired)
			}
			return respondError(c, domain.ErrTokenInvalid)
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalAccountType, accountType)

		// el request logger y los handlers ven el usuario en el logger del contexto
		ctx := c.UserContext()
		l := zerolog.Ctx(ctx).With().Str("user_id", userID).Logger()
		c.SetUserContext(l.WithContext(ctx))
		return c.Next()
	}
}

// RequireAccountType deja pasar solo cuentas de los tipos indicados (después de AuthMiddleware).
func RequireAccountType(types ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountType := GetAccountType(c)
		if accountType == "" {
			return respondError(c, domain.ErrTokenInvalid)
		}
		for _, t := range types {
			if accountType == t {
				return c.Next()
			}
		}
		return respondError(c, domain.ErrForbidden)
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetAccountType devuelve el tipo de cuenta del token.
func GetAccountType(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalAccountType).(string)
	return s
}
