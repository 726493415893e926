package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/startnet-api/pkg/logger"
)

// RequestLogger escribe una línea estructurada por petición y deja un logger con request_id
// en c.UserContext() para los handlers. Va después de requestid.New().
func RequestLogger(log *logger.Logger) fiber.Handler {
	base := log.Zerolog()
	return func(c *fiber.Ctx) error {
		start := time.Now()
		rid, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)
		l := base.With().Str("request_id", rid).Logger()
		c.SetUserContext(l.WithContext(c.UserContext()))

		if chainErr := c.Next(); chainErr != nil {
			// la respuesta se escribe aquí para registrar el status final
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		var ev *zerolog.Event
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = l.Error()
		case status >= fiber.StatusBadRequest:
			ev = l.Warn()
		default:
			ev = l.Info()
		}
		if uid := GetUserID(c); uid != "" {
			ev = ev.Str("user_id", uid)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP()).
			Msg("request")
		return nil
	}
}
