package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/startnet-api/pkg/logger"
)

// ServerConfig opciones de la app Fiber.
type ServerConfig struct {
	AppName        string
	AllowedOrigins []string
	// BodyLimit tope del cuerpo; debe cubrir la imagen más grande más el overhead multipart.
	BodyLimit int
}

// NewApp crea la app Fiber con request id, logging por petición, recover y CORS.
// recover va dentro del logger: un panic queda registrado como 500.
func NewApp(cfg ServerConfig, log *logger.Logger) *fiber.App {
	bodyLimit := cfg.BodyLimit
	if bodyLimit <= 0 {
		bodyLimit = fiber.DefaultBodyLimit
	}
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    bodyLimit,
		ErrorHandler: ErrorHandler,
	})
	app.Use(requestid.New())
	app.Use(RequestLogger(log))
	app.Use(recover.New())
	if len(cfg.AllowedOrigins) > 0 {
		app.Use(cors.New(cors.Config{
			AllowOrigins: strings.Join(cfg.AllowedOrigins, ","),
			AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowHeaders: "Content-Type,Authorization",
		}))
	}
	return app
}
