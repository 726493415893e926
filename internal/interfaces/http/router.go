package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/startnet-api/internal/application/auth"
	"github.com/jhoicas/startnet-api/internal/application/usecase"
	"github.com/jhoicas/startnet-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	EntrepreneurUC *usecase.EntrepreneurProfileUseCase
	InvestorUC     *usecase.InvestorProfileUseCase
	StartupUC      *usecase.StartupUseCase
	AccountUC      *usecase.AccountUseCase
	JWTSecret      string
	AuthRateLimit  RateLimitConfig
	ServiceName    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"service": deps.ServiceName, "status": "running"})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})

	api := app.Group("/api")
	requireAuth := AuthMiddleware(deps.JWTSecret)

	authHandler := NewAuthHandler(deps.AuthUC)
	accountHandler := NewAccountHandler(deps.AccountUC)
	entrepreneurHandler := NewEntrepreneurProfileHandler(deps.EntrepreneurUC)
	investorHandler := NewInvestorProfileHandler(deps.InvestorUC)
	startupHandler := NewStartupHandler(deps.StartupUC)

	// Auth (signup/signin públicos con rate limit por IP)
	authGroup := api.Group("/auth")
	limited := RateLimitByIP(deps.AuthRateLimit)
	authGroup.Post("/signup", limited, authHandler.Signup)
	authGroup.Post("/signin", limited, authHandler.Signin)
	authGroup.Get("/me", requireAuth, authHandler.Me)
	authGroup.Put("/password/update", requireAuth, authHandler.ChangePassword)

	// Perfil de emprendedor
	profile := api.Group("/profile", requireAuth)
	profile.Get("/", entrepreneurHandler.Get)
	profile.Put("/", entrepreneurHandler.Update)
	profile.Delete("/", entrepreneurHandler.Delete)
	profile.Post("/upload-profile-picture", entrepreneurHandler.UploadPicture)

	// Startups: la lectura por ID y la ficha PDF son públicas
	entrepreneur := api.Group("/entrepreneur")
	entrepreneur.Get("/startups/:id/sheet.pdf", startupHandler.Sheet)
	entrepreneur.Get("/startups/:id", startupHandler.GetByID)
	entrepreneur.Post("/startups", requireAuth, RequireAccountType(entity.AccountEntrepreneur), startupHandler.Create)
	entrepreneur.Get("/startups", requireAuth, startupHandler.ListMine)
	entrepreneur.Put("/startups/:id", requireAuth, startupHandler.Update)
	entrepreneur.Delete("/startups/:id", requireAuth, startupHandler.Delete)
	entrepreneur.Post("/upload-startup-logo", requireAuth, startupHandler.UploadLogo)
	entrepreneur.Delete("/settings/delete-account", requireAuth, accountHandler.DeleteAccount)

	// Inversionista
	investor := api.Group("/investor", requireAuth)
	investor.Get("/profile", investorHandler.Get)
	investor.Put("/profile", investorHandler.Update)
	investor.Post("/profile/upload-profile-picture", investorHandler.UploadPicture)
	investor.Get("/profile/all", investorHandler.List)
	investor.Get("/profile/:id", investorHandler.GetByID)
	investor.Get("/startups/all", startupHandler.ListPublic)
	investor.Put("/settings/update-password", authHandler.ChangePassword)
	investor.Delete("/settings/delete-account", accountHandler.DeleteAccount)
}
