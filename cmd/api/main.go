package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/swaggo/swag"

	"github.com/jhoicas/startnet-api/docs"
	"github.com/jhoicas/startnet-api/internal/application/auth"
	"github.com/jhoicas/startnet-api/internal/application/ports"
	"github.com/jhoicas/startnet-api/internal/application/usecase"
	"github.com/jhoicas/startnet-api/internal/infrastructure/blob"
	infrapdf "github.com/jhoicas/startnet-api/internal/infrastructure/pdf"
	"github.com/jhoicas/startnet-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/startnet-api/internal/interfaces/http"
	"github.com/jhoicas/startnet-api/pkg/config"
	"github.com/jhoicas/startnet-api/pkg/logger"
)

// @title                       StartNet API
// @version                     1.0
// @description                 API del marketplace entre emprendedores e inversionistas.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	if err := cfg.Validate(); err != nil {
		panic(err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("storage", cfg.Storage.Driver).
		Str("blob", cfg.Blob.Provider).
		Msg("iniciando aplicación")

	ctx := context.Background()
	repos, err := storage.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("conexión al almacenamiento")
	}
	defer repos.Close()

	app := httpRouter.NewApp(httpRouter.ServerConfig{
		AppName:        cfg.App.Name,
		AllowedOrigins: cfg.HTTP.AllowedOrigins(),
		BodyLimit:      cfg.Blob.MaxUploadBytes + 1<<20,
	}, log)

	var blobs ports.BlobStorage
	switch cfg.Blob.Provider {
	case config.BlobAzure:
		az, err := blob.NewAzureStorage(cfg.Blob.ConnectionString)
		if err != nil {
			log.Fatal().Err(err).Msg("cliente de Azure Blob Storage")
		}
		if err := az.EnsureContainers(ctx,
			ports.ContainerEntrepreneurPictures,
			ports.ContainerInvestorPictures,
			ports.ContainerStartupLogos,
		); err != nil {
			log.Fatal().Err(err).Msg("crear contenedores de blobs")
		}
		blobs = az
	default:
		local, err := blob.NewLocalStorage(cfg.Blob.LocalDir, cfg.Blob.PublicBaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("almacenamiento local de imágenes")
		}
		// las imágenes locales se sirven desde el mismo proceso
		app.Static("/uploads", local.Dir(), fiber.Static{MaxAge: 3600})
		blobs = local
	}

	upload := usecase.UploadConfig{MaxBytes: cfg.Blob.MaxUploadBytes}
	authUC := auth.NewAuthUseCase(repos.Users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	entrepreneurUC := usecase.NewEntrepreneurProfileUseCase(repos.Users, repos.Entrepreneurs, blobs, upload)
	investorUC := usecase.NewInvestorProfileUseCase(repos.Users, repos.Investors, blobs, upload)
	startupUC := usecase.NewStartupUseCase(repos.Startups, blobs, infrapdf.NewStartupSheetGenerator(), upload)
	accountUC := usecase.NewAccountUseCase(repos.Accounts)

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    docs.SwaggerInfo.Title,
		}))
	}
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(doc)
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		EntrepreneurUC: entrepreneurUC,
		InvestorUC:     investorUC,
		StartupUC:      startupUC,
		AccountUC:      accountUC,
		JWTSecret:      cfg.JWT.Secret,
		AuthRateLimit: httpRouter.RateLimitConfig{
			Requests: cfg.RateLimit.AuthRequests,
			Window:   cfg.RateLimit.AuthWindow,
		},
		ServiceName: cfg.App.Name,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
