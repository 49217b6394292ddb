package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/dcpos-api/internal/application/auth"
	"github.com/jhoicas/dcpos-api/internal/application/usecase"
	"github.com/jhoicas/dcpos-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/dcpos-api/internal/interfaces/http"
	"github.com/jhoicas/dcpos-api/pkg/config"
	"github.com/jhoicas/dcpos-api/pkg/logger"
)

// @title           DCPOS API
// @version         1.0
// @description     Backend multi-tenant de punto de venta: auth JWT, empresas, sucursales, usuarios y productos.
// @BasePath        /
// @securityDefinitions.apikey Bearer
// @in              header
// @name            Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	if cfg.JWT.Secret == "" {
		panic("JWT_SECRET es requerido")
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:           cfg.JWT.Secret,
		AccessExpMinutes: cfg.JWT.AccessExpMinutes,
		RefreshExpDays:   cfg.JWT.RefreshExpDays,
		Issuer:           cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo, roleRepo, companyRepo, branchRepo)
	roleUC := usecase.NewRoleUseCase(roleRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo, txRunner)
	branchUC := usecase.NewBranchUseCase(branchRepo, companyRepo)
	productUC := usecase.NewProductUseCase(productRepo, companyRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if !httpRouter.RegisterDocs(app, "./docs/swagger.json", "DCPOS API") {
		log.Warn().Msg("docs/swagger.json no encontrado, UI de documentación deshabilitada")
	}

	app.Get("/health", httpRouter.HealthHandler(cfg.App.Name, pool))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		UserUC:    userUC,
		RoleUC:    roleUC,
		CompanyUC: companyUC,
		BranchUC:  branchUC,
		ProductUC: productUC,
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
