package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/dcpos-api/internal/application/auth"
	"github.com/jhoicas/dcpos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.UseCase
	UserUC    *usecase.UserUseCase
	RoleUC    *usecase.RoleUseCase
	CompanyUC *usecase.CompanyUseCase
	BranchUC  *usecase.BranchUseCase
	ProductUC *usecase.ProductUseCase
}

// Router registra las rutas de la API bajo /api/v1.
// Solo login y refresh son públicos; todo lo demás exige Bearer Token
// y pasa por el middleware que resuelve la identidad contra la DB.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.AuthUC))

	protected.Get("/auth/me", authHandler.Me)

	// Roles (protegido, solo lectura)
	roleHandler := NewRoleHandler(deps.RoleUC)
	protected.Get("/roles", roleHandler.List)

	// Users (protegido)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Patch("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Companies (protegido) con sucursales anidadas
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	branchHandler := NewBranchHandler(deps.BranchUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Patch("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)
	companies.Post("/:id/branches", branchHandler.Create)
	companies.Get("/:id/branches", branchHandler.ListByCompany)
	companies.Patch("/:id/branches/:branch_id", branchHandler.Update)
	companies.Delete("/:id/branches/:branch_id", branchHandler.Delete)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Patch("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
}
