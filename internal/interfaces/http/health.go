package http

import (
	"context"
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
)

// DBPinger es el contrato mínimo para verificar la conexión a la base de datos.
// Lo satisface *pgxpool.Pool.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler godoc
// @Summary      Liveness con verificación de base de datos
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /health [get]
func HealthHandler(service string, db DBPinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := db.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unavailable", "service": service,
			})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": service})
	}
}

// RegisterDocs monta la UI de Swagger solo si el spec generado existe.
// swagger.New lee el archivo al registrarse y aborta el proceso si falta,
// así que sin el artefacto la API arranca igual, solo sin /docs.
func RegisterDocs(app *fiber.App, specPath, title string) bool {
	if _, err := os.Stat(specPath); err != nil {
		return false
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: specPath,
		Path:     "docs",
		Title:    title,
	}))
	return true
}
