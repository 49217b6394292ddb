// seed puebla la tabla de roles y crea el primer global_admin si no existe.
// Idempotente: puede ejecutarse en cada despliegue sin duplicar datos.
//
// Uso: go run ./cmd/seed
// Variables: las de conexión a DB más SEED_ADMIN_USERNAME y SEED_ADMIN_PASSWORD.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jhoicas/dcpos-api/internal/domain/entity"
	"github.com/jhoicas/dcpos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/dcpos-api/pkg/config"
	"github.com/jhoicas/dcpos-api/pkg/password"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	for _, role := range []string{entity.RoleGlobalAdmin, entity.RoleCompanyAdmin, entity.RoleCashier} {
		if _, err := pool.Exec(ctx,
			`INSERT INTO roles (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, role); err != nil {
			fmt.Fprintf(os.Stderr, "insertar rol %s: %v\n", role, err)
			os.Exit(1)
		}
	}
	fmt.Println("Roles verificados: global_admin, company_admin, cashier")

	username := os.Getenv("SEED_ADMIN_USERNAME")
	plain := os.Getenv("SEED_ADMIN_PASSWORD")
	if username == "" || plain == "" {
		fmt.Println("SEED_ADMIN_USERNAME/SEED_ADMIN_PASSWORD no definidos, se omite el admin inicial")
		return
	}

	var exists bool
	if err := pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users u JOIN roles r ON r.id = u.role_id WHERE r.name = $1)`,
		entity.RoleGlobalAdmin).Scan(&exists); err != nil {
		fmt.Fprintf(os.Stderr, "verificar admin existente: %v\n", err)
		os.Exit(1)
	}
	if exists {
		fmt.Println("Ya existe un global_admin, no se crea otro")
		return
	}

	hash, err := password.Hash(plain)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashear password: %v\n", err)
		os.Exit(1)
	}
	if _, err := pool.Exec(ctx,
		`INSERT INTO users (id, username, password_hash, role_id, is_active)
		 SELECT $1, $2, $3, r.id, TRUE FROM roles r WHERE r.name = $4`,
		uuid.New().String(), username, hash, entity.RoleGlobalAdmin); err != nil {
		fmt.Fprintf(os.Stderr, "crear admin inicial: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("global_admin %q creado\n", username)
}
