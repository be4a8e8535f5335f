// seed crea el usuario SUPER_ADMIN inicial si aún no existe.
//
// Uso: go run ./cmd/seed
// Lee SEED_ADMIN_NAME, SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD del entorno
// (además de la configuración de DB habitual). Es idempotente: si ya hay un
// usuario con ese email no hace nada.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/knowledgebase-api/internal/domain/entity"
	"github.com/jhoicas/knowledgebase-api/internal/infrastructure/postgres"
	"github.com/jhoicas/knowledgebase-api/pkg/config"
	"github.com/jhoicas/knowledgebase-api/pkg/logger"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, App: cfg.App.Name})

	v := viper.New()
	v.AutomaticEnv()
	name := v.GetString("SEED_ADMIN_NAME")
	email := v.GetString("SEED_ADMIN_EMAIL")
	password := v.GetString("SEED_ADMIN_PASSWORD")
	if name == "" || email == "" || password == "" {
		log.Fatal().Msg("SEED_ADMIN_NAME, SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD son requeridos")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("inicializar esquema")
	}

	users := postgres.NewUserRepository(pool)
	existing, err := users.GetByEmail(email)
	if err != nil {
		log.Fatal().Err(err).Msg("buscar usuario")
	}
	if existing != nil {
		log.Info().Str("email", email).Msg("el SUPER_ADMIN ya existe, nada que hacer")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear contraseña")
	}

	now := time.Now()
	admin := &entity.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleSuperAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := users.Create(admin); err != nil {
		log.Fatal().Err(err).Msg("crear SUPER_ADMIN")
	}
	log.Info().Str("email", email).Str("id", admin.ID).Msg("SUPER_ADMIN creado")
}
