// Command provision asigna el rol admin a un usuario, creándolo si no existe.
// Pensado para el arranque inicial de una instalación: el primer administrador
// no puede auto-asignarse por la API porque las rutas de roles exigen admin.
//
// Uso:
//
//	provision -email admin@example.com -name "Admin" [-password <pwd>]
//
// Si -password no se pasa, se lee de la variable PROVISION_PASSWORD.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/cotizador-pro/internal/domain/entity"
	"github.com/tu-usuario/cotizador-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/cotizador-pro/pkg/config"
	"github.com/tu-usuario/cotizador-pro/pkg/logger"
)

func main() {
	email := flag.String("email", "", "email del administrador")
	name := flag.String("name", "", "nombre del administrador")
	password := flag.String("password", "", "password (o variable PROVISION_PASSWORD)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if *email == "" {
		log.Fatal().Msg("-email es requerido")
	}

	pwd := *password
	if pwd == "" {
		pwd = os.Getenv("PROVISION_PASSWORD")
	}

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewUserRoleRepository(pool)

	user, err := userRepo.FindByEmail(*email)
	if err != nil {
		log.Fatal().Err(err).Msg("buscar usuario")
	}

	if user == nil {
		if pwd == "" {
			log.Fatal().Msg("el usuario no existe: se requiere -password o PROVISION_PASSWORD para crearlo")
		}
		if len(pwd) < 8 {
			log.Fatal().Msg("password debe tener al menos 8 caracteres")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hashear password")
		}
		now := time.Now().UTC()
		user = &entity.User{
			ID:           uuid.NewString(),
			Email:        *email,
			PasswordHash: string(hash),
			Name:         *name,
			Status:       "active",
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(user); err != nil {
			log.Fatal().Err(err).Msg("crear usuario")
		}
		log.Info().Str("email", *email).Msg("usuario creado")
	}

	if err := roleRepo.Upsert(user.ID, entity.RoleAdmin); err != nil {
		log.Fatal().Err(err).Msg("asignar rol admin")
	}
	log.Info().Str("email", *email).Str("role", entity.RoleAdmin).Msg("rol asignado")
}
