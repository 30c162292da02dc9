// Market Desk - financial-data administration backend
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/arkline/marketdesk/internal/api"
	"github.com/arkline/marketdesk/internal/auth"
	"github.com/arkline/marketdesk/internal/config"
	"github.com/arkline/marketdesk/internal/database"
	"github.com/arkline/marketdesk/internal/models"
	"github.com/arkline/marketdesk/internal/store"
	"github.com/arkline/marketdesk/internal/validate"
)

var Version = "1.0.0"

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if len(os.Args) > 1 {
		runCLI()
		return
	}
	startServer()
}

func startServer() {
	log.Info().Str("version", Version).Msg("market desk starting")

	cfg := loadConfig()
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	pools := openPools(cfg)
	defer pools.Close()
	log.Info().Msg("database pools connected")

	if err := database.MigrateAll(pools); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	log.Info().Msg("migrations complete")

	if err := validate.Register(); err != nil {
		log.Fatal().Err(err).Msg("validator registration failed")
	}

	jwtService := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.AccessExpiryHours)
	handlers := api.NewHandlers(pools, jwtService)
	router := api.SetupRouter(cfg.CORS, jwtService, handlers)

	log.Info().Str("port", cfg.Server.Port).Msg("server listening")
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("configuration error")
	}
	return cfg
}

func openPools(cfg *config.Config) *database.Pools {
	pools, err := database.Open(cfg.Databases)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	return pools
}

// CLI
func runCLI() {
	switch os.Args[1] {
	case "serve":
		startServer()
	case "migrate":
		cfg := loadConfig()
		pools := openPools(cfg)
		defer pools.Close()
		if err := database.MigrateAll(pools); err != nil {
			log.Fatal().Err(err).Msg("migration failed")
		}
		fmt.Println("Migrations complete")
	case "admin":
		runAdminCmd()
	default:
		printUsage()
	}
}

// runAdminCmd bootstraps operator accounts from the command line:
//
//	marketdesk admin create --username=ops --password=secret --role=superadmin
func runAdminCmd() {
	if len(os.Args) < 3 || os.Args[2] != "create" {
		printUsage()
		return
	}

	flags := parseFlags(os.Args[3:])
	username := flags["username"]
	password := flags["password"]
	role := flags["role"]
	email := flags["email"]
	if role == "" {
		role = models.RoleSuperadmin
	}

	if username == "" || password == "" {
		fmt.Println("Usage: marketdesk admin create --username=<name> --password=<pass> [--email=<email>] [--role=admin|superadmin]")
		os.Exit(1)
	}
	if !models.ValidRole(role) {
		log.Fatal().Str("role", role).Msg("role must be admin or superadmin")
	}
	if email == "" {
		email = username + "@localhost"
	}

	cfg := loadConfig()
	pools := openPools(cfg)
	defer pools.Close()

	if err := database.MigrateAll(pools); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash password")
	}

	users := store.NewAdminUserStore(pools.Admin)
	user := models.AdminUser{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	if err := users.Create(&user); err != nil {
		log.Fatal().Err(err).Msg("failed to create admin user")
	}
	fmt.Printf("Created %s account %q (id %d)\n", role, username, user.ID)
}

// parseFlags reads --key=value arguments into a map
func parseFlags(args []string) map[string]string {
	flags := make(map[string]string)
	for _, arg := range args {
		if !strings.HasPrefix(arg, "--") {
			continue
		}
		parts := strings.SplitN(strings.TrimPrefix(arg, "--"), "=", 2)
		if len(parts) == 2 {
			flags[parts[0]] = parts[1]
		}
	}
	return flags
}

func printUsage() {
	fmt.Println(`Market Desk - financial-data administration backend

Usage:
  marketdesk              Start the API server
  marketdesk serve        Start the API server
  marketdesk migrate      Apply pending migrations on all schemas
  marketdesk admin create --username=<name> --password=<pass> [--email=<email>] [--role=admin|superadmin]
                          Create an operator account`)
}
