package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/herdwell/herdwell/internal/config"
	"github.com/herdwell/herdwell/internal/domain/animal"
	"github.com/herdwell/herdwell/internal/domain/farm"
	"github.com/herdwell/herdwell/internal/domain/healthrecord"
	"github.com/herdwell/herdwell/internal/domain/knowledge"
	"github.com/herdwell/herdwell/internal/domain/prediction"
	"github.com/herdwell/herdwell/internal/domain/profile"
	"github.com/herdwell/herdwell/internal/domain/scheme"
	"github.com/herdwell/herdwell/internal/domain/vet"
	"github.com/herdwell/herdwell/internal/platform/appstate"
	"github.com/herdwell/herdwell/internal/platform/auth"
	"github.com/herdwell/herdwell/internal/platform/db"
	"github.com/herdwell/herdwell/internal/platform/middleware"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "herdwell-server",
		Short: "Livestock health management API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	// Database
	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Auth middleware
	if cfg.IsDev() {
		e.Use(auth.DevAuthMiddleware())
	} else {
		e.Use(auth.JWTMiddleware(auth.JWTConfig{
			Issuer:     cfg.AuthIssuer,
			Audience:   cfg.AuthAudience,
			JWKSURL:    cfg.AuthJWKSURL,
			SigningKey: []byte(cfg.JWTSecret),
		}))
	}

	// API group
	api := e.Group("/api/v1")

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	api.Use(middleware.RateLimit(rateLimitCfg))

	// A prediction round-trip includes an upstream inference call, so the
	// request deadline has to exceed the client timeout.
	api.Use(middleware.RequestTimeout(time.Duration(cfg.PredictTimeout+5) * time.Second))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	// -- Register domain handlers --

	animalRepo := animal.NewRepoPG(pool)
	animalSvc := animal.NewService(animalRepo)
	animal.NewHandler(animalSvc).RegisterRoutes(api)

	farmRepo := farm.NewRepoPG(pool)
	farmSvc := farm.NewService(farmRepo)
	farm.NewHandler(farmSvc).RegisterRoutes(api)

	recordRepo := healthrecord.NewRepoPG(pool)
	recordSvc := healthrecord.NewService(recordRepo)
	healthrecord.NewHandler(recordSvc).RegisterRoutes(api)

	vetRepo := vet.NewRepoPG(pool)
	vetSvc := vet.NewService(vetRepo)
	vet.NewHandler(vetSvc).RegisterRoutes(api)

	schemeRepo := scheme.NewPGRepository(pool)
	schemeSvc := scheme.NewService(schemeRepo)
	scheme.NewHandler(schemeSvc).RegisterRoutes(api)

	knowledgeRepo := knowledge.NewPGRepository(pool)
	knowledgeSvc := knowledge.NewService(knowledgeRepo)
	knowledge.NewHandler(knowledgeSvc).RegisterRoutes(api)

	profileRepo := profile.NewPGRepository(pool)
	profileSvc := profile.NewService(profileRepo, cfg.DefaultTheme, cfg.DefaultLanguage)
	profile.NewHandler(profileSvc).RegisterRoutes(api)

	appState := appstate.NewStore(profileSvc)
	appstate.NewHandler(appState).RegisterRoutes(api)

	predictClient := prediction.NewHTTPClient(cfg.PredictAPIURL,
		time.Duration(cfg.PredictTimeout)*time.Second, logger)
	predictRepo := prediction.NewPGRepository(pool)
	predictSvc := prediction.NewService(predictClient, recordSvc, animalSvc, predictRepo, appState, logger)
	prediction.NewHandler(predictSvc).RegisterRoutes(api)

	// Start server with graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("forced shutdown")
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}
