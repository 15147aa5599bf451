package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpin "foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var envFile string

var rootCmd = &cobra.Command{
	Use:           "foodorder",
	Short:         "Food order fulfillment service",
	Long:          `foodorder places orders, drives them through their lifecycle, tracks deliveries and aggregates reviews.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API and run the scheduled jobs",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := LoadConfig(envFile)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		return serve(cmd.Context(), cfg)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(*cobra.Command, []string) error {
		cfg, err := LoadConfig(envFile)
		if err != nil {
			return err
		}
		db, err := postgres.Open(cfg.DSN())
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		if err := postgres.Migrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		cfg.Logger().Info("schema is up to date")
		return nil
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for a user, for local testing",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := LoadConfig(envFile)
		if err != nil {
			return err
		}
		if cfg.JWTSecret == "" {
			return errors.New("JWT_SECRET is required")
		}

		userFlag, _ := cmd.Flags().GetString("user")
		roleFlag, _ := cmd.Flags().GetString("role")
		ttl, _ := cmd.Flags().GetDuration("ttl")

		userID, err := kernel.UUIDFromString(userFlag)
		if err != nil {
			return err
		}
		role, err := kernel.ParseRole(roleFlag)
		if err != nil {
			return err
		}
		tok, err := httpin.SignToken([]byte(cfg.JWTSecret), userID, role, ttl)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), tok)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file read before the environment, ignored when missing")

	tokenCmd.Flags().String("user", "", "user id (uuid)")
	tokenCmd.Flags().String("role", "customer", "customer, vendor, delivery or admin")
	tokenCmd.Flags().Duration("ttl", 24*time.Hour, "token lifetime, 0 for none")
	_ = tokenCmd.MarkFlagRequired("user")

	rootCmd.AddCommand(serveCmd, migrateCmd, tokenCmd)
}

// Execute runs the command named on the command line.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func serve(ctx context.Context, cfg Config) error {
	logger := cfg.Logger()

	db, err := postgres.Open(cfg.DSN())
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	root, err := NewCompositionRoot(ctx, cfg, db, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := root.Close(); err != nil {
			logger.Error("close adapters", "error", err)
		}
	}()

	e, err := httpin.NewRouter(root.NewHTTPServer(), httpin.RouterConfig{
		JWTSecret:    []byte(cfg.JWTSecret),
		RateLimitRPS: cfg.RateLimitRPS,
	})
	if err != nil {
		return err
	}

	jm := root.NewJobManager()
	if err := jm.StartAll(); err != nil {
		return err
	}
	defer jm.StopAll()

	go root.RunRealtimeBridge(ctx)

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("listening", "port", cfg.HTTPPort)
		serverErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort))
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
