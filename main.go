package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"

	"schooloffice_backend/internals/configs"
	database "schooloffice_backend/internals/databases"
	accountService "schooloffice_backend/internals/features/accounts/service"
	financeService "schooloffice_backend/internals/features/finance/service"
	middlewares "schooloffice_backend/internals/middlewares"
	"schooloffice_backend/internals/migrations"
	routes "schooloffice_backend/internals/route"
	"schooloffice_backend/internals/seeds"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schooloffice",
		Short: "School office back end",
		// plain `schooloffice` keeps the old behaviour of starting the server
		RunE: func(cmd *cobra.Command, _ []string) error { return serve(cmd.Context()) },
		PersistentPreRun: func(*cobra.Command, []string) {
			configs.LoadEnv()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE:  func(cmd *cobra.Command, _ []string) error { return serve(cmd.Context()) },
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create or update tables, foreign keys and checks",
		RunE: func(*cobra.Command, []string) error {
			database.ConnectDB(configs.App.Database)
			defer database.Close()
			return migrations.Run(database.DB)
		},
	})

	var seedDir string
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Load reference data and the initial accounts",
		RunE: func(*cobra.Command, []string) error {
			database.ConnectDB(configs.App.Database)
			defer database.Close()
			seeds.RunAllSeeds(database.DB, seedDir)
			return nil
		},
	}
	seedCmd.Flags().StringVar(&seedDir, "dir", "internals/seeds/data", "directory holding the seed JSON files")
	cmd.AddCommand(seedCmd)

	return cmd
}

func serve(parent context.Context) error {
	cfg := configs.App

	app := fiber.New(fiber.Config{
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
		BodyLimit:               16 << 20,
		ReadTimeout:             15 * time.Second,
		WriteTimeout:            30 * time.Second,
		IdleTimeout:             90 * time.Second,
	})

	middlewares.SetupMiddlewares(app, cfg.Server)

	database.ConnectDB(cfg.Database)
	database.TunePool(cfg.Database)
	database.WarmUpQueries()
	defer database.Close()

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// schedulers need the pool
	accountService.StartBlacklistCleanupScheduler(ctx, database.DB)
	financeService.StartOverdueScheduler(ctx, database.DB)

	routes.SetupRoutes(app, database.DB)

	port := cfg.Server.Port
	if port == "" {
		port = "3000"
	}

	errc := make(chan error, 1)
	go func() {
		log.Printf("[INFO] listening on :%s", port)
		errc <- app.Listen("0.0.0.0:" + port)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Println("[INFO] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}
