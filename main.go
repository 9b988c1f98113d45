// @title Math Practice 后端 API
// @version 1.0
// @description 小学数学应用题练习后端：AI 出题、判分反馈、学习仪表盘。

// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math_practice_backend/internal/app"
	"math_practice_backend/internal/config"
	"math_practice_backend/internal/service"
	"math_practice_backend/internal/util"
	"math_practice_backend/pkg/database"
	"math_practice_backend/pkg/logger"
	"os"
	"time"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configDir string

	root := &cobra.Command{
		Use:           "mathpractice",
		Short:         "Math word-problem practice backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		// 不带子命令时直接启动服务
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), configDir)
		},
	}
	root.PersistentFlags().StringVar(&configDir, "config", "configs", "directory containing config.yaml")

	root.AddCommand(newServeCmd(&configDir))
	root.AddCommand(newMigrateCmd(&configDir))
	root.AddCommand(newSyllabusCmd(&configDir))
	root.AddCommand(newAdminCmd(&configDir))
	return root
}

func newServeCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), *configDir)
		},
	}
}

func runServe(ctx context.Context, configDir string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		return err
	}
	defer logger.Log.Sync()

	return application.Run(ctx)
}

func newMigrateCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update database tables, then exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(*configDir)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger.InitLogger(cfg)
			defer logger.Log.Sync()

			db, err := database.Open(&cfg.Database)
			if err != nil {
				return err
			}
			if err := database.Migrate(db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "database migration completed")
			return nil
		},
	}
}

func loadSyllabus(configDir string) (*service.SyllabusService, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger.InitLogger(cfg)

	storage, err := service.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}
	return service.NewSyllabusService(cfg.Syllabus, storage, service.NewPDFTextExtractor()), nil
}

func newSyllabusCmd(configDir *string) *cobra.Command {
	syllabus := &cobra.Command{Use: "syllabus", Short: "Manage the cached syllabus text"}

	syllabus.AddCommand(&cobra.Command{
		Use:   "extract",
		Short: "Extract text from the syllabus PDF and rewrite the cache",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := loadSyllabus(*configDir)
			if err != nil {
				return err
			}
			defer logger.Log.Sync()

			status, err := svc.Extract(cmd.Context())
			if err != nil {
				return fmt.Errorf("syllabus extraction failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "extracted %d characters (version %s) into %s\n",
				status.Length, status.Version, svc.CachePath)
			return nil
		},
	})

	syllabus.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the syllabus cache state as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := loadSyllabus(*configDir)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(svc.Status())
		},
	})

	return syllabus
}

func newAdminCmd(configDir *string) *cobra.Command {
	admin := &cobra.Command{Use: "admin", Short: "Administrative helpers"}

	var name string
	var ttl time.Duration
	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the admin API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(*configDir)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if cfg.Admin.JWTSecret == "" {
				return fmt.Errorf("admin.jwt_secret is not configured")
			}

			token, err := util.GenerateJWT(name, util.RoleAdmin, cfg.Admin.JWTSecret, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	tokenCmd.Flags().StringVar(&name, "name", "admin", "name recorded in the token")
	tokenCmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	admin.AddCommand(tokenCmd)

	return admin
}
