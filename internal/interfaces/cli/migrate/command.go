package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"etraxis/internal/infrastructure/config"
	"etraxis/internal/infrastructure/database"
	"etraxis/internal/infrastructure/migration"
	"etraxis/internal/infrastructure/permission"
	"etraxis/internal/shared/logger"
)

var configPath string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage the database schema: apply migrations, inspect the current state, and seed the administrative policies.`,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE:  runUp,
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which tables exist",
		RunE:  runStatus,
	}
}

func initEnv() (logger.Interface, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return logger.NewLogger(), nil
}

func runUp(cmd *cobra.Command, args []string) error {
	log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("applying migrations")

	if err := migration.Migrate(database.Get()); err != nil {
		log.Errorw("migration failed", "error", err)
		return err
	}

	enforcer, err := permission.NewEnforcer(database.Get(), log)
	if err != nil {
		log.Errorw("failed to initialize enforcer", "error", err)
		return err
	}
	if err := migration.BootstrapPolicies(enforcer); err != nil {
		log.Errorw("failed to seed policies", "error", err)
		return err
	}

	log.Infow("migrations applied")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	_, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	migrator := database.Get().Migrator()
	for _, model := range migration.AutoMigrateModels() {
		status := "missing"
		if migrator.HasTable(model) {
			status = "ok"
		}
		fmt.Printf("%-30T %s\n", model, status)
	}
	return nil
}
