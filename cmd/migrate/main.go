package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/piresc/bikeparts/internal/pkg/database"
	"github.com/piresc/bikeparts/internal/pkg/models"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile        string
	migrationsPath string
)

var rootCmd = &cobra.Command{
	Use:           "migrate",
	Short:         "Applies the rider service database schema",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var upCmd = &cobra.Command{
	Use:   "up [N]",
	Short: "Apply all or N pending migrations",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(func(m *migrate.Migrate) error {
			if len(args) == 0 {
				return m.Up()
			}
			n, err := steps(args[0])
			if err != nil {
				return err
			}
			return m.Steps(n)
		})
	},
}

var downCmd = &cobra.Command{
	Use:   "down [N]",
	Short: "Roll back all or the last N migrations",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(func(m *migrate.Migrate) error {
			if len(args) == 0 {
				return m.Down()
			}
			n, err := steps(args[0])
			if err != nil {
				return err
			}
			return m.Steps(-n)
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current schema version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(func(m *migrate.Migrate) error {
			version, dirty, err := m.Version()
			if errors.Is(err, migrate.ErrNilVersion) {
				fmt.Println("version: none")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Printf("version: %d dirty: %v\n", version, dirty)
			return nil
		})
	},
}

var forceCmd = &cobra.Command{
	Use:   "force VERSION",
	Short: "Set the schema version without running migrations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		version, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid version %q", args[0])
		}
		return run(func(m *migrate.Migrate) error {
			return m.Force(version)
		})
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config/rider.env", "env file with DB_* settings")
	rootCmd.PersistentFlags().StringVar(&migrationsPath, "path", "migrations", "directory holding the migration files")
	rootCmd.AddCommand(upCmd, downCmd, versionCmd, forceCmd)
}

func initConfig() {
	viper.SetConfigFile(cfgFile)
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_SSL_MODE", "disable")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func databaseConfig() models.DatabaseConfig {
	return models.DatabaseConfig{
		Host:     viper.GetString("DB_HOST"),
		Port:     viper.GetInt("DB_PORT"),
		Username: viper.GetString("DB_USERNAME"),
		Password: viper.GetString("DB_PASSWORD"),
		Database: viper.GetString("DB_DATABASE"),
		SSLMode:  viper.GetString("DB_SSL_MODE"),
	}
}

func steps(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid step count %q", raw)
	}
	return n, nil
}

func run(fn func(m *migrate.Migrate) error) error {
	cfg := databaseConfig()
	if cfg.Host == "" || cfg.Database == "" {
		return errors.New("DB_HOST and DB_DATABASE are required")
	}

	m, err := migrate.New("file://"+migrationsPath, database.DSN(cfg))
	if err != nil {
		return fmt.Errorf("migrate init error: %w", err)
	}
	defer m.Close()

	if err := fn(m); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration error: %w", err)
	}
	fmt.Println("migrations: ok")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
