package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kbelhadj/roster-management/internal"
	"github.com/kbelhadj/roster-management/internal/api"
	"github.com/kbelhadj/roster-management/internal/core/events"
	"github.com/kbelhadj/roster-management/pkg/logger"
	"github.com/kbelhadj/roster-management/pkg/notifier"
	"github.com/kbelhadj/roster-management/pkg/prompt"
)

var rootCmd = &cobra.Command{
	Use:   "roster-management",
	Short: "Personnel Roster Management",
	Long:  `Administrative roster manager for personnel profiles and absence requests.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*internal.Config, error) {
	// Container deployments configure through the environment only.
	if os.Getenv("APP_ENV") == "production" || os.Getenv("DOCKER_ENV") == "true" {
		cfg := internal.LoadConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("error validating config from environment: %w", err)
		}
		return cfg, nil
	}

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.SetEnvPrefix("ROSTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Fall back to the environment when no config file is present.
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return internal.LoadConfigFromEnv(), nil
		}
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	var cfg internal.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("error validating config: %w", err)
	}

	return &cfg, nil
}

// Dependencies is the shared wiring every screen command starts from.
type Dependencies struct {
	Config    *internal.Config
	Logger    *slog.Logger
	Client    *api.Client
	Bus       *events.Bus
	Notifier  *notifier.Terminal
	Confirmer *prompt.Terminal
}

func initializeDependencies() (*Dependencies, error) {
	cfg, err := loadConfig(".")
	if err != nil {
		return nil, err
	}

	logger.Init(cfg.Observability.Logging.Level, cfg.Observability.Logging.Format)
	lg := logger.LoggerWrapper()

	client := api.NewClient(api.Config{
		BaseURL:   cfg.API.BaseURL,
		AuthToken: cfg.API.AuthToken,
		Timeout:   cfg.API.RequestTimeout,
	}, lg)

	return &Dependencies{
		Config:    cfg,
		Logger:    lg,
		Client:    client,
		Bus:       events.NewBus(lg),
		Notifier:  notifier.NewTerminal(),
		Confirmer: prompt.NewTerminal(),
	}, nil
}

func mustInitialize() *Dependencies {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	return deps
}

func init() {
	rootCmd.AddCommand(personnelCmd)
	rootCmd.AddCommand(absenceCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(fixtureAPICmd)
}
