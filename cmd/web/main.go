package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/de-tools/ecodent-simulator/pkg/server"
	"github.com/de-tools/ecodent-simulator/pkg/services/config"
	"github.com/de-tools/ecodent-simulator/pkg/services/preset"
	"github.com/de-tools/ecodent-simulator/pkg/services/scenario"
	"github.com/de-tools/ecodent-simulator/pkg/services/workflow"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	settingsPath string
	profilesPath string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for the Ecodent360 simulator",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&settingsPath, "settings", "s", "",
		"Path to a YAML settings file (defaults and ECODENT_* env vars apply otherwise)")
	rootCmd.Flags().StringVarP(&profilesPath, "profiles", "p", config.DefaultProfilesPath(),
		"Path to the scenario profiles file (default is $HOME/.ecodentcfg)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	store, err := settings.PricingStore()
	if err != nil {
		return fmt.Errorf("failed to create pricing store: %w", err)
	}
	formatter, err := settings.Formatter()
	if err != nil {
		return fmt.Errorf("failed to create formatter: %w", err)
	}

	registry, err := config.NewRegistry(profilesPath)
	if err != nil {
		logger.Warn().Err(err).Msgf("No scenario profiles loaded from `%s`", profilesPath)
		registry = config.NewEmptyRegistry()
	} else {
		logProfiles(ctx, logger, registry, profilesPath)
	}

	addr := net.JoinHostPort(settings.Server.Host, settings.Server.Port)

	api := server.NewWebAPI(logger, server.Config{
		Addr:            addr,
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Calculator: scenario.NewCalculator(store),
			Presets:    preset.NewService(store),
			Catalog:    workflow.NewCatalog(),
			Profiles:   registry,
			Formatter:  formatter,
		},
	})

	return api.Start()
}

func logProfiles(ctx context.Context, logger zerolog.Logger, registry config.Registry, path string) {
	profiles, err := registry.GetProfiles(ctx)
	if err != nil {
		logger.Warn().Err(err).Msgf("Failed to list scenario profiles from `%s`", path)
		return
	}
	logger.Info().Msgf("Scenario profiles at `%s` successfully loaded.", path)
	for _, name := range profiles {
		logger.Info().Msgf("Profile: `%s`", name)
	}
}
