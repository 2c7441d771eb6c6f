package main

import (
	"fmt"
	"os"

	"github.com/de-tools/roi-atlas/pkg/runtime/app"
	"github.com/de-tools/roi-atlas/pkg/server"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for ROI Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the configuration file (defaults and ROI_* environment variables apply without one)")

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

	a, err := app.Load(ctx, cfgPath)
	if err != nil {
		return fmt.Errorf("failed to initialize report store: %w", err)
	}
	defer a.Close()

	if level, err := zerolog.ParseLevel(a.Config.LogLevel); err == nil {
		logger = logger.Level(level)
	}

	logger.Info().
		Str("backend", a.Config.Storage.Backend).
		Str("namespace", a.Config.Namespace).
		Msg("report store loaded")
	if a.Presets != nil {
		profiles, _ := a.Presets.GetProfiles(ctx)
		logger.Info().Strs("presets", profiles).Msg("settings presets loaded")
	}

	web := server.NewWebAPI(logger, server.Config{
		Addr: a.Config.Server.Addr(),
		Dependencies: server.Dependencies{
			Store:   a.Store,
			Creator: a,
			Presets: a.Presets,
		},
	})
	return web.Start()
}
