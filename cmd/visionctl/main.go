// Command visionctl lists, uploads and quizzes videos on the Vision service
// from the terminal, using the same configuration as the web server.
package main

import (
	"fmt"
	"os"

	"video-quiz/internal/config"
	"video-quiz/internal/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	configFile string
	debugMode  bool
)

func main() {
	rootCommand := newRootCommand()
	if err := rootCommand.Execute(); err != nil {
		if _, fprintfErr := color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
	_ = logger.Sync()
}

func newRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           "visionctl",
		Short:         "Work with videos on the Vision service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "config file path (defaults to ./config.yaml)")
	rootCommand.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	rootCommand.AddCommand(
		newVideosCommand(),
		newUploadCommand(),
		newQuizCommand(),
	)
	return rootCommand
}

// loadConfig loads the shared configuration and sets up logging for the CLI.
func loadConfig() (*config.Config, error) {
	if configFile != "" {
		if err := os.Setenv("CONFIG_FILE", configFile); err != nil {
			return nil, fmt.Errorf("os.Setenv > %w", err)
		}
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	loggerCfg := cfg.Logger
	// Keep stdout for command output unless asked for more.
	loggerCfg.Level = "warn"
	if debugMode {
		loggerCfg.Level = "debug"
	}
	if err := logger.Initialize(loggerCfg); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, nil
}
