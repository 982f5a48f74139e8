package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ostapk/paperless-go/config"
	"github.com/ostapk/paperless-go/paperless"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *paperless.Client

	version   = "dev"
	buildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "paperless-cli",
	Short: "A CLI for the Paperless.com.ua document service",
	Long: `paperless-cli talks to the Paperless.com.ua document management service.

It covers the authorization flow, document upload, search, download,
renaming, trash and restore, public link sharing, and digital signatures.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion sets the version information for the CLI
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = fmt.Sprintf("%s (built %s)", v, bt)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	client, err = paperless.NewClient(cfg.Paperless.URL, logger,
		paperless.WithTimeout(time.Duration(cfg.Paperless.TimeoutSeconds)*time.Second),
		paperless.WithUserAgent("paperless-cli/"+version))
	if err != nil {
		return fmt.Errorf("failed to create Paperless client: %w", err)
	}

	return nil
}

// requireAccessToken guards commands that need an authenticated session.
func requireAccessToken() error {
	if cfg.Paperless.AccessToken == "" {
		return fmt.Errorf("paperless.access_token is not set; run 'paperless-cli auth code' and 'paperless-cli auth token' first")
	}
	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; color only when stderr is a terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
