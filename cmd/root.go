package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/nomics/config"
	"github.com/s0up4200/nomics/nomics"
)

// skipConfigAnnotation marks commands that run without loading config
const skipConfigAnnotation = "skip-config"

var (
	cfgFile string
	cfg     *config.Config
	logger  = zerolog.Nop()
	client  *nomics.Client

	version   = "dev"
	buildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "nomics",
	Short: "Query the Nomics cryptocurrency market-data API",
	Long: `nomics is a CLI for the Nomics cryptocurrency and bitcoin API.
Each endpoint is called with your API key and any query parameters you pass;
JSON responses are printed as JSON and CSV responses as text.`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// SetVersion sets the version reported by the version and update commands
func SetVersion(v, built string) {
	version = v
	buildTime = built
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
	rootCmd.PersistentFlags().String("api-key", "", "Nomics API key (overrides config and NOMICS_API_KEY)")
	rootCmd.PersistentFlags().String("base-url", "", "API root (default "+nomics.DefaultBaseURL+")")
	rootCmd.PersistentFlags().Duration("timeout", 0, "HTTP timeout, 0 keeps the transport default")
	rootCmd.PersistentFlags().Bool("pretty", true, "indent JSON output")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(callCmd)
	rootCmd.AddCommand(endpointsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// initializeApp initializes the configuration and client
func initializeApp(cmd *cobra.Command, args []string) error {
	if cmd.Annotations[skipConfigAnnotation] == "true" {
		return nil
	}

	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	opts := []nomics.Option{
		nomics.WithBaseURL(cfg.Nomics.BaseURL),
		nomics.WithTimeout(cfg.Nomics.Timeout),
	}
	if cfg.Nomics.UserAgent != "" {
		opts = append(opts, nomics.WithUserAgent(cfg.Nomics.UserAgent))
	} else {
		opts = append(opts, nomics.WithUserAgent("nomics-cli/"+version))
	}

	client, err = nomics.NewClient(cfg.Nomics.APIKey, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create Nomics client: %w", err)
	}

	logger.Debug().Str("base_url", client.BaseURL()).Msg("Nomics client ready")

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

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}
