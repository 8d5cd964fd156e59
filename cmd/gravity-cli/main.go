package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-gravity/pkg/client"
)

var (
	// Version information (set by build flags)
	version   = "0.1.0-dev"
	commit    = "unknown"
	buildDate = "unknown"

	cfgFile  string
	logLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gravity-cli",
	Short: "Fetch, preview, and submit Gravity Forms from the terminal",
	Long: `gravity-cli drives remotely defined Gravity Forms without a browser.

It can show a form's schema, fill one interactively and submit the answers,
or preview a local form document offline.

Credentials come from flags, a config file, or GRAVITY_* environment
variables (GRAVITY_BASE_URL, GRAVITY_CONSUMER_KEY, GRAVITY_CONSUMER_SECRET).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if cmd.Name() == "version" {
			return nil
		}
		if err := initConfig(); err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}
		return initLogging()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.gravity-cli.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (trace|debug|info|warn|error)")
	rootCmd.PersistentFlags().String("base-url", "", "WordPress site root, e.g. https://example.com")
	rootCmd.PersistentFlags().String("consumer-key", "", "Gravity Forms API consumer key")
	rootCmd.PersistentFlags().String("consumer-secret", "", "Gravity Forms API consumer secret")

	_ = viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag("consumer_key", rootCmd.PersistentFlags().Lookup("consumer-key"))
	_ = viper.BindPFlag("consumer_secret", rootCmd.PersistentFlags().Lookup("consumer-secret"))

	rootCmd.AddCommand(showCmd, fillCmd, previewCmd, versionCmd)
}

func initConfig() error {
	viper.SetEnvPrefix("gravity")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigName(".gravity-cli")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return nil
}

func initLogging() error {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
	return nil
}

// newClient builds the API client from the resolved configuration.
func newClient() (*client.Client, error) {
	cfg := client.Config{
		BaseURL:        viper.GetString("base_url"),
		ConsumerKey:    viper.GetString("consumer_key"),
		ConsumerSecret: viper.GetString("consumer_secret"),
		Logger:         log.Logger,
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required (--base-url or GRAVITY_BASE_URL)")
	}
	return client.New(cfg)
}
