// Package cmd implements the pawmart CLI commands.
package cmd

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/pawmart/pawmart/internal/api/client"
	"github.com/pawmart/pawmart/internal/appstate"
	"github.com/pawmart/pawmart/internal/config"
	"github.com/pawmart/pawmart/internal/identity"
	"github.com/pawmart/pawmart/internal/notify"
	"github.com/pawmart/pawmart/internal/theme"
	"github.com/pawmart/pawmart/pkg/logger"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "pawmart",
		Short: "CLI client for the PawMart pet marketplace",
		Long: "pawmart browses pets for adoption and pet supplies, manages your\n" +
			"own listings and orders, and runs a local dev server to try it all.",
		SilenceUsage: true,
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default $HOME/.pawmart.yaml)")
	rootCmd.PersistentFlags().
		String("server", "http://localhost:3000", "listings/orders API URL")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")
	rootCmd.PersistentFlags().
		String("log-level", "", "log level (debug, info, warn, error)")

	cobra.CheckErr(viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))
	cobra.CheckErr(viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level")))

	rootCmd.AddCommand(homeCmd())
	rootCmd.AddCommand(listingsCmd())
	rootCmd.AddCommand(categoriesCmd())
	rootCmd.AddCommand(categoryCmd())
	rootCmd.AddCommand(ordersCmd())
	rootCmd.AddCommand(dashboardCmd())
	rootCmd.AddCommand(authCmd())
	rootCmd.AddCommand(themeCmd())
	rootCmd.AddCommand(devserverCmd())
	rootCmd.AddCommand(versionCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".pawmart")
	}

	viper.SetEnvPrefix("PAWMART")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig reads the config file viper found, if any. The --server flag
// (or PAWMART_SERVER) wins over api.base_url.
func loadConfig() (*config.Config, error) {
	server := viper.GetString("server")

	var cfg *config.Config
	if path := viper.ConfigFileUsed(); path == "" {
		cfg = config.Default(server)
	} else {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		if rootCmd.PersistentFlags().Changed("server") || os.Getenv("PAWMART_SERVER") != "" {
			cfg.API.BaseURL = server
		}
	}

	if lvl := viper.GetString("log_level"); lvl != "" {
		cfg.Logging.Level = lvl
	}
	return cfg, nil
}

// app bundles what a command needs: config, clients, state and output.
type app struct {
	cfg      *config.Config
	log      *slog.Logger
	state    *appstate.Store
	api      *apiclient.Client
	idp      *identity.Client
	notifier notify.Notifier
	styles   theme.Styles
}

func newApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	state, err := appstate.Load(cfg.State.Path)
	if err != nil {
		return nil, err
	}

	api := apiclient.New(cfg.API.BaseURL,
		apiclient.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}),
		apiclient.WithRateLimit(cfg.API.RateLimit.PerSecond, cfg.API.RateLimit.Burst),
		apiclient.WithTokenSource(state),
		apiclient.WithLogger(log),
	)

	idp := identity.New(cfg.Identity.BaseURL, cfg.Identity.APIKey, identity.WithLogger(log))

	return &app{
		cfg:      cfg,
		log:      log,
		state:    state,
		api:      api,
		idp:      idp,
		notifier: notify.NewTerminalNotifier(os.Stderr, state.Theme()),
		styles:   theme.NewStyles(os.Stdout, state.Theme()),
	}, nil
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
