package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Rshep3087/budgettui/budget"
	"github.com/Rshep3087/budgettui/config"
	"github.com/Rshep3087/budgettui/currency"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	appName      = "budgettui"
	debugLogFile = "budgettui.log"
)

// Global variables for configuration.
var (
	cfgFile  string
	debug    bool
	currCode string
	seedFile string
	sess     *session
)

// session is the in-memory budget shared by the TUI and the CLI commands.
type session struct {
	config    config.Config
	store     *budget.Store
	formatter currency.Formatter
}

// newSession validates the configuration and builds the store,
// applying the seed file when one is configured.
func newSession(cfg config.Config) (*session, error) {
	formatter, err := currency.New(cfg.Currency)
	if err != nil {
		return nil, fmt.Errorf("invalid currency: %w", err)
	}
	cfg.Currency = formatter.Code()

	store := budget.NewStore()

	if cfg.SeedFile != "" {
		seed, err := loadSeedFile(cfg.SeedFile)
		if err != nil {
			return nil, err
		}
		seed.apply(store)
	}

	return &session{config: cfg, store: store, formatter: formatter}, nil
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "A terminal UI and CLI for a monthly budget",
	Long: `A terminal budget planner: record income, bills and projected expenses
and see what is left to spend.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// Setup logging
		log.SetLevel(log.InfoLevel)
		if cfg.Debug {
			log.SetLevel(log.DebugLevel)
		}

		sess, err = newSession(cfg)
		if err != nil {
			return err
		}

		return nil
	},
	RunE: func(c *cobra.Command, _ []string) error {
		// Start TUI when no subcommands are provided
		return rootAction(c.Context(), sess)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./budgettui.toml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&currCode, "currency", currency.DefaultCode, "ISO 4217 code amounts are displayed in")
	rootCmd.PersistentFlags().StringVar(&seedFile, "seed", "", "TOML file with the entries to start the session with")

	// Bind flags to viper
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("currency", rootCmd.PersistentFlags().Lookup("currency"))
	_ = viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))

	// Add subcommands
	rootCmd.AddCommand(newSummaryCmd(currentSession))
	rootCmd.AddCommand(newEntriesCmd(currentSession))
	rootCmd.AddCommand(newCategoriesCmd())
}

// currentSession hands the session built in PersistentPreRunE to subcommands.
func currentSession() *session {
	return sess
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search config in multiple locations (in order of precedence)
		// Current directory (highest precedence)
		viper.AddConfigPath(".")
		viper.SetConfigName(appName)
		viper.SetConfigType("toml")

		// User config directory
		if configDir, err := os.UserConfigDir(); err == nil {
			viper.AddConfigPath(filepath.Join(configDir, appName))
		}

		// User home directory
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(filepath.Join(home, ".config", appName))
		}

		// System-wide config directory (lowest precedence)
		viper.AddConfigPath(filepath.Join("/etc", appName))
	}

	viper.SetEnvPrefix(strings.ToUpper(appName))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		log.Debug("Config file not found or error reading", "error", err)
		return
	}

	log.Debug("Using config file", "file", viper.ConfigFileUsed())
}

// loadConfig resolves flags, environment and config file into a Config.
func loadConfig() (config.Config, error) {
	var cfg config.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return config.Config{}, fmt.Errorf("failed to decode configuration: %w", err)
	}

	return cfg, nil
}

// Utility functions for output formatting.
func outputJSON(w io.Writer, data any) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	_, err = fmt.Fprintln(w, string(jsonData))
	return err
}

// checkOutputFormat validates the --output flag value.
func checkOutputFormat(outputFormat string) error {
	validFormats := []string{tableOutputFormat, jsonOutputFormat}
	if !slices.Contains(validFormats, outputFormat) {
		return fmt.Errorf("invalid output format: %s (must be one of %v)", outputFormat, validFormats)
	}

	return nil
}

func createStyledTable(headers ...string) *table.Table {
	var (
		purple    = lipgloss.Color("99")
		gray      = lipgloss.Color("245")
		lightGray = lipgloss.Color("241")

		headerStyle  = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
		cellStyle    = lipgloss.NewStyle().Padding(0, 1)
		oddRowStyle  = cellStyle.Foreground(gray)
		evenRowStyle = cellStyle.Foreground(lightGray)
	)

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(purple)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 0:
				return evenRowStyle
			default:
				return oddRowStyle
			}
		}).
		Headers(headers...)
}
