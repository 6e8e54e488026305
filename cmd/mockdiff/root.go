package main

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/joshuapare/mockdiff/internal/config"
	"github.com/joshuapare/mockdiff/internal/logger"
	"github.com/joshuapare/mockdiff/internal/recordstore"
	"github.com/joshuapare/mockdiff/pkg/compare"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	configPath string
	storeName  string
	dbPath     string
	mockPath   string
	staged     bool
)

var rootCmd = &cobra.Command{
	Use:   "mockdiff",
	Short: "Compare mock records against database records",
	Long: `mockdiff compares a candidate (mock) JSON document against the
authoritative database document, shows where they differ, and writes
individual candidate values, new records, or the whole candidate back to
the database file.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.mockdiff/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&storeName, "store", "", "Store name used as the path root")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database JSON document")
	rootCmd.PersistentFlags().StringVar(&mockPath, "mock", "", "Candidate JSON document")
	rootCmd.PersistentFlags().
		BoolVar(&staged, "staged", false, "Stage transfers and write them in one commit")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// session is an opened record pair.
type session struct {
	cfg   config.Config
	store *recordstore.Store
	ctrl  *compare.Controller
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if storeName != "" {
		cfg.Store = storeName
	}
	if dbPath != "" {
		cfg.Database = dbPath
	}
	if mockPath != "" {
		cfg.Candidate = mockPath
	}
	if staged {
		cfg.Staged = true
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	return cfg, cfg.Validate()
}

// openSession loads config, starts logging and opens both documents.
func openSession() (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	if err := logger.Init(logger.Options{
		Enabled: cfg.Log.Enabled,
		LogDir:  cfg.Log.Dir,
		Level:   logger.ParseLevel(cfg.Log.Level),
	}); err != nil {
		printVerbose("Warning: logging disabled: %v\n", err)
	}

	store, err := recordstore.Open(recordstore.Options{
		Store:     cfg.Store,
		Database:  cfg.Database,
		Candidate: cfg.Candidate,
		Staged:    cfg.Staged,
		Backup:    cfg.Backup,
	})
	if err != nil {
		return nil, err
	}

	printVerbose("Database: %s\nCandidate: %s\n", cfg.Database, cfg.Candidate)
	return &session{cfg: cfg, store: store, ctrl: store.NewController()}, nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, string(data))
	return err
}
