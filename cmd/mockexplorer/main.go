package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/mockdiff/internal/config"
	"github.com/joshuapare/mockdiff/internal/logger"
	"github.com/joshuapare/mockdiff/internal/recordstore"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// options holds what main parsed from the command line
type options struct {
	debug      bool
	staged     bool
	storeName  string
	configPath string
	positional []string
}

// parseArgs pulls flags out of args, leaving positional arguments in order
func parseArgs(args []string) (options, error) {
	var opts options
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--debug", "-d":
			opts.debug = true
		case "--staged":
			opts.staged = true
		case "--store", "--config":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s needs a value", arg)
			}
			i++
			if arg == "--store" {
				opts.storeName = args[i]
			} else {
				opts.configPath = args[i]
			}
		default:
			opts.positional = append(opts.positional, arg)
		}
	}
	return opts, nil
}

// resolveConfig merges the config file with command-line options
func resolveConfig(opts options) (config.Config, error) {
	path := opts.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if len(opts.positional) > 0 {
		cfg.Database = opts.positional[0]
	}
	if len(opts.positional) > 1 {
		cfg.Candidate = opts.positional[1]
	}
	if opts.storeName != "" {
		cfg.Store = opts.storeName
	}
	if opts.staged {
		cfg.Staged = true
	}
	if opts.debug {
		cfg.Log.Enabled = true
		cfg.Log.Level = "debug"
	}
	return cfg, cfg.Validate()
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	if len(opts.positional) > 0 {
		switch opts.positional[0] {
		case "--help", "-h":
			printHelp()
			os.Exit(0)
		case "--version", "-v":
			fmt.Printf("mockexplorer %s\n", version)
			fmt.Printf("  commit: %s\n", commit)
			fmt.Printf("  built: %s\n", date)
			os.Exit(0)
		}
	}

	cfg, err := resolveConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	// Initialize logger (must be before any logging calls)
	level := logger.ParseLevel(cfg.Log.Level)
	if opts.debug {
		level = slog.LevelDebug
	}
	if err := logger.Init(logger.Options{
		Enabled: cfg.Log.Enabled,
		LogDir:  cfg.Log.Dir,
		Level:   level,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}

	logger.Info("starting mockexplorer", "database", cfg.Database, "candidate", cfg.Candidate, "store", cfg.Store)

	store, err := recordstore.Open(recordstore.Options{
		Store:     cfg.Store,
		Database:  cfg.Database,
		Candidate: cfg.Candidate,
		Staged:    cfg.Staged,
		Backup:    cfg.Backup,
	})
	if err != nil {
		logger.Error("open failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(
		NewModel(store, cfg.Database, cfg.Candidate),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		logger.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	if model, ok := finalModel.(Model); ok && model.ctrl.Pending().Len() > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %d staged update(s) were not written\n", model.ctrl.Pending().Len())
	}

	logger.Info("mockexplorer exited normally")
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: mockexplorer [options] <database.json> <mock.json>\n")
	fmt.Fprintf(os.Stderr, "Try 'mockexplorer --help' for more information.\n")
}

func printHelp() {
	fmt.Println("mockexplorer - Interactive TUI for comparing mock records with database records")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  mockexplorer [options] <database.json> <mock.json>")
	fmt.Println()
	fmt.Println("DESCRIPTION:")
	fmt.Println("  Shows the database record as a tree with every value that differs from")
	fmt.Println("  the mock flagged. Single values can be copied from the mock into the")
	fmt.Println("  database, a missing record can be created from the mock, and the whole")
	fmt.Println("  mock can be approved.")
	fmt.Println()
	fmt.Println("  Keys:")
	fmt.Println("    ↑/k, ↓/j    Navigate up/down")
	fmt.Println("    →/l, ←/h    Expand / collapse")
	fmt.Println("    Tab         Switch between database and mock")
	fmt.Println("    t           Transfer the mock value under the cursor")
	fmt.Println("    w           Write staged transfers (--staged)")
	fmt.Println("    n           Create the database record from the mock")
	fmt.Println("    A           Approve the mock")
	fmt.Println("    ?           Show help")
	fmt.Println("    q           Quit")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  --store <name>   Store name used as the path root (default from config)")
	fmt.Println("  --config <file>  Config file (default ~/.mockdiff/config.yaml)")
	fmt.Println("  --staged         Hold transfers until written with w")
	fmt.Println("  -d, --debug      Enable debug logging to ~/.mockdiff/logs/")
	fmt.Println("  -h, --help       Show this help message")
	fmt.Println("  -v, --version    Show version information")
	fmt.Println()
	fmt.Println("For non-interactive operations, use the 'mockdiff' command instead.")
}
