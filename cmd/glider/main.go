// glider is a terminal arcade shooter: steer a glider along the bottom of
// the screen, dodge falling meteors and shoot the ones that break.
//
// Usage:
//
//	glider list              - List available modes
//	glider play [mode]       - Play a mode (default: glider)
//	glider menu              - Start menu to pick modes interactively
//	glider serve             - Start SSH server for remote play
//	glider scores <mode>     - Show high scores and recent runs
//	glider config [mode]     - Print the default config YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.glider/scores.db)
//	--debug         - Enable debug logging
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/meteor-glider/internal/config"
	"github.com/vovakirdan/meteor-glider/internal/core"
	"github.com/vovakirdan/meteor-glider/internal/games/glider"
	"github.com/vovakirdan/meteor-glider/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagDebug  bool

	// Game config flags shared by play and menu
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "glider",
	Short: "Meteor Glider - a falling-meteor shooter for your terminal",
	Long: `Meteor Glider is a terminal arcade game. Steer your glider left and
right, dodge falling meteors and shoot the ones that can be destroyed.
Red hazards cannot be shot down, only avoided.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and recent runs
  config   - Print the default configuration

Examples:
  glider list
  glider play
  glider play glider_classic --difficulty hard
  glider menu
  glider serve --ssh :2222
  glider scores glider`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger returns the logger for interactive commands. The alternate
// screen owns the terminal, so logs go to ~/.glider/glider.log instead of
// stderr. The returned func closes the file.
func newLogger() (*log.Logger, func()) {
	opts := log.Options{ReportTimestamp: true, Prefix: "glider"}
	if flagDebug {
		opts.Level = log.DebugLevel
	}

	home, err := os.UserHomeDir()
	if err == nil {
		dir := filepath.Join(home, ".glider")
		if err = os.MkdirAll(dir, 0o755); err == nil {
			var f *os.File
			f, err = os.OpenFile(filepath.Join(dir, "glider.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
			if err == nil {
				return log.NewWithOptions(f, opts), func() { f.Close() }
			}
		}
	}

	logger := log.NewWithOptions(os.Stderr, opts)
	logger.Warn("could not open log file, logging to stderr", "error", err)
	return logger, func() {}
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database, or returns nil if it is unavailable.
// Games still run without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// applyGameFlags passes --config and --difficulty to the glider package
// before any game instance is reset. A config file that fails to load is
// reported here since the game silently falls back to defaults.
func applyGameFlags(logger *log.Logger) {
	if flagConfig != "" {
		if _, err := config.LoadGlider(flagConfig); err != nil {
			logger.Warn("using default config", "error", err)
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		}
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		logger.Warn("unknown difficulty preset", "preset", flagDifficulty)
		fmt.Fprintf(os.Stderr, "Warning: unknown difficulty %q (expected easy, normal, hard or fixed)\n", flagDifficulty)
	}
	glider.SetConfigPath(flagConfig)
	glider.SetDifficultyPreset(flagDifficulty)
}
