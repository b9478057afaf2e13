// snake is a grid snake on a wrapping arena, played in the terminal.
//
// Usage:
//
//	snake list              - List available games
//	snake play              - Play in the terminal
//	snake menu              - Start menu with play and history
//	snake serve             - Start SSH server for remote play
//	snake scores            - Show the session history
//	snake sim               - Run the simulation headless and print YAML
//
// Global flags:
//
//	--fps <rate>        - Frames per second (default: 60)
//	--seed <value>      - RNG seed for reproducible food placement
//	--db <path>         - Session database (default: ~/.snake/sessions.db)
//	--config <path>     - Custom snake.yaml
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/logging"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string

	logFile io.Closer
)

// Commands that take over the terminal log to a file instead of stderr.
const (
	annotationTUI  = "tui"
	defaultTUILogs = "~/.snake/snake.log"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - steer a growing chain around a wrapping grid",
	Long: `Snake runs a grid snake on a toroidal arena: the head moves one cell
every 150ms, leaving one edge brings it back on the opposite edge, and
every piece of food eaten appends a segment and places new food.

Available commands:
  list     - Show all available games
  play     - Play in this terminal
  menu     - Menu with play and session history
  serve    - Start SSH server for remote play
  scores   - View session history
  sim      - Run headless and print snapshots as YAML

Examples:
  snake play
  snake play --config ./snake.yaml --seed 42
  snake serve --ssh :2222
  snake sim --frames 300 --input 20:left,45:down --trace`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frames per second")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time, fixed for sim)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/sessions.db", "Path to session database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (full-screen commands default to "+defaultTUILogs+")")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// setup installs the global logger and the game config path.
func setup(cmd *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	level, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		return err
	}

	path := flagLogFile
	if path == "" && cmd.Annotations[annotationTUI] == "true" {
		path = defaultTUILogs
	}

	var w io.Writer = os.Stderr
	if path != "" {
		f, err := logging.OpenFile(path)
		if err != nil {
			return err
		}
		logFile = f
		w = f
	}

	log.SetDefault(logging.New(logging.Options{
		Writer:     w,
		Level:      level,
		Timestamps: true,
	}))

	snake.SetConfigPath(flagConfig)
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// playerName returns the local user for the session history.
func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}
