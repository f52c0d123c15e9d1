package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/binary-breaker/internal/platform/tui"
	"github.com/vovakirdan/binary-breaker/internal/storage"
)

var flagNoCheats bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Binary Breaker.

Controls:
  a s d f    - Bits 3 2 1 0 (left to right, as shown on screen)
  8 4 2 1    - Same bits, by value
  Enter      - Confirm
  Backspace  - Cancel (clear the answer)
  ?          - Show all keys
  Q/Ctrl+C   - Quit

Holding Cancel for three seconds skips three levels unless --no-cheats is
given or rules.cheats is false.

Examples:
  breaker play
  breaker play --seed 42
  breaker play --no-cheats --db /tmp/scores.db`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoCheats, "no-cheats", false, "Disable the level skip")
}

func runPlay(cmd *cobra.Command, args []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fail("play needs an interactive terminal")
	}

	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	if flagNoCheats {
		cfg.Rules.Cheats = false
	}

	logger, closer, err := newLogger(cfg)
	if err != nil {
		fail("%v", err)
	}
	defer closer.Close()

	// Open score storage
	var scores storage.Backend
	scores, err = openBackend(cfg)
	if err != nil {
		// Continue without persistence - the game still works
		logger.Warn("could not open score storage, scores will not be kept", "driver", cfg.Storage.Driver, "error", err)
		scores = storage.NewMemory()
	}

	runErr := tui.Run(tui.Options{
		Rules:      cfg.BreakerRules(),
		Debounce:   cfg.Timing.Debounce(),
		HoldWindow: cfg.Timing.HoldWindow(),
		Seed:       flagSeed,
		Scores:     scores,
		Logger:     logger,
	})

	// Close store before potential exit
	if err := scores.Close(); err != nil {
		logger.Warn("could not close score storage", "error", err)
	}

	if runErr != nil {
		closer.Close()
		fail("running game: %v", runErr)
	}
}
