package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/binary-breaker/internal/platform/tui"
	"github.com/vovakirdan/binary-breaker/internal/storage"
)

const maxSessions = 10

var flagPlain bool

// sessionLister is implemented by backends that keep session history.
type sessionLister interface {
	TopSessions(limit int) ([]storage.SessionEntry, error)
}

// statsProvider is implemented by backends that aggregate history.
type statsProvider interface {
	Stats() (*storage.Stats, error)
}

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score and best sessions",
	Long: `Display the high score and the top 10 recorded sessions.

On a terminal the sessions are shown in a scrollable table; use --plain or
pipe the output for text.

Examples:
  breaker scores
  breaker scores --plain`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print as text")
}

func runScores(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	store, err := openBackend(cfg)
	if err != nil {
		fail("opening score storage: %v", err)
	}
	defer store.Close()

	highScore, err := store.LoadHighScore()
	if err != nil {
		// Same rule as the game: unreadable means none
		highScore = 0
	}

	board := tui.Scoreboard{HighScore: highScore}
	if lister, ok := store.(sessionLister); ok {
		board.Sessions, err = lister.TopSessions(maxSessions)
		if err != nil {
			store.Close()
			fail("retrieving sessions: %v", err)
		}
	}
	if sp, ok := store.(statsProvider); ok {
		if stats, err := sp.Stats(); err == nil {
			board.Stats = stats
		}
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		height := 24 // Default
		if _, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			height = h
		}
		if err := tui.RunScoreboard(board, height); err != nil {
			store.Close()
			fail("%v", err)
		}
		return
	}

	printScores(board)
}

func printScores(board tui.Scoreboard) {
	fmt.Printf("High Score: %d\n", board.HighScore)
	fmt.Println()

	if len(board.Sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'breaker play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-5s  %-10s  %s\n", "Rank", "Score", "Level", "Outcome", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %-10s  %s\n", "----", "-----", "-----", "-------", "----")

	for i, e := range board.Sessions {
		fmt.Printf("  %-4d  %-6d  %-5d  %-10s  %s\n", i+1, e.Score, e.Level, e.Outcome, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if st := board.Stats; st != nil {
		fmt.Println()
		fmt.Printf("Sessions: %d  Wins: %d  Best level: %d  Average score: %.1f\n",
			st.Sessions, st.Wins, st.BestLevel, st.AvgScore)
	}
}
