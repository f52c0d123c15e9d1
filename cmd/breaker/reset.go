package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetScoresCmd = &cobra.Command{
	Use:   "reset-scores",
	Short: "Delete the high score and session history",
	Args:  cobra.NoArgs,
	Run:   runResetScores,
}

func runResetScores(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	store, err := openBackend(cfg)
	if err != nil {
		fail("opening score storage: %v", err)
	}
	defer store.Close()

	if err := store.Clear(); err != nil {
		store.Close()
		fail("%v", err)
	}
	fmt.Println("Scores cleared.")
}
