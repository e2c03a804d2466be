package main

import (
	"fmt"
	"os"

	"memflip/internal/config"
	"memflip/internal/history"
	"memflip/internal/store"
	"memflip/internal/ui"
)

func main() {
	cfg, err := config.LoadOrCreate(config.DefaultConfigFileName)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	// A missing or corrupt card file starts an empty session; the user is
	// never blocked on load problems.
	cards := store.Load(cfg.CardsPath)

	log, err := history.Open(cfg.HistoryPath)
	if err != nil {
		// Review stats are optional; run without them.
		log = nil
	}
	defer log.Close()

	runErr := ui.Run(cards, log, cfg)

	// Cards are saved exactly once, after the session, whether or not the
	// loop itself failed. A save failure is reported but does not change
	// the session's result.
	if err := cards.Save(cfg.CardsPath); err != nil {
		fmt.Fprintf(os.Stderr, "error saving flashcards: %v\n", err)
	}

	if runErr != nil {
		fmt.Printf("error running program: %v\n", runErr)
		os.Exit(1)
	}
}
