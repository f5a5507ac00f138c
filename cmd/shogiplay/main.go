package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hailam/shogiplay/internal/shogi"
	"github.com/hailam/shogiplay/internal/storage"
)

var (
	sfenFlag  = flag.String("sfen", "", "position to load (defaults to the start position)")
	loadFlag  = flag.String("load", "", "load a saved position by name instead of -sfen")
	saveFlag  = flag.String("save", "", "save the position under this name and exit")
	listFlag  = flag.Bool("list", false, "list saved positions and exit")
	movesFlag = flag.Bool("moves", false, "print the pseudo-legal moves for the position")
	statsFlag = flag.Bool("stats", false, "print recorded game statistics and exit")
)

func main() {
	flag.Parse()
	log.SetFlags(0)

	if *listFlag || *statsFlag || *loadFlag != "" || *saveFlag != "" {
		store, err := storage.NewStorage()
		if err != nil {
			log.Fatalf("open storage: %v", err)
		}
		defer store.Close()

		if *listFlag {
			listPositions(store)
			return
		}
		if *statsFlag {
			printStats(store)
			return
		}
		run(store)
		return
	}

	run(nil)
}

func run(store *storage.Storage) {
	sfen := *sfenFlag
	if *loadFlag != "" {
		if sfen != "" {
			log.Fatal("-load and -sfen are mutually exclusive")
		}
		loaded, err := store.LoadPosition(*loadFlag)
		if err != nil {
			log.Fatal(err)
		}
		sfen = loaded
	}
	if sfen == "" {
		sfen = shogi.StartSFEN
	}

	board := shogi.NewBoard()
	if err := board.LoadSFEN(sfen); err != nil {
		log.Fatalf("parse SFEN: %v", err)
	}

	if *saveFlag != "" {
		if err := store.SavePosition(*saveFlag, board.ToSFEN()); err != nil {
			log.Fatalf("save position: %v", err)
		}
		fmt.Printf("saved %q\n", *saveFlag)
		return
	}

	fmt.Println(board)
	fmt.Printf("sfen: %s\n", board.ToSFEN())
	fmt.Printf("hash: %016x\n", board.Hash())

	if *movesFlag {
		ml := board.GenerateMoves()
		fmt.Printf("%d pseudo-legal moves:\n", ml.Len())
		for _, m := range ml.Slice() {
			fmt.Printf("  %s\n", m)
		}
	}
}

func listPositions(store *storage.Storage) {
	positions, err := store.ListPositions()
	if err != nil {
		log.Fatalf("list positions: %v", err)
	}
	if len(positions) == 0 {
		fmt.Println("no saved positions")
		return
	}
	for _, p := range positions {
		fmt.Printf("%-20s %s  (saved %s)\n",
			p.Name, p.SFEN, p.SavedAt.Format("2006-01-02 15:04"))
	}
}

func printStats(store *storage.Storage) {
	stats, err := store.LoadStats()
	if err != nil {
		log.Fatalf("load stats: %v", err)
	}
	if stats.GamesPlayed == 0 {
		fmt.Println("no games recorded")
		return
	}
	fmt.Printf("games played: %d\n", stats.GamesPlayed)
	fmt.Printf("sente wins:   %d\n", stats.SenteWins)
	fmt.Printf("gote wins:    %d\n", stats.GoteWins)
	fmt.Printf("draws:        %d\n", stats.Draws)
	fmt.Printf("total moves:  %d\n", stats.TotalMoves)
	fmt.Printf("sente win rate: %.1f%%\n", stats.WinRate())
}
