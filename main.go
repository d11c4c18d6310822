package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"circle-snake/game"
	"circle-snake/game/manager"
	"circle-snake/game/types"
	"circle-snake/ui"
	"circle-snake/ui/terminal"

	"golang.org/x/exp/rand"
)

func main() {
	frontend := flag.String("frontend", "desktop", "Frontend to play in: desktop or terminal")
	seed := flag.Uint64("seed", 0, "Food placement seed (0 = SNAKE_SEED or the clock)")
	verbose := flag.Bool("v", false, "Log every simulation tick")
	logFile := flag.String("log", "", "Write logs to this file (terminal frontend discards them by default)")
	flag.Parse()

	log.SetPrefix("[snake] ")
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	closeLog, err := setupLog(*logFile, *frontend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	g := game.NewGame(types.DefaultConfig(), rand.New(rand.NewSource(resolveSeed(*seed))), time.Now())
	g.Verbose = *verbose
	log.Printf("session %s ready (frontend %s)", g.UUID, *frontend)

	switch *frontend {
	case "desktop":
		ui.RunDesktop(g)
	case "terminal":
		err = terminal.Run(g)
	default:
		err = fmt.Errorf("unknown frontend %q", *frontend)
	}
	if err != nil {
		log.Printf("frontend failed: %v", err)
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		closeLog()
		os.Exit(1)
	}

	summary := g.Summary()
	log.Print(summary)
	if *frontend == "terminal" {
		fmt.Println(summary)
	}

	closeLog()
	os.Exit(exitCode(summary.Outcome))
}

// resolveSeed prefers the flag, then SNAKE_SEED, then the clock.
func resolveSeed(flagSeed uint64) uint64 {
	if flagSeed != 0 {
		return flagSeed
	}
	if s := os.Getenv("SNAKE_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			return v
		}
	}
	return uint64(time.Now().UnixNano())
}

func setupLog(path, frontend string) (func(), error) {
	if path == "" {
		if frontend == "terminal" {
			log.SetOutput(io.Discard) // the screen owns the terminal
		}
		return func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	closed := false
	return func() {
		if !closed {
			closed = true
			f.Close()
		}
	}, nil
}

func exitCode(o manager.Outcome) int {
	switch o {
	case manager.WallHit, manager.SelfHit:
		return 2
	default:
		return 0
	}
}
