package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/tomz197/shockwave/internal/config"
	"github.com/tomz197/shockwave/internal/game"
	"github.com/tomz197/shockwave/internal/loop"
	"golang.org/x/term"
)

func main() {
	opts := loop.Options{}
	if path := config.GetEnv("SHOCKWAVE_CONFIG", ""); path != "" {
		tuning, err := game.LoadTuning(path)
		if err != nil {
			log.Fatalf("tuning config: %v", err)
		}
		opts.Tuning = &tuning
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	if err := loop.Run(reader, os.Stdout, opts); err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
