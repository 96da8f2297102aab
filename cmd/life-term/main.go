package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"mad-life/internal/app"
	"mad-life/internal/term"
	"mad-life/pkg/pattern"
	_ "mad-life/pkg/sims/life"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Size = 128
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "write diagnostics to this file instead of discarding them")
	flag.Parse()

	board, err := cfg.NewBoard()
	if err != nil {
		log.Fatal(err)
	}
	session := app.NewSession(board, cfg.View(), cfg.TPS)
	// the terminal owns stdout and stderr while the screen is up
	logger := log.New(io.Discard, "", 0)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		logger = log.New(f, "life-term ", log.LstdFlags)
	}
	session.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.Pattern != "" {
		format, err := cfg.PatternFormat()
		if err != nil {
			log.Fatal(err)
		}
		if err := session.Import(ctx, format, pattern.FileSource(cfg.Pattern)); err != nil {
			log.Fatalf("load %s: %v", cfg.Pattern, err)
		}
	} else {
		session.Randomize(cfg.Seed, cfg.Density)
	}
	session.SetPlaying(cfg.Play)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}
	defer screen.Fini()

	if err := term.New(screen, session, cfg).Run(ctx); err != nil {
		screen.Fini()
		log.Fatal(err)
	}
}
