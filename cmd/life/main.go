//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"mad-life/internal/app"
	"mad-life/pkg/pattern"
	_ "mad-life/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	board, err := cfg.NewBoard()
	if err != nil {
		log.Fatal(err)
	}
	session := app.NewSession(board, cfg.View(), cfg.TPS)
	if cfg.Pattern != "" {
		format, err := cfg.PatternFormat()
		if err != nil {
			log.Fatal(err)
		}
		if err := session.Import(context.Background(), format, pattern.FileSource(cfg.Pattern)); err != nil {
			log.Fatalf("load %s: %v", cfg.Pattern, err)
		}
	} else {
		session.Randomize(cfg.Seed, cfg.Density)
	}
	session.SetPlaying(cfg.Play)

	game := app.New(session, cfg)
	w, h := game.WindowSize()

	ebiten.SetWindowTitle("mad-life — " + board.Name())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
