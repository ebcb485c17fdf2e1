package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/saccade/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	specName := flag.String("spec", prefabs.DefaultSequenceFile, "sequence spec in prefabs/ (embedded copy is used when missing on disk)")
	watch := flag.Bool("watch", false, "hot-reload prefabs and scripts from disk")
	seed := flag.Uint64("seed", 0, "particle random seed (0 = time based)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w*2/3, h*2/3)
	ebiten.SetWindowTitle("saccade")

	game := NewGame(GameOptions{
		SpecName: *specName,
		Debug:    *debug,
		Watch:    *watch,
		Seed:     *seed,
	})

	err := ebiten.RunGame(game)
	if cerr := game.Close(); cerr != nil {
		log.Printf("close watcher: %v", cerr)
	}
	if err != nil {
		log.Fatal(err)
	}
}
