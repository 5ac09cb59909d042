package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hollowroot/overworld/config"
)

func main() {
	debug := flag.Bool("debug", false, "start with the collision debug overlay on")
	watch := flag.Bool("watch", false, "hot-reload on-disk config overrides")
	levelName := flag.String("level", "", "level name in levels/ (basename, .yaml optional)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if *levelName != "" {
		cfg.Level = *levelName
	}

	var watcher *config.Watcher
	if *watch {
		watcher, err = config.NewWatcher(config.DiskDir)
		if err != nil {
			log.Printf("config watch disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("overworld")

	game := NewGame(cfg, watcher)
	game.debug = *debug

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
