package assets

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hollowroot/overworld/actor"
	"github.com/hollowroot/overworld/levels"
	"github.com/hollowroot/overworld/tilemap"
)

// Bundle is everything the game needs to leave the loading state.
type Bundle struct {
	Level      *levels.Level
	Map        *tilemap.TileMap
	Background *ebiten.Image
	Sprites    map[actor.Direction]*Sheet
}

// Result is delivered once on the channel returned by StartLoad.
type Result struct {
	Bundle *Bundle
	Err    error
}

var spriteFiles = map[actor.Direction]string{
	actor.DirUp:    "player_up.png",
	actor.DirDown:  "player_down.png",
	actor.DirLeft:  "player_left.png",
	actor.DirRight: "player_right.png",
}

// StartLoad kicks off the asset load in the background and returns the
// channel the single result arrives on. The game loop polls it each tick.
func StartLoad(levelName string, frameCount int) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		b, err := load(levelName, frameCount)
		ch <- Result{Bundle: b, Err: err}
	}()
	return ch
}

// load fetches every required asset concurrently and joins them. Each
// failure is logged on its own so a broken asset is named in the output,
// and any failure fails the whole load. There is no retry or timeout.
func load(levelName string, frameCount int) (*Bundle, error) {
	lvl, err := levels.Load(levelName)
	if err != nil {
		log.Printf("assets: level %s: %v", levelName, err)
		return nil, err
	}

	b := &Bundle{
		Level:   lvl,
		Sprites: make(map[actor.Direction]*Sheet, len(spriteFiles)),
	}

	var g errgroup.Group

	g.Go(func() error {
		img, err := LoadImage(lvl.Background)
		if err != nil {
			log.Printf("assets: background %s: %v", lvl.Background, err)
			return fmt.Errorf("background %s: %w", lvl.Background, err)
		}
		b.Background = img
		return nil
	})

	g.Go(func() error {
		data, err := levels.ReadFile(lvl.Collision)
		if err != nil {
			log.Printf("assets: collision %s: %v", lvl.Collision, err)
			return fmt.Errorf("collision %s: %w", lvl.Collision, err)
		}
		m, err := tilemap.New(lvl.TileSize, lvl.Cols, lvl.Rows, tilemap.ParseCollisionData(string(data)))
		if err != nil {
			log.Printf("assets: collision %s: %v", lvl.Collision, err)
			return fmt.Errorf("collision %s: %w", lvl.Collision, err)
		}
		b.Map = m
		return nil
	})

	sheets := make([]*Sheet, 4)
	for dir, file := range spriteFiles {
		g.Go(func() error {
			img, err := LoadImage(file)
			if err != nil {
				log.Printf("assets: sprite %s: %v", file, err)
				return fmt.Errorf("sprite %s: %w", file, err)
			}
			sheet, err := NewSheet(img, frameCount)
			if err != nil {
				log.Printf("assets: sprite %s: %v", file, err)
				return fmt.Errorf("sprite %s: %w", file, err)
			}
			sheets[dir] = sheet
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for dir := range spriteFiles {
		b.Sprites[dir] = sheets[dir]
	}
	return b, nil
}
