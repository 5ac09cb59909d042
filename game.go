package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hollowroot/overworld/actor"
	"github.com/hollowroot/overworld/assets"
	"github.com/hollowroot/overworld/camera"
	"github.com/hollowroot/overworld/config"
	"github.com/hollowroot/overworld/input"
)

// State tags the game's load lifecycle. The only transition is
// Loading -> Running or Loading -> Failed, applied exactly once when the
// aggregated asset load resolves.
type State int

const (
	StateLoading State = iota
	StateRunning
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateRunning:
		return "running"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Game owns all world state and drives the per-tick update/draw cycle.
// Nothing here is reachable globally; components receive what they need
// as arguments.
type Game struct {
	cfg   config.Config
	state State

	loadCh  <-chan assets.Result
	loadErr error
	bundle  *assets.Bundle

	in     input.State
	player *actor.Player
	cam    *camera.Camera

	debug  bool
	paused bool
	quit   bool

	pauseUI *ebitenui.UI
	watcher *config.Watcher
}

// NewGame starts the asset load and returns a game in the loading state.
func NewGame(cfg config.Config, watcher *config.Watcher) *Game {
	g := &Game{
		cfg:     cfg,
		state:   StateLoading,
		loadCh:  assets.StartLoad(cfg.Level, cfg.Player.FrameCount),
		cam:     camera.New(cfg.ScreenWidth, cfg.ScreenHeight, cfg.Zoom),
		watcher: watcher,
	}
	g.pauseUI = NewPauseUI(g)
	return g
}

func (g *Game) Update() error {
	g.in.Update()
	if g.in.QuitPressed || g.quit {
		return ebiten.Termination
	}

	g.pollConfigReload()

	switch g.state {
	case StateLoading:
		g.pollLoad()
		return nil
	case StateFailed:
		return nil
	}

	if g.in.DebugToggled {
		g.debug = !g.debug
	}
	if g.in.PauseToggled {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	// Motion first, then camera, so the camera follows the post-move
	// position within the same tick.
	g.player.Update(&g.in, g.bundle.Map)
	g.cam.Update(g.player.Center())
	return nil
}

// pollLoad applies the loading transition when the result arrives. The
// receive is non-blocking; until then each tick is a no-op.
func (g *Game) pollLoad() {
	select {
	case res := <-g.loadCh:
		if res.Err != nil {
			g.loadErr = res.Err
			g.state = StateFailed
			log.Printf("asset load failed: %v", res.Err)
			return
		}
		g.bundle = res.Bundle
		g.spawnPlayer()
		g.state = StateRunning
	default:
	}
}

func (g *Game) spawnPlayer() {
	lvl := g.bundle.Level
	ts := float64(lvl.TileSize)
	pc := g.cfg.Player
	g.player = actor.NewPlayer(actor.Config{
		X:            float64(lvl.SpawnX) * ts,
		Y:            float64(lvl.SpawnY) * ts,
		Width:        pc.Width,
		Height:       pc.Height,
		Speed:        pc.Speed,
		FrameCount:   pc.FrameCount,
		FrameAdvance: pc.FrameAdvance,
		HitboxPadX:   pc.HitboxPadX,
		FeetHeight:   pc.FeetHeight,
	})
	g.cam.SetWorldBounds(g.bundle.Map.PixelWidth(), g.bundle.Map.PixelHeight())
	g.cam.Update(g.player.Center())
}

// pollConfigReload drains watcher events and swaps live tunables. The grid
// itself stays immutable for the run; only speed and zoom move.
func (g *Game) pollConfigReload() {
	if g.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("config changed: %s", name)
			reload = true
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("config watch: %v", err)
		default:
			if reload {
				g.applyConfigReload()
			}
			return
		}
	}
}

func (g *Game) applyConfigReload() {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("config reload rejected: %v", err)
		return
	}
	g.cfg.Zoom = cfg.Zoom
	g.cfg.Player.Speed = cfg.Player.Speed
	g.cam.SetZoom(cfg.Zoom)
	if g.player != nil {
		g.player.Speed = cfg.Player.Speed
	}
	log.Printf("config reloaded: speed=%v zoom=%v", cfg.Player.Speed, cfg.Zoom)
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.state {
	case StateLoading:
		ebitenutil.DebugPrint(screen, "Loading...")
		return
	case StateFailed:
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Asset load failed:\n%v", g.loadErr))
		return
	}

	// Map, then overlays, then the player, all under the camera transform.
	op := &ebiten.DrawImageOptions{}
	g.cam.Apply(op)
	g.bundle.Map.Draw(screen, g.bundle.Background, op)

	viewX, viewY := g.cam.ViewTopLeft()
	zoom := g.cam.Zoom()
	if g.debug {
		g.bundle.Map.DrawDebugOverlay(screen, viewX, viewY, zoom)
	}

	g.drawPlayer(screen)

	if g.debug {
		g.drawFeetHitbox(screen, viewX, viewY, zoom)
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.2f  pos: (%0.0f, %0.0f)  facing: %s", ebiten.ActualFPS(), g.player.X, g.player.Y, g.player.Facing))
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) drawPlayer(screen *ebiten.Image) {
	sheet := g.bundle.Sprites[g.player.Facing]
	frame := sheet.Frame(g.player.FrameIndex())

	// Scale the frame to the configured player size, place it in world
	// space, then apply the camera on top.
	fw, fh := sheet.FrameSize()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.player.Width/float64(fw), g.player.Height/float64(fh))
	op.GeoM.Translate(g.player.X, g.player.Y)
	g.cam.Apply(op)
	screen.DrawImage(frame, op)
}

func (g *Game) drawFeetHitbox(screen *ebiten.Image, viewX, viewY, zoom float64) {
	r := g.player.FeetRect(g.player.X, g.player.Y)
	sx := (r.X - viewX) * zoom
	sy := (r.Y - viewY) * zoom
	vector.StrokeRect(screen, float32(sx), float32(sy), float32(r.Width*zoom), float32(r.Height*zoom), 1, color.RGBA{G: 0xff, A: 0xff}, false)
}

// Layout fixes the logical surface; the window may scale it but the game
// never sees a different size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}
