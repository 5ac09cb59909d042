package main

import (
	"errors"
	"testing"

	"github.com/hollowroot/overworld/assets"
	"github.com/hollowroot/overworld/camera"
	"github.com/hollowroot/overworld/config"
	"github.com/hollowroot/overworld/levels"
	"github.com/hollowroot/overworld/tilemap"
)

func testGame(t *testing.T) (*Game, chan assets.Result) {
	t.Helper()
	cfg := config.Default()
	ch := make(chan assets.Result, 2)
	return &Game{
		cfg:    cfg,
		state:  StateLoading,
		loadCh: ch,
		cam:    camera.New(cfg.ScreenWidth, cfg.ScreenHeight, cfg.Zoom),
	}, ch
}

func testBundle(t *testing.T) *assets.Bundle {
	t.Helper()
	m, err := tilemap.New(32, 50, 38, make([]int, 50*38))
	if err != nil {
		t.Fatalf("tilemap.New: %v", err)
	}
	return &assets.Bundle{
		Level: &levels.Level{
			Name: "test", TileSize: 32, Cols: 50, Rows: 38,
			SpawnX: 24, SpawnY: 19,
		},
		Map: m,
	}
}

func TestLoadingIsNoOpUntilResult(t *testing.T) {
	g, _ := testGame(t)
	for i := 0; i < 5; i++ {
		if err := g.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
	if g.state != StateLoading {
		t.Fatalf("state = %v, want loading", g.state)
	}
	if g.player != nil {
		t.Fatal("no world state should exist while loading")
	}
}

func TestLoadingTransitionToRunning(t *testing.T) {
	g, ch := testGame(t)
	ch <- assets.Result{Bundle: testBundle(t)}

	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if g.state != StateRunning {
		t.Fatalf("state = %v, want running", g.state)
	}
	if g.player == nil {
		t.Fatal("player should be spawned on transition")
	}
	if g.player.X != 24*32 || g.player.Y != 19*32 {
		t.Fatalf("player spawned at (%v, %v), want (768, 608)", g.player.X, g.player.Y)
	}
}

func TestTransitionAppliesOnce(t *testing.T) {
	g, ch := testGame(t)
	ch <- assets.Result{Bundle: testBundle(t)}
	ch <- assets.Result{Err: errors.New("late failure")}

	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if g.state != StateRunning {
		t.Fatalf("state = %v, want running", g.state)
	}
	// A queued second result must never be consumed once running.
	for i := 0; i < 3; i++ {
		if err := g.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
	if g.state != StateRunning || g.loadErr != nil {
		t.Fatalf("state changed after transition: %v (err %v)", g.state, g.loadErr)
	}
}

func TestLoadFailureIsTerminal(t *testing.T) {
	g, ch := testGame(t)
	ch <- assets.Result{Err: errors.New("missing sprite")}

	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if g.state != StateFailed {
		t.Fatalf("state = %v, want failed", g.state)
	}
	if g.loadErr == nil {
		t.Fatal("failure should be recorded")
	}
	for i := 0; i < 5; i++ {
		if err := g.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
	if g.state != StateFailed {
		t.Fatalf("failed state must be permanent, got %v", g.state)
	}
}

func TestCameraFollowsSpawn(t *testing.T) {
	g, ch := testGame(t)
	ch <- assets.Result{Bundle: testBundle(t)}
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}

	// Spawn center is (784, 624); at zoom 2 the 400x300 view centered
	// there sits at (584, 474), inside the 1600x1216 world.
	if g.cam.X != 584 || g.cam.Y != 474 {
		t.Fatalf("camera at (%v, %v), want (584, 474)", g.cam.X, g.cam.Y)
	}
}

func TestStateString(t *testing.T) {
	if StateLoading.String() != "loading" || StateRunning.String() != "running" || StateFailed.String() != "failed" {
		t.Fatal("state names are wrong")
	}
}
