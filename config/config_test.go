package config

import (
	"strings"
	"testing"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte(""))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("empty yaml should yield defaults, got %+v", cfg)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("zoom: 3\nplayer:\n  speed: 2\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Zoom != 3 {
		t.Fatalf("zoom = %v, want 3", cfg.Zoom)
	}
	if cfg.Player.Speed != 2 {
		t.Fatalf("speed = %v, want 2", cfg.Player.Speed)
	}
	// untouched fields keep defaults
	if cfg.ScreenWidth != 800 || cfg.Player.FrameCount != 4 {
		t.Fatalf("defaults not preserved: %+v", cfg)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{"bad_yaml", "zoom: [", "unmarshal"},
		{"negative_zoom", "zoom: -1", "zoom"},
		{"zero_speed", "player:\n  speed: -4", "speed"},
		{"frame_count", "player:\n  frame_count: -2", "frame count"},
		{"hitbox_wider_than_player", "player:\n  width: 10", "padding"},
		{"feet_taller_than_player", "player:\n  feet_height: 64", "feet height"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), c.want) {
				t.Fatalf("error %q should mention %q", err, c.want)
			}
		})
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Level == "" || cfg.ScreenWidth <= 0 {
		t.Fatalf("embedded config incomplete: %+v", cfg)
	}
}
