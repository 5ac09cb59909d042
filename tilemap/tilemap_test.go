package tilemap

import (
	"reflect"
	"testing"
)

func mustMap(t *testing.T, tileSize, cols, rows int, collision []int) *TileMap {
	t.Helper()
	m, err := New(tileSize, cols, rows, collision)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestNewValidation(t *testing.T) {
	cases := []struct {
		name      string
		tileSize  int
		cols      int
		rows      int
		collision []int
		wantErr   bool
	}{
		{"valid", 32, 2, 1, []int{0, 1}, false},
		{"zero_tile_size", 0, 2, 1, []int{0, 1}, true},
		{"zero_cols", 32, 0, 1, nil, true},
		{"length_mismatch", 32, 2, 2, []int{0, 1}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := New(c.tileSize, c.cols, c.rows, c.collision)
			if (err != nil) != c.wantErr {
				t.Fatalf("New err=%v, wantErr=%v", err, c.wantErr)
			}
		})
	}
}

func TestBlocked(t *testing.T) {
	// The worked example: tileSize=32, 2x1 grid, right tile blocked.
	m := mustMap(t, 32, 2, 1, []int{0, 1})

	cases := []struct {
		name string
		x, y float64
		want bool
	}{
		{"left_tile_free", 10, 0, false},
		{"right_tile_blocked", 40, 0, true},
		{"negative_x", -5, 0, true},
		{"negative_y", 0, -5, true},
		{"past_right_edge", 64, 0, true},
		{"past_bottom_edge", 0, 32, true},
		{"very_large", 1e12, 1e12, true},
		{"very_negative", -1e12, -1e12, true},
		{"boundary_last_free_pixel", 31.9, 31.9, false},
		{"boundary_first_blocked_pixel", 32, 0, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := m.Blocked(c.x, c.y); got != c.want {
				t.Fatalf("Blocked(%v, %v) = %v, want %v", c.x, c.y, got, c.want)
			}
		})
	}
}

func TestBlockedMatchesDataInBounds(t *testing.T) {
	collision := []int{
		0, 1, 0,
		2, 0, -0,
	}
	m := mustMap(t, 16, 3, 2, collision)
	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Cols; col++ {
			want := collision[row*m.Cols+col] > 0
			px := float64(col*16 + 8)
			py := float64(row*16 + 8)
			if got := m.Blocked(px, py); got != want {
				t.Fatalf("Blocked(%v, %v) = %v, want %v (tile %d,%d)", px, py, got, want, col, row)
			}
		}
	}
}

func TestFloorDivNegative(t *testing.T) {
	// Truncation toward zero would map -5 to tile 0; it must be tile -1.
	if got := floorDiv(-5, 32); got != -1 {
		t.Fatalf("floorDiv(-5, 32) = %d, want -1", got)
	}
	if got := floorDiv(5, 32); got != 0 {
		t.Fatalf("floorDiv(5, 32) = %d, want 0", got)
	}
	if got := floorDiv(-32, 32); got != -1 {
		t.Fatalf("floorDiv(-32, 32) = %d, want -1", got)
	}
	if got := floorDiv(-33, 32); got != -2 {
		t.Fatalf("floorDiv(-33, 32) = %d, want -2", got)
	}
}

func TestParseCollisionData(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []int
	}{
		{"simple", "0,1,2", []int{0, 1, 2}},
		{"sentinel_normalized", "-1,0,-1,3", []int{0, 0, 0, 3}},
		{"other_negatives_kept", "-2,5", []int{-2, 5}},
		{"whitespace_and_newlines", " 0 , 1 ,\n2,\n-1 ", []int{0, 1, 2, 0}},
		{"trailing_comma", "0,1,", []int{0, 1}},
		{"malformed_becomes_blocked", "0,x,2", []int{0, 1, 2}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ParseCollisionData(c.in)
			if !reflect.DeepEqual(got, c.want) {
				t.Fatalf("ParseCollisionData(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestPixelExtent(t *testing.T) {
	m := mustMap(t, 32, 50, 38, make([]int, 50*38))
	if m.PixelWidth() != 1600 || m.PixelHeight() != 1216 {
		t.Fatalf("pixel extent = %dx%d, want 1600x1216", m.PixelWidth(), m.PixelHeight())
	}
}
