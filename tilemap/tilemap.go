package tilemap

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TileMap is the static collision grid for a level. Collision is a flat
// row-major array of length Cols*Rows; a value > 0 is a blocked tile.
// The map never changes after load.
type TileMap struct {
	TileSize  int
	Cols      int
	Rows      int
	Collision []int
}

// New validates the grid dimensions against the collision data and returns
// the map.
func New(tileSize, cols, rows int, collision []int) (*TileMap, error) {
	if tileSize <= 0 {
		return nil, fmt.Errorf("tilemap: invalid tile size %d", tileSize)
	}
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("tilemap: invalid dimensions %dx%d", cols, rows)
	}
	if len(collision) != cols*rows {
		return nil, fmt.Errorf("tilemap: collision data length %d, want %d (%dx%d)", len(collision), cols*rows, cols, rows)
	}
	return &TileMap{
		TileSize:  tileSize,
		Cols:      cols,
		Rows:      rows,
		Collision: collision,
	}, nil
}

// Blocked reports whether the pixel coordinate lands on a blocked tile.
// Anything outside the grid counts as blocked; that is what keeps the
// player inside the map, so callers may probe arbitrary coordinates.
func (m *TileMap) Blocked(px, py float64) bool {
	col := floorDiv(px, float64(m.TileSize))
	row := floorDiv(py, float64(m.TileSize))
	if col < 0 || col >= m.Cols || row < 0 || row >= m.Rows {
		return true
	}
	return m.Collision[row*m.Cols+col] > 0
}

// floorDiv is floor(a/b) for a possibly-negative a. Plain int conversion
// truncates toward zero, which would put -5 in tile 0 instead of tile -1.
func floorDiv(a, b float64) int {
	q := a / b
	i := int(q)
	if q < 0 && float64(i) != q {
		i--
	}
	return i
}

// PixelWidth returns the map extent in pixels.
func (m *TileMap) PixelWidth() int {
	return m.Cols * m.TileSize
}

// PixelHeight returns the map extent in pixels.
func (m *TileMap) PixelHeight() int {
	return m.Rows * m.TileSize
}

// ParseCollisionData parses a comma-separated sequence of tile IDs, either
// on a single line or split across several. The source format uses -1 as an
// "empty" sentinel; it is normalized to 0 (passable). Entries that fail to
// parse become 1 (blocked) rather than silently passable.
func ParseCollisionData(data string) []int {
	fields := strings.FieldsFunc(data, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			out = append(out, 1)
			continue
		}
		if n == -1 {
			n = 0
		}
		out = append(out, n)
	}
	return out
}

var overlayColor = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0x50}

// Draw blits the background image at the world origin. The camera transform
// is applied by the caller through op.
func (m *TileMap) Draw(dst *ebiten.Image, bg *ebiten.Image, op *ebiten.DrawImageOptions) {
	if bg == nil {
		return
	}
	dst.DrawImage(bg, op)
}

// DrawDebugOverlay fills every blocked tile with a translucent red square.
// viewX/viewY/zoom describe the camera transform already applied to the
// world, since vector draws in screen space.
func (m *TileMap) DrawDebugOverlay(dst *ebiten.Image, viewX, viewY, zoom float64) {
	ts := float64(m.TileSize)
	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Cols; col++ {
			if m.Collision[row*m.Cols+col] <= 0 {
				continue
			}
			sx := (float64(col)*ts - viewX) * zoom
			sy := (float64(row)*ts - viewY) * zoom
			vector.DrawFilledRect(dst, float32(sx), float32(sy), float32(ts*zoom), float32(ts*zoom), overlayColor, false)
		}
	}
}
