package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// State holds the input snapshot for one update tick. Update polls the
// keyboard exactly once per tick, so every reader inside the tick sees the
// same values.
type State struct {
	// Held movement inputs. Opposite directions may both be true; the
	// actor resolves that to a zero displacement on the shared axis.
	Up    bool
	Down  bool
	Left  bool
	Right bool

	// Edge-triggered meta inputs, true only on the press frame.
	DebugToggled bool
	PauseToggled bool
	QuitPressed  bool
}

// Movement key pairs: either key in a pair activates the direction.
var (
	upKeys    = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}
	downKeys  = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
)

const (
	debugKey = ebiten.KeyF3
	pauseKey = ebiten.KeyEscape
	quitKey  = ebiten.KeyF12
)

// Update polls the keyboard and overwrites the snapshot.
func (s *State) Update() {
	s.Up = anyPressed(upKeys)
	s.Down = anyPressed(downKeys)
	s.Left = anyPressed(leftKeys)
	s.Right = anyPressed(rightKeys)

	s.DebugToggled = inpututil.IsKeyJustPressed(debugKey)
	s.PauseToggled = inpututil.IsKeyJustPressed(pauseKey)
	s.QuitPressed = inpututil.IsKeyJustPressed(quitKey)
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
