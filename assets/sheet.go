package assets

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sheet is a horizontal strip of equal-width animation frames.
type Sheet struct {
	img    *ebiten.Image
	frameW int
	frameH int
	count  int
}

// NewSheet splits a strip image into count frames. The image width must
// divide evenly.
func NewSheet(img *ebiten.Image, count int) (*Sheet, error) {
	if count < 1 {
		return nil, fmt.Errorf("assets: sheet frame count %d", count)
	}
	w := img.Bounds().Dx()
	if w%count != 0 {
		return nil, fmt.Errorf("assets: sheet width %d not divisible by %d frames", w, count)
	}
	return &Sheet{
		img:    img,
		frameW: w / count,
		frameH: img.Bounds().Dy(),
		count:  count,
	}, nil
}

// Frame returns the i-th frame as a subimage. Out-of-range indices wrap.
func (s *Sheet) Frame(i int) *ebiten.Image {
	i = ((i % s.count) + s.count) % s.count
	x := s.img.Bounds().Min.X + i*s.frameW
	y := s.img.Bounds().Min.Y
	return s.img.SubImage(image.Rect(x, y, x+s.frameW, y+s.frameH)).(*ebiten.Image)
}

// FrameSize returns the pixel size of one frame.
func (s *Sheet) FrameSize() (int, int) {
	return s.frameW, s.frameH
}

// Count returns the number of frames in the strip.
func (s *Sheet) Count() int {
	return s.count
}
