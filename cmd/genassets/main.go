package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
)

// genassets writes placeholder art so the game runs before real assets
// exist: a checkerboard background for each level and the four directional
// player strips.

const (
	tileSize   = 32
	frameCount = 4
)

var (
	grassA = color.RGBA{R: 88, G: 148, B: 84, A: 255}
	grassB = color.RGBA{R: 96, G: 156, B: 92, A: 255}
	body   = color.RGBA{R: 230, G: 180, B: 70, A: 255}
	marker = color.RGBA{R: 40, G: 40, B: 40, A: 255}
)

func main() {
	outDir := flag.String("out", "assets", "directory to write sprite strips into")
	mapOut := flag.String("mapout", "assets", "directory to write the background into")
	cols := flag.Int("cols", 50, "map width in tiles")
	rows := flag.Int("rows", 38, "map height in tiles")
	name := flag.String("name", "town", "level name, used for the background filename")
	flag.Parse()

	if err := writeBackground(filepath.Join(*mapOut, *name+".png"), *cols, *rows); err != nil {
		log.Fatal(err)
	}

	dirs := map[string][2]int{
		"up":    {0, -1},
		"down":  {0, 1},
		"left":  {-1, 0},
		"right": {1, 0},
	}
	for dir, d := range dirs {
		path := filepath.Join(*outDir, "player_"+dir+".png")
		if err := writeStrip(path, d[0], d[1]); err != nil {
			log.Fatal(err)
		}
	}

	fmt.Println("placeholder assets written")
}

func writeBackground(path string, cols, rows int) error {
	img := image.NewRGBA(image.Rect(0, 0, cols*tileSize, rows*tileSize))
	for ty := 0; ty < rows; ty++ {
		for tx := 0; tx < cols; tx++ {
			c := grassA
			if (tx+ty)%2 == 1 {
				c = grassB
			}
			fillTile(img, tx, ty, c)
		}
	}
	return writePNG(path, img)
}

// writeStrip draws frameCount frames of a square walker. The direction
// marker is a small block offset toward the facing; the walk cycle wobbles
// it one pixel per frame so animation is visible.
func writeStrip(path string, dx, dy int) error {
	img := image.NewRGBA(image.Rect(0, 0, frameCount*tileSize, tileSize))
	for f := 0; f < frameCount; f++ {
		x0 := f * tileSize
		for y := 4; y < tileSize-4; y++ {
			for x := 4; x < tileSize-4; x++ {
				img.Set(x0+x, y, body)
			}
		}
		wobble := f % 2
		mx := x0 + tileSize/2 + dx*8 - 3
		my := tileSize/2 + dy*8 - 3 + wobble
		for y := my; y < my+6; y++ {
			for x := mx; x < mx+6; x++ {
				img.Set(x, y, marker)
			}
		}
	}
	return writePNG(path, img)
}

func fillTile(img *image.RGBA, tx, ty int, c color.RGBA) {
	for y := ty * tileSize; y < (ty+1)*tileSize; y++ {
		for x := tx * tileSize; x < (tx+1)*tileSize; x++ {
			img.Set(x, y, c)
		}
	}
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
