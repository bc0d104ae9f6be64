package assets

import (
	"embed"
	"fmt"

	"github.com/lafriks/go-tiled"
)

//go:embed all:levels
var levelFS embed.FS

// SolidTile is one solid collision tile in level space.
type SolidTile struct {
	X, Y, W, H float64
}

// Level is the collision geometry of the demo level.
type Level struct {
	Width  int // pixels
	Height int
	Solids []SolidTile
}

// LoadLevel parses the embedded TMX map. Tiles on the "solid" layer
// become collision rectangles; the demo draws them directly, there is no
// tile art.
func LoadLevel() (*Level, error) {
	levelMap, err := tiled.LoadFile("levels/demo.tmx", tiled.WithFileSystem(levelFS))
	if err != nil {
		return nil, fmt.Errorf("load TMX: %w", err)
	}

	level := &Level{
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != "solid" {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				if layer.Tiles[y*levelMap.Width+x].IsNil() {
					continue
				}
				level.Solids = append(level.Solids, SolidTile{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
		break
	}

	if len(level.Solids) == 0 {
		return nil, fmt.Errorf("level has no solid layer")
	}
	return level, nil
}
