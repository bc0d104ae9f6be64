package fonts

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var source *text.GoTextFaceSource

func init() {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("load embedded font: %v", err)
	}
	source = s
}

// Face returns a Go Regular face at the given size.
func Face(size float64) text.Face {
	return &text.GoTextFace{
		Source: source,
		Size:   size,
	}
}
