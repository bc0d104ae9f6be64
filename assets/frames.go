package assets

import (
	"fmt"
	"hash/fnv"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// The demo ships no sprite sheets; frames are generated flat-colored
// boxes. Each character gets a base color, each clip shifts it, and each
// frame carries a moving stripe so playback and clip switches are
// visible on screen.

var characterColors = map[string]color.RGBA{
	"player": {R: 90, G: 150, B: 240, A: 255},
	"walker": {R: 110, G: 210, B: 120, A: 255},
}

var frameCache = map[string][]image.Image{}

// Frames returns the frame sequence for one clip of a character,
// generating and caching it on first use.
func Frames(character, clip string, count, w, h int) []image.Image {
	if count <= 0 || w <= 0 || h <= 0 {
		return nil
	}
	// Key includes the geometry so a hot-reloaded clip with a new frame
	// count regenerates instead of hitting a stale entry.
	key := fmt.Sprintf("%s/%s/%d/%dx%d", character, clip, count, w, h)
	if frames, ok := frameCache[key]; ok {
		return frames
	}

	base, ok := characterColors[character]
	if !ok {
		base = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	}
	base = shiftForClip(base, clip)

	frames := make([]image.Image, count)
	for i := 0; i < count; i++ {
		img := ebiten.NewImage(w, h)
		img.Fill(base)

		// Stripe sweeps across the frame sequence.
		stripeH := h / 4
		if stripeH < 2 {
			stripeH = 2
		}
		y := 0
		if count > 1 {
			y = i * (h - stripeH) / (count - 1)
		}
		stripe := img.SubImage(image.Rect(0, y, w, y+stripeH)).(*ebiten.Image)
		stripe.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 200})

		frames[i] = img
	}
	frameCache[key] = frames
	return frames
}

// shiftForClip nudges the base color per clip name so different clips of
// one character are distinguishable.
func shiftForClip(base color.RGBA, clip string) color.RGBA {
	h := fnv.New32a()
	h.Write([]byte(clip))
	n := h.Sum32()
	shift := func(c uint8, d uint32) uint8 {
		v := int(c) + int(d%80) - 40
		if v < 30 {
			v = 30
		}
		if v > 255 {
			v = 255
		}
		return uint8(v)
	}
	return color.RGBA{
		R: shift(base.R, n),
		G: shift(base.G, n>>8),
		B: shift(base.B, n>>16),
		A: 255,
	}
}
