package anim

import (
	"image"
	"time"
)

// MinInterval is the floor for clip intervals. LoopFrames clamps anything
// smaller (including garbage durations converted from NaN seconds) so a
// bad interval cannot spin the frame-advance loop thousands of steps per
// tick.
const MinInterval = time.Millisecond

// Clip is an ordered frame sequence with a fixed per-frame interval,
// activated whenever its rule wins scoring. A controller owns its clips;
// re-registering under an equal rule mutates the clip in place.
type Clip struct {
	frames   []image.Image
	interval time.Duration
	rule     Rule
}

// Rule returns the rule that activates this clip.
func (c *Clip) Rule() Rule { return c.rule }

// Frames returns the number of frames.
func (c *Clip) Frames() int { return len(c.frames) }

// Interval returns the per-frame interval.
func (c *Clip) Interval() time.Duration { return c.interval }
