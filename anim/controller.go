package anim

import "time"

type playbackMode int

const (
	modeIdle playbackMode = iota
	modePlaying
)

// Controller owns the clips of one sprite and drives their selection and
// playback. It is created lazily by Registry.LoopFrames and removed when
// its sprite reports destroyed.
type Controller struct {
	sprite Sprite
	clips  []*Clip

	mode    playbackMode
	active  *Clip // valid only in modePlaying
	frame   int
	elapsed time.Duration

	// last is the previous tick's derived state. It seeds facing
	// persistence when the character stops. A fresh controller defaults
	// to FacingRight so an immediately-idle character still matches
	// NotMoving+FacingRight style rules.
	last Predicate
}

func newController(sprite Sprite) *Controller {
	return &Controller{sprite: sprite, last: FacingRight}
}

// State returns the most recently derived situational bitmask.
func (c *Controller) State() Predicate { return c.last }

// Active returns the playing clip, or nil when idle.
func (c *Controller) Active() *Clip {
	if c.mode != modePlaying {
		return nil
	}
	return c.active
}

// register appends a clip, or replaces the frames and interval of an
// existing clip with an equal rule. Replacing the active clip resets its
// playback so the frame index can never point past the new sequence.
func (c *Controller) register(clip *Clip) {
	for _, existing := range c.clips {
		if existing.rule != clip.rule {
			continue
		}
		existing.frames = clip.frames
		existing.interval = clip.interval
		if c.mode == modePlaying && c.active == existing {
			c.frame, c.elapsed = 0, 0
			c.sprite.SetImage(existing.frames[0])
		}
		return
	}
	c.clips = append(c.clips, clip)
}

// deriveState computes this tick's situational bitmask from the sprite's
// velocity and wall contacts. Facing persists through a stop: a halted
// character keeps the facing bits of its previous state instead of
// resetting to a default.
func (c *Controller) deriveState() Predicate {
	vx, vy := c.sprite.Velocity()

	var s Predicate
	if vx != 0 || vy != 0 {
		s |= Moving
		if vx > 0 {
			s |= FacingRight | MovingRight
		} else if vx < 0 {
			s |= FacingLeft | MovingLeft
		}
		if vy > 0 {
			s |= FacingDown | MovingDown
		} else if vy < 0 {
			s |= FacingUp | MovingUp
		}
	} else {
		s |= NotMoving
		s |= c.last & facingBits
	}

	wc := c.sprite.WallContact()
	if wc.Up {
		s |= HittingWallUp
	}
	if wc.Right {
		s |= HittingWallRight
	}
	if wc.Down {
		s |= HittingWallDown
	}
	if wc.Left {
		s |= HittingWallLeft
	}

	c.last = s
	return s
}

// selectClip picks the best-scoring clip for the state. The incumbent
// wins ties so equally-good alternatives never restart the animation;
// among the rest, insertion order wins. A best score of 0 selects
// nothing, even if a clip was previously active.
func (c *Controller) selectClip(state Predicate) *Clip {
	var best *Clip
	bestScore := 0
	if c.mode == modePlaying {
		best = c.active
		bestScore = c.active.rule.Score(state)
	}
	for _, clip := range c.clips {
		if s := clip.rule.Score(state); s > bestScore {
			best, bestScore = clip, s
		}
	}
	if bestScore == 0 {
		return nil
	}
	return best
}

// update runs one tick: derive, select, advance. When the selection
// changes, playback restarts at frame 0 and that frame is shown in the
// same tick; dt starts accumulating on the following tick. When nothing
// is selected the sprite keeps its last image and the controller idles.
// The advance is a loop, not a single step, so an interval much shorter
// than dt moves several frames in one tick without accumulating debt.
func (c *Controller) update(dt time.Duration) {
	state := c.deriveState()

	next := c.selectClip(state)
	if next == nil {
		c.mode, c.active = modeIdle, nil
		c.frame, c.elapsed = 0, 0
		return
	}
	if c.mode != modePlaying || next != c.active {
		c.mode, c.active = modePlaying, next
		c.frame, c.elapsed = 0, 0
		c.sprite.SetImage(next.frames[0])
		return
	}

	c.elapsed += dt
	for c.elapsed >= c.active.interval {
		c.elapsed -= c.active.interval
		c.frame = (c.frame + 1) % len(c.active.frames)
		c.sprite.SetImage(c.active.frames[c.frame])
	}
}
