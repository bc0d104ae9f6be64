package anim

import (
	"image"
	"image/color"
	"testing"
	"time"
)

type fakeSprite struct {
	vx, vy  float64
	contact WallContact
	dead    bool

	img  image.Image
	sets []image.Image // every SetImage call in order
}

func (f *fakeSprite) Velocity() (float64, float64) { return f.vx, f.vy }
func (f *fakeSprite) WallContact() WallContact     { return f.contact }
func (f *fakeSprite) Destroyed() bool              { return f.dead }
func (f *fakeSprite) SetImage(img image.Image) {
	f.img = img
	f.sets = append(f.sets, img)
}

// testFrames returns n distinct images so displayed-frame order is checkable.
func testFrames(n int) []image.Image {
	frames := make([]image.Image, n)
	for i := range frames {
		frames[i] = image.NewUniform(color.Gray{Y: uint8(i)})
	}
	return frames
}

const tick = 16 * time.Millisecond

func TestFreshControllerDefaultsToFacingRight(t *testing.T) {
	reg := NewRegistry()
	spr := &fakeSprite{}

	idleRight := testFrames(1)
	idleLeft := testFrames(1)
	reg.LoopFrames(spr, idleLeft, 100*time.Millisecond, NewRule(NotMoving, FacingLeft))
	reg.LoopFrames(spr, idleRight, 100*time.Millisecond, NewRule(NotMoving, FacingRight))

	reg.Update(tick)

	c := reg.Lookup(spr)
	if c == nil || c.Active() == nil {
		t.Fatal("expected an active clip on an idle fresh controller")
	}
	if got, want := c.Active().Rule(), NewRule(NotMoving, FacingRight); got != want {
		t.Fatalf("active rule = %v, want %v", got, want)
	}
	if spr.img != idleRight[0] {
		t.Fatal("sprite should show frame 0 of the facing-right idle clip")
	}
}

func TestFacingPersistsThroughStop(t *testing.T) {
	reg := NewRegistry()
	spr := &fakeSprite{vx: 2}
	reg.LoopFrames(spr, testFrames(2), 100*time.Millisecond, NewRule(Moving, MovingRight))

	reg.Update(tick)
	spr.vx = 0
	for i := 0; i < 5; i++ {
		reg.Update(tick)
		state := reg.Lookup(spr).State()
		if state&FacingRight == 0 {
			t.Fatalf("tick %d: FacingRight dropped after stop, state %v", i, state)
		}
		if state&(Moving|MovingRight) != 0 {
			t.Fatalf("tick %d: moving bits set while stopped, state %v", i, state)
		}
		if state&NotMoving == 0 {
			t.Fatalf("tick %d: NotMoving missing while stopped, state %v", i, state)
		}
	}
}

func TestIncumbentWinsScoreTie(t *testing.T) {
	reg := NewRegistry()
	spr := &fakeSprite{vx: 2}

	// Registered first, but scores below clipB while moving right only.
	ruleA := NewRule(FacingRight, MovingDown)
	ruleB := NewRule(FacingRight, MovingRight)
	reg.LoopFrames(spr, testFrames(2), 100*time.Millisecond, ruleA)
	reg.LoopFrames(spr, testFrames(2), 100*time.Millisecond, ruleB)

	reg.Update(tick)
	if got := reg.Lookup(spr).Active().Rule(); got != ruleB {
		t.Fatalf("setup: active rule = %v, want %v", got, ruleB)
	}

	// Moving right and down: both rules now score 2. The incumbent stays.
	spr.vy = 2
	reg.Update(tick)
	if got := reg.Lookup(spr).Active().Rule(); got != ruleB {
		t.Fatalf("incumbent lost a tie: active rule = %v, want %v", got, ruleB)
	}
}

func TestFirstRegisteredWinsScoreTie(t *testing.T) {
	reg := NewRegistry()
	spr := &fakeSprite{vx: 2, vy: 2}

	ruleA := NewRule(FacingRight, MovingDown)
	ruleB := NewRule(FacingRight, MovingRight)
	reg.LoopFrames(spr, testFrames(2), 100*time.Millisecond, ruleA)
	reg.LoopFrames(spr, testFrames(2), 100*time.Millisecond, ruleB)

	// Both score 2 and neither has ever been active.
	reg.Update(tick)
	if got := reg.Lookup(spr).Active().Rule(); got != ruleA {
		t.Fatalf("active rule = %v, want first-registered %v", got, ruleA)
	}
}

func TestFrameAdvanceLoop(t *testing.T) {
	reg := NewRegistry()
	spr := &fakeSprite{vx: 2}
	frames := testFrames(3)
	reg.LoopFrames(spr, frames, 10*time.Millisecond, NewRule(Moving, MovingRight))

	// Selection tick: shows frame 0, accumulates nothing yet.
	reg.Update(10 * time.Millisecond)
	if spr.img != frames[0] {
		t.Fatal("switch tick should display frame 0")
	}

	// One tick worth 3.5 intervals advances through frames 1, 2, 0.
	spr.sets = nil
	reg.Update(35 * time.Millisecond)
	want := []image.Image{frames[1], frames[2], frames[0]}
	if len(spr.sets) != len(want) {
		t.Fatalf("displayed %d frames, want %d", len(spr.sets), len(want))
	}
	for i := range want {
		if spr.sets[i] != want[i] {
			t.Fatalf("display %d: wrong frame", i)
		}
	}

	// 5ms leftover carries into the next tick: 5+5 = one interval.
	spr.sets = nil
	reg.Update(5 * time.Millisecond)
	if len(spr.sets) != 1 || spr.sets[0] != frames[1] {
		t.Fatal("leftover elapsed time was not carried into the next tick")
	}
}

func TestSwitchingClipsResetsPlayback(t *testing.T) {
	reg := NewRegistry()
	spr := &fakeSprite{vx: 2}
	run := testFrames(4)
	idle := testFrames(4)
	reg.LoopFrames(spr, run, 10*time.Millisecond, NewRule(Moving, MovingRight))
	reg.LoopFrames(spr, idle, 10*time.Millisecond, NewRule(NotMoving, FacingRight))

	reg.Update(tick)                // select run, frame 0
	reg.Update(25 * time.Millisecond) // advance into run

	spr.vx = 0
	spr.sets = nil
	reg.Update(tick)
	if len(spr.sets) != 1 || spr.sets[0] != idle[0] {
		t.Fatal("switching clips must immediately display the new clip's frame 0")
	}

	// And playback restarts from zero: next interval shows frame 1.
	spr.sets = nil
	reg.Update(10 * time.Millisecond)
	if len(spr.sets) != 1 || spr.sets[0] != idle[1] {
		t.Fatal("playback did not restart at frame 0 after a switch")
	}
}

func TestZeroScoreGoesIdle(t *testing.T) {
	reg := NewRegistry()
	spr := &fakeSprite{vx: 2}
	frames := testFrames(2)
	reg.LoopFrames(spr, frames, 10*time.Millisecond, NewRule(MovingRight))

	reg.Update(tick)
	reg.Update(15 * time.Millisecond)

	// Moving left shares no bit with the rule: the last image stays and
	// playback stops.
	spr.vx = -2
	before := spr.img
	spr.sets = nil
	for i := 0; i < 3; i++ {
		reg.Update(tick)
	}
	if len(spr.sets) != 0 {
		t.Fatal("idle controller must not touch the sprite image")
	}
	if spr.img != before {
		t.Fatal("sprite image changed while no clip matched")
	}
	if reg.Lookup(spr).Active() != nil {
		t.Fatal("controller should report no active clip")
	}
}

func TestReplacingActiveClipResetsPlayback(t *testing.T) {
	reg := NewRegistry()
	spr := &fakeSprite{vx: 2}
	rule := NewRule(Moving, MovingRight)
	reg.LoopFrames(spr, testFrames(4), 10*time.Millisecond, rule)

	reg.Update(tick)
	reg.Update(25 * time.Millisecond)

	// Re-registering the same rule swaps frames in place, one controller,
	// one clip, playback restarted.
	swapped := testFrames(2)
	reg.LoopFrames(spr, swapped, 20*time.Millisecond, rule)
	if spr.img != swapped[0] {
		t.Fatal("replacing the active clip should display the new frame 0")
	}
	if len(reg.Controllers()) != 1 {
		t.Fatalf("expected 1 controller, got %d", len(reg.Controllers()))
	}

	spr.sets = nil
	reg.Update(20 * time.Millisecond)
	if len(spr.sets) != 1 || spr.sets[0] != swapped[1] {
		t.Fatal("replaced clip did not play with its new frames and interval")
	}
}
