package anim

import (
	"image"
	"testing"
	"time"
)

func TestLoopFramesBadInputIsNoOp(t *testing.T) {
	valid := NewRule(Moving, MovingRight)

	cases := []struct {
		name   string
		sprite Sprite
		frames []image.Image
		rule   Rule
	}{
		{"nil_sprite", nil, testFrames(2), valid},
		{"empty_frames", &fakeSprite{}, nil, valid},
		{"empty_rule", &fakeSprite{}, testFrames(2), EmptyRule},
		{"contradictory_rule", &fakeSprite{}, testFrames(2), NewRule(NotMoving, Moving)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			reg := NewRegistry()
			reg.LoopFrames(c.sprite, c.frames, 100*time.Millisecond, c.rule)
			if len(reg.Controllers()) != 0 {
				t.Fatal("bad registration created a controller")
			}
		})
	}
}

func TestLoopFramesClampsInterval(t *testing.T) {
	reg := NewRegistry()
	spr := &fakeSprite{vx: 2}
	reg.LoopFrames(spr, testFrames(2), -5*time.Second, NewRule(Moving, MovingRight))

	c := reg.Lookup(spr)
	if c == nil {
		t.Fatal("registration with a bad interval should still create the controller")
	}
	reg.Update(tick)
	if got := c.Active().Interval(); got != MinInterval {
		t.Fatalf("interval = %v, want clamped %v", got, MinInterval)
	}
}

func TestDestroyedSpriteIsPruned(t *testing.T) {
	reg := NewRegistry()
	alive := &fakeSprite{vx: 2}
	doomed := &fakeSprite{vx: 2}
	rule := NewRule(Moving, MovingRight)
	reg.LoopFrames(alive, testFrames(2), 100*time.Millisecond, rule)
	reg.LoopFrames(doomed, testFrames(2), 100*time.Millisecond, rule)

	reg.Update(tick)

	doomed.dead = true
	doomed.sets = nil
	reg.Update(tick)

	if len(reg.Controllers()) != 1 {
		t.Fatalf("expected 1 controller after prune, got %d", len(reg.Controllers()))
	}
	if reg.Lookup(doomed) != nil {
		t.Fatal("destroyed sprite still has a controller")
	}
	if len(doomed.sets) != 0 {
		t.Fatal("destroyed sprite was updated")
	}

	// The survivor keeps updating normally.
	alive.sets = nil
	reg.Update(100 * time.Millisecond)
	if len(alive.sets) == 0 {
		t.Fatal("surviving controller stopped updating")
	}
}

func TestControllersUpdateInRegistrationOrder(t *testing.T) {
	var order []int
	mk := func(id int) *orderSprite { return &orderSprite{id: id, order: &order} }

	reg := NewRegistry()
	first, second, third := mk(1), mk(2), mk(3)
	rule := NewRule(Moving, MovingRight)
	reg.LoopFrames(second, testFrames(1), 100*time.Millisecond, rule)
	reg.LoopFrames(first, testFrames(1), 100*time.Millisecond, rule)
	reg.LoopFrames(third, testFrames(1), 100*time.Millisecond, rule)

	reg.Update(tick)

	want := []int{2, 1, 3}
	if len(order) != len(want) {
		t.Fatalf("got %d updates, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("update order %v, want %v", order, want)
		}
	}
}

type orderSprite struct {
	id    int
	order *[]int
}

func (o *orderSprite) Velocity() (float64, float64) { return 1, 0 }
func (o *orderSprite) WallContact() WallContact     { return WallContact{} }
func (o *orderSprite) Destroyed() bool              { return false }
func (o *orderSprite) SetImage(image.Image)         { *o.order = append(*o.order, o.id) }

func TestStackLifecycle(t *testing.T) {
	s := NewStack()

	// Empty stack absorbs everything.
	s.Pop()
	s.Update(tick)
	s.LoopFrames(&fakeSprite{}, testFrames(1), tick, NewRule(Moving))
	if s.Top() != nil {
		t.Fatal("empty stack should have no top")
	}

	outer := s.Push()
	spr := &fakeSprite{vx: 2}
	s.LoopFrames(spr, testFrames(2), 100*time.Millisecond, NewRule(Moving, MovingRight))
	if outer.Lookup(spr) == nil {
		t.Fatal("LoopFrames did not reach the top registry")
	}

	// A pushed scene gets a fresh registry; the outer one is untouched.
	inner := s.Push()
	if s.Top() != inner {
		t.Fatal("push did not activate the new registry")
	}
	innerSpr := &fakeSprite{vx: 2}
	s.LoopFrames(innerSpr, testFrames(2), 100*time.Millisecond, NewRule(Moving, MovingRight))
	if outer.Lookup(innerSpr) != nil {
		t.Fatal("registration leaked into the outer registry")
	}

	spr.sets = nil
	s.Update(tick)
	if len(spr.sets) != 0 {
		t.Fatal("update reached a registry below the top")
	}

	s.Pop()
	if s.Top() != outer {
		t.Fatal("pop did not restore the outer registry")
	}
	s.Update(tick)
	if len(spr.sets) == 0 {
		t.Fatal("outer registry did not resume after pop")
	}
}
