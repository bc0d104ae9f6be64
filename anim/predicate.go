// Package anim selects and plays sprite animations from declaratively
// registered rules. Each clip is bound to a Rule, a bitmask of situational
// predicates; every tick a controller derives the character's current
// predicate set from motion and wall-contact signals, scores every clip
// against it and advances the winner frame by frame.
package anim

// Predicate is one situational flag, a single bit in a 14-bit space.
// Multiple bits set together describe one moment; contradictory
// combinations are rejected at Rule construction, not here.
type Predicate uint16

const (
	NotMoving Predicate = 1 << iota
	Moving
	FacingUp
	FacingRight
	FacingDown
	FacingLeft
	MovingUp
	MovingRight
	MovingDown
	MovingLeft
	HittingWallUp
	HittingWallRight
	HittingWallDown
	HittingWallLeft
)

const (
	facingBits = FacingUp | FacingRight | FacingDown | FacingLeft
	movingBits = Moving | MovingUp | MovingRight | MovingDown | MovingLeft
)

var predicateNames = map[Predicate]string{
	NotMoving:        "NotMoving",
	Moving:           "Moving",
	FacingUp:         "FacingUp",
	FacingRight:      "FacingRight",
	FacingDown:       "FacingDown",
	FacingLeft:       "FacingLeft",
	MovingUp:         "MovingUp",
	MovingRight:      "MovingRight",
	MovingDown:       "MovingDown",
	MovingLeft:       "MovingLeft",
	HittingWallUp:    "HittingWallUp",
	HittingWallRight: "HittingWallRight",
	HittingWallDown:  "HittingWallDown",
	HittingWallLeft:  "HittingWallLeft",
}

var predicatesByName = func() map[string]Predicate {
	m := make(map[string]Predicate, len(predicateNames))
	for p, name := range predicateNames {
		m[name] = p
	}
	return m
}()

// String returns the constant name for a single-bit predicate, or a
// "|"-joined list when multiple bits are set.
func (p Predicate) String() string {
	if name, ok := predicateNames[p]; ok {
		return name
	}
	if p == 0 {
		return "None"
	}
	s := ""
	for bit := NotMoving; bit <= HittingWallLeft; bit <<= 1 {
		if p&bit == 0 {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += predicateNames[bit]
	}
	return s
}

// ParsePredicate resolves a predicate constant name, e.g. "FacingRight".
// Used by the YAML clip authoring surface.
func ParsePredicate(name string) (Predicate, bool) {
	p, ok := predicatesByName[name]
	return p, ok
}
