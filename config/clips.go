package config

import (
	"io"
	"log"
	"math"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/automoto/animrule/anim"
)

// ClipDef declares one animation clip for a character: the frame set to
// generate, the per-frame interval and the predicate names that activate
// it. Clip sets are data so they can come from the Go defaults below or
// from a YAML file edited at runtime.
type ClipDef struct {
	Name       string   `yaml:"name"`
	Predicates []string `yaml:"predicates"`
	FrameCount int      `yaml:"frames"`
	Seconds    float64  `yaml:"interval"` // per-frame interval in seconds
}

// Rule builds the activation rule. An unknown predicate name makes the
// whole rule empty, which downstream registration silently skips; a typo
// in a hand-edited file disables one clip instead of killing the game.
func (d ClipDef) Rule() anim.Rule {
	preds := make([]anim.Predicate, 0, len(d.Predicates))
	for _, name := range d.Predicates {
		p, ok := anim.ParsePredicate(name)
		if !ok {
			log.Printf("clip %q: unknown predicate %q, clip disabled", d.Name, name)
			return anim.EmptyRule
		}
		preds = append(preds, p)
	}
	return anim.NewRule(preds...)
}

// Interval converts the authored seconds value. Non-positive and NaN
// values return 0; LoopFrames clamps that to its floor.
func (d ClipDef) Interval() time.Duration {
	if math.IsNaN(d.Seconds) || d.Seconds <= 0 {
		return 0
	}
	return time.Duration(d.Seconds * float64(time.Second))
}

// LoadClipDefs parses a YAML document mapping a character key to its
// ordered clip list, the same shape as CharacterClips.
func LoadClipDefs(r io.Reader) (map[string][]ClipDef, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var defs map[string][]ClipDef
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, err
	}
	return defs, nil
}

// CharacterClips maps a character key (e.g. "player") to its ordered
// clip definitions. Order matters: when two clips tie against a state,
// the one listed first wins.
var CharacterClips = map[string][]ClipDef{
	"player": {
		{Name: "idle_right", Predicates: []string{"NotMoving", "FacingRight"}, FrameCount: 4, Seconds: 0.18},
		{Name: "idle_left", Predicates: []string{"NotMoving", "FacingLeft"}, FrameCount: 4, Seconds: 0.18},
		{Name: "run_right", Predicates: []string{"Moving", "MovingRight", "HittingWallDown"}, FrameCount: 6, Seconds: 0.09},
		{Name: "run_left", Predicates: []string{"Moving", "MovingLeft", "HittingWallDown"}, FrameCount: 6, Seconds: 0.09},
		{Name: "jump_right", Predicates: []string{"Moving", "MovingUp", "FacingRight"}, FrameCount: 2, Seconds: 0.12},
		{Name: "jump_left", Predicates: []string{"Moving", "MovingUp", "FacingLeft"}, FrameCount: 2, Seconds: 0.12},
		{Name: "fall_right", Predicates: []string{"Moving", "MovingDown", "FacingRight"}, FrameCount: 2, Seconds: 0.12},
		{Name: "fall_left", Predicates: []string{"Moving", "MovingDown", "FacingLeft"}, FrameCount: 2, Seconds: 0.12},
		{Name: "wall_slide_right", Predicates: []string{"Moving", "MovingDown", "HittingWallRight"}, FrameCount: 2, Seconds: 0.15},
		{Name: "wall_slide_left", Predicates: []string{"Moving", "MovingDown", "HittingWallLeft"}, FrameCount: 2, Seconds: 0.15},
		{Name: "push_right", Predicates: []string{"NotMoving", "FacingRight", "HittingWallRight"}, FrameCount: 3, Seconds: 0.2},
		{Name: "push_left", Predicates: []string{"NotMoving", "FacingLeft", "HittingWallLeft"}, FrameCount: 3, Seconds: 0.2},
	},
	"walker": {
		{Name: "walk_right", Predicates: []string{"Moving", "MovingRight"}, FrameCount: 4, Seconds: 0.14},
		{Name: "walk_left", Predicates: []string{"Moving", "MovingLeft"}, FrameCount: 4, Seconds: 0.14},
		{Name: "idle", Predicates: []string{"NotMoving"}, FrameCount: 2, Seconds: 0.3},
	},
}

// ClipNames returns the clip names for a character in declaration order.
// The HUD overlay uses it to resolve the active rule back to a name.
func ClipNames(character string) map[anim.Rule]string {
	names := make(map[anim.Rule]string)
	for _, d := range CharacterClips[character] {
		if r := d.Rule(); r != anim.EmptyRule {
			names[r] = d.Name
		}
	}
	return names
}
