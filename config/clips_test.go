package config

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/automoto/animrule/anim"
)

func TestClipDefRule(t *testing.T) {
	cases := []struct {
		name string
		def  ClipDef
		want anim.Rule
	}{
		{
			"valid_pair",
			ClipDef{Name: "idle", Predicates: []string{"NotMoving", "FacingRight"}},
			anim.NewRule(anim.NotMoving, anim.FacingRight),
		},
		{
			"unknown_predicate_disables_clip",
			ClipDef{Name: "bad", Predicates: []string{"Moving", "Levitating"}},
			anim.EmptyRule,
		},
		{
			"contradiction_disables_clip",
			ClipDef{Name: "bad", Predicates: []string{"NotMoving", "Moving"}},
			anim.EmptyRule,
		},
		{
			"no_predicates",
			ClipDef{Name: "bad"},
			anim.EmptyRule,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.def.Rule(); got != c.want {
				t.Fatalf("Rule() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestClipDefInterval(t *testing.T) {
	cases := []struct {
		name    string
		seconds float64
		want    time.Duration
	}{
		{"normal", 0.1, 100 * time.Millisecond},
		{"zero", 0, 0},
		{"negative", -3, 0},
		{"nan", math.NaN(), 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := (ClipDef{Seconds: c.seconds}).Interval(); got != c.want {
				t.Fatalf("Interval() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestLoadClipDefs(t *testing.T) {
	doc := `
player:
  - name: idle_right
    predicates: [NotMoving, FacingRight]
    frames: 4
    interval: 0.18
  - name: run_right
    predicates: [Moving, MovingRight]
    frames: 6
    interval: 0.09
`
	defs, err := LoadClipDefs(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadClipDefs: %v", err)
	}
	clips := defs["player"]
	if len(clips) != 2 {
		t.Fatalf("got %d clips, want 2", len(clips))
	}
	if clips[0].Name != "idle_right" || clips[1].Name != "run_right" {
		t.Fatal("clip order not preserved")
	}
	if got, want := clips[1].Rule(), anim.NewRule(anim.Moving, anim.MovingRight); got != want {
		t.Fatalf("parsed rule = %v, want %v", got, want)
	}
	if clips[0].FrameCount != 4 {
		t.Fatalf("FrameCount = %d, want 4", clips[0].FrameCount)
	}

	if _, err := LoadClipDefs(strings.NewReader(":\tnot yaml")); err == nil {
		t.Fatal("malformed YAML should return an error")
	}
}

// The shipped defaults must all produce usable rules.
func TestDefaultCharacterClipsAreValid(t *testing.T) {
	for character, defs := range CharacterClips {
		for _, d := range defs {
			if d.Rule() == anim.EmptyRule {
				t.Errorf("%s/%s: default clip has an empty rule", character, d.Name)
			}
			if d.FrameCount <= 0 {
				t.Errorf("%s/%s: non-positive frame count", character, d.Name)
			}
			if d.Interval() <= 0 {
				t.Errorf("%s/%s: non-positive interval", character, d.Name)
			}
		}
	}
}
