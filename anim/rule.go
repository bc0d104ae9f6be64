package anim

import "math/bits"

// Rule is a validated OR-combination of predicates. It is the matching
// criterion for one clip. The zero value is EmptyRule, which never
// matches any state.
type Rule uint16

// EmptyRule is the sentinel returned for contradictory predicate
// combinations. It scores 0 against every state.
const EmptyRule Rule = 0

// NewRule combines 1 to 4 predicates into a Rule. Contradictory
// combinations collapse to EmptyRule instead of failing: an invalid rule
// is an authoring mistake, and a rule that can never match is the
// forgiving way to record it. The contradiction classes are:
//
//   - NotMoving with any Moving-family predicate
//   - opposite horizontal facing or motion (Left family with Right family)
//   - opposite vertical facing or motion (Up family with Down family)
//   - motion toward a wall the rule also requires to be hit
//     (MovingDown+HittingWallDown and the three rotations)
func NewRule(preds ...Predicate) Rule {
	if len(preds) == 0 {
		return EmptyRule
	}
	var m Predicate
	for _, p := range preds {
		m |= p
	}
	if contradicts(m) {
		return EmptyRule
	}
	return Rule(m)
}

func contradicts(m Predicate) bool {
	if m&NotMoving != 0 && m&movingBits != 0 {
		return true
	}
	if m&(FacingLeft|MovingLeft) != 0 && m&(FacingRight|MovingRight) != 0 {
		return true
	}
	if m&(FacingUp|MovingUp) != 0 && m&(FacingDown|MovingDown) != 0 {
		return true
	}
	walls := [...][2]Predicate{
		{MovingUp, HittingWallUp},
		{MovingRight, HittingWallRight},
		{MovingDown, HittingWallDown},
		{MovingLeft, HittingWallLeft},
	}
	for _, w := range walls {
		if m&w[0] != 0 && m&w[1] != 0 {
			return true
		}
	}
	return false
}

// String lists the rule's predicates, "|"-joined.
func (r Rule) String() string {
	if r == EmptyRule {
		return "Empty"
	}
	return Predicate(r).String()
}

// Score counts the predicate bits shared by the rule and the state.
// Bits present on only one side count neither for nor against, so the
// formula is symmetric. EmptyRule scores 0 against everything.
func (r Rule) Score(state Predicate) int {
	return bits.OnesCount16(uint16(r) & uint16(state))
}
