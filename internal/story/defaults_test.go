// ABOUTME: Tests for character default materialization and capped multi-select
// ABOUTME: Covers merge-with-defaults and the toggle caps from the wizard

package story

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaterializeCharacterEmpty(t *testing.T) {
	c := MaterializeCharacter(Character{})

	assert.Equal(t, GenderMale, c.Gender)
	assert.NotNil(t, c.PersonalityArchetypes)
	assert.Empty(t, c.PersonalityArchetypes)
	assert.NotNil(t, c.Motivations)
	assert.NotNil(t, c.Fears)
	assert.Equal(t, Appearance{}, c.Appearance)
}

func TestMaterializeCharacterPreservesValues(t *testing.T) {
	in := Character{
		Name:                  "Lyra",
		Gender:                GenderFemale,
		PersonalityArchetypes: []string{"Kind"},
		Appearance:            Appearance{HairColor: "Golden Blonde"},
	}
	c := MaterializeCharacter(in)

	assert.Equal(t, GenderFemale, c.Gender)
	assert.Equal(t, []string{"Kind"}, c.PersonalityArchetypes)
	assert.Equal(t, "Golden Blonde", c.Appearance.HairColor)
}

func TestToggleSelectionAddAndRemove(t *testing.T) {
	vals := ToggleSelection(nil, "Brave", MaxArchetypes)
	assert.Equal(t, []string{"Brave"}, vals)

	vals = ToggleSelection(vals, "Brave", MaxArchetypes)
	assert.Empty(t, vals)
}

func TestToggleSelectionRespectsCap(t *testing.T) {
	vals := []string{"Brave", "Cunning", "Loyal"}

	// Selecting past the cap leaves the list unchanged
	got := ToggleSelection(vals, "Wise", MaxArchetypes)
	assert.Equal(t, vals, got)

	// Deselecting at the cap always succeeds
	got = ToggleSelection(vals, "Cunning", MaxArchetypes)
	assert.Equal(t, []string{"Brave", "Loyal"}, got)
}

func TestToggleSelectionCapsNeverExceeded(t *testing.T) {
	options := []string{"Revenge", "Redemption", "Discovery", "Love", "Survival"}

	// Any toggle order keeps motivations within its cap
	var vals []string
	for i := 0; i < 20; i++ {
		vals = ToggleSelection(vals, options[i%len(options)], MaxMotivations)
		assert.LessOrEqual(t, len(vals), MaxMotivations)
	}
}

func TestToggleSelectionDoesNotMutateInput(t *testing.T) {
	vals := []string{"Failure", "Abandonment"}
	_ = ToggleSelection(vals, "Failure", MaxFears)
	assert.Equal(t, []string{"Failure", "Abandonment"}, vals)
}
