// ABOUTME: Pure helpers for the character editor: default merging and capped multi-select
// ABOUTME: Independent of any UI lifecycle, usable on any partial character record

package story

// MaterializeCharacter merges a partial character with its defaults, yielding
// a complete record: gender defaults to Male, every multi-select slice is
// non-nil, and the appearance record is present with empty-string fields.
// Values already set on the input are preserved.
func MaterializeCharacter(c Character) Character {
	if c.Gender == "" {
		c.Gender = GenderMale
	}
	if c.PersonalityArchetypes == nil {
		c.PersonalityArchetypes = []string{}
	}
	if c.Motivations == nil {
		c.Motivations = []string{}
	}
	if c.Fears == nil {
		c.Fears = []string{}
	}
	// Appearance is a value struct: zero fields are already empty strings,
	// so there is nothing to backfill beyond having the record at all.
	return c
}

// ToggleSelection flips value in a multi-select list subject to a cap.
// Selecting past the cap leaves the list unchanged; deselecting always
// succeeds, including at the cap. The input slice is not mutated.
func ToggleSelection(values []string, value string, limit int) []string {
	for i, v := range values {
		if v == value {
			out := make([]string, 0, len(values)-1)
			out = append(out, values[:i]...)
			return append(out, values[i+1:]...)
		}
	}
	if len(values)+1 > limit {
		return values
	}
	out := make([]string, 0, len(values)+1)
	out = append(out, values...)
	return append(out, value)
}
