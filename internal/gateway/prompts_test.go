// ABOUTME: Tests for gateway prompt construction and response parsing
// ABOUTME: Offline coverage of the pure halves of the gateway

package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillworks/storywizard/internal/story"
)

func TestParseCharacterProfile(t *testing.T) {
	text := `{
		"gender": "Female",
		"age": "19",
		"species": "Human",
		"role": "Protagonist",
		"personalityArchetypes": ["Kind", "Determined"],
		"moralAlignment": "Lawful Good",
		"motivations": ["Protect her home"],
		"fears": ["Failure"],
		"appearance": {"height": "5'6\"", "build": "Slender", "hairColor": "Blonde", "eyeColor": "Green", "distinctiveFeatures": "Sunburst birthmark"},
		"backstory": "An orphan raised by the village elder.",
		"relationships": "Close to the elder.",
		"dialogueStyle": "Warm and empathetic."
	}`

	c, err := parseCharacterProfile(text)
	require.NoError(t, err)
	assert.Equal(t, story.GenderFemale, c.Gender)
	assert.Equal(t, []string{"Kind", "Determined"}, c.PersonalityArchetypes)
	assert.Equal(t, "Blonde", c.Appearance.HairColor)
	assert.Equal(t, "An orphan raised by the village elder.", c.Backstory)
}

func TestParseCharacterProfileClampsCaps(t *testing.T) {
	text := `{
		"gender": "Male",
		"personalityArchetypes": ["A", "B", "C", "D", "E"],
		"motivations": ["1", "2", "3"],
		"fears": ["x", "y", "z"],
		"appearance": {},
		"backstory": "", "relationships": "", "dialogueStyle": "",
		"moralAlignment": ""
	}`

	c, err := parseCharacterProfile(text)
	require.NoError(t, err)
	assert.Len(t, c.PersonalityArchetypes, story.MaxArchetypes)
	assert.Len(t, c.Motivations, story.MaxMotivations)
	assert.Len(t, c.Fears, story.MaxFears)
}

func TestParseCharacterProfileBadJSON(t *testing.T) {
	_, err := parseCharacterProfile("{nope")
	assert.Error(t, err)
}

func TestParseWorldDetails(t *testing.T) {
	w, err := parseWorldDetails(` {"description": "d", "geography": "g", "culture": "c"} `)
	require.NoError(t, err)
	assert.Equal(t, &WorldDetails{Description: "d", Geography: "g", Culture: "c"}, w)
}

func TestChatSystemInstructionIncludesContext(t *testing.T) {
	st := &story.Story{Title: "The Crimson Cipher", Genre: "Cyberpunk Mystery", Tone: "Noir"}
	instr := chatSystemInstruction(st)

	assert.Contains(t, instr, "Title: The Crimson Cipher")
	assert.Contains(t, instr, "Genre: Cyberpunk Mystery")
	assert.Contains(t, instr, "Tone: Noir")
	assert.Contains(t, instr, "Outline: Not specified")
}

func TestSynopsisPromptOrdersChapters(t *testing.T) {
	chapters := []story.Chapter{
		{Title: "First", TensionLevel: story.TensionLow, Content: "start"},
		{Title: "Second", TensionLevel: story.TensionClimax, Content: "end"},
	}
	p := synopsisPrompt(chapters)

	assert.Contains(t, p, "Chapter 1: First")
	assert.Contains(t, p, "Chapter 2: Second")
	assert.Contains(t, p, "tension: climax")
}

func TestSynopsisPlaceholderForEmptyChapterList(t *testing.T) {
	c := &Client{}
	got, err := c.GenerateStorySynopsis(t.Context(), nil)
	require.NoError(t, err)
	assert.Equal(t, SynopsisPlaceholder, got)
}
