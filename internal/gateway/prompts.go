// ABOUTME: Prompt construction and response parsing for the gateway
// ABOUTME: Pure functions, separated from the client so they are testable offline

package gateway

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/quillworks/storywizard/internal/story"
)

func characterPrompt(description string) string {
	return fmt.Sprintf(`Based on the following description, create a detailed character profile.
Description: %q

Return a JSON object describing the character's identity, personality, appearance, backstory, relationships, and dialogue style.`, description)
}

func worldPrompt(description string) string {
	return fmt.Sprintf(`Based on this description of a world, expand it with rich details.
Description: %q

Return a JSON object with 'description', 'geography', and 'culture'.`, description)
}

func synopsisPrompt(chapters []story.Chapter) string {
	var b strings.Builder
	b.WriteString("Write a compelling back-cover synopsis for a story with the following chapters, in order:\n\n")
	for i, ch := range chapters {
		fmt.Fprintf(&b, "Chapter %d: %s (tension: %s)\n%s\n\n", i+1, ch.Title, ch.TensionLevel, ch.Content)
	}
	b.WriteString("Keep it under three paragraphs and do not spoil the ending.")
	return b.String()
}

func chatSystemInstruction(st *story.Story) string {
	return fmt.Sprintf(`You are a creative co-writer and storytelling assistant.
The user is writing a story with the following context:
Title: %s
Genre: %s
Tone: %s
Outline: %s

Your role is to help them brainstorm, expand scenes, write dialogue, and overcome writer's block.
Be encouraging, creative, and adhere to the established context of their story.
When asked to continue a story, pick up from the last sentence and write the next few paragraphs.
Keep your responses concise and focused on the user's request.`,
		st.Title, orUnspecified(st.Genre), orUnspecified(st.Tone), orUnspecified(st.Outline))
}

func orUnspecified(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}

// characterProfile mirrors the JSON shape the model is asked for. It is kept
// separate from story.Character so a schema change on either side is a
// deliberate decision.
type characterProfile struct {
	Gender                string   `json:"gender"`
	Age                   string   `json:"age"`
	Species               string   `json:"species"`
	Role                  string   `json:"role"`
	PersonalityArchetypes []string `json:"personalityArchetypes"`
	MoralAlignment        string   `json:"moralAlignment"`
	Motivations           []string `json:"motivations"`
	Fears                 []string `json:"fears"`
	Appearance            struct {
		Height              string `json:"height"`
		Build               string `json:"build"`
		HairColor           string `json:"hairColor"`
		EyeColor            string `json:"eyeColor"`
		DistinctiveFeatures string `json:"distinctiveFeatures"`
	} `json:"appearance"`
	Backstory     string `json:"backstory"`
	Relationships string `json:"relationships"`
	DialogueStyle string `json:"dialogueStyle"`
}

// parseCharacterProfile decodes the model's JSON into a materialized
// character. Multi-select fields are clamped to their caps: the model is not
// trusted to respect them.
func parseCharacterProfile(text string) (*story.Character, error) {
	var p characterProfile
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &p); err != nil {
		return nil, fmt.Errorf("decoding character profile: %w", err)
	}

	c := story.MaterializeCharacter(story.Character{
		Gender:                p.Gender,
		Age:                   p.Age,
		Species:               p.Species,
		Role:                  p.Role,
		PersonalityArchetypes: clamp(p.PersonalityArchetypes, story.MaxArchetypes),
		MoralAlignment:        p.MoralAlignment,
		Motivations:           clamp(p.Motivations, story.MaxMotivations),
		Fears:                 clamp(p.Fears, story.MaxFears),
		Appearance: story.Appearance{
			Height:              p.Appearance.Height,
			Build:               p.Appearance.Build,
			HairColor:           p.Appearance.HairColor,
			EyeColor:            p.Appearance.EyeColor,
			DistinctiveFeatures: p.Appearance.DistinctiveFeatures,
		},
		Backstory:     p.Backstory,
		Relationships: p.Relationships,
		DialogueStyle: p.DialogueStyle,
	})
	return &c, nil
}

func parseWorldDetails(text string) (*WorldDetails, error) {
	var w WorldDetails
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &w); err != nil {
		return nil, fmt.Errorf("decoding world details: %w", err)
	}
	return &w, nil
}

func clamp(values []string, limit int) []string {
	if len(values) > limit {
		return values[:limit]
	}
	return values
}
