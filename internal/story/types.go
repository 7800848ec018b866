// ABOUTME: Data types for stories and their owned entities
// ABOUTME: Story exclusively owns chapters, characters, worlds, items, and illustrations

package story

// TensionLevel describes where a chapter sits on the narrative arc.
type TensionLevel string

// Tension levels, in ascending order of intensity.
const (
	TensionLow    TensionLevel = "low"
	TensionMedium TensionLevel = "medium"
	TensionHigh   TensionLevel = "high"
	TensionClimax TensionLevel = "climax"
)

// Gender values used by the character wizard.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// Selection caps for the character multi-select fields.
const (
	MaxArchetypes  = 3
	MaxMotivations = 2
	MaxFears       = 2
)

// Appearance is a character's physical description. It is always fully
// materialized: fields default to empty strings, the struct itself is never
// omitted from a persisted character.
type Appearance struct {
	Height              string `json:"height"`
	Build               string `json:"build"`
	HairColor           string `json:"hairColor"`
	EyeColor            string `json:"eyeColor"`
	DistinctiveFeatures string `json:"distinctiveFeatures"`
}

// Character is a member of a story's cast.
type Character struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Gender  string `json:"gender"`
	Age     string `json:"age"`
	Species string `json:"species"`
	Role    string `json:"role"`

	PersonalityArchetypes []string `json:"personalityArchetypes"`
	MoralAlignment        string   `json:"moralAlignment"`
	Motivations           []string `json:"motivations"`
	Fears                 []string `json:"fears"`

	Appearance Appearance `json:"appearance"`

	Backstory     string `json:"backstory"`
	Relationships string `json:"relationships"`
	DialogueStyle string `json:"dialogueStyle"`
}

// World is a setting a story takes place in.
type World struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Geography   string `json:"geography"`
	Culture     string `json:"culture"`
}

// Chapter is one unit of the manuscript. Chapter order within a story is the
// narrative sequence.
type Chapter struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Content      string       `json:"content"`
	TensionLevel TensionLevel `json:"tensionLevel"`
}

// Item is a significant object or artifact in a story. ImageURL holds
// base64-encoded raster bytes when an image has been generated.
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// Illustration is a generated scene image. ChapterID is a back-reference to
// the chapter the scene came from; it is informational only and never a
// deletion dependency.
type Illustration struct {
	ID        string `json:"id"`
	Prompt    string `json:"prompt"`
	ImageURL  string `json:"imageUrl"`
	ChapterID string `json:"chapterId"`
}

// Story is the top-level authored work. It exclusively owns every entity in
// its collections; no entity is shared across stories.
type Story struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Genre   string `json:"genre"`
	Tone    string `json:"tone"`
	Outline string `json:"outline"`

	// Author is set only on catalog/template stories and cleared on clone.
	Author string `json:"author,omitempty"`

	Chapters      []Chapter      `json:"chapters"`
	Characters    []Character    `json:"characters"`
	Worlds        []World        `json:"worlds"`
	Items         []Item         `json:"items"`
	Illustrations []Illustration `json:"illustrations"`
}

// Clone returns a deep copy of the story. Identifiers are copied verbatim;
// id regeneration is the store's job.
func (s *Story) Clone() *Story {
	cp := *s
	cp.Chapters = append([]Chapter(nil), s.Chapters...)
	cp.Characters = make([]Character, len(s.Characters))
	for i, c := range s.Characters {
		cp.Characters[i] = c
		cp.Characters[i].PersonalityArchetypes = append([]string(nil), c.PersonalityArchetypes...)
		cp.Characters[i].Motivations = append([]string(nil), c.Motivations...)
		cp.Characters[i].Fears = append([]string(nil), c.Fears...)
	}
	cp.Worlds = append([]World(nil), s.Worlds...)
	cp.Items = append([]Item(nil), s.Items...)
	cp.Illustrations = append([]Illustration(nil), s.Illustrations...)
	return &cp
}
