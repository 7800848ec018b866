// ABOUTME: Gemini-backed implementation of the Generator interface
// ABOUTME: Structured JSON via response schemas, images via Imagen, no retries

package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/quillworks/storywizard/internal/story"
)

// Default models. The text model is configurable; image generation is pinned
// to Imagen.
const (
	DefaultModel      = "gemini-2.5-flash"
	DefaultImageModel = "imagen-3.0-generate-002"
)

// Client implements Generator against the Gemini API.
type Client struct {
	genai      *genai.Client
	model      string
	imageModel string
	logger     *slog.Logger
}

// NewClient creates a gateway client. An empty model falls back to
// DefaultModel.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	return &Client{
		genai:      gc,
		model:      model,
		imageModel: DefaultImageModel,
		logger:     slog.Default().With("component", "gateway"),
	}, nil
}

var characterSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"gender":                {Type: genai.TypeString, Enum: []string{story.GenderMale, story.GenderFemale}},
		"age":                   {Type: genai.TypeString, Description: "Age or age range, e.g. 'Young Adult', '40s', 'Ancient'."},
		"species":               {Type: genai.TypeString},
		"role":                  {Type: genai.TypeString, Description: "Narrative role, e.g. 'Protagonist', 'Mentor'."},
		"personalityArchetypes": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}, Description: "Up to three personality archetypes."},
		"moralAlignment":        {Type: genai.TypeString},
		"motivations":           {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}, Description: "Up to two core motivations."},
		"fears":                 {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}, Description: "Up to two deep fears."},
		"appearance": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"height":              {Type: genai.TypeString},
				"build":               {Type: genai.TypeString},
				"hairColor":           {Type: genai.TypeString},
				"eyeColor":            {Type: genai.TypeString},
				"distinctiveFeatures": {Type: genai.TypeString},
			},
		},
		"backstory":     {Type: genai.TypeString, Description: "A brief backstory for the character."},
		"relationships": {Type: genai.TypeString, Description: "Key relationships the character has."},
		"dialogueStyle": {Type: genai.TypeString, Description: "How the character speaks."},
	},
	Required: []string{"gender", "personalityArchetypes", "moralAlignment", "motivations", "fears", "appearance", "backstory", "relationships", "dialogueStyle"},
}

var worldSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"description": {Type: genai.TypeString, Description: "A detailed description of the world."},
		"geography":   {Type: genai.TypeString, Description: "The world's geography and key locations."},
		"culture":     {Type: genai.TypeString, Description: "The culture, factions, and societies."},
	},
	Required: []string{"description", "geography", "culture"},
}

// GenerateCharacterProfile expands a short description into a full character
// record.
func (c *Client) GenerateCharacterProfile(ctx context.Context, description string) (*story.Character, error) {
	resp, err := c.genai.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{genai.NewContentFromText(characterPrompt(description), genai.RoleUser)},
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   characterSchema,
		})
	if err != nil {
		return nil, fmt.Errorf("%w: character profile: %v", ErrGenerationFailed, err)
	}

	profile, err := parseCharacterProfile(resp.Text())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	return profile, nil
}

// GenerateWorldDetails expands a short description into world-building
// fields.
func (c *Client) GenerateWorldDetails(ctx context.Context, description string) (*WorldDetails, error) {
	resp, err := c.genai.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{genai.NewContentFromText(worldPrompt(description), genai.RoleUser)},
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   worldSchema,
		})
	if err != nil {
		return nil, fmt.Errorf("%w: world details: %v", ErrGenerationFailed, err)
	}

	details, err := parseWorldDetails(resp.Text())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	return details, nil
}

// GenerateStorySynopsis writes prose summarizing the chapters in narrative
// order. An empty chapter list short-circuits to the fixed placeholder.
func (c *Client) GenerateStorySynopsis(ctx context.Context, chapters []story.Chapter) (string, error) {
	if len(chapters) == 0 {
		return SynopsisPlaceholder, nil
	}

	resp, err := c.genai.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{genai.NewContentFromText(synopsisPrompt(chapters), genai.RoleUser)},
		nil)
	if err != nil {
		return "", fmt.Errorf("%w: synopsis: %v", ErrGenerationFailed, err)
	}
	return resp.Text(), nil
}

// GenerateItemImage renders an item from its description. Returns raw image
// bytes; callers base64-encode for storage.
func (c *Client) GenerateItemImage(ctx context.Context, description string) ([]byte, error) {
	return c.generateImage(ctx, "A detailed illustration of an object for a story: "+description)
}

// GenerateSceneIllustration renders a scene from a prose excerpt.
func (c *Client) GenerateSceneIllustration(ctx context.Context, scene string) ([]byte, error) {
	return c.generateImage(ctx, "An evocative illustration of the following scene from a story: "+scene)
}

func (c *Client) generateImage(ctx context.Context, prompt string) ([]byte, error) {
	resp, err := c.genai.Models.GenerateImages(ctx, c.imageModel, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: image: %v", ErrGenerationFailed, err)
	}
	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil {
		return nil, fmt.Errorf("%w: image: empty response", ErrGenerationFailed)
	}
	return resp.GeneratedImages[0].Image.ImageBytes, nil
}

// NewChatSession creates a conversational handle seeded with the story's
// title, genre, tone, and outline.
func (c *Client) NewChatSession(st *story.Story) ChatSession {
	return &chatSession{
		client:      c,
		instruction: chatSystemInstruction(st),
		logger:      c.logger.With("story_id", st.ID),
	}
}
