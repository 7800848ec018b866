// ABOUTME: Generator interface and shared types for the AI generation gateway
// ABOUTME: Everything the app asks of the generative service, behind one boundary

package gateway

import (
	"context"
	"errors"

	"github.com/quillworks/storywizard/internal/story"
)

// ErrGenerationFailed wraps every failure crossing the gateway boundary.
// Callers surface it as a dismissible condition and never retry.
var ErrGenerationFailed = errors.New("generation failed")

// SynopsisPlaceholder is returned for a story with no chapters; there is
// nothing to summarize and no model call is made.
const SynopsisPlaceholder = "Your story has no chapters yet. Write a chapter or two, then generate a synopsis."

// WorldDetails is the structured result of expanding a world description.
type WorldDetails struct {
	Description string `json:"description"`
	Geography   string `json:"geography"`
	Culture     string `json:"culture"`
}

// Chunk is one increment of a streaming chat reply. Err is set on the final
// chunk when the stream failed; Text chunks never carry an error.
type Chunk struct {
	Text string
	Err  error
}

// ChatSession is a stateful conversational handle seeded with a story's
// context. Sessions are scoped to the active story: acquire one per story,
// discard it (history included) when the active story changes.
type ChatSession interface {
	// Send streams the model's reply in incremental text chunks. The channel
	// is closed when the turn completes or fails.
	Send(ctx context.Context, message string) (<-chan Chunk, error)
}

// Generator is the external generative-AI boundary. Implementations perform
// no retries; a failed call simply returns ErrGenerationFailed wrapped
// around the cause.
type Generator interface {
	GenerateCharacterProfile(ctx context.Context, description string) (*story.Character, error)
	GenerateWorldDetails(ctx context.Context, description string) (*WorldDetails, error)
	GenerateStorySynopsis(ctx context.Context, chapters []story.Chapter) (string, error)
	GenerateItemImage(ctx context.Context, description string) ([]byte, error)
	GenerateSceneIllustration(ctx context.Context, scene string) ([]byte, error)
	NewChatSession(st *story.Story) ChatSession
}
