// ABOUTME: Streaming chat session seeded with a story's context
// ABOUTME: Maintains turn history; replies stream as incremental chunks

package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"google.golang.org/genai"
)

// chatSession implements ChatSession over the Gemini streaming API. History
// accumulates for the lifetime of the session and is discarded with it.
type chatSession struct {
	client      *Client
	instruction string
	logger      *slog.Logger

	mu      sync.Mutex
	history []*genai.Content
	busy    bool
}

// Send streams the model's reply to message. One turn may be in flight at a
// time; the user's message joins the history immediately, the reply joins it
// once the stream completes.
func (s *chatSession) Send(ctx context.Context, message string) (<-chan Chunk, error) {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: a chat turn is already in flight", ErrGenerationFailed)
	}
	s.busy = true
	s.history = append(s.history, genai.NewContentFromText(message, genai.RoleUser))
	contents := append([]*genai.Content(nil), s.history...)
	s.mu.Unlock()

	out := make(chan Chunk)
	go func() {
		defer close(out)
		defer func() {
			s.mu.Lock()
			s.busy = false
			s.mu.Unlock()
		}()

		config := &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(s.instruction, genai.RoleUser),
		}

		var full string
		for resp, err := range s.client.genai.Models.GenerateContentStream(ctx, s.client.model, contents, config) {
			if err != nil {
				s.logger.Warn("chat stream failed", "error", err)
				out <- Chunk{Err: fmt.Errorf("%w: chat: %v", ErrGenerationFailed, err)}
				return
			}
			text := resp.Text()
			if text == "" {
				continue
			}
			full += text
			select {
			case out <- Chunk{Text: text}:
			case <-ctx.Done():
				return
			}
		}

		s.mu.Lock()
		s.history = append(s.history, genai.NewContentFromText(full, genai.RoleModel))
		s.mu.Unlock()
	}()

	return out, nil
}
