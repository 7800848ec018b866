// ABOUTME: Session-scoped composition of the per-user stores
// ABOUTME: Rebuilds the story store and autosaver whenever the identity changes

package workspace

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/quillworks/storywizard/internal/gateway"
	"github.com/quillworks/storywizard/internal/identity"
	"github.com/quillworks/storywizard/internal/kv"
	"github.com/quillworks/storywizard/internal/story"
)

// ErrLoggedOut is returned when an operation needs a session and there is
// none.
var ErrLoggedOut = errors.New("not logged in")

// Workspace ties the session identity to the stores that depend on it. Story
// data lives under a per-user namespace of the backing store, so a login,
// signup, or logout swaps the whole story store out for one resolving against
// the new namespace.
type Workspace struct {
	backing   kv.Store
	identity  *identity.Service
	generator gateway.Generator
	delay     time.Duration
	logger    *slog.Logger

	mu        sync.Mutex
	stories   *story.Store
	autosaver *story.Autosaver
	chat      gateway.ChatSession
	chatStory string
}

// New builds a workspace over the backing store and subscribes to identity
// transitions. The generator may be nil when no API key is configured; chat
// then fails with gateway.ErrGenerationFailed. A non-positive autosaveDelay
// uses the store default.
func New(ctx context.Context, backing kv.Store, ident *identity.Service, generator gateway.Generator, autosaveDelay time.Duration) (*Workspace, error) {
	w := &Workspace{
		backing:   backing,
		identity:  ident,
		generator: generator,
		delay:     autosaveDelay,
		logger:    slog.Default().With("component", "workspace"),
	}

	if u, ok := ident.CurrentUser(); ok {
		if err := w.bind(ctx, u); err != nil {
			return nil, err
		}
	}

	ident.Subscribe(func(u *identity.User) {
		if err := w.bind(context.Background(), u); err != nil {
			w.logger.Error("rebinding workspace failed", "error", err)
		}
	})
	return w, nil
}

// bind swaps the session-scoped state for the given user. A nil user tears
// everything down. Any pending autosave is flushed before the old store goes
// away.
func (w *Workspace) bind(ctx context.Context, u *identity.User) error {
	w.mu.Lock()
	old := w.autosaver
	w.autosaver = nil
	w.stories = nil
	w.chat = nil
	w.chatStory = ""
	w.mu.Unlock()

	if old != nil {
		old.Close()
	}
	if u == nil {
		w.logger.Debug("workspace unbound")
		return nil
	}

	stories, err := story.NewStore(ctx, kv.Namespaced(w.backing, u.ID))
	if err != nil {
		return err
	}

	w.mu.Lock()
	w.stories = stories
	w.autosaver = story.NewAutosaver(stories, w.delay)
	w.mu.Unlock()

	w.logger.Debug("workspace bound", "user_id", u.ID)
	return nil
}

// Stories returns the story store for the current session.
func (w *Workspace) Stories() (*story.Store, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stories == nil {
		return nil, ErrLoggedOut
	}
	return w.stories, nil
}

// Autosaver returns the debounced chapter writer for the current session.
func (w *Workspace) Autosaver() (*story.Autosaver, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.autosaver == nil {
		return nil, ErrLoggedOut
	}
	return w.autosaver, nil
}

// Generator returns the AI gateway, which is session-independent. May be nil
// when the application runs without an API key.
func (w *Workspace) Generator() gateway.Generator {
	return w.generator
}

// ChatSession returns a chat session seeded with the active story, creating
// one on first use and replacing it when the active story changes. The
// session carries conversational history, so it stays alive across calls for
// the same story.
func (w *Workspace) ChatSession() (gateway.ChatSession, error) {
	stories, err := w.Stories()
	if err != nil {
		return nil, err
	}
	if w.generator == nil {
		return nil, gateway.ErrGenerationFailed
	}

	active, ok := stories.ActiveStory()
	if !ok {
		return nil, story.ErrStoryNotFound
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.chat == nil || w.chatStory != active.ID {
		w.chat = w.generator.NewChatSession(active)
		w.chatStory = active.ID
	}
	return w.chat, nil
}

// Close flushes pending autosaves. The backing store stays open; it belongs
// to the caller.
func (w *Workspace) Close() {
	w.mu.Lock()
	saver := w.autosaver
	w.mu.Unlock()
	if saver != nil {
		saver.Close()
	}
}
