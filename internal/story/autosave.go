// ABOUTME: Debounced persistence of chapter content during manuscript editing
// ABOUTME: Each keystroke resets the window; the write fires once typing goes quiet

package story

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultAutosaveDelay is the quiet window after the last edit before
// chapter content is persisted.
const DefaultAutosaveDelay = time.Second

// Autosaver delays persistence of chapter content so that the store is not
// written on every keystroke. Write resets the window; only the most recent
// content for the pending chapter is ever persisted.
type Autosaver struct {
	store  *Store
	delay  time.Duration
	logger *slog.Logger

	mu      sync.Mutex
	timer   *time.Timer
	pending *pendingEdit
	closed  bool
}

type pendingEdit struct {
	storyID   string
	chapterID string
	content   string
}

// NewAutosaver creates an autosaver over the given store. A non-positive
// delay falls back to DefaultAutosaveDelay.
func NewAutosaver(store *Store, delay time.Duration) *Autosaver {
	if delay <= 0 {
		delay = DefaultAutosaveDelay
	}
	return &Autosaver{
		store:  store,
		delay:  delay,
		logger: slog.Default().With("component", "autosave"),
	}
}

// Write records the latest content for a chapter and restarts the debounce
// window. A pending edit for a different chapter is flushed immediately so
// no edit is lost when the user switches chapters mid-window.
func (a *Autosaver) Write(storyID, chapterID, content string) {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}

	if a.pending != nil && (a.pending.chapterID != chapterID || a.pending.storyID != storyID) {
		prev := a.pending
		a.pending = nil
		a.mu.Unlock()
		a.save(prev)
		a.mu.Lock()
	}

	a.pending = &pendingEdit{storyID: storyID, chapterID: chapterID, content: content}
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.delay, a.fire)
	a.mu.Unlock()
}

func (a *Autosaver) fire() {
	a.mu.Lock()
	edit := a.pending
	a.pending = nil
	a.mu.Unlock()
	if edit != nil {
		a.save(edit)
	}
}

func (a *Autosaver) save(edit *pendingEdit) {
	ctx := context.Background()
	st, err := a.store.Story(edit.storyID)
	if err != nil {
		a.logger.Warn("autosave target story missing", "story_id", edit.storyID)
		return
	}
	for _, ch := range st.Chapters {
		if ch.ID == edit.chapterID {
			if ch.Content == edit.content {
				return
			}
			ch.Content = edit.content
			if err := a.store.UpdateChapter(ctx, edit.storyID, ch); err != nil {
				a.logger.Error("autosave failed", "chapter_id", edit.chapterID, "error", err)
			}
			return
		}
	}
	a.logger.Warn("autosave target chapter missing", "chapter_id", edit.chapterID)
}

// Flush persists any pending edit immediately.
func (a *Autosaver) Flush() {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
	}
	edit := a.pending
	a.pending = nil
	a.mu.Unlock()
	if edit != nil {
		a.save(edit)
	}
}

// Close flushes any pending edit and stops the autosaver. Subsequent Writes
// are ignored.
func (a *Autosaver) Close() {
	a.mu.Lock()
	a.closed = true
	a.mu.Unlock()
	a.Flush()
}
