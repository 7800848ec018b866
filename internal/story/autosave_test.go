// ABOUTME: Tests for debounced chapter autosave
// ABOUTME: Verifies keystroke coalescing, window reset, flush, and chapter switching

package story

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutosaveFiresAfterQuietWindow(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	st, _ := s.AddStory(ctx, "Tale")
	ch, _ := s.AddChapter(ctx, st.ID, Chapter{Title: "Ch1"})

	a := NewAutosaver(s, 20*time.Millisecond)
	defer a.Close()

	a.Write(st.ID, ch.ID, "Once upon")
	a.Write(st.ID, ch.ID, "Once upon a time")

	require.Eventually(t, func() bool {
		got, _ := s.Story(st.ID)
		return got.Chapters[0].Content == "Once upon a time"
	}, time.Second, 5*time.Millisecond)
}

func TestAutosaveFlushIsImmediate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	st, _ := s.AddStory(ctx, "Tale")
	ch, _ := s.AddChapter(ctx, st.ID, Chapter{Title: "Ch1"})

	a := NewAutosaver(s, time.Hour)
	defer a.Close()

	a.Write(st.ID, ch.ID, "draft text")
	a.Flush()

	got, _ := s.Story(st.ID)
	assert.Equal(t, "draft text", got.Chapters[0].Content)
}

func TestAutosaveSwitchingChaptersFlushesPrevious(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	st, _ := s.AddStory(ctx, "Tale")
	first, _ := s.AddChapter(ctx, st.ID, Chapter{Title: "Ch1"})
	second, _ := s.AddChapter(ctx, st.ID, Chapter{Title: "Ch2"})

	a := NewAutosaver(s, time.Hour)
	defer a.Close()

	a.Write(st.ID, first.ID, "chapter one text")
	a.Write(st.ID, second.ID, "chapter two text")

	// Moving to another chapter must not lose the pending edit
	got, _ := s.Story(st.ID)
	assert.Equal(t, "chapter one text", got.Chapters[0].Content)

	a.Flush()
	got, _ = s.Story(st.ID)
	assert.Equal(t, "chapter two text", got.Chapters[1].Content)
}

func TestAutosaveCloseIgnoresLaterWrites(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	st, _ := s.AddStory(ctx, "Tale")
	ch, _ := s.AddChapter(ctx, st.ID, Chapter{Title: "Ch1"})

	a := NewAutosaver(s, 10*time.Millisecond)
	a.Close()
	a.Write(st.ID, ch.ID, "should be dropped")
	a.Flush()

	got, _ := s.Story(st.ID)
	assert.Empty(t, got.Chapters[0].Content)
}
