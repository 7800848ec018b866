// ABOUTME: Story store owning the user's story collection and active selection
// ABOUTME: All mutations persist synchronously through the injected repository

package story

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/quillworks/storywizard/internal/kv"
)

// Persisted keys, relative to the per-user namespace.
const (
	storiesKey  = "storywizard-stories"
	activeIDKey = "storywizard-activeStoryId"
)

// ErrStoryNotFound is returned when an operation targets a story id that is
// not in the collection. Callers are expected to pre-validate the active
// story, so hitting this is a programming error rather than a user-facing
// condition.
var ErrStoryNotFound = errors.New("story not found")

// ErrEntityNotFound is returned when an update targets a nested entity id
// that is not in its parent story's collection.
var ErrEntityNotFound = errors.New("entity not found")

// Store owns the ordered story collection and the active story id for one
// user namespace. Construct a fresh Store whenever the session identity
// changes; the repository carries the namespace.
type Store struct {
	repo   kv.Store
	logger *slog.Logger

	mu       sync.Mutex
	stories  []*Story
	activeID string // empty means no active story
}

// NewStore loads the story collection from the repository. Missing or
// undecodable state yields an empty collection. The active id is reconciled
// against the loaded collection so it always references an existing story or
// nothing.
func NewStore(ctx context.Context, repo kv.Store) (*Store, error) {
	s := &Store{
		repo:   repo,
		logger: slog.Default().With("component", "story"),
	}

	var stored []*Story
	if err := kv.GetJSON(ctx, repo, storiesKey, &stored, func() { stored = nil }); err != nil {
		return nil, fmt.Errorf("loading stories: %w", err)
	}
	s.stories = stored

	var activeID string
	if err := kv.GetJSON(ctx, repo, activeIDKey, &activeID, func() { activeID = "" }); err != nil {
		return nil, fmt.Errorf("loading active story id: %w", err)
	}
	s.activeID = activeID
	s.reconcileActiveLocked()

	s.logger.Debug("story store loaded", "stories", len(s.stories))
	return s, nil
}

// reconcileActiveLocked enforces the active-selection invariant: the active
// id references an existing story, or the first story when none is selected,
// or nothing when the collection is empty.
func (s *Store) reconcileActiveLocked() {
	if len(s.stories) == 0 {
		s.activeID = ""
		return
	}
	for _, st := range s.stories {
		if st.ID == s.activeID {
			return
		}
	}
	s.activeID = s.stories[0].ID
}

func (s *Store) persistLocked(ctx context.Context) error {
	if err := kv.SetJSON(ctx, s.repo, storiesKey, s.stories); err != nil {
		return fmt.Errorf("persisting stories: %w", err)
	}
	if err := kv.SetJSON(ctx, s.repo, activeIDKey, s.activeID); err != nil {
		return fmt.Errorf("persisting active story id: %w", err)
	}
	return nil
}

func (s *Store) findLocked(storyID string) (*Story, error) {
	for _, st := range s.stories {
		if st.ID == storyID {
			return st, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrStoryNotFound, storyID)
}

// Stories returns a snapshot of the collection in insertion order. The
// returned stories are deep copies; mutate them and commit through
// UpdateStory.
func (s *Store) Stories() []*Story {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Story, len(s.stories))
	for i, st := range s.stories {
		out[i] = st.Clone()
	}
	return out
}

// Story returns a deep copy of the story with the given id.
func (s *Store) Story(storyID string) (*Story, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.findLocked(storyID)
	if err != nil {
		return nil, err
	}
	return st.Clone(), nil
}

// ActiveStoryID returns the active story id, or false when no story is
// selected.
func (s *Store) ActiveStoryID() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID, s.activeID != ""
}

// ActiveStory returns a deep copy of the active story, or false when the
// collection is empty.
func (s *Store) ActiveStory() (*Story, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeID == "" {
		return nil, false
	}
	st, err := s.findLocked(s.activeID)
	if err != nil {
		return nil, false
	}
	return st.Clone(), true
}

// AddStory creates a story with empty collections, appends it, and makes it
// active.
func (s *Store) AddStory(ctx context.Context, title string) (*Story, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := &Story{
		ID:            uuid.NewString(),
		Title:         title,
		Chapters:      []Chapter{},
		Characters:    []Character{},
		Worlds:        []World{},
		Items:         []Item{},
		Illustrations: []Illustration{},
	}
	s.stories = append(s.stories, st)
	s.activeID = st.ID

	if err := s.persistLocked(ctx); err != nil {
		return nil, err
	}
	s.logger.Info("story added", "story_id", st.ID, "title", title)
	return st.Clone(), nil
}

// UpdateStory replaces the stored story matched by id with the given one.
func (s *Store) UpdateStory(ctx context.Context, updated *Story) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, st := range s.stories {
		if st.ID == updated.ID {
			s.stories[i] = updated.Clone()
			return s.persistLocked(ctx)
		}
	}
	return fmt.Errorf("%w: %s", ErrStoryNotFound, updated.ID)
}

// DeleteStory removes the story with the given id. If it was active, the
// first remaining story (insertion order) becomes active, or none when the
// collection is empty.
func (s *Store) DeleteStory(ctx context.Context, storyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, st := range s.stories {
		if st.ID == storyID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrStoryNotFound, storyID)
	}

	s.stories = append(s.stories[:idx], s.stories[idx+1:]...)
	if s.activeID == storyID {
		if len(s.stories) > 0 {
			s.activeID = s.stories[0].ID
		} else {
			s.activeID = ""
		}
	}

	if err := s.persistLocked(ctx); err != nil {
		return err
	}
	s.logger.Info("story deleted", "story_id", storyID)
	return nil
}

// CloneStory deep-copies source into the collection: new story id, author
// cleared, every nested entity id regenerated, illustrations discarded. The
// clone is appended and becomes active. Source does not need to be in the
// collection - catalog stories clone the same way as the user's own.
func (s *Store) CloneStory(ctx context.Context, source *Story) (*Story, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := source.Clone()
	clone.ID = uuid.NewString()
	clone.Author = ""
	for i := range clone.Chapters {
		clone.Chapters[i].ID = uuid.NewString()
	}
	for i := range clone.Characters {
		clone.Characters[i].ID = uuid.NewString()
	}
	for i := range clone.Worlds {
		clone.Worlds[i].ID = uuid.NewString()
	}
	for i := range clone.Items {
		clone.Items[i].ID = uuid.NewString()
	}
	clone.Illustrations = []Illustration{}

	s.stories = append(s.stories, clone)
	s.activeID = clone.ID

	if err := s.persistLocked(ctx); err != nil {
		return nil, err
	}
	s.logger.Info("story cloned", "source_id", source.ID, "story_id", clone.ID)
	return clone.Clone(), nil
}

// SetActiveStoryID changes the active selection. The story must exist.
func (s *Store) SetActiveStoryID(ctx context.Context, storyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.findLocked(storyID); err != nil {
		return err
	}
	s.activeID = storyID
	return s.persistLocked(ctx)
}

// ClearActiveStory deselects any active story.
func (s *Store) ClearActiveStory(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeID = ""
	return s.persistLocked(ctx)
}

// AddCharacter assigns a new id to the character and appends it to the
// story's cast. Slices and the appearance record are normalized so the
// persisted character is always fully materialized.
func (s *Store) AddCharacter(ctx context.Context, storyID string, c Character) (*Character, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.findLocked(storyID)
	if err != nil {
		return nil, err
	}

	mat := MaterializeCharacter(c)
	mat.ID = uuid.NewString()
	st.Characters = append(st.Characters, mat)

	if err := s.persistLocked(ctx); err != nil {
		return nil, err
	}
	return &mat, nil
}

// UpdateCharacter replaces the character matched by id within the story.
func (s *Store) UpdateCharacter(ctx context.Context, storyID string, c Character) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.findLocked(storyID)
	if err != nil {
		return err
	}
	for i := range st.Characters {
		if st.Characters[i].ID == c.ID {
			mat := MaterializeCharacter(c)
			st.Characters[i] = mat
			return s.persistLocked(ctx)
		}
	}
	return fmt.Errorf("%w: character %s", ErrEntityNotFound, c.ID)
}

// DeleteCharacter removes the character with the given id. Removing a
// missing id is not an error.
func (s *Store) DeleteCharacter(ctx context.Context, storyID, characterID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.findLocked(storyID)
	if err != nil {
		return err
	}
	kept := st.Characters[:0]
	for _, c := range st.Characters {
		if c.ID != characterID {
			kept = append(kept, c)
		}
	}
	st.Characters = kept
	return s.persistLocked(ctx)
}

// AddWorld assigns a new id to the world and appends it.
func (s *Store) AddWorld(ctx context.Context, storyID string, w World) (*World, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.findLocked(storyID)
	if err != nil {
		return nil, err
	}
	w.ID = uuid.NewString()
	st.Worlds = append(st.Worlds, w)

	if err := s.persistLocked(ctx); err != nil {
		return nil, err
	}
	return &w, nil
}

// UpdateWorld replaces the world matched by id within the story.
func (s *Store) UpdateWorld(ctx context.Context, storyID string, w World) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.findLocked(storyID)
	if err != nil {
		return err
	}
	for i := range st.Worlds {
		if st.Worlds[i].ID == w.ID {
			st.Worlds[i] = w
			return s.persistLocked(ctx)
		}
	}
	return fmt.Errorf("%w: world %s", ErrEntityNotFound, w.ID)
}

// DeleteWorld removes the world with the given id.
func (s *Store) DeleteWorld(ctx context.Context, storyID, worldID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.findLocked(storyID)
	if err != nil {
		return err
	}
	kept := st.Worlds[:0]
	for _, w := range st.Worlds {
		if w.ID != worldID {
			kept = append(kept, w)
		}
	}
	st.Worlds = kept
	return s.persistLocked(ctx)
}

// AddChapter assigns a new id to the chapter and appends it to the narrative
// sequence.
func (s *Store) AddChapter(ctx context.Context, storyID string, c Chapter) (*Chapter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.findLocked(storyID)
	if err != nil {
		return nil, err
	}
	c.ID = uuid.NewString()
	if c.TensionLevel == "" {
		c.TensionLevel = TensionLow
	}
	st.Chapters = append(st.Chapters, c)

	if err := s.persistLocked(ctx); err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateChapter replaces the chapter matched by id within the story.
func (s *Store) UpdateChapter(ctx context.Context, storyID string, c Chapter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.findLocked(storyID)
	if err != nil {
		return err
	}
	for i := range st.Chapters {
		if st.Chapters[i].ID == c.ID {
			st.Chapters[i] = c
			return s.persistLocked(ctx)
		}
	}
	return fmt.Errorf("%w: chapter %s", ErrEntityNotFound, c.ID)
}

// DeleteChapter removes the chapter with the given id. Illustrations keep
// their chapter back-reference; it is informational only.
func (s *Store) DeleteChapter(ctx context.Context, storyID, chapterID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.findLocked(storyID)
	if err != nil {
		return err
	}
	kept := st.Chapters[:0]
	for _, c := range st.Chapters {
		if c.ID != chapterID {
			kept = append(kept, c)
		}
	}
	st.Chapters = kept
	return s.persistLocked(ctx)
}

// UpdateChaptersOrder replaces the full chapter list with a new ordering.
// The store accepts the list as given; callers are responsible for passing a
// permutation and not silently dropping chapters.
func (s *Store) UpdateChaptersOrder(ctx context.Context, storyID string, chapters []Chapter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.findLocked(storyID)
	if err != nil {
		return err
	}
	st.Chapters = append([]Chapter(nil), chapters...)
	return s.persistLocked(ctx)
}

// AddItem assigns a new id to the item and appends it.
func (s *Store) AddItem(ctx context.Context, storyID string, it Item) (*Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.findLocked(storyID)
	if err != nil {
		return nil, err
	}
	it.ID = uuid.NewString()
	st.Items = append(st.Items, it)

	if err := s.persistLocked(ctx); err != nil {
		return nil, err
	}
	return &it, nil
}

// UpdateItem replaces the item matched by id within the story.
func (s *Store) UpdateItem(ctx context.Context, storyID string, it Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.findLocked(storyID)
	if err != nil {
		return err
	}
	for i := range st.Items {
		if st.Items[i].ID == it.ID {
			st.Items[i] = it
			return s.persistLocked(ctx)
		}
	}
	return fmt.Errorf("%w: item %s", ErrEntityNotFound, it.ID)
}

// DeleteItem removes the item with the given id.
func (s *Store) DeleteItem(ctx context.Context, storyID, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.findLocked(storyID)
	if err != nil {
		return err
	}
	kept := st.Items[:0]
	for _, it := range st.Items {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	st.Items = kept
	return s.persistLocked(ctx)
}

// AddIllustration assigns a new id to the illustration and appends it.
// Illustrations are generated artifacts: there is no update or delete.
func (s *Store) AddIllustration(ctx context.Context, storyID string, il Illustration) (*Illustration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.findLocked(storyID)
	if err != nil {
		return nil, err
	}
	il.ID = uuid.NewString()
	st.Illustrations = append(st.Illustrations, il)

	if err := s.persistLocked(ctx); err != nil {
		return nil, err
	}
	return &il, nil
}
