// ABOUTME: Tests for the community story catalog
// ABOUTME: Verifies catalog immutability and clone-to-library behavior

package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillworks/storywizard/internal/kv"
	"github.com/quillworks/storywizard/internal/story"
)

func TestStoriesReturnsCopies(t *testing.T) {
	first := Stories()
	first[0].Title = "Vandalized"
	first[0].Characters[0].Name = "Vandal"

	again := Stories()
	assert.Equal(t, "The Crimson Cipher", again[0].Title)
	assert.Equal(t, `Kaelen "Kael" Rourke`, again[0].Characters[0].Name)
}

func TestFind(t *testing.T) {
	st, ok := Find("community-2")
	require.True(t, ok)
	assert.Equal(t, "Whispers of the Sunstone", st.Title)
	assert.Equal(t, "Elara Meadowlight", st.Author)

	_, ok = Find("community-999")
	assert.False(t, ok)
}

func TestCatalogStoriesHaveAuthors(t *testing.T) {
	for _, st := range Stories() {
		assert.NotEmpty(t, st.Author, "catalog story %s must carry an author", st.ID)
	}
}

func TestCloneCatalogStoryIntoLibrary(t *testing.T) {
	s, err := story.NewStore(context.Background(), kv.NewMemoryStore())
	require.NoError(t, err)

	src, ok := Find("community-2")
	require.True(t, ok)

	clone, err := s.CloneStory(context.Background(), src)
	require.NoError(t, err)

	assert.Empty(t, clone.Author, "clone strips the catalog author")
	assert.NotEqual(t, src.ID, clone.ID)
	require.Len(t, clone.Items, 1)
	assert.NotEqual(t, src.Items[0].ID, clone.Items[0].ID)

	// The catalog itself is untouched
	fresh, _ := Find("community-2")
	assert.Equal(t, "Elara Meadowlight", fresh.Author)
}
