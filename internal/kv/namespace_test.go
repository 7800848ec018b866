// ABOUTME: Tests for the namespaced kv store decorator
// ABOUTME: Verifies isolation between namespaces on a shared backing store

package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamespacedIsolation(t *testing.T) {
	backing := NewMemoryStore()
	ctx := context.Background()

	alice := Namespaced(backing, "user-alice")
	bob := Namespaced(backing, "user-bob")

	require.NoError(t, alice.Set(ctx, "stories", []byte("alice's stories")))
	require.NoError(t, bob.Set(ctx, "stories", []byte("bob's stories")))

	va, err := alice.Get(ctx, "stories")
	require.NoError(t, err)
	assert.Equal(t, []byte("alice's stories"), va)

	vb, err := bob.Get(ctx, "stories")
	require.NoError(t, err)
	assert.Equal(t, []byte("bob's stories"), vb)

	// Deleting in one namespace never touches the other
	require.NoError(t, alice.Delete(ctx, "stories"))
	_, err = alice.Get(ctx, "stories")
	assert.ErrorIs(t, err, ErrNotFound)

	vb, err = bob.Get(ctx, "stories")
	require.NoError(t, err)
	assert.Equal(t, []byte("bob's stories"), vb)
}

func TestNamespaceAccessor(t *testing.T) {
	ns := Namespaced(NewMemoryStore(), "user-1")
	assert.Equal(t, "user-1", ns.Namespace())
}
