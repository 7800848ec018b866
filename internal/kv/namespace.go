// ABOUTME: Namespaced Store decorator for per-user state isolation
// ABOUTME: Prefixes every key with a namespace derived from the user id

package kv

import "context"

// NamespacedStore wraps a Store so that every key is prefixed with a
// namespace. Two NamespacedStores over the same backing store but with
// different namespaces never observe each other's values.
type NamespacedStore struct {
	backing Store
	prefix  string
}

// Namespaced returns a Store scoped to the given namespace, typically a user
// id. Keys are stored as "<namespace>:<key>".
func Namespaced(backing Store, namespace string) *NamespacedStore {
	return &NamespacedStore{backing: backing, prefix: namespace + ":"}
}

// Namespace returns the namespace this store is scoped to, without the
// separator.
func (s *NamespacedStore) Namespace() string {
	return s.prefix[:len(s.prefix)-1]
}

// Get returns the value stored under the namespaced key.
func (s *NamespacedStore) Get(ctx context.Context, key string) ([]byte, error) {
	return s.backing.Get(ctx, s.prefix+key)
}

// Set persists value under the namespaced key.
func (s *NamespacedStore) Set(ctx context.Context, key string, value []byte) error {
	return s.backing.Set(ctx, s.prefix+key, value)
}

// Delete removes the value stored under the namespaced key.
func (s *NamespacedStore) Delete(ctx context.Context, key string) error {
	return s.backing.Delete(ctx, s.prefix+key)
}

// Close is a no-op: the backing store outlives any namespace view of it.
func (s *NamespacedStore) Close() error { return nil }
