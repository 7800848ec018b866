// Package kv provides the durable key-value store all StoryWizard state is
// persisted through.
//
// The Store interface is deliberately small: Get, Set, Delete, Close. Values
// are opaque bytes; GetJSON/SetJSON layer JSON encoding on top so stores can
// persist structured state. A missing or undecodable value never surfaces as
// an error to JSON callers - they receive their declared fallback instead.
//
// Implementations:
//
//   - SQLiteStore: single kv table in a SQLite database (WAL mode), with a
//     write-through in-memory cache
//   - MemoryStore: map-backed store for unit tests
//   - NamespacedStore: decorator that prefixes every key, isolating per-user
//     state on a shared physical store
package kv
