// Package story is the core data layer of StoryWizard: the ordered story
// collection, the active-story selection, and CRUD over every entity a story
// owns (chapters, characters, worlds, items, illustrations).
//
// # Ownership and invariants
//
// A Story exclusively owns the entities in its collections; nothing is shared
// across stories. The store maintains three invariants at all times:
//
//   - The active story id references an existing story, or nothing when the
//     collection is empty.
//   - Deleting the active story re-selects the first remaining story in
//     insertion order, or nothing.
//   - Cloning a story regenerates every nested entity id, clears the author,
//     and discards illustrations - source and clone share no ids.
//
// # Persistence
//
// Every mutation persists synchronously through the kv.Store the Store was
// constructed with. That repository is expected to be namespaced to the
// current user; building a Store per session identity is how per-user
// isolation happens (see the workspace package).
//
// # Concurrency
//
// Mutations are serialized by a single mutex. There is exactly one writer by
// construction of the calling event flow; the mutex exists so background
// autosaves and foreground edits cannot interleave mid-mutation.
package story
