// Package workspace composes the session-scoped stores. It listens for
// identity transitions and rebinds the story store to the new user's
// namespace, so callers never hold a store that resolves against the wrong
// account's data.
package workspace
