// Package identity manages registered accounts and the current session.
//
// Accounts are matched by case-insensitive email. Passwords are bcrypt
// hashed; the hash never leaves this package. The session identity is
// persisted as an HS256-signed token so a tampered session file reads as
// logged out rather than as someone else.
//
// Every session transition (login, signup, logout) notifies subscribed
// listeners, which is how per-user-namespaced stores re-resolve their
// namespace - there is no manual cache-busting call.
package identity
