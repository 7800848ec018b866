// Package locale resolves display strings from embedded translation tables.
// The active locale is a single global setting shared by every account on the
// machine; lookups fall back to the key itself when a translation is missing.
package locale
