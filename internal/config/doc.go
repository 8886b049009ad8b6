// Package config persists spotisonic's application settings as a JSON
// document on disk and merges them with built-in defaults.
//
// # Storage
//
// Settings live in a single flat key-value document, pretty-printed for manual
// inspection and editing. The default location is the per-user configuration
// directory (~/.config/spotisonic/config.json on Linux); tests and embedders
// construct stores against any path.
//
// # Behavior
//
// The file is created lazily on first Load. A missing file and an unparseable
// file are both non-fatal: the store rewrites the defaults and carries on,
// optionally reporting the repair through a hook. Every Load result contains
// all default keys, with persisted values winning on overlap. Unknown keys are
// preserved verbatim.
//
// The store performs no locking. Two concurrent Set calls against the same
// path race, and the last save wins; callers needing multi-writer safety must
// serialize access themselves.
package config
