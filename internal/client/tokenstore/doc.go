// Package tokenstore persists small string secrets, such as the session
// bearer token, across process restarts.
//
// # Backends
//
// Store has three implementations:
//
//   - KeyringStore: the operating system's secure storage (macOS Keychain,
//     Windows Credential Manager, Secret Service) via go-keyring.
//   - SQLiteStore: a local SQLite file, used where no keyring is reachable
//     (headless Linux, containers, CI).
//   - MemoryStore: process-local, for tests.
//
// Open picks one backend at startup; callers never branch on the backend
// afterwards. With BackendAuto the keyring is probed once and the SQLite
// file is used if the probe fails.
//
// # Caching
//
// Cached wraps any Store with a read-through cache. Writes made through the
// wrapper update or evict the cached entry before they return, so a Get
// after Set/Delete in the same process never sees stale data.
package tokenstore
