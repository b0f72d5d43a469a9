// Package snapshot is an optional boundary adapter that persists and fans
// out computed dashboard snapshots through Redis for server-side consoles.
//
// The engine itself never performs I/O; this package exists for deployments
// where snapshots are computed centrally and multiple console sessions
// render them. Save/Load keep the latest snapshot per farm, and
// Publish/Subscribe fan live refreshes out to open sessions.
package snapshot
