// Package state holds the shared browse snapshot and its store.
//
// # Overview
//
// All mutable application state lives in one Snapshot struct: the query
// text, the search result list with its request state, the hover preview,
// the selected card, and the default card slot. The browse controller is
// the only writer; the UI reads value copies and subscribes to change
// notifications instead of touching shared fields.
//
// # Concurrency
//
// Store guards the snapshot with a RWMutex. Update applies a mutation
// function under the write lock and then signals the watch channel;
// Snapshot clones the result slice and card pointers under the read lock
// so callers can never alias stored state. The watch channel has a buffer
// of one and signals coalesce, which is exactly what a redraw loop wants:
// "something changed since you last looked", not an event per change.
//
// # Request States
//
// RequestState models each network operation's lifecycle independently.
// The search operation walks Idle → Debouncing → Loading → Success/Error;
// the detail fetch only uses Idle/Loading because its failure path falls
// back silently; the default card slot reports Loading/Success/Error.
package state
