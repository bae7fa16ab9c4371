// Package store defines the persistence interfaces and shared errors used
// by the service and API layers. Implementations live under
// internal/platform; the interfaces here keep callers independent of the
// storage backend. Every read and write is scoped to an owning user ID so
// cross-user leakage is impossible at the access layer.
package store
