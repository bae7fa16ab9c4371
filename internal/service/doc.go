// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and the stores
// (defined in internal/store) to fulfill application features: the task
// lifecycle with its notification side effects, and the on-demand analytics
// aggregation.
//
// Services receive dependencies through constructor injection and depend on
// store interfaces, never on specific infrastructure implementations. The
// API layer maps the sentinel errors surfaced here to HTTP status codes.
package service
