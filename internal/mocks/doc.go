// Package mocks provides hand-written test doubles for the store and
// service interfaces. Each mock uses function fields for per-test behavior
// overrides and falls back to a simple in-memory default implementation.
package mocks
