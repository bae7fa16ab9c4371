// Package api contains the HTTP handlers, request/response models, and
// error mapping for the Taskify REST API. Handlers stay thin: they decode
// and validate input, call a store or service, and translate errors through
// the central status-code mapping.
package api
