// Package driven defines interfaces for external dependencies (index
// service, feed sources, storage). These are the "driven" ports in
// hexagonal architecture terminology - the application drives them.
//
// Implementations live in internal/adapters/driven and internal/feeds.
package driven
