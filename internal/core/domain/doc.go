// Package domain defines the core business entities for Presscan.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Article: A normalised feed item ready for indexing
//   - DocumentMetadata: The capped metadata record stored with a document
//   - Filter: Structured metadata predicate for queries
//   - DocumentResult / SnippetResult / PageResult: Retrieval variants
//   - RerankedResult: A document result carrying both stage scores
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
