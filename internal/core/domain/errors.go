package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a collection or document key conflict.
	// During ingestion this is success-equivalent: the document is
	// already stored and the write is skipped, not failed.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrExtraction indicates a feed item is missing its mandatory
	// structure and could not be normalised. The item is skipped and
	// the rest of the feed continues.
	ErrExtraction = errors.New("extraction failed")

	// ErrTransport indicates a feed source could not be reached.
	// The feed is skipped and other feeds continue.
	ErrTransport = errors.New("feed unreachable")

	// ErrUnknownSearchMode indicates an unrecognised search type.
	// Fatal to the invocation, never a silent no-op.
	ErrUnknownSearchMode = errors.New("unknown search mode")

	// ErrMissingArgument indicates a management action lacks a
	// required argument.
	ErrMissingArgument = errors.New("missing required argument")

	// ErrIndexUnavailable indicates the index service is not configured.
	ErrIndexUnavailable = errors.New("index service unavailable")
)
