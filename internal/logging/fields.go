// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Pipeline fields.
	FieldStage    = "stage"
	FieldDuration = "duration"
	FieldTokens   = "tokens"
	FieldNodes    = "nodes"
	FieldBytes    = "bytes"
	FieldEngine   = "engine"

	// Cache fields.
	FieldCacheStrategy = "cache_strategy"
	FieldCacheKey      = "cache_key"
	FieldCacheHits     = "cache_hits"
	FieldCacheMisses   = "cache_misses"

	// Configuration fields.
	FieldConfig   = "config"
	FieldColor    = "color"
	FieldLogLevel = "log_level"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
