package features

import "fmt"

// UnknownCategoryError is returned when a categorical value was never seen
// during training. Surfaced to the caller as a client error, never retried.
type UnknownCategoryError struct {
	Field string
	Value string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown %s category: %q", e.Field, e.Value)
}

// SchemaMismatchError is returned when the trained column order asks for a
// feature the encoder cannot produce. This is a configuration fault.
type SchemaMismatchError struct {
	Column string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("feature schema mismatch: no value for column %q", e.Column)
}
