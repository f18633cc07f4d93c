package models

import "fmt"

// DataIntegrityError reports a persisted record that cannot be mapped back into
// the domain model, e.g. an unknown enumeration value or a malformed date.
// Fetch paths skip the offending record rather than failing the whole fetch.
type DataIntegrityError struct {
	Field string
	Value string
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("data integrity: unrecognized %s value %q", e.Field, e.Value)
}
