package action

import (
	"fmt"
	"strings"
)

// UnknownAttributeError reports an inline or flag attribute name that does not
// exist in the target kind's schema.
type UnknownAttributeError struct {
	Name string
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("unknown resource attribute: %s", e.Name)
}

// MalformedPayloadError reports a --json payload that failed to parse.
type MalformedPayloadError struct {
	Cause error
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("error parsing JSON: %v", e.Cause)
}

func (e *MalformedPayloadError) Unwrap() error {
	return e.Cause
}

// MissingIdentifierError reports that no primary-identifying field could be
// resolved. It names every candidate so the operator knows which flags would
// have worked.
type MissingIdentifierError struct {
	Candidates []string
}

func (e *MissingIdentifierError) Error() string {
	return fmt.Sprintf("required attribute %q not specified", strings.Join(e.Candidates, " or "))
}
