package hexes

import "fmt"

// ParseError reports a malformed pattern string. It is returned
// synchronously by constructors and never enters a running VM.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %s", e.Input, e.Reason)
}
