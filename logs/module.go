package logs

import "github.com/reusee/dscope"

type Module struct {
	dscope.Module
}

// Span identifies one casting session in log output.
type Span string

type spanKeyType struct{}

var SpanKey spanKeyType
