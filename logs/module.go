package logs

import "github.com/reusee/dscope"

type Module struct {
	dscope.Module
}

// Span identifies one unit of work, such as a single evaluation.
type Span string

type spanKey struct{}

var SpanKey = spanKey{}
