package reqid

import (
	"context"

	"github.com/google/uuid"
)

// key is the context key for the request ID.
type key struct{}

// NewContext returns a copy of parent with a fresh request ID stored, and
// the ID itself. A parent that already carries an ID is returned as is so
// that nested operations share one ID.
func NewContext(parent context.Context) (context.Context, string) {
	if id, ok := FromContext(parent); ok {
		return parent, id
	}
	id := uuid.NewString()
	return context.WithValue(parent, key{}, id), id
}

// FromContext extracts the request ID from ctx.
// It returns the ID and whether it was present.
func FromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(key{})
	id, ok := v.(string)
	return id, ok
}
