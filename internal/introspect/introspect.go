// Package introspect derives field catalogs from a live GraphQL endpoint.
// The introspection query itself is composed with the selection engine.
package introspect

import (
	"context"
	"fmt"
	"time"

	"github.com/hanpama/gqlcompose/internal/catalog"
	"github.com/hanpama/gqlcompose/internal/client"
	"github.com/hanpama/gqlcompose/internal/eventbus"
	"github.com/hanpama/gqlcompose/internal/events"
	"github.com/hanpama/gqlcompose/internal/reqid"
	"github.com/hanpama/gqlcompose/internal/selection"
)

type Options struct {
	// Depth bounds the ofType chain in composed type references.
	// Below 1 means DefaultTypeRefDepth.
	Depth int
}

type Option func(*Options)

func WithDepth(depth int) Option { return func(o *Options) { o.Depth = depth } }

// Fetch introspects the endpoint behind c and compiles the result into
// a catalog set.
func Fetch(ctx context.Context, c *client.Client, opts ...Option) (*catalog.Set, error) {
	o := Options{Depth: DefaultTypeRefDepth}
	for _, f := range opts {
		f(&o)
	}
	ctx, _ = reqid.NewContext(ctx)

	start := time.Now()
	eventbus.Publish(ctx, events.IntrospectStart{Endpoint: c.Endpoint()})
	set, err := fetch(ctx, c, o)
	finish := events.IntrospectFinish{Endpoint: c.Endpoint(), Err: err, Duration: time.Since(start)}
	if set != nil {
		finish.Types = len(set.Types)
	}
	eventbus.Publish(ctx, finish)
	return set, err
}

func fetch(ctx context.Context, c *client.Client, o Options) (*catalog.Set, error) {
	res, err := c.Execute(ctx, client.Request{Query: QueryDocument(selection.Compact, o.Depth)})
	if err != nil {
		return nil, err
	}
	if len(res.Errors) > 0 {
		return nil, fmt.Errorf("introspect: endpoint rejected introspection: %s", res.Errors[0].Message)
	}
	return Convert(res.Data)
}
