package otel

import (
	"context"
	"sync"

	"github.com/hanpama/gqlcompose/internal/eventbus"
	"github.com/hanpama/gqlcompose/internal/events"
	"github.com/hanpama/gqlcompose/internal/reqid"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
)

// Setup configures OpenTelemetry and attaches eventbus subscribers.
// If endpoint is empty, no telemetry is configured.
func Setup(endpoint, service string) (func(context.Context) error, error) {
	if endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}
	exp, err := otlptracegrpc.New(context.Background(),
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithDialOption(grpc.WithInsecure()))
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(service),
		)),
	)
	otel.SetTracerProvider(tp)

	sub := &subscriber{tracer: otel.Tracer("gqlcompose")}
	sub.register()

	return tp.Shutdown, nil
}

type subscriber struct {
	tracer     trace.Tracer
	introSpans sync.Map // rid -> trace.Span
	reqSpans   sync.Map // rid -> trace.Span
}

func (s *subscriber) register() {
	eventbus.Subscribe(func(ctx context.Context, e events.IntrospectStart) {
		rid, _ := reqid.FromContext(ctx)
		_, span := s.tracer.Start(ctx, "graphql.introspect")
		span.SetAttributes(attribute.String("graphql.endpoint", e.Endpoint))
		s.introSpans.Store(rid, span)
	})

	eventbus.Subscribe(func(ctx context.Context, e events.IntrospectFinish) {
		rid, _ := reqid.FromContext(ctx)
		v, ok := s.introSpans.LoadAndDelete(rid)
		if !ok {
			return
		}
		span := v.(trace.Span)
		span.SetAttributes(attribute.Int("graphql.type_count", e.Types))
		if e.Err != nil {
			span.RecordError(e.Err)
		}
		span.End()
	})

	eventbus.Subscribe(func(ctx context.Context, e events.RequestStart) {
		rid, _ := reqid.FromContext(ctx)
		parent := ctx
		if v, ok := s.introSpans.Load(rid); ok {
			parent = trace.ContextWithSpan(ctx, v.(trace.Span))
		}
		_, span := s.tracer.Start(parent, "graphql.request")
		span.SetAttributes(
			attribute.String("graphql.endpoint", e.Endpoint),
			attribute.String("graphql.operation.name", e.OperationName),
		)
		s.reqSpans.Store(rid, span)
	})

	eventbus.Subscribe(func(ctx context.Context, e events.RequestFinish) {
		rid, _ := reqid.FromContext(ctx)
		v, ok := s.reqSpans.LoadAndDelete(rid)
		if !ok {
			return
		}
		span := v.(trace.Span)
		if e.Status != 0 {
			span.SetAttributes(semconv.HTTPStatusCodeKey.Int(e.Status))
		}
		span.SetAttributes(attribute.Int("graphql.error_count", len(e.Errors)))
		for _, err := range e.Errors {
			span.RecordError(err)
		}
		span.End()
	})
}
