package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hanpama/gqlcompose/internal/catalog"
	"github.com/hanpama/gqlcompose/internal/client"
	"github.com/hanpama/gqlcompose/internal/config"
	"github.com/hanpama/gqlcompose/internal/eventbus"
	"github.com/hanpama/gqlcompose/internal/otel"
	"github.com/hanpama/gqlcompose/internal/selection"
)

type rootFlags struct {
	config           string
	endpoint         string
	headers          []string
	timeout          time.Duration
	maxResponseBytes int64
	format           string
	otelEndpoint     string
	otelService      string
}

func newRootCommand() *cobra.Command {
	fl := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "gqlcompose",
		Short:         "Compose, render, and execute GraphQL query documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := cmd.PersistentFlags()
	pf.StringVar(&fl.config, "config", "", "Path to a YAML config file")
	pf.StringVar(&fl.endpoint, "endpoint", "", "GraphQL endpoint URL")
	pf.StringArrayVar(&fl.headers, "header", nil, `Extra request header ("Name: value", repeatable)`)
	pf.DurationVar(&fl.timeout, "timeout", 10*time.Second, "Request timeout when the context has no deadline")
	pf.Int64Var(&fl.maxResponseBytes, "max-response-bytes", 0, "Response size cap in bytes (0 = unlimited)")
	pf.StringVar(&fl.format, "format", "compact", `Document format: "compact" or "indented"`)
	pf.StringVar(&fl.otelEndpoint, "otel-endpoint", "", "OTLP collector endpoint")
	pf.StringVar(&fl.otelService, "otel-service", "gqlcompose", "OpenTelemetry service name")

	cmd.AddCommand(newRenderCommand(fl))
	cmd.AddCommand(newExecCommand(fl))
	cmd.AddCommand(newIntrospectCommand(fl))
	return cmd
}

// resolve merges the config file with the flags. A flag overrides the
// file only when it was set on the command line.
func resolve(fl *rootFlags, cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(fl.config)
	if err != nil {
		return cfg, err
	}
	pf := cmd.Root().PersistentFlags()
	if pf.Changed("endpoint") {
		cfg.Endpoint = fl.endpoint
	}
	if pf.Changed("timeout") {
		cfg.Timeout = config.Duration(fl.timeout)
	}
	if pf.Changed("max-response-bytes") {
		cfg.MaxResponseBytes = fl.maxResponseBytes
	}
	if pf.Changed("format") {
		cfg.Format = fl.format
	}
	if pf.Changed("otel-endpoint") {
		cfg.Otel.Endpoint = fl.otelEndpoint
	}
	if pf.Changed("otel-service") {
		cfg.Otel.Service = fl.otelService
	}
	for _, h := range fl.headers {
		k, v, ok := strings.Cut(h, ":")
		if !ok || strings.TrimSpace(k) == "" {
			return cfg, fmt.Errorf(`invalid header %q, want "Name: value"`, h)
		}
		if cfg.Headers == nil {
			cfg.Headers = map[string]string{}
		}
		cfg.Headers[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return cfg, nil
}

func newClient(cfg config.Config) (*client.Client, error) {
	opts := []client.Option{client.WithTimeout(time.Duration(cfg.Timeout))}
	if cfg.MaxResponseBytes > 0 {
		opts = append(opts, client.WithMaxResponseBytes(cfg.MaxResponseBytes))
	}
	for k, v := range cfg.Headers {
		opts = append(opts, client.WithHeader(k, v))
	}
	return client.New(cfg.Endpoint, opts...)
}

func setupTelemetry(cfg config.Config) (func(), error) {
	eventbus.Use(eventbus.New())
	shutdown, err := otel.Setup(cfg.Otel.Endpoint, cfg.Otel.Service)
	if err != nil {
		return nil, fmt.Errorf("otel setup: %w", err)
	}
	return func() { _ = shutdown(context.Background()) }, nil
}

// expandType fully expands a schema type, or its scalar fields only.
// An empty typeName expands the query root.
func expandType(set *catalog.Set, typeName string, scalarsOnly bool) (*selection.Tree, error) {
	name := typeName
	if name == "" {
		name = set.Query
	}
	if name == "" {
		return nil, errors.New("schema has no query root; pass --type")
	}
	cat := set.Type(name)
	if cat == nil {
		return nil, fmt.Errorf("type %q is not a selectable type in the schema", name)
	}
	tree := selection.NewTree()
	if scalarsOnly {
		selection.IncludeAllScalars(tree, cat)
		return tree, nil
	}
	if err := selection.IncludeAll(tree, cat); err != nil {
		return nil, err
	}
	return tree, nil
}
