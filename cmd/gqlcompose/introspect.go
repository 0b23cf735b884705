package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hanpama/gqlcompose/internal/catalog"
	"github.com/hanpama/gqlcompose/internal/introspect"
	"github.com/hanpama/gqlcompose/internal/selection"
)

func newIntrospectCommand(fl *rootFlags) *cobra.Command {
	var (
		depth      int
		printQuery bool
	)
	cmd := &cobra.Command{
		Use:   "introspect",
		Short: "Derive field catalogs from a live endpoint",
		Long: `Derive field catalogs from a live endpoint.

Runs the introspection query against the configured endpoint and prints
a summary of the selectable types it found. With --print-query the
introspection document itself is printed instead, without contacting
any endpoint.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolve(fl, cmd)
			if err != nil {
				return err
			}
			format, err := selection.ParseFormat(cfg.Format)
			if err != nil {
				return err
			}
			if printQuery {
				fmt.Fprintln(cmd.OutOrStdout(), introspect.QueryDocument(format, depth))
				return nil
			}
			if cfg.Endpoint == "" {
				return errors.New("no endpoint configured; pass --endpoint or set it in the config file")
			}
			teardown, err := setupTelemetry(cfg)
			if err != nil {
				return err
			}
			defer teardown()

			c, err := newClient(cfg)
			if err != nil {
				return err
			}
			set, err := introspect.Fetch(cmd.Context(), c, introspect.WithDepth(depth))
			if err != nil {
				return err
			}
			writeSummary(cmd.OutOrStdout(), set)
			return nil
		},
	}
	cmd.Flags().IntVar(&depth, "depth", introspect.DefaultTypeRefDepth, "Nesting depth for type references in the introspection query")
	cmd.Flags().BoolVar(&printQuery, "print-query", false, "Print the introspection query document and exit")
	return cmd
}

func writeSummary(w io.Writer, set *catalog.Set) {
	fmt.Fprintf(w, "query root: %s\n", orDash(set.Query))
	fmt.Fprintf(w, "mutation root: %s\n", orDash(set.Mutation))
	fmt.Fprintf(w, "subscription root: %s\n", orDash(set.Subscription))

	names := make([]string, 0, len(set.Types))
	for name := range set.Types {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "\ntype %s\n", name)
		for _, f := range set.Types[name].Fields {
			if f.IsObject {
				fmt.Fprintf(w, "  %s -> %s\n", f.Name, f.Nested().Type)
			} else {
				fmt.Fprintf(w, "  %s\n", f.Name)
			}
		}
	}

	if len(set.Enums) > 0 {
		enums := make([]string, 0, len(set.Enums))
		for name := range set.Enums {
			enums = append(enums, name)
		}
		sort.Strings(enums)
		fmt.Fprintf(w, "\nenums: %s\n", strings.Join(enums, ", "))
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
