package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hanpama/gqlcompose/internal/catalog"
	"github.com/hanpama/gqlcompose/internal/client"
	"github.com/hanpama/gqlcompose/internal/selection"
)

func newExecCommand(fl *rootFlags) *cobra.Command {
	var (
		queryStr    string
		queryFile   string
		schemaPath  string
		typeName    string
		scalarsOnly bool
		opName      string
		varsJSON    string
		pretty      bool
	)
	cmd := &cobra.Command{
		Use:   "exec",
		Short: "Execute a query document against an endpoint",
		Long: `Execute a query document against an endpoint.

The document comes from --query, from --query-file, or is rendered by
expanding a schema type (--schema with optional --type), in that order
of precedence. The response envelope is printed as JSON; GraphQL errors
in the envelope make the command exit non-zero after printing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolve(fl, cmd)
			if err != nil {
				return err
			}
			if cfg.Endpoint == "" {
				return errors.New("no endpoint configured; pass --endpoint or set it in the config file")
			}
			query, err := pickQuery(queryStr, queryFile, schemaPath, typeName, scalarsOnly)
			if err != nil {
				return err
			}
			var vars map[string]any
			if varsJSON != "" {
				if err := json.Unmarshal([]byte(varsJSON), &vars); err != nil {
					return fmt.Errorf("invalid --variables JSON: %w", err)
				}
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
			res, err := c.Execute(cmd.Context(), client.Request{
				Query:         query,
				OperationName: opName,
				Variables:     vars,
			})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			if pretty {
				enc.SetIndent("", "  ")
			}
			if err := enc.Encode(res); err != nil {
				return err
			}
			if len(res.Errors) > 0 {
				return fmt.Errorf("endpoint reported %d error(s)", len(res.Errors))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&queryStr, "query", "", "Query document to execute")
	cmd.Flags().StringVar(&queryFile, "query-file", "", "Read the query document from a file")
	cmd.Flags().StringVar(&schemaPath, "schema", "", "Render the document by expanding this schema")
	cmd.Flags().StringVar(&typeName, "type", "", "Type to expand when rendering (default: the query root)")
	cmd.Flags().BoolVar(&scalarsOnly, "scalars-only", false, "Expand scalar fields only, without recursion")
	cmd.Flags().StringVar(&opName, "operation", "", "Operation name sent with the request")
	cmd.Flags().StringVar(&varsJSON, "variables", "", "Variables as a JSON object")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print the JSON response")
	return cmd
}

func pickQuery(queryStr, queryFile, schemaPath, typeName string, scalarsOnly bool) (string, error) {
	if queryStr != "" {
		return queryStr, nil
	}
	if queryFile != "" {
		b, err := os.ReadFile(queryFile)
		if err != nil {
			return "", fmt.Errorf("read query: %w", err)
		}
		return string(b), nil
	}
	if schemaPath != "" {
		set, err := catalog.Load(schemaPath)
		if err != nil {
			return "", err
		}
		tree, err := expandType(set, typeName, scalarsOnly)
		if err != nil {
			return "", err
		}
		return tree.Render(selection.Compact), nil
	}
	return "", errors.New("no query given; pass --query, --query-file, or --schema")
}
