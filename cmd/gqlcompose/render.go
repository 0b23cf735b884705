package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hanpama/gqlcompose/internal/catalog"
	"github.com/hanpama/gqlcompose/internal/selection"
)

func newRenderCommand(fl *rootFlags) *cobra.Command {
	var (
		schemaPath  string
		typeName    string
		scalarsOnly bool
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Expand a schema type into a query document",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolve(fl, cmd)
			if err != nil {
				return err
			}
			format, err := selection.ParseFormat(cfg.Format)
			if err != nil {
				return err
			}
			set, err := catalog.Load(schemaPath)
			if err != nil {
				return err
			}
			tree, err := expandType(set, typeName, scalarsOnly)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tree.Render(format))
			return nil
		},
	}
	cmd.Flags().StringVar(&schemaPath, "schema", "", "Path to a .graphql file or a directory of them")
	cmd.Flags().StringVar(&typeName, "type", "", "Type to expand (default: the query root)")
	cmd.Flags().BoolVar(&scalarsOnly, "scalars-only", false, "Select only scalar fields, without recursion")
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}
