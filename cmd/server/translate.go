package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpattn/dinaquery/internal/rsql"
	"github.com/rpattn/dinaquery/internal/search"
)

var rsqlFields []string

var rsqlCmd = &cobra.Command{
	Use:   "rsql VALUE",
	Short: "Print the partial-match RSQL filter for VALUE over the given fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		build, err := rsql.PartialMatchFilter(rsqlFields)
		if err != nil {
			return err
		}
		filter := build(args[0])
		if queryParam, _ := cmd.Flags().GetBool("query-param"); queryParam {
			fmt.Fprintln(cmd.OutOrStdout(), filter.QueryParams().Encode())
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), filter.RSQL)
		return nil
	},
}

var hierarchyCmd = &cobra.Command{
	Use:   "hierarchy UUID",
	Short: "Print the hierarchy search query for UUID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := setup()
		if err != nil {
			return err
		}

		query, err := search.NewTransformer(cfg.Search).HierarchyQuery(args[0])
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(query)
	},
}

func init() {
	rsqlCmd.Flags().StringArrayVarP(&rsqlFields, "field", "f", nil, "field to match (repeatable)")
	rsqlCmd.Flags().Bool("query-param", false, "print as an encoded filter[rsql] query parameter")
}
