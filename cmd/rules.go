package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newRulesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List frame validation rules",
		Long:  `Lists the validation rules in evaluation order. The first violated rule rejects the game.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tWHEN\tMESSAGE")
			for _, r := range a.validator.Rules() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Name, r.When, r.Message)
			}
			return tw.Flush()
		},
	}
}
