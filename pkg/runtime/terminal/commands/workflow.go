package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewWorkflowCmd(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "workflow",
		Short: "Show the Ecodent360 workflow and what it covers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			for _, step := range rt.Catalog.Steps() {
				fmt.Fprintln(out, step.Title)
				for _, b := range step.Bullets {
					fmt.Fprintf(out, "  - %s\n", b)
				}
			}

			fmt.Fprintln(out, "\nIncluded in Ecodent360:")
			for _, s := range rt.Catalog.Included() {
				fmt.Fprintf(out, "  - %s\n", s)
			}

			fmt.Fprintln(out, "\nWhat you avoid:")
			for _, c := range rt.Catalog.AvoidedCosts() {
				fmt.Fprintf(out, "  - %s\n", c)
			}
			return nil
		},
	}
}
