package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/s0up4200/nomics/nomics"
)

var showPaid bool

// endpointsCmd represents the endpoints command
var endpointsCmd = &cobra.Command{
	Use:         "endpoints",
	Short:       "List the available endpoints",
	Long:        `List every endpoint name and path accepted by "nomics call".`,
	Annotations: map[string]string{skipConfigAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeEndpoints(cmd.OutOrStdout(), nomics.Endpoints(), showPaid)
	},
}

func init() {
	endpointsCmd.Flags().BoolVar(&showPaid, "paid", true, "include endpoints that need a paid plan")
}

func writeEndpoints(w io.Writer, endpoints []nomics.Endpoint, includePaid bool) error {
	paid := color.New(color.FgYellow).SprintFunc()
	name := color.New(color.FgCyan, color.Bold).SprintFunc()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, e := range endpoints {
		if e.Paid && !includePaid {
			continue
		}
		plan := "free"
		if e.Paid {
			plan = paid("paid")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", name(e.Name), e.Path, plan, e.Summary)
	}
	return tw.Flush()
}
