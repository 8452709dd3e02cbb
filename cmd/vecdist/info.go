package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/vecdist"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the selected kernel and detected CPU features",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := vecdist.Info()
			w := cmd.OutOrStdout()

			fmt.Fprintf(w, "isa=%s\n", info.ISA)
			fmt.Fprintf(w, "batch_width=%d\n", info.BatchWidth)
			fmt.Fprintf(w, "overridden=%t\n", info.Overridden)
			fmt.Fprintf(w, "available=%s\n", strings.Join(info.Available, ","))
			fmt.Fprintf(w, "goarch=%s\n", info.GOARCH)

			names := make([]string, 0, len(info.Features))
			for name := range info.Features {
				names = append(names, name)
			}
			slices.Sort(names)
			for _, name := range names {
				fmt.Fprintf(w, "feature.%s=%t\n", name, info.Features[name])
			}
			return nil
		},
	}
}
