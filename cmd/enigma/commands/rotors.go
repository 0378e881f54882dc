package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"enigma/internal/domain"
	"enigma/internal/machine"
)

func rotorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rotors",
		Short: "List the rotor wiring table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ROTOR\tWIRING\tNOTCH")
			for _, id := range domain.KnownRotors {
				wiring, notch, _ := machine.Wiring(id)
				fmt.Fprintf(w, "%s\t%s\t%c\n", id, wiring, notch)
			}
			return w.Flush()
		},
	}
}
