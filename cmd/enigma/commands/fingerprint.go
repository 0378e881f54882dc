package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"enigma/internal/crypto"
)

func fingerprintCmd() *cobra.Command {
	var flags settingsFlags
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the fingerprint of the selected settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", crypto.Fingerprint(s))
			return nil
		},
	}
	flags.register(cmd, true)
	return cmd
}
