package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"enigma/internal/crypto"
	"enigma/internal/domain"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage saved settings profiles",
	}
	cmd.AddCommand(profileSaveCmd(), profileShowCmd(), profileListCmd(), profileDeleteCmd())
	return cmd
}

func profileSaveCmd() *cobra.Command {
	var flags settingsFlags
	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Save the given settings under a name (sealed when -p is set)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			fp, err := appCtx.Profiles.Save(args[0], s, passphrase)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Profile %s saved.\nFingerprint: %s\n", args[0], fp)
			return nil
		},
	}
	flags.register(cmd, false)
	return cmd
}

func profileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print a saved profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := appCtx.Profiles.Load(args[0], passphrase)
			if err != nil {
				return err
			}
			printProfile(cmd, p)
			return nil
		},
	}
}

func profileListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := appCtx.Profiles.List()
			if err != nil {
				return err
			}
			for _, info := range infos {
				if info.Sealed {
					fmt.Fprintf(cmd.OutOrStdout(), "%s (sealed)\n", info.Name)
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), info.Name)
			}
			return nil
		},
	}
}

func profileDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Profiles.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Profile %s deleted.\n", args[0])
			return nil
		},
	}
}

func printProfile(cmd *cobra.Command, p domain.Profile) {
	s := p.Settings
	ids := make([]string, len(s.Rotors))
	for i, id := range s.Rotors {
		ids[i] = id.String()
	}
	plugs := make([]string, len(s.Plugs))
	for i, pair := range s.Plugs {
		plugs[i] = pair.String()
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Name:        %s\n", p.Name)
	fmt.Fprintf(out, "Created:     %s\n", p.CreatedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(out, "Rotors:      %s\n", strings.Join(ids, " "))
	fmt.Fprintf(out, "Positions:   %s\n", domain.FormatOffsets(s.Positions))
	fmt.Fprintf(out, "Rings:       %s\n", domain.FormatOffsets(s.Rings))
	fmt.Fprintf(out, "Plugs:       %s\n", strings.Join(plugs, " "))
	fmt.Fprintf(out, "Fingerprint: %s\n", crypto.Fingerprint(s))
}
