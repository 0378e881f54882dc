package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// cipherCmd builds encrypt/decrypt. Both run the same reciprocal operation on
// a freshly keyed machine.
func cipherCmd(use, short string) *cobra.Command {
	var (
		flags   settingsFlags
		text    string
		file    string
		output  string
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   use + " [message...]",
		Short: short,
		Long: short + `.

The message is taken from the arguments, --text, --file or piped stdin.
Letters A-Z (either case) are enciphered and keep their case; every other
character is copied through in place and does not move the rotors.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := readMessage(cmd, args, text, file)
			if err != nil {
				return err
			}
			settings, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			res, err := appCtx.Cipher.Run(settings, msg)
			if err != nil {
				return err
			}
			if verbose {
				fmt.Fprintf(cmd.ErrOrStderr(), "window %s -> %s, fingerprint %s\n",
					res.StartWindow, res.EndWindow, res.Fingerprint)
			}
			return writeOutput(cmd, output, res.Text)
		},
	}
	flags.register(cmd, true)
	cmd.Flags().StringVarP(&text, "text", "t", "", "message text")
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the message from a file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the result to a file (default stdout)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print rotor windows and fingerprint to stderr")
	return cmd
}

func readMessage(cmd *cobra.Command, args []string, text, file string) (string, error) {
	switch {
	case len(args) > 0:
		return strings.Join(args, " "), nil
	case text != "":
		return text, nil
	case file != "":
		b, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", file, err)
		}
		return string(b), nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil || stat.Mode()&os.ModeCharDevice != 0 {
			return "", fmt.Errorf("no message: pass it as arguments, --text, --file or stdin")
		}
	}
	b, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}

func writeOutput(cmd *cobra.Command, path, text string) error {
	if path != "" {
		return os.WriteFile(path, []byte(text), 0o600)
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, err := io.WriteString(cmd.OutOrStdout(), text)
	return err
}
