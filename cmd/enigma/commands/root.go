package commands

import (
	"github.com/spf13/cobra"

	"enigma/internal/app"
)

var (
	home       string
	logLevel   string
	passphrase string
	appCtx     *app.App
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "enigma",
		Short:         "Three-rotor Enigma I simulator",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			if home != "" {
				cfg.Home = home
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			a, err := app.NewWire(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			appCtx = a
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "profile dir (default $ENIGMA_HOME or ~/.enigma)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (default $ENIGMA_LOG_LEVEL or warn)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase for sealed profiles")

	root.AddCommand(
		cipherCmd("encrypt", "Encrypt a message"),
		cipherCmd("decrypt", "Decrypt a message (same operation as encrypt)"),
		fingerprintCmd(),
		rotorsCmd(),
		profileCmd(),
	)
	return root
}
