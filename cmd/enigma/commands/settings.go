package commands

import (
	"github.com/spf13/cobra"

	"enigma/internal/domain"
)

// settingsFlags are the machine key flags shared by several commands.
type settingsFlags struct {
	profile   string
	rotors    string
	positions string
	rings     string
	plugs     string
}

func (f *settingsFlags) register(cmd *cobra.Command, withProfile bool) {
	if withProfile {
		cmd.Flags().StringVar(&f.profile, "profile", "", "load settings from a saved profile")
	}
	cmd.Flags().StringVarP(&f.rotors, "rotors", "r", "I,II,III", "rotors left to right (I-V)")
	cmd.Flags().StringVar(&f.positions, "positions", "AAA", "start positions, letters (ADU) or numbers 0-25 (0,3,20)")
	cmd.Flags().StringVar(&f.rings, "rings", "AAA", "ring settings, letters or numbers 0-25")
	cmd.Flags().StringVar(&f.plugs, "plugs", "", "plugboard pairs (e.g. \"QW ER\" or \"Q:W,E:R\")")
}

// resolve builds Settings from the profile (if any) and then applies every
// flag the user set explicitly.
func (f *settingsFlags) resolve(cmd *cobra.Command) (domain.Settings, error) {
	s := domain.DefaultSettings()
	if f.profile != "" {
		p, err := appCtx.Profiles.Load(f.profile, passphrase)
		if err != nil {
			return domain.Settings{}, err
		}
		s = p.Settings
	}

	useFlag := func(name string) bool {
		return f.profile == "" || cmd.Flags().Changed(name)
	}
	var err error
	if useFlag("rotors") {
		if s.Rotors, err = domain.ParseRotors(f.rotors); err != nil {
			return domain.Settings{}, err
		}
	}
	if useFlag("positions") {
		if s.Positions, err = domain.ParseOffsets("positions", f.positions); err != nil {
			return domain.Settings{}, err
		}
	}
	if useFlag("rings") {
		if s.Rings, err = domain.ParseOffsets("rings", f.rings); err != nil {
			return domain.Settings{}, err
		}
	}
	if useFlag("plugs") {
		if s.Plugs, err = domain.ParsePlugs(f.plugs); err != nil {
			return domain.Settings{}, err
		}
	}
	return s, s.Validate()
}
