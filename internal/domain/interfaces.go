package domain

// ProfileStore persists named machine settings, optionally sealed with a passphrase.
type ProfileStore interface {
	SaveProfile(p Profile, passphrase string) error
	LoadProfile(name, passphrase string) (Profile, error)
	ListProfiles() ([]ProfileInfo, error)
	DeleteProfile(name string) error
}

// CipherService runs a message through a freshly keyed machine.
type CipherService interface {
	Run(s Settings, message string) (Result, error)
}

// ProfileService manages stored settings profiles.
type ProfileService interface {
	Save(name string, s Settings, passphrase string) (Fingerprint, error)
	Load(name, passphrase string) (Profile, error)
	List() ([]ProfileInfo, error)
	Delete(name string) error
}

// Result is the output of one CipherService run.
type Result struct {
	Text        string
	StartWindow string
	EndWindow   string
	Fingerprint Fingerprint
}
