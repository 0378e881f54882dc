package cipher

import (
	"log/slog"

	"enigma/internal/crypto"
	"enigma/internal/domain"
	"enigma/internal/machine"
)

// Service keys a fresh machine for each message.
type Service struct {
	log *slog.Logger
}

// New returns a cipher service. A nil logger discards output.
func New(log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{log: log}
}

// Run encrypts or decrypts message under s. Errors are configuration errors
// only; once the machine is built the transformation cannot fail.
func (s *Service) Run(settings domain.Settings, message string) (domain.Result, error) {
	m, err := machine.New(settings)
	if err != nil {
		s.log.Warn("machine rejected settings", slog.String("error", err.Error()))
		return domain.Result{}, err
	}
	start := m.Window()
	out := m.Process(message)
	fp := crypto.Fingerprint(settings)

	s.log.Debug("message processed",
		slog.String("fingerprint", fp.String()),
		slog.Int("bytes", len(message)),
		slog.Int("letters", countLetters(message)),
	)
	return domain.Result{
		Text:        out,
		StartWindow: start,
		EndWindow:   m.Window(),
		Fingerprint: fp,
	}, nil
}

func countLetters(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
			n++
		}
	}
	return n
}

// Compile-time assertion that Service implements domain.CipherService.
var _ domain.CipherService = (*Service)(nil)
