package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidatePlugs checks that every pair joins two distinct letters and that no
// letter is cabled twice.
func ValidatePlugs(pairs []PlugPair) error {
	var used [AlphabetSize]bool
	for _, p := range pairs {
		for _, c := range []byte{p.A, p.B} {
			if c < 'A' || c > 'Z' {
				return &ConfigError{Field: "plugboard", Reason: fmt.Sprintf("pair %q: %q is not a letter A-Z", p.String(), c)}
			}
		}
		if p.A == p.B {
			return &ConfigError{Field: "plugboard", Reason: fmt.Sprintf("letter %c paired with itself", p.A)}
		}
		for _, c := range []byte{p.A, p.B} {
			if used[c-'A'] {
				return &ConfigError{Field: "plugboard", Reason: fmt.Sprintf("letter %c used in more than one pair", c)}
			}
			used[c-'A'] = true
		}
	}
	return nil
}

// ParseRotors reads a rotor selection such as "I,II,III" or "iv v i".
func ParseRotors(s string) ([RotorCount]RotorID, error) {
	var out [RotorCount]RotorID
	fields := splitList(s)
	if len(fields) != RotorCount {
		return out, &ConfigError{Field: "rotors", Reason: fmt.Sprintf("want %d rotors, got %d", RotorCount, len(fields))}
	}
	for i, f := range fields {
		id := RotorID(strings.ToUpper(f))
		if !id.Known() {
			return out, &ConfigError{Field: slotField("rotor", i), Reason: fmt.Sprintf("unknown rotor %q", f)}
		}
		out[i] = id
	}
	return out, nil
}

// ParseOffsets reads three rotor offsets (positions or ring settings) written
// either as letters ("ADU") or as numbers 0-25 ("0,3,20" or "0 3 20").
func ParseOffsets(field, s string) ([RotorCount]int, error) {
	var out [RotorCount]int
	s = strings.TrimSpace(s)
	if len(s) == RotorCount && isLetters(s) {
		for i := 0; i < RotorCount; i++ {
			out[i] = int(upper(s[i]) - 'A')
		}
		return out, nil
	}
	fields := splitList(s)
	if len(fields) != RotorCount {
		return out, &ConfigError{Field: field, Reason: fmt.Sprintf("want %d values, got %q", RotorCount, s)}
	}
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return out, &ConfigError{Field: field, Reason: fmt.Sprintf("%q is not a number", f)}
		}
		if n < 0 || n >= AlphabetSize {
			return out, &ConfigError{Field: field, Reason: fmt.Sprintf("%d outside [0,25]", n)}
		}
		out[i] = n
	}
	return out, nil
}

// FormatOffsets renders offsets as window letters, e.g. [0 3 20] -> "ADU".
func FormatOffsets(v [RotorCount]int) string {
	b := make([]byte, RotorCount)
	for i, n := range v {
		b[i] = byte('A' + ((n%AlphabetSize)+AlphabetSize)%AlphabetSize)
	}
	return string(b)
}

// ParsePlugs reads plugboard pairs: "QW ER", "QW,ER" or "Q:W,E:R".
// An empty string yields no pairs. Conflicts are reported by ValidatePlugs.
func ParsePlugs(s string) ([]PlugPair, error) {
	fields := splitList(s)
	pairs := make([]PlugPair, 0, len(fields))
	for _, f := range fields {
		p, err := parsePlugToken(f)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	if err := ValidatePlugs(pairs); err != nil {
		return nil, err
	}
	return pairs, nil
}

func parsePlugToken(tok string) (PlugPair, error) {
	t := strings.NewReplacer(":", "", "-", "").Replace(strings.TrimSpace(tok))
	if len(t) != 2 || !isLetters(t) {
		return PlugPair{}, &ConfigError{Field: "plugboard", Reason: fmt.Sprintf("malformed pair %q", tok)}
	}
	return PlugPair{A: upper(t[0]), B: upper(t[1])}, nil
}

func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == ';'
	})
}

func isLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		c := upper(s[i])
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
