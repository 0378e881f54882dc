package machine

import "enigma/internal/domain"

// Plugboard swaps cabled letter pairs; uncabled letters map to themselves.
type Plugboard struct {
	table [letters]int
	pairs []domain.PlugPair
}

// NewPlugboard validates pairs once and builds the swap table.
func NewPlugboard(pairs []domain.PlugPair) (*Plugboard, error) {
	if err := domain.ValidatePlugs(pairs); err != nil {
		return nil, err
	}
	p := &Plugboard{pairs: append([]domain.PlugPair(nil), pairs...)}
	for i := range p.table {
		p.table[i] = i
	}
	for _, pair := range pairs {
		a, b := int(pair.A-'A'), int(pair.B-'A')
		p.table[a] = b
		p.table[b] = a
	}
	return p, nil
}

// Swap returns the partner of c, or c itself when it is not cabled.
func (p *Plugboard) Swap(c int) int { return p.table[c] }

// Pairs returns a copy of the cabling.
func (p *Plugboard) Pairs() []domain.PlugPair {
	return append([]domain.PlugPair(nil), p.pairs...)
}
