package machine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enigma/internal/domain"
)

func idx(c byte) int { return int(c - 'A') }

func TestPlugboard_SwapIsSymmetric(t *testing.T) {
	pb, err := NewPlugboard([]domain.PlugPair{{A: 'Q', B: 'W'}, {A: 'E', B: 'R'}})
	require.NoError(t, err)

	assert.Equal(t, idx('W'), pb.Swap(idx('Q')))
	assert.Equal(t, idx('Q'), pb.Swap(idx('W')))
	assert.Equal(t, idx('R'), pb.Swap(idx('E')))
	assert.Equal(t, idx('E'), pb.Swap(idx('R')))
	assert.Equal(t, idx('A'), pb.Swap(idx('A')))
}

func TestPlugboard_Empty(t *testing.T) {
	pb, err := NewPlugboard(nil)
	require.NoError(t, err)
	for c := 0; c < letters; c++ {
		assert.Equal(t, c, pb.Swap(c))
	}
	assert.Empty(t, pb.Pairs())
}

func TestPlugboard_RejectsConflicts(t *testing.T) {
	cases := map[string][]domain.PlugPair{
		"reused letter": {{A: 'A', B: 'B'}, {A: 'B', B: 'C'}},
		"same pair":     {{A: 'A', B: 'B'}, {A: 'B', B: 'A'}},
		"self pair":     {{A: 'A', B: 'A'}},
		"not a letter":  {{A: 'A', B: '1'}},
	}
	for name, pairs := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewPlugboard(pairs)
			var cfg *domain.ConfigError
			require.True(t, errors.As(err, &cfg), "got %v", err)
			assert.Equal(t, "plugboard", cfg.Field)
		})
	}
}

func TestPlugboard_PairsIsACopy(t *testing.T) {
	pairs := []domain.PlugPair{{A: 'Q', B: 'W'}}
	pb, err := NewPlugboard(pairs)
	require.NoError(t, err)

	pairs[0].A = 'Z'
	got := pb.Pairs()
	got[0].B = 'Y'
	assert.Equal(t, []domain.PlugPair{{A: 'Q', B: 'W'}}, pb.Pairs())
}
