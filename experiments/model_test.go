package experiments

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableModel(t *testing.T) {
	t.Run("scoring by domain position regardless of prefix", func(t *testing.T) {
		m := TableModel{Weights: []float64{0.9, 0.1}}

		require.Equal(t, []float64{0.9, 0.1}, m.Scores(nil, []string{"a", "b"}))
		require.Equal(t, []float64{0.9, 0.1}, m.Scores([]string{"b", "a"}, []string{"a", "b"}),
			"Scores should not depend on the prefix")
	})

	t.Run("scoring values past the table as zero", func(t *testing.T) {
		m := TableModel{Weights: []float64{0.9}}

		require.Equal(t, []float64{0.9, 0, 0}, m.Scores(nil, []string{"a", "b", "c"}))
	})
}

func TestRandomModel(t *testing.T) {
	domain := []string{"a", "b", "c", "d"}

	t.Run("producing a normalized distribution", func(t *testing.T) {
		scores := RandomModel{Seed: 7}.Scores([]string{"a"}, domain)

		sum := 0.0
		for _, s := range scores {
			require.GreaterOrEqual(t, s, 0.0, "Scores should not be negative")
			sum += s
		}
		require.InDelta(t, 1.0, sum, 1e-9, "Scores should sum to 1")
	})

	t.Run("repeating scores for the same seed and prefix", func(t *testing.T) {
		first := RandomModel{Seed: 7}.Scores([]string{"a", "b"}, domain)
		second := RandomModel{Seed: 7}.Scores([]string{"a", "b"}, domain)

		require.Equal(t, first, second, "Model should be deterministic")
	})

	t.Run("varying scores with the prefix", func(t *testing.T) {
		m := RandomModel{Seed: 7}

		require.NotEqual(t, m.Scores([]string{"ab", "c"}, domain), m.Scores([]string{"a", "bc"}, domain),
			"Prefix boundaries should matter")
		require.NotEqual(t, m.Scores(nil, domain), RandomModel{Seed: 8}.Scores(nil, domain),
			"Seed should matter")
	})
}
