package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counting session events", func(t *testing.T) {
		m := NewCollector()
		m.Start()
		m.AddRun()
		m.AddRun()
		m.AddInfeasible()
		m.AddCandidate()
		m.AddDuplicate()

		got := m.Complete()

		require.Equal(t, 2, got.Runs)
		require.Equal(t, 1, got.Completed, "Completed runs should exclude infeasible runs")
		require.Equal(t, 1, got.Infeasible)
		require.Equal(t, 1, got.Candidates)
		require.Equal(t, 1, got.Duplicates)
		require.False(t, got.StartTime.IsZero(), "Start should record the start time")
	})

	t.Run("restarting clears counters", func(t *testing.T) {
		m := NewCollector()
		m.Start()
		m.AddRun()

		m.Start()

		require.Equal(t, 0, m.Complete().Runs, "Start should reset counters")
	})

	t.Run("ignoring events without metrics", func(t *testing.T) {
		m := NewDummyCollector()
		m.Start()
		m.AddRun()

		require.Equal(t, SessionMetric{}, m.Complete())
	})
}

func TestSequenceKey(t *testing.T) {
	t.Run("distinguishing sequences with shared bytes", func(t *testing.T) {
		keys := map[string][]int{}
		for _, decisions := range [][]int{{}, {0}, {1}, {1, 0}, {0, 1}, {128}, {0, 128}, {128, 1}, {1, 128}} {
			key := sequenceKey(decisions)
			other, ok := keys[key]
			require.False(t, ok, "Sequences %v and %v should have distinct keys", decisions, other)
			keys[key] = decisions
		}
	})
}

func TestFrontier(t *testing.T) {
	t.Run("popping equal priorities first-in first-out", func(t *testing.T) {
		g := NewGreedy()
		g.Init()
		popAll(g)
		g.push(-0.5, []int{1}, []float64{0})
		g.push(-0.9, []int{2}, []float64{0})
		g.push(-0.5, []int{3}, []float64{0})
		g.push(-0.5, []int{4}, []float64{0})

		got := [][]int{}
		for _, c := range popAll(g) {
			got = append(got, c.decisions)
		}

		require.Equal(t, [][]int{{2}, {1}, {3}, {4}}, got, "Lower priority then earlier insertion should pop first")
	})
}
