package strategy

import (
	"container/heap"
	"fmt"
	"iter"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// Placeholder score of a choice point whose rank was bumped but not yet
// replayed. Replay overwrites it before the run finishes.
const unknownScore = 0.0

type Option func(g *Greedy)

func WithEstimator(estimate Estimator) Option {
	return func(g *Greedy) {
		if estimate != nil {
			g.estimate = estimate
		}
	}
}

func WithMetrics(metrics Collector) Option {
	return func(g *Greedy) {
		if metrics != nil {
			g.metrics = metrics
		}
	}
}

// Greedy explores decision sequences in approximately best-first order.
//
// Each run either replays a candidate from the frontier or, past the end of
// the candidate, extends it with the best alternative of every new choice
// point. A finished run proposes one neighbour per choice point: the same
// sequence truncated after that point with its rank bumped by one.
//
// Greedy is not safe for concurrent use.
type Greedy struct {
	callID    int
	decisions []int
	scores    []float64
	feasible  bool
	finished  bool
	frontier  frontier
	explored  explored
	pushed    uint64
	estimate  Estimator
	metrics   Collector
}

var _ Strategy = (*Greedy)(nil)
var _ Recorder = (*Greedy)(nil)

func NewGreedy(options ...Option) *Greedy {
	g := &Greedy{ // Default values
		estimate: LeaveOneOut,
		metrics:  NewDummyCollector(),
	}
	for _, option := range options {
		option(g)
	}
	return g
}

// Init starts a new session with a single empty candidate.
func (g *Greedy) Init() {
	g.callID = 0
	g.decisions = []int{}
	g.scores = []float64{}
	g.feasible = true
	g.finished = false
	g.frontier = frontier{}
	g.explored = explored{}
	g.pushed = 0
	g.metrics.Start()

	g.push(0, []int{}, []float64{})
}

// InitRun pops the most promising candidate and copies it into the run's
// working state.
func (g *Greedy) InitRun() {
	if g.frontier.Len() == 0 {
		panic("cannot start run: frontier is empty")
	}

	g.callID = 0
	c := heap.Pop(&g.frontier).(candidate)
	g.decisions = slices.Clone(c.decisions)
	g.scores = slices.Clone(c.scores)
	g.feasible = true
	g.metrics.AddRun()

	log.Debug().Ints("decisions", g.decisions).Float64("priority", c.priority).Msg("starting run")
}

func (g *Greedy) GenericOp(alternatives iter.Seq2[any, float64]) (any, error) {
	t := g.callID
	g.callID++

	if !g.feasible { // Run already abandoned
		return nil, ErrInfeasible
	}

	next, stop := iter.Pull2(alternatives)
	defer stop()

	if t < len(g.decisions) {
		return g.replay(t, next)
	}
	return g.extend(t, next)
}

// replay advances to the alternative ranked decisions[t] and records its score.
func (g *Greedy) replay(t int, next func() (any, float64, bool)) (any, error) {
	value, score, ok := next()
	for rank := 0; ok && rank < g.decisions[t]; rank++ {
		var following float64
		value, following, ok = next()
		if ok && following > score {
			return nil, fmt.Errorf("%w: choice point %d rank %d", ErrUnorderedScores, t, rank+1)
		}
		score = following
	}

	if !ok { // Ran out of alternatives, this sequence cannot be reproduced
		g.feasible = false
		g.metrics.AddInfeasible()
		log.Debug().Msgf("choice point %d has fewer than %d alternatives", t, g.decisions[t]+1)
		return nil, ErrInfeasible
	}

	g.scores[t] = score
	return value, nil
}

// extend takes the best alternative of a choice point never visited before.
func (g *Greedy) extend(t int, next func() (any, float64, bool)) (any, error) {
	value, score, ok := next()
	if !ok {
		return nil, fmt.Errorf("%w: choice point %d", ErrEmptyDomain, t)
	}

	g.decisions = append(g.decisions, 0)
	g.scores = append(g.scores, score)
	return value, nil
}

// FinishRun derives the neighbours of a feasible run and marks the session
// finished once the frontier is exhausted.
func (g *Greedy) FinishRun() {
	if g.feasible {
		g.expand()
	}

	if g.frontier.Len() == 0 {
		g.finished = true
		log.Debug().Msg("frontier exhausted")
	}
}

func (g *Greedy) expand() {
	estimates := g.estimate(g.scores)
	for i := range g.decisions {
		decisions := make([]int, i+1)
		copy(decisions, g.decisions[:i])
		decisions[i] = g.decisions[i] + 1

		if !g.explored.add(decisions) {
			g.metrics.AddDuplicate()
			continue
		}

		scores := make([]float64, i+1)
		copy(scores, g.scores[:i])
		scores[i] = unknownScore

		g.push(-estimates[i], decisions, scores)
	}
}

func (g *Greedy) push(priority float64, decisions []int, scores []float64) {
	heap.Push(&g.frontier, candidate{
		priority:  priority,
		order:     g.pushed,
		decisions: decisions,
		scores:    scores,
	})
	g.pushed++
	g.metrics.AddCandidate()
}

func (g *Greedy) IsFinished() bool {
	return g.finished
}

// Decisions returns a copy of the current run's decision sequence.
func (g *Greedy) Decisions() []int {
	return slices.Clone(g.decisions)
}

// Scores returns a copy of the current run's score sequence.
func (g *Greedy) Scores() []float64 {
	return slices.Clone(g.scores)
}

// Feasible reports whether the current run can still be reproduced.
func (g *Greedy) Feasible() bool {
	return g.feasible
}

// Pending returns the number of candidates left in the frontier.
func (g *Greedy) Pending() int {
	return g.frontier.Len()
}

// Explored returns the number of distinct candidates derived so far.
func (g *Greedy) Explored() int {
	return len(g.explored)
}
