package generator

import (
	"errors"
	"fmt"
	"iter"

	"atlas/strategy"

	"github.com/rs/zerolog/log"
)

// Handler ranks the alternatives of a choice point given its context.
// Alternatives must be yielded in non-increasing score order.
type Handler[C, V any] func(ctx C) iter.Seq2[V, float64]

// Process executes one run of a decision process, calling Choose once per
// choice point.
type Process[T any] func(s strategy.Strategy) (T, error)

// Choose resolves a choice point through the strategy driving the run.
func Choose[C, V any](s strategy.Strategy, ctx C, handler Handler[C, V]) (V, error) {
	alternatives := func(yield func(any, float64) bool) {
		for value, score := range handler(ctx) {
			if !yield(value, score) {
				return
			}
		}
	}

	value, err := s.GenericOp(alternatives)
	if err != nil {
		var zero V
		return zero, err
	}
	v, _ := value.(V) // Nil stays the zero value
	return v, nil
}

// Run is the outcome of one execution of a process.
type Run[T any] struct {
	Index      int
	Output     T // Zero value when Infeasible
	Decisions  []int
	Scores     []float64
	Infeasible bool
}

type Option func(o *options)

type options struct {
	maxRuns    int
	maxOutputs int
}

// WithMaxRuns stops the search after n runs, feasible or not.
func WithMaxRuns(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxRuns = n
		}
	}
}

// WithMaxOutputs stops the search after n completed runs.
func WithMaxOutputs(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxOutputs = n
		}
	}
}

type Generator[T any] struct {
	strategy strategy.Strategy
	process  Process[T]
	options  options
}

func New[T any](s strategy.Strategy, process Process[T], opts ...Option) *Generator[T] {
	g := &Generator[T]{
		strategy: s,
		process:  process,
	}
	for _, option := range opts {
		option(&g.options)
	}
	return g
}

// Runs starts a new search session and yields every run until the strategy
// is finished or a limit is reached. Infeasible runs are yielded with
// Infeasible set. A handler contract violation ends the session and is
// yielded as the error.
func (g *Generator[T]) Runs() iter.Seq2[Run[T], error] {
	return func(yield func(Run[T], error) bool) {
		g.strategy.Init()

		runs, outputs := 0, 0
		for !g.strategy.IsFinished() {
			if g.options.maxRuns > 0 && runs >= g.options.maxRuns {
				log.Info().Msgf("stopping search after %d runs", runs)
				return
			}
			if g.options.maxOutputs > 0 && outputs >= g.options.maxOutputs {
				log.Info().Msgf("stopping search after %d outputs", outputs)
				return
			}

			g.strategy.InitRun()
			output, err := g.process(g.strategy)
			run := g.record(runs, output, err)
			runs++

			if err != nil && !run.Infeasible {
				yield(run, fmt.Errorf("run %d: %w", run.Index, err))
				return
			}
			g.strategy.FinishRun()

			if run.Infeasible {
				log.Debug().Int("run", run.Index).Ints("decisions", run.Decisions).Msg("abandoned infeasible run")
			} else {
				outputs++
				log.Debug().Int("run", run.Index).Ints("decisions", run.Decisions).Floats64("scores", run.Scores).Msg("completed run")
			}

			if !yield(run, nil) {
				return
			}
		}

		log.Info().Msgf("search finished after %d runs with %d outputs", runs, outputs)
	}
}

// Outputs runs a search session and collects the outputs of completed runs.
func (g *Generator[T]) Outputs() ([]T, error) {
	outputs := []T{}
	for run, err := range g.Runs() {
		if err != nil {
			return outputs, err
		}
		if !run.Infeasible {
			outputs = append(outputs, run.Output)
		}
	}
	return outputs, nil
}

func (g *Generator[T]) record(index int, output T, err error) Run[T] {
	run := Run[T]{
		Index:      index,
		Infeasible: errors.Is(err, strategy.ErrInfeasible),
	}
	if err == nil {
		run.Output = output
	}
	if r, ok := g.strategy.(strategy.Recorder); ok {
		run.Decisions = r.Decisions()
		run.Scores = r.Scores()
	}
	return run
}
