package strategy

import (
	"errors"
	"iter"
)

var (
	// ErrInfeasible reports that a replayed decision sequence asked for an
	// alternative the choice point no longer offers. The run should be
	// abandoned; the search itself continues.
	ErrInfeasible = errors.New("decision sequence is infeasible")

	// ErrEmptyDomain reports a fresh choice point without any alternative.
	ErrEmptyDomain = errors.New("choice point has no alternatives")

	// ErrUnorderedScores reports alternatives that are not ordered by
	// non-increasing score.
	ErrUnorderedScores = errors.New("alternatives are not ordered by non-increasing score")
)

// Strategy explores the decision sequences of a process across many runs.
//
// A caller invokes Init once, then repeats InitRun, the process (which calls
// GenericOp once per choice point, in order) and FinishRun until IsFinished
// reports true.
type Strategy interface {
	Init()
	InitRun()
	// GenericOp picks one of the alternatives of the next choice point.
	// Alternatives are pulled lazily in non-increasing score order.
	GenericOp(alternatives iter.Seq2[any, float64]) (any, error)
	FinishRun()
	IsFinished() bool
}

// Recorder is implemented by strategies that expose the working state of the
// current run.
type Recorder interface {
	Decisions() []int
	Scores() []float64
	Feasible() bool
}
