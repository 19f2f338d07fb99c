package strategy

import (
	"sync/atomic"
	"time"
)

type SessionMetric struct {
	StartTime  time.Time
	Duration   time.Duration
	Runs       int
	Completed  int // Runs that reached the end of the process
	Infeasible int
	Candidates int // Candidates pushed to the frontier
	Duplicates int // Candidates skipped as already explored
}

type Collector interface {
	Start()
	AddRun()
	AddInfeasible()
	AddCandidate()
	AddDuplicate()
	Complete() SessionMetric
}

type collector struct {
	startTime  time.Time
	runs       atomic.Int64
	infeasible atomic.Int64
	candidates atomic.Int64
	duplicates atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.runs.Store(0)
	m.infeasible.Store(0)
	m.candidates.Store(0)
	m.duplicates.Store(0)
}

func (m *collector) AddRun() {
	m.runs.Add(1)
}

func (m *collector) AddInfeasible() {
	m.infeasible.Add(1)
}

func (m *collector) AddCandidate() {
	m.candidates.Add(1)
}

func (m *collector) AddDuplicate() {
	m.duplicates.Add(1)
}

func (m *collector) Complete() SessionMetric {
	runs := int(m.runs.Load())
	infeasible := int(m.infeasible.Load())
	return SessionMetric{
		StartTime:  m.startTime,
		Duration:   time.Since(m.startTime),
		Runs:       runs,
		Completed:  runs - infeasible,
		Infeasible: infeasible,
		Candidates: int(m.candidates.Load()),
		Duplicates: int(m.duplicates.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                  {}
func (m *dummyCollector) AddRun()                 {}
func (m *dummyCollector) AddInfeasible()          {}
func (m *dummyCollector) AddCandidate()           {}
func (m *dummyCollector) AddDuplicate()           {}
func (m *dummyCollector) Complete() SessionMetric { return SessionMetric{} }
