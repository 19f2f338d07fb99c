package experiments

import (
	"fmt"
	"time"

	"atlas/experiments/metrics"
	"atlas/generator"
	"atlas/strategy"

	"github.com/rs/zerolog/log"
)

// Report summarizes one experiment.
type Report struct {
	Outputs []string
	Records []metrics.RunRecord
	Session strategy.SessionMetric
	Dir     string // Where results were written, empty if not written
}

// Run searches the process described by cfg and, if an output directory is
// configured, stores the run records and the experiment setup.
func Run(cfg Config) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, fmt.Errorf("invalid config: %w", err)
	}
	model, err := cfg.NewModel()
	if err != nil {
		return Report{}, err
	}

	handler := Rank(model, cfg.Process.Alphabet)
	if cfg.Process.NoRepeat {
		handler = NoRepeat(handler)
	}
	process := NewSequence(cfg.Process.Length, handler)

	collector := strategy.NewCollector()
	greedy := strategy.NewGreedy(createOptions(cfg.Search, collector)...)
	gen := generator.New(greedy, process,
		generator.WithMaxRuns(cfg.Search.MaxRuns),
		generator.WithMaxOutputs(cfg.Search.MaxOutputs),
	)

	log.Info().Msgf("starting %s experiment...", cfg.Name)
	start := time.Now()

	report := Report{Outputs: []string{}}
	for run, err := range gen.Runs() {
		if err != nil {
			return report, fmt.Errorf("%s experiment failed: %w", cfg.Name, err)
		}
		report.Records = append(report.Records, metrics.RunRecord{
			Run:        run.Index,
			Infeasible: run.Infeasible,
			Decisions:  run.Decisions,
			Scores:     run.Scores,
			Output:     run.Output,
		})
		if !run.Infeasible {
			report.Outputs = append(report.Outputs, run.Output)
		}
	}
	report.Session = collector.Complete()

	log.Info().Msgf("completed %s experiment: %d runs, %d outputs, %d infeasible",
		cfg.Name, report.Session.Runs, report.Session.Completed, report.Session.Infeasible)

	if cfg.Output.Dir == "" {
		return report, nil
	}

	writer, err := metrics.NewWriter(cfg.Output.Dir, cfg.Name)
	if err != nil {
		return report, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	err = writer.WriteSetup(metrics.Setup{
		Name:      cfg.Name,
		Config:    cfg,
		StartTime: start,
		EndTime:   time.Now(),
		Session:   report.Session,
	})
	if err != nil {
		return report, fmt.Errorf("failed to store setup: %w", err)
	}
	log.Info().Msg("stored experiment setup")

	if err := writer.WriteRunRecords(report.Records); err != nil {
		return report, fmt.Errorf("failed to store run records: %w", err)
	}
	log.Info().Msgf("stored run records in %s", writer.Dir())

	report.Dir = writer.Dir()
	return report, nil
}

func createOptions(cfg SearchConfig, collector strategy.Collector) []strategy.Option {
	options := []strategy.Option{strategy.WithMetrics(collector)}
	if cfg.PrefixEstimate {
		options = append(options, strategy.WithEstimator(strategy.PrefixOnly))
	}
	return options
}
