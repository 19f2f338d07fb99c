package main

import (
	"fmt"
	"os"
	"strings"

	"atlas/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "Path to a YAML experiment config")
	length := pflag.Int("length", 0, "Number of choice points (overrides config)")
	alphabet := pflag.StringSlice("alphabet", nil, "Symbols offered at every choice point (overrides config)")
	maxRuns := pflag.Int("max-runs", 0, "Stop after this many runs (overrides config)")
	maxOutputs := pflag.Int("max-outputs", 0, "Stop after this many outputs (overrides config)")
	outDir := pflag.String("out", "", "Directory for run records (overrides config)")
	logLevel := pflag.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	pflag.Parse()

	cfg := experiments.DefaultConfig()
	if *configPath != "" {
		loaded, err := experiments.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}

	if *length > 0 {
		cfg.Process.Length = *length
	}
	if len(*alphabet) > 0 {
		cfg.Process.Alphabet = *alphabet
	}
	if *maxRuns > 0 {
		cfg.Search.MaxRuns = *maxRuns
	}
	if *maxOutputs > 0 {
		cfg.Search.MaxOutputs = *maxOutputs
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	configureLogging(cfg.LogLevel)

	report, err := experiments.Run(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}

	for i, output := range report.Outputs {
		fmt.Printf("%d\t%s\n", i+1, output)
	}
}

func configureLogging(level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
}
