package experiments

import (
	"strings"

	"atlas/generator"
	"atlas/strategy"
)

// NewSequence returns a process that picks length symbols in turn, each
// ranked by handler given the symbols picked before it. The output is the
// concatenation of the picked symbols.
func NewSequence(length int, handler generator.Handler[[]string, string]) generator.Process[string] {
	return func(s strategy.Strategy) (string, error) {
		prefix := make([]string, 0, length)
		for range length {
			symbol, err := generator.Choose(s, prefix, handler)
			if err != nil {
				return "", err
			}
			prefix = append(prefix, symbol)
		}
		return strings.Join(prefix, ""), nil
	}
}
