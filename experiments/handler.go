package experiments

import (
	"iter"

	"atlas/generator"

	"golang.org/x/exp/slices"
)

// Rank returns a handler that scores the domain with model and yields its
// values from best to worst. Equal scores keep domain order.
func Rank(model Model, domain []string) generator.Handler[[]string, string] {
	return func(prefix []string) iter.Seq2[string, float64] {
		return func(yield func(string, float64) bool) {
			scores := model.Scores(prefix, domain)
			order := make([]int, len(domain))
			for i := range order {
				order[i] = i
			}
			slices.SortStableFunc(order, func(a, b int) int {
				switch {
				case scores[a] > scores[b]:
					return -1
				case scores[a] < scores[b]:
					return 1
				}
				return 0
			})

			for _, i := range order {
				if !yield(domain[i], scores[i]) {
					return
				}
			}
		}
	}
}

// NoRepeat filters out the value chosen at the previous choice point.
func NoRepeat(handler generator.Handler[[]string, string]) generator.Handler[[]string, string] {
	return func(prefix []string) iter.Seq2[string, float64] {
		return func(yield func(string, float64) bool) {
			for value, score := range handler(prefix) {
				if len(prefix) > 0 && value == prefix[len(prefix)-1] {
					continue
				}
				if !yield(value, score) {
					return
				}
			}
		}
	}
}
