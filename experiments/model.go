package experiments

import (
	"encoding/binary"
	"hash/fnv"

	"golang.org/x/exp/rand"
)

// Model scores every value of a domain given the choices made so far.
// Scores are returned in domain order; higher is more promising.
type Model interface {
	Scores(prefix []string, domain []string) []float64
}

// TableModel scores the i-th domain value with Weights[i] regardless of
// context. Values past the end of Weights score 0.
type TableModel struct {
	Weights []float64
}

func (m TableModel) Scores(prefix []string, domain []string) []float64 {
	scores := make([]float64, len(domain))
	copy(scores, m.Weights)
	return scores
}

// RandomModel draws a normalized distribution per prefix. The same seed and
// prefix always give the same scores.
type RandomModel struct {
	Seed uint64
}

func (m RandomModel) Scores(prefix []string, domain []string) []float64 {
	rng := rand.New(rand.NewSource(m.hash(prefix)))
	scores := make([]float64, len(domain))
	sum := 0.0
	for i := range scores {
		scores[i] = rng.Float64()
		sum += scores[i]
	}
	if sum == 0 {
		return scores
	}
	for i := range scores {
		scores[i] /= sum
	}
	return scores
}

func (m RandomModel) hash(prefix []string) uint64 {
	h := fnv.New64a()
	binary.Write(h, binary.LittleEndian, m.Seed)
	for _, p := range prefix {
		h.Write([]byte(p))
		h.Write([]byte{0}) // Separator, "ab"+"c" differs from "a"+"bc"
	}
	return h.Sum64()
}
