package strategy

// Estimator scores the neighbours of a completed run. For scores s of length
// n it returns n estimates, where estimate i rates the sequence that tries the
// next-best alternative at choice point i.
type Estimator func(scores []float64) []float64

// LeaveOneOut estimates neighbour i as the product of every score but s[i],
// treating choice points as independent.
func LeaveOneOut(scores []float64) []float64 {
	n := len(scores)
	forward, backward := cumulativeProducts(scores)
	estimates := make([]float64, n)
	for i := range n {
		estimate := 1.0
		if i > 0 {
			estimate *= forward[i-1]
		}
		if i+1 < n {
			estimate *= backward[i+1]
		}
		estimates[i] = estimate
	}
	return estimates
}

// PrefixOnly estimates neighbour i as the product of the scores before i.
// Scores after i belong to choices the neighbour discards.
func PrefixOnly(scores []float64) []float64 {
	estimates := make([]float64, len(scores))
	product := 1.0
	for i, s := range scores {
		estimates[i] = product
		product *= s
	}
	return estimates
}

// cumulativeProducts returns forward[i] = s[0]*...*s[i] and
// backward[i] = s[i]*...*s[n-1].
func cumulativeProducts(scores []float64) (forward, backward []float64) {
	n := len(scores)
	forward = make([]float64, n)
	backward = make([]float64, n)
	product := 1.0
	for i := 0; i < n; i++ {
		product *= scores[i]
		forward[i] = product
	}
	product = 1.0
	for i := n - 1; i >= 0; i-- {
		product *= scores[i]
		backward[i] = product
	}
	return forward, backward
}
