package strategy

import "encoding/binary"

// candidate is a decision sequence waiting to be run.
type candidate struct {
	priority  float64 // Negated score estimate, lower runs first
	order     uint64  // Insertion order, breaks priority ties first-in first-out
	decisions []int
	scores    []float64
}

// frontier is a min-heap of candidates ordered by priority then insertion.
// Implements container/heap.Interface.
type frontier []candidate

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	return f[i].order < f[j].order
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x any)   { *f = append(*f, x.(candidate)) }
func (f *frontier) Pop() any {
	old := *f
	c := old[len(old)-1]
	*f = old[:len(old)-1]
	return c
}

// explored holds every decision sequence ever pushed to the frontier.
type explored map[string]struct{}

// add records decisions and reports whether they were not seen before.
func (e explored) add(decisions []int) bool {
	key := sequenceKey(decisions)
	if _, ok := e[key]; ok {
		return false
	}
	e[key] = struct{}{}
	return true
}

// sequenceKey encodes ranks as concatenated uvarints, which are prefix-free,
// so distinct sequences never share a key.
func sequenceKey(decisions []int) string {
	buf := make([]byte, 0, 2*len(decisions))
	for _, d := range decisions {
		buf = binary.AppendUvarint(buf, uint64(d))
	}
	return string(buf)
}
