// Package classifier holds the TF-IDF vectorizer and logistic regression model that decide
// whether a resume is shortlisted, plus the offline job that trains them.
package classifier

import (
	"math"
	"sort"
)

// SparseVector stores non-zero features sorted by index so dot products sum in a fixed order.
type SparseVector struct {
	Indices []int
	Values  []float64
}

// Vectorizer turns text into a feature vector.
type Vectorizer interface {
	Transform(text string) SparseVector
}

// Classifier returns P(selected=1 | v) in [0, 1].
type Classifier interface {
	Probability(v SparseVector) float64
}

func newSparse(counts map[int]float64) SparseVector {
	indices := make([]int, 0, len(counts))
	for idx := range counts {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	values := make([]float64, len(indices))
	for i, idx := range indices {
		values[i] = counts[idx]
	}
	return SparseVector{Indices: indices, Values: values}
}

// Dot multiplies v with a dense weight slice. Indices past the end of weights are ignored.
func (v SparseVector) Dot(weights []float64) float64 {
	var sum float64
	for i, idx := range v.Indices {
		if idx < len(weights) {
			sum += v.Values[i] * weights[idx]
		}
	}
	return sum
}

func (v SparseVector) normalize() {
	var sq float64
	for _, x := range v.Values {
		sq += x * x
	}
	if sq == 0 {
		return
	}
	norm := math.Sqrt(sq)
	for i := range v.Values {
		v.Values[i] /= norm
	}
}

// Decide applies the shortlist rule: selected only when probability is strictly above 0.5.
// The score is the probability as a percentage rounded to two decimals.
func Decide(probability float64) (selected bool, score float64) {
	return probability > 0.5, Round2(probability * 100)
}

// Round2 rounds x to two decimal places.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
