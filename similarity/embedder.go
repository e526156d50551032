// Package similarity scores interview answers against reference answers and coaches the candidate.
package similarity

import (
	"context"
	"hash/fnv"
	"math"
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Embedder maps text to a fixed-length vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// DefaultDimensions is the vector size of the hashing embedder.
const DefaultDimensions = 1024

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}]+`)

// HashingEmbedder is a deterministic local embedder. Each lowercased word is hashed with
// FNV-1a into one of Dimensions buckets and counted.
type HashingEmbedder struct {
	Dimensions int
}

// NewHashingEmbedder returns a HashingEmbedder with DefaultDimensions buckets.
func NewHashingEmbedder() *HashingEmbedder {
	return &HashingEmbedder{Dimensions: DefaultDimensions}
}

// Embed never fails; ctx is accepted to satisfy Embedder.
func (h *HashingEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	dims := h.Dimensions
	if dims <= 0 {
		dims = DefaultDimensions
	}

	vec := make([]float64, dims)
	lowered := cases.Lower(language.Und).String(text)
	for _, word := range wordPattern.FindAllString(lowered, -1) {
		hasher := fnv.New32a()
		hasher.Write([]byte(word))
		vec[hasher.Sum32()%uint32(dims)]++
	}
	return vec, nil
}

// Cosine returns the cosine similarity of a and b. A zero vector, or vectors of
// different lengths, give 0.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
