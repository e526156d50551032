package similarity

import (
	"context"
	"fmt"
	"math"
)

// IdealAnswers looks up the reference answer for a question.
type IdealAnswers interface {
	Lookup(question string) (string, bool)
}

// Scorer rates an answer by its embedding similarity to the question's ideal answer.
type Scorer struct {
	ideal    IdealAnswers
	embedder Embedder
}

// NewScorer builds a Scorer. Both arguments are read-only after construction.
func NewScorer(ideal IdealAnswers, embedder Embedder) *Scorer {
	return &Scorer{ideal: ideal, embedder: embedder}
}

// Score returns similarity*100 rounded to two decimals and clamped to [0, 100].
// A question without an ideal answer scores 0 and the embedder is not called.
func (s *Scorer) Score(ctx context.Context, question, answer string) (float64, error) {
	ideal, ok := s.ideal.Lookup(question)
	if !ok {
		return 0, nil
	}

	answerVec, err := s.embedder.Embed(ctx, answer)
	if err != nil {
		return 0, fmt.Errorf("embed answer: %w", err)
	}
	idealVec, err := s.embedder.Embed(ctx, ideal)
	if err != nil {
		return 0, fmt.Errorf("embed ideal answer: %w", err)
	}

	return clampPercent(round2(Cosine(answerVec, idealVec) * 100)), nil
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func clampPercent(x float64) float64 {
	return math.Max(0, math.Min(100, x))
}
