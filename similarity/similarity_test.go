package similarity_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/pranav244872/resumecoach/similarity"
	"github.com/pranav244872/resumecoach/skillz"
	"github.com/stretchr/testify/require"
)

// fixedEmbedder returns canned vectors and counts how often it was asked.
type fixedEmbedder struct {
	vectors map[string][]float64
	err     error
	calls   int
}

func (f *fixedEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.vectors[text], nil
}

////////////////////////////////////////////////////////////////////////
// Tests for Scorer
////////////////////////////////////////////////////////////////////////

func TestScorer_NearIdenticalAnswerScoresHigh(t *testing.T) {
	scorer := similarity.NewScorer(skillz.DefaultIdealAnswers, similarity.NewHashingEmbedder())

	score, err := scorer.Score(context.Background(),
		"Explain Python decorators with an example.",
		"Decorators modify function behavior without changing its source code.")
	require.NoError(t, err)
	require.Greater(t, score, 70.0)
	require.Equal(t, similarity.LabelExcellent, similarity.Label(score))
}

func TestScorer_UnknownQuestionScoresZero(t *testing.T) {
	embedder := &fixedEmbedder{}
	scorer := similarity.NewScorer(skillz.DefaultIdealAnswers, embedder)

	for _, answer := range []string{"", "Decorators modify function behavior without changing its source code."} {
		score, err := scorer.Score(context.Background(), "What is a monad?", answer)
		require.NoError(t, err)
		require.Zero(t, score)
	}
	require.Zero(t, embedder.calls)
}

func TestScorer_RoundsAndClamps(t *testing.T) {
	ideal := skillz.Bank{"q": "ideal"}

	testCases := []struct {
		name   string
		answer []float64
		ideal  []float64
		want   float64
	}{
		{name: "identical", answer: []float64{1, 0}, ideal: []float64{1, 0}, want: 100},
		{name: "rounded", answer: []float64{1, 2}, ideal: []float64{2, 1}, want: 80},
		{name: "opposite clamps to zero", answer: []float64{-1, 0}, ideal: []float64{1, 0}, want: 0},
		{name: "orthogonal", answer: []float64{0, 1}, ideal: []float64{1, 0}, want: 0},
		{name: "zero vector", answer: []float64{0, 0}, ideal: []float64{1, 0}, want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			embedder := &fixedEmbedder{vectors: map[string][]float64{"a": tc.answer, "ideal": tc.ideal}}
			score, err := similarity.NewScorer(ideal, embedder).Score(context.Background(), "q", "a")
			require.NoError(t, err)
			require.InDelta(t, tc.want, score, 1e-9)
		})
	}
}

func TestScorer_EmbedderError(t *testing.T) {
	boom := errors.New("quota exceeded")
	scorer := similarity.NewScorer(skillz.Bank{"q": "ideal"}, &fixedEmbedder{err: boom})

	_, err := scorer.Score(context.Background(), "q", "answer")
	require.ErrorIs(t, err, boom)
}

func TestHashingEmbedderIsDeterministic(t *testing.T) {
	e := similarity.NewHashingEmbedder()
	a, err := e.Embed(context.Background(), "Docker packages an application")
	require.NoError(t, err)
	b, err := e.Embed(context.Background(), "docker PACKAGES an application!")
	require.NoError(t, err)
	require.Len(t, a, similarity.DefaultDimensions)
	require.Equal(t, a, b)
	require.InDelta(t, 1.0, similarity.Cosine(a, b), 1e-9)
}

func TestCosineMismatchedLengths(t *testing.T) {
	require.Zero(t, similarity.Cosine([]float64{1}, []float64{1, 2}))
	require.Zero(t, similarity.Cosine(nil, nil))
}

////////////////////////////////////////////////////////////////////////
// Tests for Tips / Label
////////////////////////////////////////////////////////////////////////

func TestTips(t *testing.T) {
	long := strings.Repeat("word ", 30)

	testCases := []struct {
		name   string
		answer string
		want   []string
	}{
		{
			name:   "every rule fires in order",
			answer: "Decorators wrap functions.",
			want:   []string{similarity.TipAddExample, similarity.TipExplainHow, similarity.TipTooShort},
		},
		{
			name:   "has example and how but short",
			answer: "For EXAMPLE, this is how it works.",
			want:   []string{similarity.TipTooShort},
		},
		{
			name:   "long without example",
			answer: long + "how",
			want:   []string{similarity.TipAddExample},
		},
		{
			name:   "nothing fires",
			answer: long + "example showing how",
			want:   []string{similarity.TipExcellent},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, similarity.Tips(tc.answer))
		})
	}
}

func TestLabel(t *testing.T) {
	require.Equal(t, similarity.LabelExcellent, similarity.Label(70.01))
	require.Equal(t, similarity.LabelNeedsWork, similarity.Label(70))
	require.Equal(t, similarity.LabelNeedsWork, similarity.Label(0))
}
