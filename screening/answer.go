package screening

import (
	"context"
	"fmt"

	"github.com/pranav244872/resumecoach/events"
	"github.com/pranav244872/resumecoach/history"
	"github.com/pranav244872/resumecoach/logger"
	"github.com/pranav244872/resumecoach/similarity"
	"go.uber.org/zap"
)

// Evaluation is the score and verdict label for one answer.
type Evaluation struct {
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}

// AnswerScorer rates an answer to a question.
type AnswerScorer interface {
	Score(ctx context.Context, question, answer string) (float64, error)
}

// AnswerEvaluator scores answers and records them in the history store.
type AnswerEvaluator struct {
	scorer    AnswerScorer
	store     history.Store
	publisher events.Publisher
	logger    *zap.Logger
}

// NewAnswerEvaluator builds an evaluator; publisher and log may be nil.
func NewAnswerEvaluator(scorer AnswerScorer, store history.Store, publisher events.Publisher, log *zap.Logger) *AnswerEvaluator {
	if publisher == nil {
		publisher = events.Noop{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &AnswerEvaluator{scorer: scorer, store: store, publisher: publisher, logger: log}
}

// Evaluate scores answer, labels it and appends the exchange to history.
// A storage failure fails the evaluation with an error wrapping history.ErrStorage.
func (e *AnswerEvaluator) Evaluate(ctx context.Context, question, answer string) (Evaluation, error) {
	score, err := e.scorer.Score(ctx, question, answer)
	if err != nil {
		return Evaluation{}, fmt.Errorf("score answer: %w", err)
	}

	record := history.Record{Question: question, Answer: answer, Score: score}
	if err := e.store.Append(ctx, record); err != nil {
		e.logger.Error("appending answer to history",
			zap.String("question", question),
			zap.String("answer", logger.Truncate(answer, 80)),
			zap.Error(err),
		)
		return Evaluation{}, err
	}

	if err := e.publisher.Publish(ctx, events.RoutingAnswerEvaluated, events.AnswerEvaluated{Question: question, Score: score}); err != nil {
		e.logger.Warn("publishing event", zap.String("routing_key", events.RoutingAnswerEvaluated), zap.Error(err))
	}

	return Evaluation{Score: score, Feedback: similarity.Label(score)}, nil
}

// Tips returns the coaching tips for answer.
func (e *AnswerEvaluator) Tips(answer string) []string {
	return similarity.Tips(answer)
}

// History returns every recorded answer.
func (e *AnswerEvaluator) History(ctx context.Context) ([]history.Record, error) {
	return e.store.All(ctx)
}
