// Package screening composes extraction, classification and gap analysis into the
// resume scoring and answer evaluation flows.
package screening

import (
	"context"

	"github.com/pranav244872/resumecoach/archive"
	"github.com/pranav244872/resumecoach/classifier"
	"github.com/pranav244872/resumecoach/events"
	"github.com/pranav244872/resumecoach/extract"
	"github.com/pranav244872/resumecoach/skillz"
	"go.uber.org/zap"
)

// ScoredResume is the verdict for one resume against one role.
type ScoredResume struct {
	Selected           bool     `json:"selected"`
	Score              float64  `json:"score"`
	SkillsFound        []string `json:"skills_found"`
	MissingSkills      []string `json:"missing_skills"`
	InterviewQuestions []string `json:"interview_questions"`
	ResumeSuggestions  []string `json:"resume_suggestions"`
}

// ResumeScorerDeps are the collaborators of a ResumeScorer. Archiver, Publisher and
// Logger are optional.
type ResumeScorerDeps struct {
	Extractor  extract.Extractor
	Vectorizer classifier.Vectorizer
	Classifier classifier.Classifier
	Skills     skillz.Processor
	Roles      *skillz.RoleProfiles
	Content    skillz.Content
	Archiver   archive.Archiver
	Publisher  events.Publisher
	Logger     *zap.Logger
}

// ResumeScorer runs extract -> classify -> skills -> gap -> content for an upload.
// Every collaborator is read-only, so one scorer serves all requests.
type ResumeScorer struct {
	deps ResumeScorerDeps
}

// NewResumeScorer fills in no-op side channels for the optional deps.
func NewResumeScorer(deps ResumeScorerDeps) *ResumeScorer {
	if deps.Archiver == nil {
		deps.Archiver = archive.Noop{}
	}
	if deps.Publisher == nil {
		deps.Publisher = events.Noop{}
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &ResumeScorer{deps: deps}
}

// Score evaluates the uploaded file for role. An extraction problem returns an error
// wrapping extract.ErrExtractionFailed before the classifier runs.
func (s *ResumeScorer) Score(ctx context.Context, role, filename string, data []byte) (ScoredResume, error) {
	doc, err := s.deps.Extractor.Extract(data)
	if err != nil {
		return ScoredResume{}, err
	}

	s.archive(ctx, filename, doc.MimeType, data)

	probability := s.deps.Classifier.Probability(s.deps.Vectorizer.Transform(doc.Text))
	selected, score := classifier.Decide(probability)

	found := s.deps.Skills.ExtractSkills(doc.Text)
	missing := s.deps.Roles.Missing(role, found)
	questions, suggestions := s.deps.Content.ForGaps(missing)

	result := ScoredResume{
		Selected:           selected,
		Score:              score,
		SkillsFound:        found,
		MissingSkills:      missing,
		InterviewQuestions: questions,
		ResumeSuggestions:  suggestions,
	}

	s.publish(ctx, events.RoutingResumeScored, events.ResumeScored{
		Role:          s.deps.Roles.Resolve(role),
		Selected:      selected,
		Score:         score,
		MissingSkills: missing,
	})

	return result, nil
}

func (s *ResumeScorer) archive(ctx context.Context, filename, mimeType string, data []byte) {
	key, err := s.deps.Archiver.Archive(ctx, filename, mimeType, data)
	if err != nil {
		s.deps.Logger.Warn("archiving resume", zap.String("filename", filename), zap.Error(err))
		return
	}
	if key != "" {
		s.deps.Logger.Debug("resume archived", zap.String("key", key))
	}
}

func (s *ResumeScorer) publish(ctx context.Context, key string, event any) {
	if err := s.deps.Publisher.Publish(ctx, key, event); err != nil {
		s.deps.Logger.Warn("publishing event", zap.String("routing_key", key), zap.Error(err))
	}
}
