package classifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// Model bundles the fitted vectorizer and classifier as one artifact.
type Model struct {
	Vectorizer *TFIDF    `json:"vectorizer"`
	Classifier *Logistic `json:"classifier"`
	Samples    int       `json:"samples"`
	TrainedAt  time.Time `json:"trained_at"`
}

// Prediction is the shortlist verdict for one resume.
type Prediction struct {
	Probability float64
	Selected    bool
	Score       float64
}

// Predict vectorizes text and classifies it.
func (m *Model) Predict(text string) Prediction {
	p := m.Classifier.Probability(m.Vectorizer.Transform(text))
	selected, score := Decide(p)
	return Prediction{Probability: p, Selected: selected, Score: score}
}

// Validate checks the artifact is internally consistent.
func (m *Model) Validate() error {
	if m.Vectorizer == nil || m.Classifier == nil {
		return errors.New("model artifact is missing the vectorizer or classifier")
	}
	if len(m.Vectorizer.IDF) != len(m.Classifier.Coef) {
		return fmt.Errorf("model artifact has %d idf weights but %d coefficients",
			len(m.Vectorizer.IDF), len(m.Classifier.Coef))
	}
	for term, idx := range m.Vectorizer.Vocabulary {
		if idx < 0 || idx >= len(m.Vectorizer.IDF) {
			return fmt.Errorf("vocabulary term %q has out of range index %d", term, idx)
		}
	}
	return nil
}

// Save writes the artifact as JSON to path.
func (m *Model) Save(path string) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode model: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write model %s: %w", path, err)
	}
	return nil
}

// Load reads and validates an artifact written by Save.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model %s: %w", path, err)
	}

	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode model %s: %w", path, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}
