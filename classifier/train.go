package classifier

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Sample is one labelled resume.
type Sample struct {
	Text     string
	Selected bool
}

// TrainOptions tunes the offline fit.
type TrainOptions struct {
	C             float64 // inverse regularisation strength
	LearningRate  float64
	MaxIter       int
	Tolerance     float64
	DropStopWords bool
}

// DefaultTrainOptions mirrors the usual logistic regression defaults (C=1, English stop words).
func DefaultTrainOptions() TrainOptions {
	return TrainOptions{
		C:             1.0,
		LearningRate:  1.0,
		MaxIter:       2000,
		Tolerance:     1e-6,
		DropStopWords: true,
	}
}

// Train fits the vectorizer, then the classifier, on samples.
func Train(samples []Sample, opts TrainOptions) (*Model, error) {
	if len(samples) == 0 {
		return nil, errors.New("no training samples")
	}
	if opts.C <= 0 || opts.LearningRate <= 0 || opts.MaxIter <= 0 {
		return nil, errors.New("C, learning rate and max iterations must be positive")
	}

	var positives int
	docs := make([]string, len(samples))
	for i, s := range samples {
		docs[i] = s.Text
		if s.Selected {
			positives++
		}
	}
	if positives == 0 || positives == len(samples) {
		return nil, errors.New("training samples must contain both selected and rejected resumes")
	}

	vectorizer := FitTFIDF(docs, opts.DropStopWords)
	xs := make([]SparseVector, len(samples))
	ys := make([]float64, len(samples))
	for i, s := range samples {
		xs[i] = vectorizer.Transform(s.Text)
		if s.Selected {
			ys[i] = 1
		}
	}

	return &Model{
		Vectorizer: vectorizer,
		Classifier: fitLogistic(xs, ys, vectorizer.Features(), opts),
		Samples:    len(samples),
		TrainedAt:  time.Now().UTC(),
	}, nil
}

// ReadSamples parses a CSV with a header containing resume_text and selected columns.
func ReadSamples(r io.Reader) ([]Sample, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	textCol, labelCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")) {
		case "resume_text":
			textCol = i
		case "selected":
			labelCol = i
		}
	}
	if textCol < 0 || labelCol < 0 {
		return nil, errors.New("csv header must contain resume_text and selected columns")
	}

	var samples []Sample
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}
		if textCol >= len(record) || labelCol >= len(record) {
			return nil, fmt.Errorf("csv line %d: missing columns", line)
		}
		selected, err := strconv.ParseBool(strings.TrimSpace(record[labelCol]))
		if err != nil {
			return nil, fmt.Errorf("csv line %d: bad selected value %q", line, record[labelCol])
		}
		samples = append(samples, Sample{Text: record[textCol], Selected: selected})
	}
	return samples, nil
}
