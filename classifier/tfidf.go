package classifier

import (
	"math"
	"regexp"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Tokenize lowercases text and splits it into word tokens of two or more characters.
// With dropStopWords, English stop words are removed.
func Tokenize(text string, dropStopWords bool) []string {
	lowered := cases.Lower(language.Und).String(text)
	tokens := tokenPattern.FindAllString(lowered, -1)
	if !dropStopWords {
		return tokens
	}

	kept := tokens[:0]
	for _, tok := range tokens {
		if _, stop := englishStopWords[tok]; !stop {
			kept = append(kept, tok)
		}
	}
	return kept
}

// TFIDF is a fitted term-frequency / inverse-document-frequency vectorizer.
// Rows are l2-normalised; idf uses smoothing, ln((1+n)/(1+df)) + 1.
type TFIDF struct {
	Vocabulary    map[string]int `json:"vocabulary"`
	IDF           []float64      `json:"idf"`
	DropStopWords bool           `json:"drop_stop_words"`
}

// FitTFIDF learns the vocabulary and idf weights from docs.
func FitTFIDF(docs []string, dropStopWords bool) *TFIDF {
	docFreq := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, tok := range Tokenize(doc, dropStopWords) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			docFreq[tok]++
		}
	}

	terms := make([]string, 0, len(docFreq))
	for term := range docFreq {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	n := float64(len(docs))
	vocabulary := make(map[string]int, len(terms))
	idf := make([]float64, len(terms))
	for i, term := range terms {
		vocabulary[term] = i
		idf[i] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}

	return &TFIDF{Vocabulary: vocabulary, IDF: idf, DropStopWords: dropStopWords}
}

// Transform vectorizes text against the fitted vocabulary. Unknown terms are ignored.
func (t *TFIDF) Transform(text string) SparseVector {
	counts := make(map[int]float64)
	for _, tok := range Tokenize(text, t.DropStopWords) {
		if idx, ok := t.Vocabulary[tok]; ok {
			counts[idx]++
		}
	}
	for idx, tf := range counts {
		counts[idx] = tf * t.IDF[idx]
	}

	v := newSparse(counts)
	v.normalize()
	return v
}

// Features is the vocabulary size.
func (t *TFIDF) Features() int {
	return len(t.IDF)
}
