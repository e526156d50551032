// skillz/keyword_processor.go
package skillz

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultVocabulary is the closed set of skill keywords recognised in resumes.
var DefaultVocabulary = []string{
	"python", "java", "sql", "flask", "fastapi", "docker", "mongodb", "react", "node", "aws",
}

////////////////////////////////////////////////////////////////////////
// Struct and Constructor
////////////////////////////////////////////////////////////////////////

// KeywordProcessor implements Processor with plain substring containment.
// A keyword counts as found when it appears anywhere in the lowercased text,
// so "java" is found inside "javascript" and "node" inside "nodes".
type KeywordProcessor struct {
	vocabulary []string
}

// NewKeywordProcessor builds a KeywordProcessor over vocabulary.
// Entries are lowercased and deduplicated; empty entries are dropped.
func NewKeywordProcessor(vocabulary []string) Processor {
	caser := cases.Lower(language.Und)
	seen := make(map[string]struct{}, len(vocabulary))
	words := make([]string, 0, len(vocabulary))

	for _, word := range vocabulary {
		word = strings.TrimSpace(caser.String(word))
		if word == "" {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	sort.Strings(words)

	return &KeywordProcessor{vocabulary: words}
}

////////////////////////////////////////////////////////////////////////
// Public Methods (Interface Implementation)
////////////////////////////////////////////////////////////////////////

// ExtractSkills lowercases text and reports every vocabulary keyword it contains.
// The vocabulary is kept sorted, so the result is sorted too.
func (p *KeywordProcessor) ExtractSkills(text string) []string {
	// cases.Caser is stateful, so each call gets its own.
	lowered := cases.Lower(language.Und).String(text)

	found := make([]string, 0, len(p.vocabulary))
	for _, keyword := range p.vocabulary {
		if strings.Contains(lowered, keyword) {
			found = append(found, keyword)
		}
	}
	return found
}
