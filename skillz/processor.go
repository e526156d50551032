// skillz/processor.go
package skillz

////////////////////////////////////////////////////////////////////////
// Interface Definition
////////////////////////////////////////////////////////////////////////

// Processor is the public contract for skill extraction.
type Processor interface {
	// ExtractSkills returns the deduplicated, alphabetically sorted skill keywords found in text.
	ExtractSkills(text string) []string
}
