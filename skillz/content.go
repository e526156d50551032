// skillz/content.go
package skillz

// Bank is a fixed key-to-text table. Missing keys are skipped, never an error.
type Bank map[string]string

// Lookup returns the text stored for key and whether it exists.
func (b Bank) Lookup(key string) (string, bool) {
	text, ok := b[key]
	return text, ok
}

// Collect returns the texts for keys in the given order, skipping keys the bank lacks.
func (b Bank) Collect(keys []string) []string {
	texts := make([]string, 0, len(keys))
	for _, key := range keys {
		if text, ok := b.Lookup(key); ok {
			texts = append(texts, text)
		}
	}
	return texts
}

// Content groups the two banks consulted for a skill gap.
type Content struct {
	Questions   Bank
	Suggestions Bank
}

// ForGaps renders interview questions and resume suggestions for the missing skills.
func (c Content) ForGaps(missing []string) (questions []string, suggestions []string) {
	return c.Questions.Collect(missing), c.Suggestions.Collect(missing)
}

////////////////////////////////////////////////////////////////////////
// Built-in tables
////////////////////////////////////////////////////////////////////////

// DefaultQuestions maps a skill to the interview question asked when it is missing.
var DefaultQuestions = Bank{
	"python":  "Explain Python decorators with an example.",
	"sql":     "What is normalization? Explain different normal forms.",
	"docker":  "What problem does Docker solve in production systems?",
	"fastapi": "How is FastAPI faster than Flask?",
	"mongodb": "Explain indexing in MongoDB.",
	"react":   "What is virtual DOM?",
	"aws":     "What is EC2 and why is it used?",
}

// DefaultSuggestions maps a skill to the resume improvement offered when it is missing.
var DefaultSuggestions = Bank{
	"python":  "Add a project that demonstrates real Python backend development.",
	"sql":     "Mention complex SQL queries and joins you have used.",
	"docker":  "Include experience containerizing apps using Docker.",
	"fastapi": "Add REST API project using FastAPI.",
	"mongodb": "Mention schemas and indexing in MongoDB.",
	"react":   "Add a frontend project using React.",
	"aws":     "Mention any cloud deployment or EC2 usage.",
}

// DefaultIdealAnswers maps an interview question to the reference answer it is scored against.
var DefaultIdealAnswers = Bank{
	"Explain Python decorators with an example.": "Decorators modify function behavior without changing its source code.",
	"What is normalization? Explain different normal forms.": "Normalization organizes tables to reduce redundancy and update anomalies. " +
		"First normal form removes repeating groups, second normal form removes partial dependencies on a composite key " +
		"and third normal form removes transitive dependencies.",
	"What problem does Docker solve in production systems?": "Docker packages an application with its dependencies into an image " +
		"so the same container runs identically on a laptop and in production, removing environment drift.",
	"How is FastAPI faster than Flask?": "FastAPI runs on ASGI with Starlette, so it serves requests asynchronously, " +
		"and it validates data with Pydantic, while Flask is a synchronous WSGI framework.",
	"Explain indexing in MongoDB.": "An index in MongoDB is a B-tree over one or more fields that lets queries find documents " +
		"without scanning the whole collection, at the cost of extra storage and slower writes.",
	"What is virtual DOM?": "The virtual DOM is an in-memory copy of the UI tree. React diffs the new tree against the previous one " +
		"and applies only the changed nodes to the real DOM.",
	"What is EC2 and why is it used?": "EC2 is the AWS service for resizable virtual machines, used to run applications " +
		"without owning physical servers and to scale capacity on demand.",
}

// DefaultContent returns the built-in question and suggestion banks.
func DefaultContent() Content {
	return Content{Questions: DefaultQuestions, Suggestions: DefaultSuggestions}
}
