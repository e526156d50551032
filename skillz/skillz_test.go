// skillz/skillz_test.go
package skillz_test

import (
	"testing"

	"github.com/pranav244872/resumecoach/skillz"
	"github.com/stretchr/testify/require"
)

////////////////////////////////////////////////////////////////////////
// Test for ExtractSkills
////////////////////////////////////////////////////////////////////////

func TestKeywordProcessor_ExtractSkills(t *testing.T) {
	p := skillz.NewKeywordProcessor(skillz.DefaultVocabulary)

	testCases := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "Happy Path - comma separated skills",
			text: "Skills: Python, SQL, Docker",
			want: []string{"docker", "python", "sql"},
		},
		{
			name: "Duplicates collapse",
			text: "python python PYTHON",
			want: []string{"python"},
		},
		{
			name: "Substring match inside longer words",
			text: "Built SPAs in JavaScript on NodeJS",
			want: []string{"java", "node"},
		},
		{
			name: "Edge Case - no skills",
			text: "I enjoy gardening.",
			want: []string{},
		},
		{
			name: "Edge Case - empty text",
			text: "",
			want: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, p.ExtractSkills(tc.text))
		})
	}
}

func TestNewKeywordProcessorNormalizesVocabulary(t *testing.T) {
	p := skillz.NewKeywordProcessor([]string{"Go", "go", " ", "Rust"})
	require.Equal(t, []string{"go", "rust"}, p.ExtractSkills("GoLang and RUST"))
}

////////////////////////////////////////////////////////////////////////
// Tests for RoleProfiles
////////////////////////////////////////////////////////////////////////

func TestRoleProfiles_Resolve(t *testing.T) {
	profiles := skillz.DefaultRoleProfiles()

	require.Equal(t, "backend", profiles.Resolve("backend"))
	require.Equal(t, "frontend", profiles.Resolve("FrontEnd"))
	require.Equal(t, "ml", profiles.Resolve("ML"))
	require.Equal(t, "backend", profiles.Resolve("data-engineer"))
	require.Equal(t, "backend", profiles.Resolve(""))
	require.Equal(t, []string{"backend", "frontend", "ml"}, profiles.Roles())
}

func TestRoleProfiles_UnknownRoleBehavesAsBackend(t *testing.T) {
	profiles := skillz.DefaultRoleProfiles()
	found := []string{"python", "react"}

	for _, role := range []string{"devops", "Backend ", "qa", "???"} {
		require.Equal(t, profiles.Required("backend"), profiles.Required(role), role)
		require.Equal(t, profiles.Missing("backend", found), profiles.Missing(role, found), role)
	}
}

func TestRoleProfiles_Missing(t *testing.T) {
	profiles := skillz.DefaultRoleProfiles()

	missing := profiles.Missing("backend", []string{"python", "sql", "docker"})
	require.Equal(t, []string{"fastapi", "mongodb"}, missing)

	// Found skills outside the profile do not matter.
	missing = profiles.Missing("frontend", []string{"react", "aws"})
	require.Equal(t, []string{"css", "html", "javascript"}, missing)

	require.Empty(t, profiles.Missing("backend", profiles.Required("backend")))
}

func TestRoleProfiles_MissingIsSubsetAndDisjoint(t *testing.T) {
	profiles := skillz.DefaultRoleProfiles()
	found := []string{"python", "numpy", "docker", "aws"}

	for _, role := range profiles.Roles() {
		required := profiles.Required(role)
		missing := profiles.Missing(role, found)
		for _, skill := range missing {
			require.Contains(t, required, skill)
			require.NotContains(t, found, skill)
		}
	}
}

func TestNewRoleProfilesRejectsUnknownFallback(t *testing.T) {
	_, err := skillz.NewRoleProfiles(map[string][]string{"backend": {"go"}}, "frontend")
	require.Error(t, err)
}

////////////////////////////////////////////////////////////////////////
// Tests for Bank / Content
////////////////////////////////////////////////////////////////////////

func TestBank_CollectSkipsMissingKeys(t *testing.T) {
	bank := skillz.Bank{"a": "first", "c": "third"}
	require.Equal(t, []string{"first", "third"}, bank.Collect([]string{"a", "b", "c"}))
	require.Empty(t, bank.Collect([]string{"x"}))
	require.Empty(t, bank.Collect(nil))

	text, ok := bank.Lookup("b")
	require.False(t, ok)
	require.Empty(t, text)
}

func TestContent_ForGaps(t *testing.T) {
	content := skillz.DefaultContent()

	questions, suggestions := content.ForGaps([]string{"fastapi", "mongodb"})
	require.Equal(t, []string{"How is FastAPI faster than Flask?", "Explain indexing in MongoDB."}, questions)
	require.Equal(t, []string{"Add REST API project using FastAPI.", "Mention schemas and indexing in MongoDB."}, suggestions)

	// ml skills have no bank entries except python.
	questions, suggestions = content.ForGaps([]string{"numpy", "pandas", "python"})
	require.Len(t, questions, 1)
	require.Len(t, suggestions, 1)
}

func TestDefaultIdealAnswersCoverQuestionBank(t *testing.T) {
	for skill, question := range skillz.DefaultQuestions {
		_, ok := skillz.DefaultIdealAnswers.Lookup(question)
		require.True(t, ok, skill)
	}
}
