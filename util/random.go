package util

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

const alpha = "abcdefghjklmnopqrstuvwxyz"

// RandomString generates a random string of length n
func RandomString(n int) string {
	var sb strings.Builder
	k := len(alpha)

	for range n {
		c := alpha[rand.Intn(k)]
		sb.WriteByte(c)
	}

	return sb.String()
}

// RandomSkill returns one of the common resume skills
func RandomSkill() string {
	skills := []string{"python", "sql", "docker", "fastapi", "mongodb", "react", "aws"}
	return skills[rand.Intn(len(skills))]
}

// RandomQuestion generates a unique-looking interview question
func RandomQuestion() string {
	openers := []string{"Explain", "Describe", "Compare", "Walk through"}
	return fmt.Sprintf("%s %s %s?",
		openers[rand.Intn(len(openers))],
		RandomSkill(),
		RandomString(8),
	)
}

// RandomAnswer returns a tech-sounding answer sentence
func RandomAnswer() string {
	verbs := []string{"caches", "indexes", "serializes", "schedules", "isolates", "streams"}
	nouns := []string{"requests", "documents", "containers", "queries", "events"}

	return fmt.Sprintf("It %s %s using %s, for example %s.",
		verbs[rand.Intn(len(verbs))],
		nouns[rand.Intn(len(nouns))],
		RandomSkill(),
		RandomString(10),
	)
}

// RandomScore returns a score in [0, 100] rounded to two decimals
func RandomScore() float64 {
	return math.Round(rand.Float64()*10000) / 100
}
