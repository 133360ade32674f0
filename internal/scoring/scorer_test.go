package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreEmptyAnswer(t *testing.T) {
	for _, answer := range []string{"", "   ", "\t\n  "} {
		result := Score("What is REST?", "REST uses endpoints", answer)
		assert.Equal(t, 0, result.Score)
		assert.Contains(t, result.Feedback, "Incomplete answer")
	}
}

func TestScoreKeywordOverlap(t *testing.T) {
	expected := "REST uses multiple endpoints with HTTP methods"
	answer := "REST has multiple endpoints using HTTP methods and is simple"

	result := Score("Explain the difference between REST and GraphQL APIs.", expected, answer)

	// 5 of 7 expected words touched (5.0) plus 60 chars of length (0.6).
	require.Equal(t, 6, result.Score)
	assert.Contains(t, result.Feedback, "Good answer")
}

func TestScoreClampsAtTen(t *testing.T) {
	expected := "cache"
	// Every repeated word matches the single expected word, so the raw
	// keyword term far exceeds its 7-point share.
	answer := strings.TrimSpace(strings.Repeat("cache caching cached ", 30))

	result := Score("q", expected, answer)
	assert.Equal(t, 10, result.Score)
	assert.Contains(t, result.Feedback, "Excellent answer")
}

func TestScoreNoExpectedAnswer(t *testing.T) {
	// Generated questions carry no reference answer; only length can score.
	answer := strings.Repeat("a", 250)
	result := Score("Tell me about your experience with Go (Question 2)?", "", answer)

	assert.Equal(t, 3, result.Score)
	assert.Contains(t, result.Feedback, "Basic answer")
}

func TestScoreAlwaysInRange(t *testing.T) {
	expecteds := []string{"", "one", "alpha beta gamma delta", strings.Repeat("word ", 50)}
	answers := []string{"x", "alpha", strings.Repeat("z", 1000), "alpha beta gamma delta", strings.Repeat("unrelated ", 100)}

	for _, expected := range expecteds {
		for _, answer := range answers {
			result := Score("q", expected, answer)
			assert.GreaterOrEqual(t, result.Score, 0)
			assert.LessOrEqual(t, result.Score, 10)
			assert.NotEmpty(t, result.Feedback)
		}
	}
}

func TestFeedbackTierBoundaries(t *testing.T) {
	tiers := map[int]string{
		10: "Excellent answer",
		8:  "Excellent answer",
		7:  "Good answer",
		6:  "Good answer",
		5:  "Fair answer",
		4:  "Fair answer",
		3:  "Basic answer",
		2:  "Basic answer",
		1:  "Incomplete answer",
		0:  "Incomplete answer",
	}
	for score, want := range tiers {
		assert.Contains(t, feedbackFor(score), want, "score %d", score)
	}
}

func TestScoreMatchIsBidirectionalSubstring(t *testing.T) {
	// "index" is a substring of the expected word "indexing" and must count
	// even though the tokens are not equal.
	result := Score("q", "indexing", "index")
	assert.Equal(t, 7, result.Score)

	// "databases" contains the expected word "database".
	result = Score("q", "database", "databases")
	assert.Equal(t, 7, result.Score)
}
