// Package scoring grades free-text answers against a reference answer with a
// deliberately simple word-overlap heuristic. It is not semantic evaluation:
// the bidirectional substring match is part of the scoring contract and
// changing it changes observable scores.
package scoring

import (
	"math"
	"strings"
)

// Result is a 0-10 score with its feedback tier message.
type Result struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// Score grades userAnswer against expectedAnswer. The question text is part
// of the contract but does not influence the heuristic. The function is pure;
// persisting the result is the caller's job.
//
// Scoring: up to 3 points for answer length (1 point per 100 characters) plus
// up to 7 points for the share of expected vocabulary touched. A user word
// counts as touched when it contains, or is contained in, any expected word
// (case-insensitive). Generated questions have no expected answer; their
// keyword term is zero and only length can score.
func Score(questionText, expectedAnswer, userAnswer string) Result {
	score := calculate(expectedAnswer, userAnswer)
	return Result{Score: score, Feedback: feedbackFor(score)}
}

func calculate(expectedAnswer, userAnswer string) int {
	if strings.TrimSpace(userAnswer) == "" {
		return 0
	}

	userWords := strings.Fields(strings.ToLower(userAnswer))
	expectedWords := strings.Fields(strings.ToLower(expectedAnswer))

	common := 0
	for _, word := range userWords {
		for _, expected := range expectedWords {
			if strings.Contains(expected, word) || strings.Contains(word, expected) {
				common++
				break
			}
		}
	}

	lengthScore := math.Min(float64(len(userAnswer))/100, 3)

	keywordScore := 0.0
	if len(expectedWords) > 0 {
		keywordScore = float64(common) / float64(len(expectedWords)) * 7
	}

	score := int(math.Round(lengthScore + keywordScore))
	if score > 10 {
		score = 10
	}
	if score < 0 {
		score = 0
	}
	return score
}

// feedbackFor maps a score to one of five fixed tiers with floors at
// 8, 6, 4, 2 and 0.
func feedbackFor(score int) string {
	switch {
	case score >= 8:
		return "Excellent answer! You demonstrated strong understanding of the concept."
	case score >= 6:
		return "Good answer! You covered most key points. Consider elaborating on some aspects."
	case score >= 4:
		return "Fair answer. You touched on some important points but missed several key concepts."
	case score >= 2:
		return "Basic answer. Consider reviewing the topic and providing more detailed explanations."
	default:
		return "Incomplete answer. Please provide more comprehensive response covering the key concepts."
	}
}
