package service

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/hireloop/backend/internal/model"
	"github.com/hireloop/backend/internal/prompts"
)

// questionLabel matches leading label tokens LLMs like to prepend:
// "Question:", "Question 3:", "Q:", "1.", "2)", or a leading dash.
var questionLabel = regexp.MustCompile(`(?i)^(question\s*\d*\s*[:.)-]\s*|q\s*\d*\s*[:.)]\s*|\d+\s*[.)]\s*|[-–]\s*)`)

// QuestionSource produces the next interview question for a session from the
// generative service, degrading to a deterministic fallback when the service
// fails. NextQuestion cannot itself fail.
type QuestionSource struct {
	generator QuestionGeneratorInterface
}

func NewQuestionSource(generator QuestionGeneratorInterface) *QuestionSource {
	return &QuestionSource{generator: generator}
}

// NextQuestion builds the prompt from the session history, calls the
// generator exactly once, and returns a draft question with no expected
// answer. priorTurns is the session's full ordered history; the next turn is
// len(priorTurns)+1. totalQuestions is the session's question target.
func (s *QuestionSource) NextQuestion(ctx context.Context, role string, technologies []string, priorTurns []model.InterviewQuestion, totalQuestions int) model.InterviewQuestion {
	technology := role
	if len(technologies) > 0 {
		technology = technologies[0]
	}

	lastText := ""
	if len(priorTurns) > 0 {
		last := priorTurns[len(priorTurns)-1]
		lastText = last.QuestionText
		if last.AnswerText != nil {
			lastText = *last.AnswerText
		}
	}

	turn := len(priorTurns) + 1
	prompt := prompts.BuildQuestionPrompt(turn, totalQuestions, lastText, technology)

	text, err := s.generator.GenerateQuestion(ctx, prompt)
	if err != nil {
		log.Printf("question generation failed for turn %d, using fallback: %v", turn, err)
		text = FallbackQuestion(technology, turn)
	} else if text = cleanQuestionText(text); text == "" {
		text = FallbackQuestion(technology, turn)
	}

	return model.InterviewQuestion{
		QuestionText:    text,
		QuestionType:    "technical",
		DifficultyLevel: "medium",
		ExpectedAnswer:  "",
	}
}

// FallbackQuestion is the deterministic substitute used when the generative
// service is unavailable. turn is the 1-based index within the session.
func FallbackQuestion(technology string, turn int) string {
	return fmt.Sprintf("Tell me about your experience with %s and how you approach solving problems with it (Question %d)?", technology, turn)
}

// cleanQuestionText normalizes raw generator output: markdown fences and
// leading label tokens are stripped, surrounding quotes removed, and a
// trailing question mark ensured.
func cleanQuestionText(text string) string {
	text = strings.ReplaceAll(text, "```", "")
	text = strings.TrimSpace(text)
	text = strings.Trim(text, `"`)

	for {
		stripped := questionLabel.ReplaceAllString(text, "")
		if stripped == text {
			break
		}
		text = strings.TrimSpace(stripped)
	}

	if text != "" && !strings.HasSuffix(text, "?") {
		text += "?"
	}
	return text
}
