package prompts

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildQuestionPromptContainsProgress(t *testing.T) {
	prompt := BuildQuestionPrompt(3, 7, "I would use goroutines and channels.", "Go")

	assert.Contains(t, prompt, "question 3 out of 7")
	assert.Contains(t, prompt, "Go developer position")
	assert.Contains(t, prompt, `"I would use goroutines and channels."`)
	assert.Contains(t, prompt, "the end of 7 questions")
}

func TestBuildQuestionPromptEmbedsPreviousTurnVerbatim(t *testing.T) {
	// The previous turn is opaque text; quotes and braces must pass through
	// untouched since the prompt is not a parsed structure.
	previous := `He said "it's O(n log n)" {probably}`
	prompt := BuildQuestionPrompt(1, 5, previous, "Java")

	assert.Contains(t, prompt, previous)
}

func TestBuildQuestionPromptIsDeterministic(t *testing.T) {
	a := BuildQuestionPrompt(2, 5, "answer", "Python")
	b := BuildQuestionPrompt(2, 5, "answer", "Python")
	assert.Equal(t, a, b)
}

func TestBuildQuestionPromptOnlyQuestionInstruction(t *testing.T) {
	prompt := BuildQuestionPrompt(1, 5, "", "React")
	assert.True(t, strings.HasSuffix(prompt, "Only return the next question text, nothing else."),
		fmt.Sprintf("prompt should end with the output instruction, got: %q", prompt))
}
