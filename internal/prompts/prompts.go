// Package prompts builds the instruction text sent to the text-generation
// service. Builders are pure string formatting with no I/O.
package prompts

import "fmt"

// BuildQuestionPrompt produces the instruction for the next adaptive interview
// question. previousAnswer is embedded verbatim; it is the candidate's last
// answer, or the previous question text when no answer exists yet.
func BuildQuestionPrompt(questionNumber, totalQuestions int, previousAnswer, technology string) string {
	return fmt.Sprintf(`You are an AI interviewer for a %s developer position.
You are currently on question %d out of %d.

The candidate's previous answer was:
"%s"

Based on this answer, create the next valuable interview question.
- The question should build on or challenge what the candidate said.
- If the previous answer is incomplete, vague, or shows gaps, ask a probing question.
- If the answer is strong, go deeper into advanced concepts.
- By the end of %d questions we must have covered: fundamentals, advanced concepts, problem solving, performance, testing, architecture, and best practices (adapted for %s).

Only return the next question text, nothing else.`,
		technology, questionNumber, totalQuestions, previousAnswer, totalQuestions, technology)
}
