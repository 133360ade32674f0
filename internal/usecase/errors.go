package usecase

import "errors"

// Sentinel errors surfaced to the HTTP boundary. Generative-service failures
// are not here on purpose: they are recovered inside the question source and
// never reach the caller.
var (
	ErrInterviewNotFound = errors.New("interview not found")
	ErrQuestionNotFound  = errors.New("question not found")
	ErrEmptyAnswer       = errors.New("answer text is required")
	ErrAlreadyAnswered   = errors.New("question has already been answered")
	ErrSessionComplete   = errors.New("interview already completed all questions")
)
