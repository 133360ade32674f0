package dto

import "time"

type SubmitAnswerRequest struct {
	AnswerText string `json:"answer_text"`
}

type InterviewQuestionDTO struct {
	ID              string     `json:"id"`
	InterviewID     string     `json:"interview_id"`
	QuestionText    string     `json:"question_text"`
	QuestionType    string     `json:"question_type"`
	DifficultyLevel string     `json:"difficulty_level"`
	AnswerText      *string    `json:"answer_text"`
	Score           *int       `json:"score"`
	Feedback        *string    `json:"feedback"`
	AnsweredAt      *time.Time `json:"answered_at"`
	CreatedAt       time.Time  `json:"created_at"`
}
