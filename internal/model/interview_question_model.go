package model

import (
	"time"

	"github.com/google/uuid"
)

type InterviewQuestion struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	InterviewID     string     `gorm:"type:varchar(20);index" json:"interview_id"`
	QuestionText    string     `gorm:"type:text" json:"question_text"`
	QuestionType    string     `gorm:"type:varchar(50)" json:"question_type"`    // technical, problem-solving, experience
	DifficultyLevel string     `gorm:"type:varchar(20)" json:"difficulty_level"` // easy, medium, hard
	ExpectedAnswer  string     `gorm:"type:text" json:"expected_answer"`         // empty for generated questions
	AnswerText      *string    `gorm:"type:text" json:"answer_text"`
	Score           *int       `json:"score"`
	Feedback        *string    `gorm:"type:text" json:"feedback"`
	AnsweredAt      *time.Time `json:"answered_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (q *InterviewQuestion) TableName() string {
	return "interview_questions"
}

// Answered reports whether the candidate has already submitted an answer.
// A question is answered at most once; the sequencer rejects re-submissions.
func (q *InterviewQuestion) Answered() bool {
	return q.AnsweredAt != nil
}
