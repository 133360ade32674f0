package repository

import (
	"github.com/hireloop/backend/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db}
}

func (r *QuestionRepository) Create(question *model.InterviewQuestion) error {
	return r.db.Create(question).Error
}

func (r *QuestionRepository) FindByID(id string) (*model.InterviewQuestion, error) {
	var question model.InterviewQuestion
	err := r.db.First(&question, "id = ?", id).Error
	return &question, err
}

// FindByInterviewID returns a session's questions ordered by creation time,
// which is the session's turn order.
func (r *QuestionRepository) FindByInterviewID(interviewID string) ([]model.InterviewQuestion, error) {
	var questions []model.InterviewQuestion
	err := r.db.Where("interview_id = ?", interviewID).Order("created_at ASC").Find(&questions).Error
	return questions, err
}

// UpdateAnswer persists the answer fields set on the question in a single
// row update. Answer immutability is enforced by the usecase before calling.
func (r *QuestionRepository) UpdateAnswer(question *model.InterviewQuestion) error {
	return r.db.Model(question).Updates(map[string]any{
		"answer_text": question.AnswerText,
		"score":       question.Score,
		"feedback":    question.Feedback,
		"answered_at": question.AnsweredAt,
	}).Error
}

// AggregateStats computes session statistics in SQL so AVG/MAX/MIN stay
// NULL when nothing has been answered yet.
func (r *QuestionRepository) AggregateStats(interviewID string) (*model.InterviewStats, error) {
	var stats model.InterviewStats
	err := r.db.Raw(`
        SELECT
          COUNT(*) AS total_questions,
          COUNT(answer_text) AS answered_questions,
          ROUND(AVG(score), 2) AS average_score,
          MAX(score) AS highest_score,
          MIN(score) AS lowest_score
        FROM interview_questions
        WHERE interview_id = ?
    `, interviewID).Scan(&stats).Error
	return &stats, err
}
