package repository

import (
	"encoding/json"
	"time"

	"github.com/hireloop/backend/internal/model"
	"gorm.io/gorm"
)

type InterviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) *InterviewRepository {
	return &InterviewRepository{db}
}

// InterviewFilter narrows List results. Zero values mean "no filter";
// From and To bound interview_time independently, so either side may be open.
type InterviewFilter struct {
	Status          string
	Technology      string
	IntervieweeName string
	From            *time.Time
	To              *time.Time
}

func (r *InterviewRepository) Create(interview *model.Interview) error {
	return r.db.Create(interview).Error
}

func (r *InterviewRepository) Update(interview *model.Interview) error {
	return r.db.Save(interview).Error
}

func (r *InterviewRepository) Delete(id string) (int64, error) {
	result := r.db.Delete(&model.Interview{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

func (r *InterviewRepository) FindByID(id string) (*model.Interview, error) {
	var interview model.Interview
	err := r.db.First(&interview, "id = ?", id).Error
	return &interview, err
}

// FindByInterviewID looks up an interview by its public code (INT-xxxxxxxx).
func (r *InterviewRepository) FindByInterviewID(code string) (*model.Interview, error) {
	var interview model.Interview
	err := r.db.First(&interview, "interview_id = ?", code).Error
	return &interview, err
}

// List returns interviews ordered by interview_time with offset/limit paging,
// along with the total count of rows matching the filter.
func (r *InterviewRepository) List(filter InterviewFilter, offset, limit int) ([]model.Interview, int64, error) {
	query := r.db.Model(&model.Interview{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Technology != "" {
		// technologies is a jsonb array of strings
		member, _ := json.Marshal([]string{filter.Technology})
		query = query.Where("technologies @> ?::jsonb", string(member))
	}
	if filter.IntervieweeName != "" {
		query = query.Where("interviewee_name ILIKE ?", "%"+filter.IntervieweeName+"%")
	}
	if filter.From != nil {
		query = query.Where("interview_time >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("interview_time <= ?", *filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var interviews []model.Interview
	err := query.Order("interview_time ASC").Offset(offset).Limit(limit).Find(&interviews).Error
	return interviews, total, err
}
