package usecase

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/hireloop/backend/internal/dto"
	"github.com/hireloop/backend/internal/model"
	"github.com/hireloop/backend/internal/repository"
	"github.com/hireloop/backend/internal/response"
	"gorm.io/gorm"
)

// InterviewRepositoryInterface is the storage collaborator for interviews.
type InterviewRepositoryInterface interface {
	Create(interview *model.Interview) error
	Update(interview *model.Interview) error
	Delete(id string) (int64, error)
	FindByID(id string) (*model.Interview, error)
	FindByInterviewID(code string) (*model.Interview, error)
	List(filter repository.InterviewFilter, offset, limit int) ([]model.Interview, int64, error)
}

type InterviewUsecase struct {
	repo InterviewRepositoryInterface
}

func NewInterviewUsecase(repo InterviewRepositoryInterface) *InterviewUsecase {
	return &InterviewUsecase{repo: repo}
}

// Create schedules an interview and assigns its public code.
func (uc *InterviewUsecase) Create(req dto.CreateInterviewRequest) (*model.Interview, error) {
	interview := model.Interview{
		IntervieweeName: req.IntervieweeName,
		Role:            req.Role,
		Technologies:    req.Technologies,
		InterviewTime:   req.InterviewTime,
		InterviewID:     newInterviewCode(),
		Status:          "scheduled",
	}
	if interview.Technologies == nil {
		interview.Technologies = []string{}
	}
	if err := uc.repo.Create(&interview); err != nil {
		return nil, err
	}
	return &interview, nil
}

// List pages through interviews ordered by interview time.
func (uc *InterviewUsecase) List(filter repository.InterviewFilter, page, pageSize int) ([]model.Interview, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	offset := (page - 1) * pageSize
	interviews, total, err := uc.repo.List(filter, offset, pageSize)
	if err != nil {
		return nil, nil, err
	}

	totalPages := total / int64(pageSize)
	if total%int64(pageSize) != 0 {
		totalPages++
	}
	pagination := &response.Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: total,
		HasMore:    int64(page) < totalPages,
		From:       offset + 1,
		To:         offset + len(interviews),
	}
	if len(interviews) == 0 {
		pagination.From = 0
		pagination.To = 0
	}
	return interviews, pagination, nil
}

func (uc *InterviewUsecase) GetByID(id string) (*model.Interview, error) {
	interview, err := uc.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterviewNotFound
		}
		return nil, err
	}
	return interview, nil
}

func (uc *InterviewUsecase) GetByCode(code string) (*model.Interview, error) {
	interview, err := uc.repo.FindByInterviewID(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterviewNotFound
		}
		return nil, err
	}
	return interview, nil
}

// Update applies the non-nil fields of the request.
func (uc *InterviewUsecase) Update(id string, req dto.UpdateInterviewRequest) (*model.Interview, error) {
	interview, err := uc.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.IntervieweeName != nil {
		interview.IntervieweeName = *req.IntervieweeName
	}
	if req.Role != nil {
		interview.Role = *req.Role
	}
	if req.Technologies != nil {
		interview.Technologies = *req.Technologies
	}
	if req.InterviewTime != nil {
		interview.InterviewTime = *req.InterviewTime
	}
	if req.Status != nil {
		interview.Status = *req.Status
	}

	if err := uc.repo.Update(interview); err != nil {
		return nil, err
	}
	return interview, nil
}

func (uc *InterviewUsecase) Delete(id string) error {
	affected, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrInterviewNotFound
	}
	return nil
}

// newInterviewCode builds the shareable session id, e.g. "INT-1A2B3C4D".
func newInterviewCode() string {
	return "INT-" + strings.ToUpper(uuid.NewString()[:8])
}
