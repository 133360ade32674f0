package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/hireloop/backend/internal/model"
	"github.com/hireloop/backend/internal/questionbank"
	"github.com/hireloop/backend/internal/scoring"
	"github.com/hireloop/backend/internal/service"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// QuestionRepositoryInterface is the storage collaborator for questions.
// Implemented by repository.QuestionRepository; tests use in-memory fakes.
type QuestionRepositoryInterface interface {
	Create(question *model.InterviewQuestion) error
	FindByID(id string) (*model.InterviewQuestion, error)
	FindByInterviewID(interviewID string) ([]model.InterviewQuestion, error)
	UpdateAnswer(question *model.InterviewQuestion) error
	AggregateStats(interviewID string) (*model.InterviewStats, error)
}

// InterviewReaderInterface is the slice of interview storage the sequencer needs.
type InterviewReaderInterface interface {
	FindByInterviewID(code string) (*model.Interview, error)
}

// Question production modes.
const (
	ModeGenerative = "generative"
	ModeBank       = "bank"
)

// QuestionUsecase sequences a session: it produces the next question, records
// answers exactly once, and aggregates per-session statistics.
type QuestionUsecase struct {
	questionRepo   QuestionRepositoryInterface
	interviewRepo  InterviewReaderInterface
	source         *service.QuestionSource
	mode           string
	totalQuestions int

	// inflight serializes next-question production per interview so two
	// concurrent requests for the same session share one result instead of
	// racing the read-then-insert sequence.
	inflight singleflight.Group
}

func NewQuestionUsecase(questionRepo QuestionRepositoryInterface, interviewRepo InterviewReaderInterface, source *service.QuestionSource, mode string, totalQuestions int) *QuestionUsecase {
	if mode != ModeBank {
		mode = ModeGenerative
	}
	if totalQuestions <= 0 {
		totalQuestions = 5
	}
	return &QuestionUsecase{
		questionRepo:   questionRepo,
		interviewRepo:  interviewRepo,
		source:         source,
		mode:           mode,
		totalQuestions: totalQuestions,
	}
}

// GenerateQuestions produces questions for the interview. In generative mode
// it yields exactly one new adaptive question per call; in bank mode it
// creates the whole static batch on first call and returns the existing set
// afterwards. The bool result reports whether anything new was created.
// count overrides the configured session total when positive.
func (uc *QuestionUsecase) GenerateQuestions(ctx context.Context, interviewID string, count int) ([]model.InterviewQuestion, bool, error) {
	type generated struct {
		questions []model.InterviewQuestion
		created   bool
	}

	v, err, _ := uc.inflight.Do(interviewID, func() (any, error) {
		interview, err := uc.interviewRepo.FindByInterviewID(interviewID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInterviewNotFound
			}
			return nil, err
		}

		existing, err := uc.questionRepo.FindByInterviewID(interviewID)
		if err != nil {
			return nil, err
		}

		total := uc.totalQuestions
		if count > 0 {
			total = count
		}

		if uc.mode == ModeBank {
			questions, created, err := uc.generateBatch(interview, existing, total)
			return generated{questions, created}, err
		}

		question, err := uc.nextQuestion(ctx, interview, existing, total)
		if err != nil {
			return nil, err
		}
		return generated{[]model.InterviewQuestion{*question}, true}, nil
	})
	if err != nil {
		return nil, false, err
	}

	result := v.(generated)
	return result.questions, result.created, nil
}

// nextQuestion implements the adaptive sequencing step: once the session has
// answered its full quota the state machine is complete and no further
// questions are produced.
func (uc *QuestionUsecase) nextQuestion(ctx context.Context, interview *model.Interview, turns []model.InterviewQuestion, total int) (*model.InterviewQuestion, error) {
	answered := 0
	for _, q := range turns {
		if q.Answered() {
			answered++
		}
	}
	if answered >= total {
		return nil, ErrSessionComplete
	}

	question := uc.source.NextQuestion(ctx, interview.Role, interview.Technologies, turns, total)
	question.InterviewID = interview.InterviewID
	if err := uc.questionRepo.Create(&question); err != nil {
		return nil, err
	}
	return &question, nil
}

func (uc *QuestionUsecase) generateBatch(interview *model.Interview, existing []model.InterviewQuestion, count int) ([]model.InterviewQuestion, bool, error) {
	if len(existing) > 0 {
		return existing, false, nil
	}

	entries := questionbank.Lookup(interview.Role, interview.Technologies, count)
	questions := make([]model.InterviewQuestion, 0, len(entries))
	for _, entry := range entries {
		question := model.InterviewQuestion{
			InterviewID:     interview.InterviewID,
			QuestionText:    entry.Text,
			QuestionType:    entry.Type,
			DifficultyLevel: entry.Difficulty,
			ExpectedAnswer:  entry.ExpectedAnswer,
		}
		if err := uc.questionRepo.Create(&question); err != nil {
			return nil, false, err
		}
		questions = append(questions, question)
	}
	return questions, true, nil
}

// RecordAnswer scores and persists the candidate's answer. A question can be
// answered at most once; the stored score and feedback are never recomputed.
func (uc *QuestionUsecase) RecordAnswer(questionID, answerText string) (*model.InterviewQuestion, error) {
	if strings.TrimSpace(answerText) == "" {
		return nil, ErrEmptyAnswer
	}

	question, err := uc.questionRepo.FindByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	if question.Answered() {
		return nil, ErrAlreadyAnswered
	}

	result := scoring.Score(question.QuestionText, question.ExpectedAnswer, answerText)
	now := time.Now()
	question.AnswerText = &answerText
	question.Score = &result.Score
	question.Feedback = &result.Feedback
	question.AnsweredAt = &now

	if err := uc.questionRepo.UpdateAnswer(question); err != nil {
		return nil, err
	}
	return question, nil
}

// GetQuestions returns the session's questions in turn order.
func (uc *QuestionUsecase) GetQuestions(interviewID string) ([]model.InterviewQuestion, error) {
	return uc.questionRepo.FindByInterviewID(interviewID)
}

func (uc *QuestionUsecase) GetQuestion(id string) (*model.InterviewQuestion, error) {
	question, err := uc.questionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	return question, nil
}

// GetStats aggregates the session's scores. Average, highest and lowest stay
// nil until at least one question has been answered.
func (uc *QuestionUsecase) GetStats(interviewID string) (*model.InterviewStats, error) {
	return uc.questionRepo.AggregateStats(interviewID)
}
