package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/hireloop/backend/internal/dto"
	"github.com/hireloop/backend/internal/model"
	"github.com/hireloop/backend/internal/usecase"
	"github.com/hireloop/backend/internal/util"
)

type QuestionHandler struct {
	uc *usecase.QuestionUsecase
}

func NewQuestionHandler(uc *usecase.QuestionUsecase) *QuestionHandler {
	return &QuestionHandler{uc: uc}
}

func (h *QuestionHandler) RegisterRoutes(app *fiber.App) {
	questions := app.Group("/questions")
	questions.Get("/generate", h.Generate)
	questions.Get("/interview/:interviewId", h.ByInterview)
	questions.Get("/stats/:interviewId", h.Stats)
	questions.Post("/answer/:id", h.Answer)
	questions.Get("/:id", h.ByID)
}

func (h *QuestionHandler) Generate(c *fiber.Ctx) error {
	interviewID := c.Query("interview_id")
	if interviewID == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Interview ID is required",
		})
	}
	count := 0
	if raw := c.Query("question_count"); raw != "" {
		count = c.QueryInt("question_count")
		if count < 1 || count > 20 {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: "question_count must be between 1 and 20",
			})
		}
	}

	questions, created, err := h.uc.GenerateQuestions(c.Context(), interviewID, count)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInterviewNotFound):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "Interview not found",
			})
		case errors.Is(err, usecase.ErrSessionComplete):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusConflict,
				Message: "Interview already has all its questions answered",
			})
		default:
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Message: "Failed to generate questions",
			}, err)
		}
	}

	code := fiber.StatusCreated
	message := "Questions generated successfully"
	if !created {
		code = fiber.StatusOK
		message = "Questions already generated for this interview"
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    code,
		Message: message,
		Data:    toQuestionDTOs(questions),
	})
}

func (h *QuestionHandler) ByInterview(c *fiber.Ctx) error {
	questions, err := h.uc.GetQuestions(c.Params("interviewId"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to get questions",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Questions retrieved successfully",
		Data:    toQuestionDTOs(questions),
	})
}

func (h *QuestionHandler) ByID(c *fiber.Ctx) error {
	question, err := h.uc.GetQuestion(c.Params("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrQuestionNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "Question not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to get question",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Question retrieved successfully",
		Data:    toQuestionDTO(*question),
	})
}

func (h *QuestionHandler) Answer(c *fiber.Ctx) error {
	var req dto.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}

	question, err := h.uc.RecordAnswer(c.Params("id"), req.AnswerText)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmptyAnswer):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: "Answer text is required",
			})
		case errors.Is(err, usecase.ErrQuestionNotFound):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "Question not found",
			})
		case errors.Is(err, usecase.ErrAlreadyAnswered):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusConflict,
				Message: "Question has already been answered",
			})
		default:
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Message: "Failed to submit answer",
			}, err)
		}
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Answer submitted successfully",
		Data:    toQuestionDTO(*question),
	})
}

func (h *QuestionHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.GetStats(c.Params("interviewId"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to get interview statistics",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Statistics retrieved successfully",
		Data:    stats,
	})
}

// toQuestionDTO hides the reference answer from candidate-facing responses.
func toQuestionDTO(q model.InterviewQuestion) dto.InterviewQuestionDTO {
	return dto.InterviewQuestionDTO{
		ID:              q.ID.String(),
		InterviewID:     q.InterviewID,
		QuestionText:    q.QuestionText,
		QuestionType:    q.QuestionType,
		DifficultyLevel: q.DifficultyLevel,
		AnswerText:      q.AnswerText,
		Score:           q.Score,
		Feedback:        q.Feedback,
		AnsweredAt:      q.AnsweredAt,
		CreatedAt:       q.CreatedAt,
	}
}

func toQuestionDTOs(questions []model.InterviewQuestion) []dto.InterviewQuestionDTO {
	dtos := make([]dto.InterviewQuestionDTO, 0, len(questions))
	for _, q := range questions {
		dtos = append(dtos, toQuestionDTO(q))
	}
	return dtos
}
