package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hireloop/backend/internal/dto"
	"github.com/hireloop/backend/internal/repository"
	"github.com/hireloop/backend/internal/usecase"
	"github.com/hireloop/backend/internal/util"
)

type InterviewHandler struct {
	uc *usecase.InterviewUsecase
}

func NewInterviewHandler(uc *usecase.InterviewUsecase) *InterviewHandler {
	return &InterviewHandler{uc: uc}
}

func (h *InterviewHandler) RegisterRoutes(app *fiber.App) {
	interviews := app.Group("/interviews")
	interviews.Post("/", h.Create)
	interviews.Get("/", h.List)
	interviews.Get("/code/:interviewId", h.ByCode)
	interviews.Get("/:id", h.ByID)
	interviews.Put("/:id", h.Update)
	interviews.Delete("/:id", h.Delete)
}

func (h *InterviewHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}

	if formErr := validateCreateInterview(req); formErr != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: formErr.Message,
			Details: formErr.Errors,
		})
	}

	interview, err := h.uc.Create(req)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to schedule interview",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Interview scheduled successfully",
		Data:    interview,
	})
}

func (h *InterviewHandler) List(c *fiber.Ctx) error {
	filter := repository.InterviewFilter{
		Status:          c.Query("status"),
		Technology:      c.Query("technology"),
		IntervieweeName: c.Query("interviewee_name"),
	}
	if from := c.Query("from"); from != "" {
		fromTime, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: "from must be an RFC3339 timestamp",
			})
		}
		filter.From = &fromTime
	}
	if to := c.Query("to"); to != "" {
		toTime, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: "to must be an RFC3339 timestamp",
			})
		}
		filter.To = &toTime
	}

	interviews, pagination, err := h.uc.List(filter, c.QueryInt("page", 1), c.QueryInt("page_size", 10))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to list interviews",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Interviews retrieved successfully",
		Data:       interviews,
		Pagination: pagination,
	})
}

func (h *InterviewHandler) ByID(c *fiber.Ctx) error {
	interview, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return h.interviewError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Interview retrieved successfully",
		Data:    interview,
	})
}

func (h *InterviewHandler) ByCode(c *fiber.Ctx) error {
	interview, err := h.uc.GetByCode(c.Params("interviewId"))
	if err != nil {
		return h.interviewError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Interview retrieved successfully",
		Data:    interview,
	})
}

func (h *InterviewHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}

	interview, err := h.uc.Update(c.Params("id"), req)
	if err != nil {
		return h.interviewError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Interview updated successfully",
		Data:    interview,
	})
}

func (h *InterviewHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return h.interviewError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Interview deleted successfully",
	})
}

func (h *InterviewHandler) interviewError(c *fiber.Ctx, err error) error {
	if errors.Is(err, usecase.ErrInterviewNotFound) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "Interview not found",
		})
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Message: "Interview operation failed",
	}, err)
}

func validateCreateInterview(req dto.CreateInterviewRequest) *util.FormError {
	fields := map[string]string{}
	if req.IntervieweeName == "" {
		fields["interviewee_name"] = "interviewee name is required"
	}
	if req.Role == "" {
		fields["role"] = "role is required"
	}
	if req.InterviewTime.IsZero() {
		fields["interview_time"] = "interview time is required"
	}
	if len(fields) > 0 {
		return util.NewFormError("Validation failed", fields)
	}
	return nil
}
