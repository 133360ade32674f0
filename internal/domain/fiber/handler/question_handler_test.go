package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hireloop/backend/internal/model"
	"github.com/hireloop/backend/internal/service"
	"github.com/hireloop/backend/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memQuestionRepo struct {
	questions []*model.InterviewQuestion
}

func (r *memQuestionRepo) Create(q *model.InterviewQuestion) error {
	q.ID = uuid.New()
	q.CreatedAt = time.Now()
	r.questions = append(r.questions, q)
	return nil
}

func (r *memQuestionRepo) FindByID(id string) (*model.InterviewQuestion, error) {
	for _, q := range r.questions {
		if q.ID.String() == id {
			return q, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memQuestionRepo) FindByInterviewID(interviewID string) ([]model.InterviewQuestion, error) {
	var out []model.InterviewQuestion
	for _, q := range r.questions {
		if q.InterviewID == interviewID {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (r *memQuestionRepo) UpdateAnswer(q *model.InterviewQuestion) error {
	for _, stored := range r.questions {
		if stored.ID == q.ID {
			*stored = *q
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memQuestionRepo) AggregateStats(interviewID string) (*model.InterviewStats, error) {
	stats := &model.InterviewStats{}
	for _, q := range r.questions {
		if q.InterviewID == interviewID {
			stats.TotalQuestions++
			if q.Score != nil {
				stats.AnsweredQuestions++
			}
		}
	}
	return stats, nil
}

type memInterviewRepo struct{}

func (r *memInterviewRepo) FindByInterviewID(code string) (*model.Interview, error) {
	if code != "INT-HANDLER1" {
		return nil, gorm.ErrRecordNotFound
	}
	return &model.Interview{InterviewID: code, Role: "Backend Developer"}, nil
}

type okGenerator struct{}

func (okGenerator) GenerateQuestion(context.Context, string) (string, error) {
	return "Question: How does connection pooling work", nil
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(mode string) (*fiber.App, *memQuestionRepo) {
	repo := &memQuestionRepo{}
	uc := usecase.NewQuestionUsecase(repo, &memInterviewRepo{}, service.NewQuestionSource(okGenerator{}), mode, 5)
	app := fiber.New()
	NewQuestionHandler(uc).RegisterRoutes(app)
	return app, repo
}

func doRequest(t *testing.T, app *fiber.App, method, target string, body any) (*http.Response, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &env))
	return resp, env
}

func TestGenerateRequiresInterviewID(t *testing.T) {
	app, _ := newTestApp(usecase.ModeGenerative)

	resp, env := doRequest(t, app, http.MethodGet, "/questions/generate", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.False(t, env.Success)
	assert.Equal(t, "Interview ID is required", env.Message)
}

func TestGenerateUnknownInterviewIs404(t *testing.T) {
	app, _ := newTestApp(usecase.ModeGenerative)

	resp, env := doRequest(t, app, http.MethodGet, "/questions/generate?interview_id=INT-NOPE0000", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.False(t, env.Success)
}

func TestGenerateCleansGeneratorOutput(t *testing.T) {
	app, _ := newTestApp(usecase.ModeGenerative)

	resp, env := doRequest(t, app, http.MethodGet, "/questions/generate?interview_id=INT-HANDLER1", nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.True(t, env.Success)

	var questions []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &questions))
	require.Len(t, questions, 1)
	assert.Equal(t, "How does connection pooling work?", questions[0]["question_text"])
	// The reference answer never leaves the server.
	assert.NotContains(t, questions[0], "expected_answer")
}

func TestGenerateQuestionCountOutOfRange(t *testing.T) {
	app, repo := newTestApp(usecase.ModeBank)

	for _, count := range []string{"0", "21", "-3"} {
		target := "/questions/generate?interview_id=INT-HANDLER1&question_count=" + count
		resp, env := doRequest(t, app, http.MethodGet, target, nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "question_count=%s", count)
		assert.Equal(t, "question_count must be between 1 and 20", env.Message)
	}
	assert.Empty(t, repo.questions)
}

func TestAnswerFlow(t *testing.T) {
	app, repo := newTestApp(usecase.ModeBank)

	resp, env := doRequest(t, app, http.MethodGet, "/questions/generate?interview_id=INT-HANDLER1&question_count=2", nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.Len(t, repo.questions, 2)
	id := repo.questions[0].ID.String()

	resp, env = doRequest(t, app, http.MethodPost, "/questions/answer/"+id,
		map[string]string{"answer_text": "Authentication verifies identity, authorization controls access permissions"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Answer submitted successfully", env.Message)

	var question map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &question))
	assert.NotNil(t, question["score"])
	assert.NotNil(t, question["feedback"])

	// Second submission is rejected.
	resp, env = doRequest(t, app, http.MethodPost, "/questions/answer/"+id,
		map[string]string{"answer_text": "another answer"})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.False(t, env.Success)
}

func TestAnswerBlankIs400(t *testing.T) {
	app, _ := newTestApp(usecase.ModeBank)

	resp, env := doRequest(t, app, http.MethodPost, "/questions/answer/"+uuid.NewString(),
		map[string]string{"answer_text": "   "})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Answer text is required", env.Message)
}

func TestAnswerUnknownQuestionIs404(t *testing.T) {
	app, _ := newTestApp(usecase.ModeBank)

	resp, _ := doRequest(t, app, http.MethodPost, "/questions/answer/"+uuid.NewString(),
		map[string]string{"answer_text": "a valid answer"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestStatsEmptySession(t *testing.T) {
	app, _ := newTestApp(usecase.ModeBank)

	resp, env := doRequest(t, app, http.MethodGet, "/questions/stats/INT-HANDLER1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var stats map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.EqualValues(t, 0, stats["total_questions"])
	assert.Nil(t, stats["average_score"])
}
