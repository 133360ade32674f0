package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hireloop/backend/internal/model"
	"github.com/hireloop/backend/internal/repository"
	"github.com/hireloop/backend/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordingInterviewRepo struct {
	lastFilter repository.InterviewFilter
}

func (r *recordingInterviewRepo) Create(interview *model.Interview) error {
	interview.ID = uuid.New()
	return nil
}

func (r *recordingInterviewRepo) Update(*model.Interview) error { return nil }

func (r *recordingInterviewRepo) Delete(string) (int64, error) { return 1, nil }

func (r *recordingInterviewRepo) FindByID(string) (*model.Interview, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *recordingInterviewRepo) FindByInterviewID(string) (*model.Interview, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *recordingInterviewRepo) List(filter repository.InterviewFilter, offset, limit int) ([]model.Interview, int64, error) {
	r.lastFilter = filter
	return nil, 0, nil
}

func newInterviewTestApp() (*fiber.App, *recordingInterviewRepo) {
	repo := &recordingInterviewRepo{}
	app := fiber.New()
	NewInterviewHandler(usecase.NewInterviewUsecase(repo)).RegisterRoutes(app)
	return app, repo
}

func TestListInterviewsOpenEndedFromBound(t *testing.T) {
	app, repo := newInterviewTestApp()

	resp, _ := doRequest(t, app, http.MethodGet, "/interviews?from=2026-09-01T00:00:00Z", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NotNil(t, repo.lastFilter.From)
	assert.Nil(t, repo.lastFilter.To)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), repo.lastFilter.From.UTC())
}

func TestListInterviewsOpenEndedToBound(t *testing.T) {
	app, repo := newInterviewTestApp()

	resp, _ := doRequest(t, app, http.MethodGet, "/interviews?to=2026-09-30T23:59:59Z", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Nil(t, repo.lastFilter.From)
	require.NotNil(t, repo.lastFilter.To)
}

func TestListInterviewsRejectsBadTimestamps(t *testing.T) {
	app, _ := newInterviewTestApp()

	resp, env := doRequest(t, app, http.MethodGet, "/interviews?from=yesterday", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "from must be an RFC3339 timestamp", env.Message)

	resp, env = doRequest(t, app, http.MethodGet, "/interviews?to=tomorrow", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "to must be an RFC3339 timestamp", env.Message)
}
