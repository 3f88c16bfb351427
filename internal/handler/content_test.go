package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"quiz-forge/internal/config"
	"quiz-forge/internal/domain"
	"quiz-forge/internal/dto"
	"quiz-forge/internal/logger"
	"quiz-forge/internal/middleware"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Level: "info", Env: "test"}); err != nil {
		panic("Failed to initialize logger for handler tests: " + err.Error())
	}
	exitCode := m.Run()
	_ = logger.Sync()
	os.Exit(exitCode)
}

// MockContentService is a mock implementation of service.ContentService
type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) Generate(ctx context.Context, req *dto.GenerateRequest) (*dto.GenerateResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GenerateResponse), args.Error(1)
}

func newTestApp(h *ContentHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	app.Get("/healthz", h.Health)
	api := app.Group("/api")
	api.Post("/generate", h.Generate)
	api.Get("/sample", h.GetSampleText)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	assert.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	return resp
}

func TestGenerate_Success(t *testing.T) {
	mockService := new(MockContentService)
	expected := &dto.GenerateResponse{
		ID:          "01TESTULID000000000000000",
		Assignments: []string{"Assignment 1: one", "Assignment 2: two"},
		QuizQuestions: []dto.QuizQuestionResponse{
			{Question: "q?", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 1, Explanation: "e"},
		},
	}
	mockService.On("Generate", mock.Anything, mock.AnythingOfType("*dto.GenerateRequest")).Return(expected, nil)

	app := newTestApp(NewContentHandler(mockService, nil))
	resp := postJSON(t, app, "/api/generate", dto.GenerateRequest{Text: "Photosynthesis converts sunlight into glucose."})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got dto.GenerateResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, *expected, got)

	mockService.AssertExpectations(t)
}

func TestGenerate_BlankTextRejected(t *testing.T) {
	mockService := new(MockContentService)

	app := newTestApp(NewContentHandler(mockService, nil))
	resp := postJSON(t, app, "/api/generate", dto.GenerateRequest{Text: "   "})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp middleware.ValidationErrorResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, string(domain.CodeValidation), errResp.Code)
	assert.NotEmpty(t, errResp.Errors)
	assert.Equal(t, "text", errResp.Errors[0].Field)

	mockService.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestGenerate_MalformedBody(t *testing.T) {
	mockService := new(MockContentService)
	app := newTestApp(NewContentHandler(mockService, nil))

	req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGenerate_ServiceError(t *testing.T) {
	mockService := new(MockContentService)
	mockService.On("Generate", mock.Anything, mock.Anything).
		Return(nil, domain.NewInternalError("boom", nil))

	app := newTestApp(NewContentHandler(mockService, nil))
	resp := postJSON(t, app, "/api/generate", dto.GenerateRequest{Text: "Some qualifying document text."})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestGetSampleText(t *testing.T) {
	app := newTestApp(NewContentHandler(new(MockContentService), nil))

	req := httptest.NewRequest(http.MethodGet, "/api/sample", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.Contains(t, string(body), "Photosynthesis")
}

func TestHealth_NoCacheConfigured(t *testing.T) {
	app := newTestApp(NewContentHandler(new(MockContentService), nil))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var health dto.HealthResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "ok", health.Status)
	assert.Empty(t, health.Cache)
}
