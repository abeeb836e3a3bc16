package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shipmatrix/internal/domain"
	"shipmatrix/internal/handler"
	"shipmatrix/internal/middleware"
	"shipmatrix/internal/service"
	"shipmatrix/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext(t *testing.T, method, target string, body *bytes.Buffer) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	if body == nil {
		body = &bytes.Buffer{}
	}
	c.Request = httptest.NewRequest(method, target, body)
	return c, w
}

func authenticate(c *gin.Context, userID uuid.UUID, role domain.UserRole) {
	c.Set(middleware.ContextKeyUserID, userID)
	c.Set(middleware.ContextKeyRole, string(role))
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) handler.APIResponse {
	t.Helper()
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func multipartBody(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestRunHandler_Upload_Accepted(t *testing.T) {
	parseSvc := new(mocks.MockParseService)
	h := handler.NewRunHandler(parseSvc)
	userID := uuid.New()
	run := &domain.ParseRun{ID: uuid.New(), FileName: "invoice.txt", Status: domain.RunStatusPending}

	parseSvc.On("Upload", mock.Anything, mock.MatchedBy(func(in service.UploadInput) bool {
		return in.CreatedBy == userID && in.Header.Filename == "invoice.txt"
	})).Return(run, nil)

	body, contentType := multipartBody(t, "file", "invoice.txt", "Delivery Service Invoice")
	c, w := newTestContext(t, http.MethodPost, "/api/v1/runs", body)
	c.Request.Header.Set("Content-Type", contentType)
	authenticate(c, userID, domain.RoleMember)

	h.Upload(c)

	assert.Equal(t, http.StatusAccepted, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	parseSvc.AssertExpectations(t)
}

func TestRunHandler_Upload_MissingFileField(t *testing.T) {
	parseSvc := new(mocks.MockParseService)
	h := handler.NewRunHandler(parseSvc)

	body, contentType := multipartBody(t, "wrong_field", "invoice.txt", "text")
	c, w := newTestContext(t, http.MethodPost, "/api/v1/runs", body)
	c.Request.Header.Set("Content-Type", contentType)
	authenticate(c, uuid.New(), domain.RoleMember)

	h.Upload(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "MISSING_FILE", resp.Error.Code)
	parseSvc.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestRunHandler_Upload_NoAuthContext(t *testing.T) {
	parseSvc := new(mocks.MockParseService)
	h := handler.NewRunHandler(parseSvc)

	c, w := newTestContext(t, http.MethodPost, "/api/v1/runs", nil)

	h.Upload(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRunHandler_Upload_FileTooLarge(t *testing.T) {
	parseSvc := new(mocks.MockParseService)
	h := handler.NewRunHandler(parseSvc)

	parseSvc.On("Upload", mock.Anything, mock.Anything).Return(nil, domain.ErrFileTooLarge)

	body, contentType := multipartBody(t, "file", "invoice.txt", "text")
	c, w := newTestContext(t, http.MethodPost, "/api/v1/runs", body)
	c.Request.Header.Set("Content-Type", contentType)
	authenticate(c, uuid.New(), domain.RoleMember)

	h.Upload(c)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "FILE_TOO_LARGE", resp.Error.Code)
}

func TestRunHandler_List_AdminSeesAllRuns(t *testing.T) {
	parseSvc := new(mocks.MockParseService)
	h := handler.NewRunHandler(parseSvc)

	parseSvc.On("ListRuns", mock.Anything, 0, 20).
		Return([]domain.ParseRun{{ID: uuid.New()}}, 1, nil)

	c, w := newTestContext(t, http.MethodGet, "/api/v1/runs", nil)
	authenticate(c, uuid.New(), domain.RoleAdmin)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 1, resp.Meta.Total)
	parseSvc.AssertExpectations(t)
	parseSvc.AssertNotCalled(t, "ListRunsByUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRunHandler_List_MemberSeesOwnRuns(t *testing.T) {
	parseSvc := new(mocks.MockParseService)
	h := handler.NewRunHandler(parseSvc)
	userID := uuid.New()

	parseSvc.On("ListRunsByUser", mock.Anything, userID, 5, 10).
		Return([]domain.ParseRun{}, 0, nil)

	c, w := newTestContext(t, http.MethodGet, "/api/v1/runs?offset=5&limit=10", nil)
	authenticate(c, userID, domain.RoleMember)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	parseSvc.AssertExpectations(t)
	parseSvc.AssertNotCalled(t, "ListRuns", mock.Anything, mock.Anything, mock.Anything)
}

func TestRunHandler_GetByID_InvalidID(t *testing.T) {
	parseSvc := new(mocks.MockParseService)
	h := handler.NewRunHandler(parseSvc)

	c, w := newTestContext(t, http.MethodGet, "/api/v1/runs/abc", nil)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	h.GetByID(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_ID", resp.Error.Code)
}

func TestRunHandler_GetByID_NotFound(t *testing.T) {
	parseSvc := new(mocks.MockParseService)
	h := handler.NewRunHandler(parseSvc)
	runID := uuid.New()

	parseSvc.On("GetRun", mock.Anything, runID).Return(nil, domain.ErrNotFound)

	c, w := newTestContext(t, http.MethodGet, "/api/v1/runs/"+runID.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: runID.String()}}

	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRunHandler_Delete(t *testing.T) {
	parseSvc := new(mocks.MockParseService)
	h := handler.NewRunHandler(parseSvc)
	runID := uuid.New()

	parseSvc.On("DeleteRun", mock.Anything, runID).Return(nil)

	c, w := newTestContext(t, http.MethodDelete, "/api/v1/runs/"+runID.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: runID.String()}}

	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	parseSvc.AssertExpectations(t)
}
