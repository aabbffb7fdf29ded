package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitlife/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runFail(t *testing.T, err error) (*httptest.ResponseRecorder, ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Fail(c, err)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestFail(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{"not found", NotFound("Member not found"), http.StatusNotFound, "Member not found"},
		{"unauthorized", Unauthorized("Unauthorized"), http.StatusUnauthorized, "Unauthorized"},
		{"validation", Validation("Name and phone are required"), http.StatusBadRequest, "Name and phone are required"},
		{"conflict", Conflict("Admin already exists"), http.StatusConflict, "Admin already exists"},
		{"wrapped", fmt.Errorf("update: %w", NotFound("Task not found")), http.StatusNotFound, "Task not found"},
		{"unknown error is hidden", errors.New("pq: connection refused"), http.StatusInternalServerError, "Server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := runFail(t, tt.err)
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedMsg, body.Message)
		})
	}
}

func TestFailLogsUnknownErrors(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf, "info")
	defer logger.Init("info")

	runFail(t, NotFound("Member not found"))
	assert.Empty(t, buf.String())

	runFail(t, errors.New("pq: connection refused"))
	assert.Contains(t, buf.String(), `"error":"pq: connection refused"`)
	assert.Contains(t, buf.String(), `"method":"GET"`)
	assert.Contains(t, buf.String(), "request failed")
}

type bindTarget struct {
	Email string `json:"email" binding:"required,email"`
	Plan  string `json:"plan" binding:"omitempty,oneof=Basic Premium"`
}

func TestBindJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("validation details", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", jsonBody(`{"email":"nope","plan":"Gold"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		var dst bindTarget
		ok := BindJSON(c, &dst)

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Validation failed", body.Message)
		assert.Len(t, body.Details, 2)
	})

	t.Run("malformed json", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", jsonBody(`{"email":`))
		c.Request.Header.Set("Content-Type", "application/json")

		var dst bindTarget
		assert.False(t, BindJSON(c, &dst))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid request body")
	})
}

func TestParamID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, raw := range []string{"abc", "0", "-3"} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: raw}}

		_, ok := ParamID(c, "id")
		assert.False(t, ok, raw)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	id, ok := ParamID(c, "id")
	assert.True(t, ok)
	assert.Equal(t, 42, id)
}
