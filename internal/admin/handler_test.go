package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fitlife/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupHandler(t *testing.T, svc Service) (*gin.Engine, *auth.SessionIssuer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	issuer, err := auth.NewSessionIssuer("handler-secret", nil)
	require.NoError(t, err)

	h := NewHandler(svc, issuer, auth.CookieConfig{})
	r := gin.New()
	r.POST("/admin/register", h.Register)
	r.POST("/admin/login", h.Login)
	r.POST("/admin/logout", h.Logout)

	withScope := func(c *gin.Context) {
		auth.SetAdminScope(c, auth.AdminScope{AdminID: 1, GymName: "Alpha"})
	}
	r.GET("/admin/me", withScope, h.Me)
	r.GET("/auth/check-auth", withScope, h.CheckAuth)
	r.GET("/admin/dashboard", withScope, h.Dashboard)
	return r, issuer
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestHandler_Register(t *testing.T) {
	svc := new(MockService)
	r, issuer := setupHandler(t, svc)

	req := RegisterRequest{GymName: "Alpha", GymAddress: "1 Main", Phone: "555", Email: "a@x.com", Password: "secret1"}
	svc.On("Register", mock.Anything, req).Return(&Admin{ID: 7, Email: "a@x.com", GymName: "Alpha"}, nil)

	body := `{"gymName":"Alpha","gymAddress":"1 Main","phone":"555","email":"a@x.com","password":"secret1"}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/register", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, w.Code)

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, Summary{Email: "a@x.com", GymName: "Alpha"}, resp.Admin)

	cookie := findCookie(w, auth.AdminCookieName)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, 86400, cookie.MaxAge)

	principal, err := issuer.Validate(context.Background(), cookie.Value, auth.KindAdmin)
	require.NoError(t, err)
	assert.Equal(t, 7, principal.ID)
}

func TestHandler_RegisterErrors(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "missing fields",
			body:           `{"email":"a@x.com"}`,
			setupMock:      func(*MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Validation failed",
		},
		{
			name: "duplicate email",
			body: `{"gymName":"Alpha","email":"a@x.com","password":"secret1"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, mock.Anything).Return(nil, ErrEmailTaken)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "Admin already exists",
		},
		{
			name: "storage failure",
			body: `{"gymName":"Alpha","email":"a@x.com","password":"secret1"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, mock.Anything).Return(nil, errors.New("pq: connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)
			r, _ := setupHandler(t, svc)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/register", strings.NewReader(tt.body)))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedMsg)
			assert.Nil(t, findCookie(w, auth.AdminCookieName))
		})
	}
}

func TestHandler_Login(t *testing.T) {
	t.Run("success sets cookie", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Login", mock.Anything, LoginRequest{Email: "a@x.com", Password: "pw"}).
			Return(&Admin{ID: 1, Email: "a@x.com", GymName: "Alpha"}, nil)
		r, _ := setupHandler(t, svc)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"email":"a@x.com","password":"pw"}`)))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"gymName":"Alpha"`)
		assert.NotNil(t, findCookie(w, auth.AdminCookieName))
	})

	t.Run("bad credentials", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Login", mock.Anything, mock.Anything).Return(nil, ErrInvalidCredentials)
		r, _ := setupHandler(t, svc)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"email":"a@x.com","password":"bad"}`)))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"message":"Invalid email or password"}`, w.Body.String())
		assert.Nil(t, findCookie(w, auth.AdminCookieName))
	})
}

func TestHandler_Logout(t *testing.T) {
	r, issuer := setupHandler(t, new(MockService))
	token, _, err := issuer.Issue(1, auth.KindAdmin)
	require.NoError(t, err)

	for _, cookieValue := range []string{token, "stale-garbage", ""} {
		req := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
		if cookieValue != "" {
			req.AddCookie(&http.Cookie{Name: auth.AdminCookieName, Value: cookieValue})
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		cookie := findCookie(w, auth.AdminCookieName)
		require.NotNil(t, cookie)
		assert.Empty(t, cookie.Value)
		assert.Less(t, cookie.MaxAge, 0)
	}
}

func TestHandler_MeAndCheckAuth(t *testing.T) {
	svc := new(MockService)
	svc.On("GetByID", mock.Anything, 1).Return(&Admin{ID: 1, Email: "a@x.com", PasswordHash: "hashed:pw", GymName: "Alpha"}, nil)
	r, _ := setupHandler(t, svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/me", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"email":"a@x.com"`)
	assert.NotContains(t, w.Body.String(), "hashed")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/check-auth", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Authenticated","adminId":1,"gymName":"Alpha"}`, w.Body.String())
}

func TestHandler_Dashboard(t *testing.T) {
	svc := new(MockService)
	svc.On("Dashboard", mock.Anything, auth.AdminScope{AdminID: 1, GymName: "Alpha"}).
		Return(&Dashboard{GymName: "Alpha", Members: 2, Payments: 1, PaymentsTotal: 1000, Announcements: 0}, nil)
	r, _ := setupHandler(t, svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"gymName":"Alpha","members":2,"payments":1,"paymentsTotal":1000,"announcements":0}`, w.Body.String())
}
