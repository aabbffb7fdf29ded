package integration_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"testing"

	"fitlife/internal/auth"
	"fitlife/internal/config"
	"fitlife/internal/db"
	"fitlife/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	database, err := db.Connect(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	require.NoError(t, db.RunMigrations(database, "../migrations"))

	_, err = database.Exec(`TRUNCATE announcements, tasks, reminders, member_notices, payments, members, admins RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	return database
}

func startServer(t *testing.T, database *sqlx.DB) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv, err := server.New(server.Deps{
		DB: database,
		Config: &config.Config{
			Port:                "0",
			JWTSecret:           "integration-secret",
			CORSOrigins:         []string{"http://localhost:5173"},
			LoginRateLimitRPS:   1000,
			LoginRateLimitBurst: 1000,
		},
		Credentials: auth.BcryptCredentials{Cost: bcrypt.MinCost},
	})
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

// client keeps its own cookie jar so every principal has its own session.
type client struct {
	t    *testing.T
	base string
	http *http.Client
}

func newClient(t *testing.T, ts *httptest.Server) *client {
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &client{t: t, base: ts.URL, http: &http.Client{Jar: jar}}
}

func (c *client) do(method, path string, body interface{}) (int, []byte, http.Header) {
	c.t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.base+path, reader)
	require.NoError(c.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	return resp.StatusCode, data, resp.Header
}

func (c *client) decode(method, path string, body interface{}, wantStatus int, out interface{}) {
	c.t.Helper()
	status, data, _ := c.do(method, path, body)
	require.Equal(c.t, wantStatus, status, "%s %s: %s", method, path, data)
	if out != nil {
		require.NoError(c.t, json.Unmarshal(data, out))
	}
}

func registerAdmin(t *testing.T, ts *httptest.Server, gym, email string) *client {
	c := newClient(t, ts)
	c.decode(http.MethodPost, "/api/admin/register", map[string]string{
		"gymName":  gym,
		"email":    email,
		"password": "secret123",
	}, http.StatusCreated, nil)
	return c
}

type memberRecord struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func createMember(c *client, name, email, phone string) memberRecord {
	var m memberRecord
	c.decode(http.MethodPost, "/api/members", map[string]string{
		"name":  name,
		"email": email,
		"phone": phone,
	}, http.StatusCreated, &m)
	return m
}

func loginMember(t *testing.T, ts *httptest.Server, email, password string) *client {
	c := newClient(t, ts)
	c.decode(http.MethodPost, "/api/members/login", map[string]string{
		"email":    email,
		"password": password,
	}, http.StatusOK, nil)
	return c
}

func path(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}
