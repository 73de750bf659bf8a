// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/raahsetu/raah-setu/auth"
	"github.com/raahsetu/raah-setu/cliparse"
	"github.com/raahsetu/raah-setu/db"
)

func init() {
	// Full-cost hashing would dominate test time
	auth.Cost = bcrypt.MinCost
}

// SetupTestDB opens a fresh SQLite database with the full schema.
// The file lives in t.TempDir and the pool is closed on cleanup.
func SetupTestDB(t *testing.T) *db.Pool {
	t.Helper()

	cfg := GetTestConfig()
	cfg.DBName = filepath.Join(t.TempDir(), "raah_setu_test.db")

	pool, err := db.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { pool.Close() })

	return pool
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          5099,
		DatabaseType:  cliparse.DatabaseSQLite,
		DBName:        "raah_setu_test.db",
		AuthRateLimit: 0,
		MaxBodyBytes:  cliparse.DefaultMaxBodyBytes,
		LogFormat:     "text",
		LogLevel:      "error",
	}
}

// UnavailableProvider fails every acquisition, like a database that is down.
type UnavailableProvider struct{}

func (UnavailableProvider) Acquire(ctx context.Context) (*db.Session, error) {
	return nil, errors.Join(db.ErrUnavailable, errors.New("dial tcp 127.0.0.1:3306: connect: connection refused"))
}

// CreateTestUser inserts a user with the given password and returns its id
func CreateTestUser(t *testing.T, pool *db.Pool, name, email, password string) int64 {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	sess, err := pool.Acquire(context.Background())
	if err != nil {
		t.Fatalf("Failed to acquire connection: %v", err)
	}
	defer sess.Close()

	id, err := sess.Insert(context.Background(),
		`INSERT INTO users (name, email, phone, password) VALUES (?, ?, ?, ?)`,
		name, email, "+91-9000000000", hash)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return id
}

// Exec runs a statement directly against the test database
func Exec(t *testing.T, pool *db.Pool, query string, args ...any) {
	t.Helper()
	if _, err := pool.DB().Exec(query, args...); err != nil {
		t.Fatalf("Failed to exec %q: %v", query, err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		var reader *bytes.Reader
		if raw, ok := body.(string); ok {
			reader = bytes.NewReader([]byte(raw))
		} else {
			jsonBody, _ := json.Marshal(body)
			reader = bytes.NewReader(jsonBody)
		}
		req = httptest.NewRequest(method, path, reader)
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertError checks the status code and the {"error": ...} message
func AssertError(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	AssertStatus(t, w, status)
	var resp struct {
		Error string `json:"error"`
	}
	AssertJSON(t, w, &resp)
	if resp.Error != message {
		t.Errorf("Expected error %q, got %q", message, resp.Error)
	}
}
