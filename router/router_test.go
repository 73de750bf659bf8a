// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raahsetu/raah-setu/middleware"
	"github.com/raahsetu/raah-setu/models"
	"github.com/raahsetu/raah-setu/testutil"
)

func TestHealthEndpoint_DatabaseDown(t *testing.T) {
	mux := NewRouter(testutil.UnavailableProvider{}, testutil.GetTestConfig())

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/api/health", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.HealthResponse
	testutil.AssertJSON(t, w, &resp)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "2.0", resp.Version)
}

func TestRootEndpoint(t *testing.T) {
	mux := NewRouter(testutil.UnavailableProvider{}, testutil.GetTestConfig())

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "RAAH-SETU API v2.0" {
		t.Errorf("Expected banner, got '%s'", w.Body.String())
	}
}

func TestUnknownEndpoint(t *testing.T) {
	mux := NewRouter(testutil.UnavailableProvider{}, testutil.GetTestConfig())

	for _, path := range []string{"/api/nope", "/api/emergency-contacts/1/extra", "/favicon.ico"} {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
		testutil.AssertError(t, w, http.StatusNotFound, "endpoint not found")
	}
}

func TestWrongMethod(t *testing.T) {
	mux := NewRouter(testutil.UnavailableProvider{}, testutil.GetTestConfig())

	testCases := []struct {
		method string
		path   string
		allow  string
	}{
		{"GET", "/api/auth/signup", "POST"},
		{"DELETE", "/api/health-checks", "GET, HEAD, POST"},
		{"GET", "/api/emergency-contacts/7", "PUT, DELETE"},
		{"POST", "/api/health", "GET, HEAD"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))

			testutil.AssertError(t, w, http.StatusMethodNotAllowed, "method not allowed")
			assert.Equal(t, tc.allow, w.Header().Get("Allow"))
		})
	}
}

func TestRouteExistence(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	mux := NewRouter(pool, testutil.GetTestConfig())

	// Every route reaches its handler: none answers the catch-all 404
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/api/health"},
		{"POST", "/api/auth/signup"},
		{"POST", "/api/auth/login"},
		{"GET", "/api/emergency-contacts"},
		{"POST", "/api/emergency-contacts"},
		{"PUT", "/api/emergency-contacts/1"},
		{"DELETE", "/api/emergency-contacts/1"},
		{"GET", "/api/health-checks"},
		{"POST", "/api/health-checks"},
		{"GET", "/api/incidents"},
		{"POST", "/api/incidents"},
		{"GET", "/api/activities"},
		{"POST", "/api/activities"},
		{"POST", "/api/activities/log"},
		{"POST", "/api/sos/activate"},
		{"GET", "/api/sos"},
		{"GET", "/metrics"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, testutil.MakeRequest(tc.method, tc.path, "{}", nil))

			assert.NotContains(t, w.Body.String(), "endpoint not found")
		})
	}
}

func TestPreflight(t *testing.T) {
	mux := NewRouter(testutil.UnavailableProvider{}, testutil.GetTestConfig())

	req := httptest.NewRequest("OPTIONS", "/api/emergency-contacts/3", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "PUT")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestBodyLimit(t *testing.T) {
	cfg := testutil.GetTestConfig()
	cfg.MaxBodyBytes = 64
	mux := NewRouter(testutil.UnavailableProvider{}, cfg)

	body := fmt.Sprintf(`{"user_id":1,"type":"walk","description":"%s"}`, strings.Repeat("x", 200))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/api/activities", body, nil))

	testutil.AssertError(t, w, http.StatusRequestEntityTooLarge, "request body exceeds 64 B")
}

func TestAuthRateLimit(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	cfg.AuthRateLimit = 3
	mux := NewRouter(pool, cfg)

	var codes []int
	for i := 0; i < 4; i++ {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest("POST", "/api/auth/login",
			models.LoginRequest{Email: "nobody@example.com", Password: "x"}, nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{401, 401, 401, 429}, codes)

	// Other routes are not limited
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/api/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	mux := NewRouter(testutil.UnavailableProvider{}, testutil.GetTestConfig())

	// Generate at least one labelled sample first
	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/health", nil))

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `raahsetu_http_requests_total{route="GET /api/health",status="200"}`)
}

// End-to-end run through the full middleware stack
func TestUserJourney(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	mux := NewRouter(pool, testutil.GetTestConfig())

	do := func(method, path string, body any) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest(method, path, body, nil))
		return w
	}

	w := do("POST", "/api/auth/signup", models.SignupRequest{Name: "Asha", Email: "asha@example.com", Phone: "1", Password: "pw123"})
	testutil.AssertStatus(t, w, http.StatusCreated)
	var user models.SignupResponse
	testutil.AssertJSON(t, w, &user)

	w = do("POST", "/api/auth/login", models.LoginRequest{Email: "asha@example.com", Password: "pw123"})
	testutil.AssertStatus(t, w, http.StatusOK)

	w = do("POST", "/api/emergency-contacts", models.CreateContactRequest{
		UserID: user.UserID, Name: "Mom", Phone: "2", Relationship: "mother", Priority: models.PriorityLow,
	})
	testutil.AssertStatus(t, w, http.StatusCreated)
	var contact models.CreateContactResponse
	testutil.AssertJSON(t, w, &contact)

	w = do("PUT", fmt.Sprintf("/api/emergency-contacts/%d", contact.ContactID), map[string]any{"priority": "high"})
	testutil.AssertStatus(t, w, http.StatusOK)

	w = do("GET", fmt.Sprintf("/api/emergency-contacts?user_id=%d", user.UserID), nil)
	var contacts models.ContactsResponse
	testutil.AssertJSON(t, w, &contacts)
	require.Len(t, contacts.Contacts, 1)
	assert.Equal(t, models.PriorityHigh, contacts.Contacts[0].Priority)

	w = do("POST", "/api/sos/activate", map[string]any{"user_id": user.UserID, "location": "X"})
	testutil.AssertStatus(t, w, http.StatusCreated)

	w = do("DELETE", fmt.Sprintf("/api/emergency-contacts/%d", contact.ContactID), nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	w = do("DELETE", fmt.Sprintf("/api/emergency-contacts/%d", contact.ContactID), nil)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}
