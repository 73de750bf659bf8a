// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raahsetu/raah-setu/models"
	"github.com/raahsetu/raah-setu/testutil"
)

func signup(t *testing.T, h *AuthHandler, body any) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.Signup(w, testutil.MakeRequest("POST", "/api/auth/signup", body, nil))
	return w
}

func login(t *testing.T, h *AuthHandler, body any) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.Login(w, testutil.MakeRequest("POST", "/api/auth/login", body, nil))
	return w
}

func TestSignup(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	h := NewAuthHandler(pool)

	req := models.SignupRequest{Name: "Asha", Email: "asha@example.com", Phone: "+91-9811111111", Password: "s3cret!"}

	w := signup(t, h, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.SignupResponse
	testutil.AssertJSON(t, w, &resp)
	assert.Positive(t, resp.UserID)
	assert.Equal(t, "asha@example.com", resp.Email)
	assert.Equal(t, models.MsgSignedUp, resp.Message)

	// Stored hash is not the password
	var stored string
	require.NoError(t, pool.DB().QueryRow(`SELECT password FROM users WHERE id = ?`, resp.UserID).Scan(&stored))
	assert.NotEqual(t, req.Password, stored)
	assert.True(t, strings.HasPrefix(stored, "$2"))

	t.Run("duplicate email", func(t *testing.T) {
		dup := req
		dup.Name = "Someone Else"
		testutil.AssertError(t, signup(t, h, dup), http.StatusConflict, "email already registered")
	})
}

func TestSignup_Validation(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	h := NewAuthHandler(pool)

	testCases := []struct {
		name    string
		body    any
		message string
	}{
		{"missing phone", map[string]string{"name": "A", "email": "a@example.com", "password": "x"}, "all fields are required"},
		{"blank name", models.SignupRequest{Name: " ", Email: "a@example.com", Phone: "1", Password: "x"}, "all fields are required"},
		{"unknown field", `{"name":"A","email":"a@example.com","phone":"1","password":"x","role":"admin"}`, "invalid JSON body"},
		{"malformed", `{"name":`, "invalid JSON body"},
		{"password too long", models.SignupRequest{Name: "A", Email: "a@example.com", Phone: "1", Password: strings.Repeat("p", 73)}, "password must be at most 72 bytes"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			testutil.AssertError(t, signup(t, h, tc.body), http.StatusBadRequest, tc.message)
		})
	}

	var count int
	require.NoError(t, pool.DB().QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count))
	assert.Zero(t, count)
}

func TestLogin(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	h := NewAuthHandler(pool)
	userID := testutil.CreateTestUser(t, pool, "Ravi", "ravi@example.com", "correct horse")

	t.Run("valid credentials", func(t *testing.T) {
		w := login(t, h, models.LoginRequest{Email: "ravi@example.com", Password: "correct horse"})
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.LoginResponse
		testutil.AssertJSON(t, w, &resp)
		assert.Equal(t, models.LoginResponse{
			Message: models.MsgLoggedIn,
			UserID:  userID,
			Name:    "Ravi",
			Email:   "ravi@example.com",
		}, resp)
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		wrong := login(t, h, models.LoginRequest{Email: "ravi@example.com", Password: "battery staple"})
		unknown := login(t, h, models.LoginRequest{Email: "nobody@example.com", Password: "correct horse"})

		testutil.AssertStatus(t, wrong, http.StatusUnauthorized)
		testutil.AssertStatus(t, unknown, http.StatusUnauthorized)
		assert.Equal(t, wrong.Body.String(), unknown.Body.String())
		assert.JSONEq(t, `{"error":"invalid credentials"}`, wrong.Body.String())
	})

	t.Run("missing password", func(t *testing.T) {
		testutil.AssertError(t, login(t, h, map[string]string{"email": "ravi@example.com"}),
			http.StatusBadRequest, "email and password required")
	})
}

func TestSignupThenLogin(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	h := NewAuthHandler(pool)

	accounts := []models.SignupRequest{
		{Name: "Meera", Email: "meera@example.com", Phone: "1", Password: "pass-one"},
		{Name: "Kabir", Email: "kabir@example.com", Phone: "2", Password: "pass two with spaces"},
		{Name: "Zoya", Email: "zoya@example.com", Phone: "3", Password: "पासवर्ड"},
	}

	for _, acct := range accounts {
		w := signup(t, h, acct)
		testutil.AssertStatus(t, w, http.StatusCreated)
		var created models.SignupResponse
		testutil.AssertJSON(t, w, &created)

		w = login(t, h, models.LoginRequest{Email: acct.Email, Password: acct.Password})
		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.LoginResponse
		testutil.AssertJSON(t, w, &resp)
		assert.Equal(t, created.UserID, resp.UserID)
		assert.Equal(t, acct.Name, resp.Name)
	}

	// Each password only opens its own account
	w := login(t, h, models.LoginRequest{Email: accounts[0].Email, Password: accounts[1].Password})
	testutil.AssertStatus(t, w, http.StatusUnauthorized)
}
