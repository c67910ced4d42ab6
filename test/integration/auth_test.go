package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legalassist_backend/test/helpers"
)

func TestRegisterLoginAndMe(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	token := ts.RegisterUser(t, "advocate@example.com", "0712345678")
	require.NotEmpty(t, token)

	// duplicate email is rejected
	resp, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email":      "advocate@example.com",
		"password":   "secret-password-1",
		"first_name": "Other",
		"last_name":  "Person",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// login works with the right password
	resp, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "advocate@example.com",
		"password": "secret-password-1",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var loginOut struct {
		Data struct {
			AccessToken  string `json:"access_token"`
			RefreshToken string `json:"refresh_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &loginOut))
	assert.NotEmpty(t, loginOut.Data.AccessToken)
	assert.NotEmpty(t, loginOut.Data.RefreshToken)

	// and fails with a wrong one
	resp, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "advocate@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// me returns the profile
	resp, body = ts.SendRequest(t, http.MethodGet, "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var meOut struct {
		Data struct {
			Email string `json:"email"`
			Phone string `json:"phone"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &meOut))
	assert.Equal(t, "advocate@example.com", meOut.Data.Email)
	assert.Equal(t, "0712345678", meOut.Data.Phone)

	// protected routes reject missing tokens
	resp, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
