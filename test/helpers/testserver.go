package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"gorm.io/gorm"

	"legalassist_backend/internal/app"
	"legalassist_backend/internal/config"
	"legalassist_backend/internal/models"
	"legalassist_backend/internal/services"
	"legalassist_backend/internal/sms"
)

// TestServer runs the full HTTP stack over a per-test transaction. The
// transaction is rolled back when the test ends, so tests stay isolated.
type TestServer struct {
	Server    *httptest.Server
	DB        *gorm.DB
	Transport *sms.MockTransport
	Container *services.ServiceContainer
}

func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	db := ConnectTestDB(t)
	tx := BeginTransaction(t, db)

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.AccessTTLHours = 1
	cfg.JWT.RefreshTTLHours = 24

	transport := sms.NewMockTransport()
	router, container := app.SetupRouter(cfg, tx, transport)
	server := httptest.NewServer(router)

	t.Cleanup(func() {
		server.Close()
		RollbackTransaction(t, tx)
	})

	return &TestServer{
		Server:    server,
		DB:        tx,
		Transport: transport,
		Container: container,
	}
}

// SendRequest performs one JSON request against the test server.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("send request: %v", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return resp, data
}

// RegisterUser creates an account through the API and returns its access token.
func (ts *TestServer) RegisterUser(t *testing.T, email, phone string) string {
	t.Helper()

	resp, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email":      email,
		"password":   "secret-password-1",
		"first_name": "Test",
		"last_name":  "User",
		"phone":      phone,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register returned %d: %s", resp.StatusCode, body)
	}

	var out struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode register response: %v", err)
	}
	return out.Data.AccessToken
}

// PromoteToAdmin flips the user's role in the database and returns a fresh
// admin token obtained by logging in again.
func (ts *TestServer) PromoteToAdmin(t *testing.T, email string) string {
	t.Helper()

	err := ts.DB.Model(&models.User{}).
		Where("email = ?", email).
		Update("role", "admin").Error
	if err != nil {
		t.Fatalf("promote to admin: %v", err)
	}

	resp, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": "secret-password-1",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("admin login returned %d: %s", resp.StatusCode, body)
	}

	var out struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	return out.Data.AccessToken
}
