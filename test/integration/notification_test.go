package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legalassist_backend/test/helpers"
)

func TestUpdatePhoneAndPreferences(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token := ts.RegisterUser(t, "prefs@example.com", "")

	resp, _ := ts.SendRequest(t, http.MethodPut, "/api/v1/notifications/phone", token, map[string]interface{}{
		"phone": "0722334455",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := ts.SendRequest(t, http.MethodGet, "/api/v1/notifications/preferences", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var prefs struct {
		Data struct {
			Phone       string `json:"phone"`
			RecentSends []struct {
				To      string `json:"to"`
				Message string `json:"message"`
			} `json:"recent_sends"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &prefs))
	assert.Equal(t, "0722334455", prefs.Data.Phone)
	assert.Empty(t, prefs.Data.RecentSends)
}

func TestSendTestNotification(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token := ts.RegisterUser(t, "testsend@example.com", "0733001122")

	created := createCase(t, ts, token, "HC/400/2025", "Njeri v. County")

	resp, body := ts.SendRequest(t, http.MethodPost, "/api/v1/notifications/test", token, map[string]interface{}{
		"type":    "court_reminder",
		"case_id": created.Data.ID,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, "test send: %s", body)

	var out struct {
		Data struct {
			Success   bool   `json:"success"`
			MessageID string `json:"message_id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	assert.True(t, out.Data.Success)
	assert.Equal(t, "mock-sms-1", out.Data.MessageID)

	sent := ts.Transport.SentMessages("+254733001122")
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].Message, "HC/400/2025")

	// unknown type is rejected by validation
	resp, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/notifications/test", token, map[string]interface{}{
		"type":    "carrier_pigeon",
		"case_id": created.Data.ID,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// another user's case is off limits
	otherToken := ts.RegisterUser(t, "other@example.com", "0733001123")
	resp, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/notifications/test", otherToken, map[string]interface{}{
		"type":    "status_update",
		"case_id": created.Data.ID,
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestTestNotificationWithoutPhone(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token := ts.RegisterUser(t, "nophone@example.com", "")

	created := createCase(t, ts, token, "HC/401/2025", "No Phone Case")

	resp, body := ts.SendRequest(t, http.MethodPost, "/api/v1/notifications/test", token, map[string]interface{}{
		"type":    "status_update",
		"case_id": created.Data.ID,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Data struct {
			Success bool   `json:"success"`
			Error   string `json:"error"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	assert.False(t, out.Data.Success)
	assert.Equal(t, "User has no phone number", out.Data.Error)
	assert.Empty(t, ts.Transport.SentMessages(""))
}

func TestAdminSweepAuthorization(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token := ts.RegisterUser(t, "sweeper@example.com", "0744556677")

	// regular users cannot trigger the sweep
	resp, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/notifications/send-reminders", token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	adminToken := ts.PromoteToAdmin(t, "sweeper@example.com")
	resp, body := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/notifications/send-reminders", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, "sweep: %s", body)

	var out struct {
		Data struct {
			SuccessCount int `json:"success_count"`
			FailureCount int `json:"failure_count"`
			TotalCount   int `json:"total_count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Zero(t, out.Data.TotalCount, "no qualifying events were created")
}
