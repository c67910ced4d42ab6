package integration

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legalassist_backend/test/helpers"
)

func createEvent(t *testing.T, ts *helpers.TestServer, token, caseID, eventType string, start time.Time) {
	t.Helper()

	resp, body := ts.SendRequest(t, http.MethodPost, "/api/v1/events", token, map[string]interface{}{
		"title":      "Hearing",
		"event_type": eventType,
		"start_time": start.Format(time.RFC3339),
		"location":   "Milimani Law Courts",
		"case_id":    caseID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "create event: %s", body)
}

func TestEventCRUDAndUpcoming(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token := ts.RegisterUser(t, "events@example.com", "")

	created := createCase(t, ts, token, "HC/500/2025", "Event Case")

	createEvent(t, ts, token, created.Data.ID, "Meeting", time.Now().Add(2*24*time.Hour))
	createEvent(t, ts, token, created.Data.ID, "Meeting", time.Now().Add(30*24*time.Hour))

	resp, body := ts.SendRequest(t, http.MethodGet, "/api/v1/events/upcoming?days=7", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var upcoming struct {
		Data []struct {
			Title string `json:"title"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &upcoming))
	assert.Len(t, upcoming.Data, 1, "only the event inside the window")

	resp, body = ts.SendRequest(t, http.MethodGet, "/api/v1/events", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var list struct {
		Meta struct {
			Total int64 `json:"total"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Equal(t, int64(2), list.Meta.Total)
}

func TestSweepPicksUpCourtAppearancesInWindow(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token := ts.RegisterUser(t, "window@example.com", "0755667788")

	created := createCase(t, ts, token, "HC/600/2025", "Window Case")

	// inside (24h, 48h]
	createEvent(t, ts, token, created.Data.ID, "Court Appearance", time.Now().Add(30*time.Hour))
	// outside the window
	createEvent(t, ts, token, created.Data.ID, "Court Appearance", time.Now().Add(60*time.Hour))
	// inside the window but not a court appearance
	createEvent(t, ts, token, created.Data.ID, "Meeting", time.Now().Add(30*time.Hour))

	adminToken := ts.PromoteToAdmin(t, "window@example.com")
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
	assert.Equal(t, 1, out.Data.TotalCount)
	assert.Equal(t, 1, out.Data.SuccessCount)
	assert.Zero(t, out.Data.FailureCount)

	sent := ts.Transport.SentMessages("+254755667788")
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].Message, "HC/600/2025")
	assert.Contains(t, sent[0].Message, "Milimani Law Courts")

	// the attempt shows up in the activity feed
	resp, body = ts.SendRequest(t, http.MethodGet, "/api/v1/activities", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var feed struct {
		Data []struct {
			ActivityType string `json:"activity_type"`
			Description  string `json:"description"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &feed))

	var found bool
	for _, a := range feed.Data {
		if a.ActivityType == "notification" {
			found = true
			assert.Contains(t, a.Description, "court date reminder")
			assert.Contains(t, a.Description, "HC/600/2025")
		}
	}
	assert.True(t, found, "notification activity recorded")
}
