package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legalassist_backend/test/helpers"
)

type caseResponse struct {
	Data struct {
		ID         string `json:"id"`
		CaseNumber string `json:"case_number"`
		Title      string `json:"title"`
		Status     string `json:"status"`
	} `json:"data"`
}

func createCase(t *testing.T, ts *helpers.TestServer, token, number, title string) caseResponse {
	t.Helper()

	resp, body := ts.SendRequest(t, http.MethodPost, "/api/v1/cases", token, map[string]interface{}{
		"case_number":   number,
		"title":         title,
		"court_level":   "High Court",
		"case_type":     "civil",
		"practice_area": "land",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "create case: %s", body)

	var out caseResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestCaseCRUD(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token := ts.RegisterUser(t, "cases@example.com", "0712000001")

	created := createCase(t, ts, token, "HC/123/2025", "Mutua v. Otieno")
	assert.Equal(t, "open", created.Data.Status)

	// duplicate case number is rejected
	resp, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/cases", token, map[string]interface{}{
		"case_number": "HC/123/2025",
		"title":       "Duplicate",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// fetch
	resp, body := ts.SendRequest(t, http.MethodGet, "/api/v1/cases/"+created.Data.ID, token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched caseResponse
	require.NoError(t, json.Unmarshal(body, &fetched))
	assert.Equal(t, "Mutua v. Otieno", fetched.Data.Title)

	// update
	resp, body = ts.SendRequest(t, http.MethodPut, "/api/v1/cases/"+created.Data.ID, token, map[string]interface{}{
		"title": "Mutua v. Otieno (Amended)",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &fetched))
	assert.Equal(t, "Mutua v. Otieno (Amended)", fetched.Data.Title)

	// list with filter
	resp, body = ts.SendRequest(t, http.MethodGet, "/api/v1/cases?status=open", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var list struct {
		Data []json.RawMessage `json:"data"`
		Meta struct {
			Total int64 `json:"total"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Equal(t, int64(1), list.Meta.Total)

	// another user cannot see the case
	otherToken := ts.RegisterUser(t, "intruder@example.com", "")
	resp, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/cases/"+created.Data.ID, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestCaseStatusChangeSendsNotification(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token := ts.RegisterUser(t, "status@example.com", "0712000002")

	created := createCase(t, ts, token, "HC/200/2025", "Republic v. Kamau")

	resp, body := ts.SendRequest(t, http.MethodPost, "/api/v1/cases/"+created.Data.ID+"/status", token, map[string]interface{}{
		"status": "active",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, "change status: %s", body)

	var out caseResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "active", out.Data.Status)

	sent := ts.Transport.SentMessages("+254712000002")
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].Message, "HC/200/2025")
	assert.Contains(t, sent[0].Message, "active")

	// bad status is rejected and sends nothing
	resp, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/cases/"+created.Data.ID+"/status", token, map[string]interface{}{
		"status": "vanished",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Len(t, ts.Transport.SentMessages("+254712000002"), 1)
}

func TestCaseMilestones(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token := ts.RegisterUser(t, "milestones@example.com", "")

	created := createCase(t, ts, token, "HC/300/2025", "In re Estate")

	resp, body := ts.SendRequest(t, http.MethodPost, "/api/v1/cases/"+created.Data.ID+"/milestones", token, map[string]interface{}{
		"title":       "File submissions",
		"order_index": 1,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "add milestone: %s", body)

	resp, body = ts.SendRequest(t, http.MethodGet, "/api/v1/cases/"+created.Data.ID+"/milestones", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var list struct {
		Data []struct {
			Title  string `json:"title"`
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list.Data, 1)
	assert.Equal(t, "File submissions", list.Data[0].Title)
	assert.Equal(t, "pending", list.Data[0].Status)
}
