package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legalassist_backend/test/helpers"
)

func TestOrganizationCreateAndInvite(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	ownerToken := ts.RegisterUser(t, "owner@example.com", "")
	ts.RegisterUser(t, "member@example.com", "")

	resp, body := ts.SendRequest(t, http.MethodPost, "/api/v1/organizations", ownerToken, map[string]interface{}{
		"name":        "Wakili & Co Advocates",
		"description": "Litigation chambers",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "create org: %s", body)

	var created struct {
		Data struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &created))

	// owner invites an existing user
	resp, body = ts.SendRequest(t, http.MethodPost, "/api/v1/organizations/"+created.Data.ID+"/invite", ownerToken, map[string]interface{}{
		"email": "member@example.com",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode, "invite: %s", body)

	// non-owners cannot invite
	memberToken := ts.RegisterUser(t, "outsider@example.com", "")
	resp, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/organizations/"+created.Data.ID+"/invite", memberToken, map[string]interface{}{
		"email": "owner@example.com",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// the org now lists both members
	resp, body = ts.SendRequest(t, http.MethodGet, "/api/v1/organizations/"+created.Data.ID, ownerToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched struct {
		Data struct {
			Members []struct {
				Email string `json:"email"`
			} `json:"members"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &fetched))
	assert.Len(t, fetched.Data.Members, 2)
}
