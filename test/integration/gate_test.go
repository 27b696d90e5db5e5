package integration_test

import (
	"net/http"
	"testing"

	"networknode/internal/models"
	"networknode/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeProfilePayload(name string) map[string]interface{} {
	return map[string]interface{}{
		"name":             name,
		"bio":              "Builder",
		"skills":           []string{"Go", "go", " SQL "},
		"discord_username": name + "#42",
		"whatsapp_number":  "5550001",
		"github_url":       "https://github.com/" + name,
		"open_to_jobs":     true,
	}
}

func TestGate_IncompleteUserIsSentToProfile(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := newMember(t, ts, "u1", "Ada", false)

	for _, path := range []string{"/dashboard", "/dashboard/members", "/dashboard/jobs", "/dashboard/startups/new"} {
		method := http.MethodGet
		if path == "/dashboard/startups/new" {
			method = http.MethodPost
		}
		res, _ := ts.SendPage(t, method, path, token)
		assert.Equal(t, http.StatusSeeOther, res.StatusCode, path)
		assert.Equal(t, "/dashboard/profile", res.Header.Get("Location"), path)
	}
}

func TestGate_IncompleteAPIRequestGets403WithMissingFields(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := newMember(t, ts, "u1", "Ada", false)

	res, body := ts.SendRequest(t, http.MethodGet, "/dashboard/members", token, nil)

	require.Equal(t, http.StatusForbidden, res.StatusCode)
	errObj := decodeJSON(t, body)["error"].(map[string]interface{})
	assert.Equal(t, "PROFILE_INCOMPLETE", errObj["code"])
	details := errObj["details"].(map[string]interface{})
	assert.Equal(t, []interface{}{"whatsapp_number", "discord_username"}, details["missing_fields"])
}

func TestGate_ProfilePageIsNeverBlocked(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := newMember(t, ts, "u1", "Ada", false)

	res, body := ts.SendRequest(t, http.MethodGet, "/dashboard/profile", token, nil)

	require.Equal(t, http.StatusOK, res.StatusCode, body)
	completion := decodeJSON(t, body)["completion"].(map[string]interface{})
	assert.Equal(t, false, completion["is_complete"])
	assert.Len(t, completion["missing_fields"], 2)
}

func TestGate_CompletingProfileUnblocksImmediately(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := newMember(t, ts, "u1", "Ada", false)

	// статус попадает в кэш
	res, _ := ts.SendRequest(t, http.MethodGet, "/dashboard/jobs", token, nil)
	require.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodPut, "/dashboard/profile", token, completeProfilePayload("ada"))
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	resp := decodeJSON(t, body)
	assert.Equal(t, true, resp["completion"].(map[string]interface{})["is_complete"])
	profile := resp["profile"].(map[string]interface{})
	assert.Equal(t, []interface{}{"Go", "SQL"}, profile["skills"])

	res, body = ts.SendRequest(t, http.MethodGet, "/dashboard/jobs", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
}

func TestGate_ProfileUpdateRequiresRequiredFields(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := newMember(t, ts, "u1", "Ada", false)

	payload := completeProfilePayload("ada")
	payload["whatsapp_number"] = "   "
	payload["linkedin_url"] = "not a url"

	res, body := ts.SendRequest(t, http.MethodPut, "/dashboard/profile", token, payload)

	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	errObj := decodeJSON(t, body)["error"].(map[string]interface{})
	assert.Equal(t, "VALIDATION_FAILED", errObj["code"])
	details := errObj["details"].(map[string]interface{})
	assert.Contains(t, details, "whatsapp_number")
	assert.Contains(t, details, "linkedin_url")
}

func TestMembers_ListAndDetail(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := newMember(t, ts, "u1", "Zoe", true)
	newMember(t, ts, "u2", "Ada", true)
	newMember(t, ts, "u3", "Mia", false)

	res, body := ts.SendRequest(t, http.MethodGet, "/dashboard/members", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	resp := decodeJSON(t, body)
	assert.EqualValues(t, 3, resp["total"])

	data := resp["data"].([]interface{})
	var names []interface{}
	for _, item := range data {
		m := item.(map[string]interface{})
		names = append(names, m["name"])
		assert.NotContains(t, m, "email")
	}
	assert.Equal(t, []interface{}{"Ada", "Mia", "Zoe"}, names)

	res, body = ts.SendRequest(t, http.MethodGet, "/dashboard/members?q=mi", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.EqualValues(t, 1, decodeJSON(t, body)["total"])

	res, body = ts.SendRequest(t, http.MethodGet, "/dashboard/members/u2", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Equal(t, "Ada", decodeJSON(t, body)["name"])

	res, body = ts.SendRequest(t, http.MethodGet, "/dashboard/members/nobody", token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Equal(t, "PROFILE_NOT_FOUND", errorCode(t, body))
}

func TestGate_SessionWithoutProfileRowCanComplete(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := ts.LoginAs(t, "ghost", "ghost@example.com")
	ts.Identity.SetMetadata("ghost", map[string]interface{}{
		"full_name":  "Casper",
		"avatar_url": "https://cdn.example.com/casper.png",
	})

	res, _ := ts.SendPage(t, http.MethodGet, "/dashboard/members", token)
	require.Equal(t, http.StatusSeeOther, res.StatusCode)
	require.Equal(t, "/dashboard/profile", res.Header.Get("Location"))

	res, body := ts.SendRequest(t, http.MethodGet, "/dashboard/profile", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	profile := decodeJSON(t, body)["profile"].(map[string]interface{})
	assert.Equal(t, "Casper", profile["name"])
	assert.Equal(t, "https://cdn.example.com/casper.png", profile["photo_url"])

	res, body = ts.SendRequest(t, http.MethodPut, "/dashboard/profile", token, completeProfilePayload("Casper"))
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/dashboard/members", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
}

func TestGate_UpdateCreatesMissingProfileRow(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := ts.LoginAs(t, "ghost", "ghost@example.com")

	res, body := ts.SendRequest(t, http.MethodPut, "/dashboard/profile", token, completeProfilePayload("Casper"))
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var stored models.Profile
	require.NoError(t, ts.DB.First(&stored, "id = ?", "ghost").Error)
	assert.Equal(t, "ghost@example.com", stored.Email)
	assert.Equal(t, "Casper#42", stored.DiscordUsername)

	res, _ = ts.SendPage(t, http.MethodGet, "/dashboard", token)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}
