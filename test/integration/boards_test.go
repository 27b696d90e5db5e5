package integration_test

import (
	"net/http"
	"strings"
	"testing"

	"networknode/internal/models"
	"networknode/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobs_CreateAndList(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := newMember(t, ts, "u1", "Ada", true)

	res, body := ts.SendRequest(t, http.MethodPost, "/dashboard/jobs/new", token, map[string]interface{}{
		"title":       "Backend engineer",
		"description": "Go and Postgres",
		"tags":        "go, postgres,, ",
		"location":    "  ",
		"is_remote":   true,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	job := decodeJSON(t, body)
	assert.Equal(t, []interface{}{"go", "postgres"}, job["tags"])
	assert.Nil(t, job["location"])
	assert.Equal(t, "u1", job["user_id"])

	res, body = ts.SendRequest(t, http.MethodPost, "/dashboard/jobs/new", token, map[string]interface{}{
		"title":       "Designer",
		"description": "Figma",
		"tags":        []string{"ui", " ux "},
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/dashboard/jobs", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	resp := decodeJSON(t, body)
	assert.EqualValues(t, 2, resp["total"])
	data := resp["data"].([]interface{})
	require.Len(t, data, 2)
	assert.Equal(t, "Designer", data[0].(map[string]interface{})["title"], "newest first")
}

func TestJobs_Validation(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := newMember(t, ts, "u1", "Ada", true)

	res, body := ts.SendRequest(t, http.MethodPost, "/dashboard/jobs/new", token, map[string]interface{}{
		"title": "No description",
	})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, body))
}

func TestStartups_DescriptionWordLimit(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := newMember(t, ts, "u1", "Ada", true)

	payload := map[string]interface{}{
		"title":       "Rocket",
		"description": strings.TrimSpace(strings.Repeat("word ", 36)),
	}
	res, body := ts.SendRequest(t, http.MethodPost, "/dashboard/startups/new", token, payload)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, body))

	payload["description"] = strings.TrimSpace(strings.Repeat("word ", 35))
	res, body = ts.SendRequest(t, http.MethodPost, "/dashboard/startups/new", token, payload)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	assert.Equal(t, "not_hiring", decodeJSON(t, body)["hiring_status"])
}

func TestStartups_HiringStatusValidated(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := newMember(t, ts, "u1", "Ada", true)

	res, body := ts.SendRequest(t, http.MethodPost, "/dashboard/startups/new", token, map[string]interface{}{
		"title":         "Rocket",
		"description":   "To the moon",
		"hiring_status": "sometimes",
	})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, body))
}

func TestStartups_OnlyOwnerCanEdit(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ownerToken := newMember(t, ts, "owner", "Ada", true)
	otherToken := newMember(t, ts, "other", "Bob", true)
	startup := helpers.CreateStartup(t, ts.DB, "owner", "Rocket")

	editPath := "/dashboard/startups/" + startup.ID + "/edit"
	update := map[string]interface{}{
		"title":         "Hijacked",
		"description":   "Not yours",
		"hiring_status": "hiring",
	}

	res, body := ts.SendRequest(t, http.MethodGet, editPath, otherToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Equal(t, "STARTUP_NOT_FOUND", errorCode(t, body))
	assert.NotContains(t, body, "Rocket")

	res, body = ts.SendRequest(t, http.MethodPut, editPath, otherToken, update)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Equal(t, "STARTUP_NOT_FOUND", errorCode(t, body))

	var stored models.Startup
	require.NoError(t, ts.DB.First(&stored, "id = ?", startup.ID).Error)
	assert.Equal(t, "Rocket", stored.Title, "non-owner update must not mutate")

	res, body = ts.SendRequest(t, http.MethodGet, editPath, ownerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Equal(t, "Rocket", decodeJSON(t, body)["title"])

	update["title"] = "Rocket 2"
	res, body = ts.SendRequest(t, http.MethodPut, editPath, ownerToken, update)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	require.NoError(t, ts.DB.First(&stored, "id = ?", startup.ID).Error)
	assert.Equal(t, "Rocket 2", stored.Title)
	assert.Equal(t, models.HiringStatusHiring, stored.HiringStatus)

	res, _ = ts.SendRequest(t, http.MethodGet, "/dashboard/startups/missing/edit", ownerToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestDashboard_Overview(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := newMember(t, ts, "u1", "Ada", true)

	for i := 0; i < 7; i++ {
		res, body := ts.SendRequest(t, http.MethodPost, "/dashboard/jobs/new", token, map[string]interface{}{
			"title": "Job", "description": "Work",
		})
		require.Equal(t, http.StatusCreated, res.StatusCode, body)
	}
	helpers.CreateStartup(t, ts.DB, "u1", "Rocket")

	res, body := ts.SendRequest(t, http.MethodGet, "/dashboard", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	resp := decodeJSON(t, body)
	assert.Len(t, resp["latest_jobs"], 5)
	assert.Len(t, resp["latest_startups"], 1)
	assert.Equal(t, true, resp["completion"].(map[string]interface{})["is_complete"])
}
