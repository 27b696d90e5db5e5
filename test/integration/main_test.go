package integration_test

import (
	"testing"

	"networknode/internal/models"
	"networknode/test/helpers"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

// newMember - пользователь у провайдера плюс строка профиля
func newMember(t *testing.T, ts *helpers.TestServer, id, name string, complete bool) string {
	t.Helper()
	token := ts.LoginAs(t, id, id+"@example.com")
	if complete {
		helpers.CreateCompleteProfile(t, ts.DB, id, name)
	} else {
		helpers.CreateProfile(t, ts.DB, models.Profile{ID: id, Email: id + "@example.com", Name: name})
	}
	return token
}

func decodeJSON(t *testing.T, body string) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &out), "body: %s", body)
	return out
}

// errorCode достает error.code из ответа об ошибке
func errorCode(t *testing.T, body string) string {
	t.Helper()
	resp := decodeJSON(t, body)
	errObj, ok := resp["error"].(map[string]interface{})
	require.True(t, ok, "no error object in %s", body)
	code, _ := errObj["code"].(string)
	return code
}
