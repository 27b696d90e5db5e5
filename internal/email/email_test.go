package email

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateManager_BuiltinMeetingRequest(t *testing.T) {
	tm, err := NewTemplateManager()
	require.NoError(t, err)
	assert.Contains(t, tm.TemplateNames(), TemplateMeetingRequest)

	html, err := tm.Render(TemplateMeetingRequest, TemplateData{
		"RecipientName": "Bob",
		"RequesterName": "Ada <script>",
		"MeetingType":   "in_person",
		"Location":      "Cafe",
		"Message":       "",
		"DashboardURL":  "http://site/dashboard/meetings",
	})
	require.NoError(t, err)
	assert.Contains(t, html, "Hi Bob")
	assert.Contains(t, html, "in person")
	assert.Contains(t, html, "Location: Cafe")
	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "blockquote")
}

func TestTemplateManager_LoadTemplatesOverridesBuiltin(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "meeting_request.html"), []byte("custom {{.RequesterName}}"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o600))

	tm, err := NewTemplateManager()
	require.NoError(t, err)
	require.NoError(t, tm.LoadTemplates(dir))

	out, err := tm.Render(TemplateMeetingRequest, TemplateData{"RequesterName": "Ada"})
	require.NoError(t, err)
	assert.Equal(t, "custom Ada", out)

	_, err = tm.Render("missing", nil)
	assert.Error(t, err)
}

func TestSMTPProvider_Validate(t *testing.T) {
	p := NewSMTPProvider(&SMTPConfig{Host: "", Port: 587}, nil)
	assert.Error(t, p.Validate())

	p = NewSMTPProvider(&SMTPConfig{Host: "smtp.test", Port: 70000, FromEmail: "a@b.c"}, nil)
	assert.Error(t, p.Validate())

	p = NewSMTPProvider(&SMTPConfig{Host: "smtp.test", Port: 587, FromEmail: "a@b.c"}, nil)
	assert.NoError(t, p.Validate())
	assert.Error(t, p.SendTemplate([]string{"x@y.z"}, "s", TemplateMeetingRequest, nil), "no renderer")
	assert.Error(t, p.Send(&Email{Subject: "no recipients"}))
}

func TestSMTPProvider_BuildMessageUsesConfiguredSender(t *testing.T) {
	p := NewSMTPProvider(&SMTPConfig{Host: "smtp.test", Port: 587, FromEmail: "noreply@nn.test", FromName: "NetworkNode"}, nil)

	m := p.buildMessage(&Email{To: []string{"bob@nn.test"}, Subject: "Hi", HTMLBody: "<p>x</p>"})

	assert.Equal(t, []string{`"NetworkNode" <noreply@nn.test>`}, m.GetHeader("From"))
	assert.Equal(t, []string{"bob@nn.test"}, m.GetHeader("To"))
}
