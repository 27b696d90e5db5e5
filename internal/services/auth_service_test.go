package services

import (
	"testing"

	"networknode/internal/completion"

	"github.com/stretchr/testify/assert"
)

func TestPostLoginDestination(t *testing.T) {
	complete := completion.Status{IsComplete: true, MissingFields: []string{}}
	incomplete := completion.Status{MissingFields: []string{"whatsapp_number"}}

	tests := []struct {
		name     string
		status   completion.Status
		redirect string
		want     string
	}{
		{"complete without redirect", complete, "", PathMembers},
		{"incomplete without redirect", incomplete, "", PathProfile},
		{"complete with safe redirect", complete, "/dashboard/jobs?page=2", "/dashboard/jobs?page=2"},
		{"incomplete ignores redirect", incomplete, "/dashboard/jobs", PathProfile},
		{"external redirect ignored", complete, "https://evil.example/dashboard", PathMembers},
		{"protocol relative ignored", complete, "//evil.example/dashboard", PathMembers},
		{"outside dashboard ignored", complete, "/signout", PathMembers},
		{"dashboard prefix trick ignored", complete, "/dashboardx", PathMembers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PostLoginDestination(tt.status, tt.redirect))
		})
	}
}

func TestSafeRedirect(t *testing.T) {
	got, ok := SafeRedirect("/dashboard")
	assert.True(t, ok)
	assert.Equal(t, "/dashboard", got)

	for _, bad := range []string{"", "/dashboard/../signin", "/\\evil", "/dashboard\r\nX: y", "javascript:alert(1)"} {
		_, ok := SafeRedirect(bad)
		assert.False(t, ok, bad)
	}
}
