package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextState(t *testing.T) {
	complete := &Status{IsComplete: true, MissingFields: []string{}}
	incomplete := &Status{IsComplete: false, MissingFields: []string{"whatsapp_number"}}

	cases := []struct {
		name   string
		path   string
		userID string
		status *Status
		want   GateState
	}{
		{"anonymous is neutral", "/dashboard/jobs", "", incomplete, Anonymous},
		{"not yet checked", "/dashboard/jobs", "u1", nil, Checking},
		{"complete passes", "/dashboard/jobs", "u1", complete, Complete},
		{"incomplete elsewhere is blocked", "/dashboard/members", "u1", incomplete, IncompleteBlocked},
		{"dashboard root is blocked", "/dashboard", "u1", incomplete, IncompleteBlocked},
		{"profile page never blocks", "/dashboard/profile", "u1", incomplete, IncompleteOnProfilePage},
		{"profile subpath never blocks", "/dashboard/profile/photo", "u1", incomplete, IncompleteOnProfilePage},
		{"lookalike prefix is blocked", "/dashboard/profiles", "u1", incomplete, IncompleteBlocked},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NextState(tc.path, tc.userID, tc.status)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGateState_Blocks(t *testing.T) {
	assert.True(t, IncompleteBlocked.Blocks())
	for _, s := range []GateState{Checking, Complete, IncompleteOnProfilePage, Anonymous} {
		assert.False(t, s.Blocks(), s.String())
	}
}
