package completion

import (
	"testing"

	"networknode/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate_ScenarioA_MissingWhatsapp(t *testing.T) {
	p := &models.Profile{WhatsappNumber: "", DiscordUsername: "x"}

	st := Evaluate(p, RequiredProfileFields)

	assert.False(t, st.IsComplete)
	assert.Equal(t, []string{"whatsapp_number"}, st.MissingFields)
}

func TestEvaluate_ScenarioB_Complete(t *testing.T) {
	p := &models.Profile{WhatsappNumber: "5551234", DiscordUsername: "abc#0001"}

	st := Evaluate(p, RequiredProfileFields)

	assert.True(t, st.IsComplete)
	assert.NotNil(t, st.MissingFields)
	assert.Empty(t, st.MissingFields)
}

func TestEvaluate_WhitespaceIsEmpty(t *testing.T) {
	p := &models.Profile{WhatsappNumber: "   ", DiscordUsername: "\t\n"}

	st := Evaluate(p, RequiredProfileFields)

	assert.False(t, st.IsComplete)
	assert.Equal(t, []string{"whatsapp_number", "discord_username"}, st.MissingFields)
}

func TestEvaluate_NilProfile(t *testing.T) {
	st := Evaluate(nil, RequiredProfileFields)
	assert.Equal(t, Incomplete(RequiredProfileFields), st)
}

func TestEvaluate_FieldKinds(t *testing.T) {
	rules := ProfileFieldCatalog

	empty := &models.Profile{}
	st := Evaluate(empty, rules)
	assert.False(t, st.IsComplete)
	assert.Len(t, st.MissingFields, len(rules))

	full := &models.Profile{
		Name:                "Ada",
		Bio:                 "Engineer",
		Skills:              []string{"go"},
		DiscordUsername:     "ada",
		WhatsappCountryCode: "+1",
		WhatsappNumber:      "5551234",
		OpenToCollaborate:   models.False,
		OpenToJobs:          models.True,
		HiringTalent:        models.False,
	}
	st = Evaluate(full, rules)
	assert.True(t, st.IsComplete, "explicit false is a value, not a gap: %v", st.MissingFields)

	full.Skills = []string{}
	full.HiringTalent = models.Unset
	st = Evaluate(full, rules)
	assert.Equal(t, []string{"skills", "hiring_talent"}, st.MissingFields)
}

// Профиль заполнен тогда и только тогда, когда каждое правило выполнено
func TestEvaluate_CompleteIffAllRulesFilled(t *testing.T) {
	values := []string{"", " ", "x", " y "}
	for _, w := range values {
		for _, d := range values {
			p := &models.Profile{WhatsappNumber: w, DiscordUsername: d}
			st := Evaluate(p, RequiredProfileFields)

			want := IsTextFilled(w) && IsTextFilled(d)
			assert.Equal(t, want, st.IsComplete, "whatsapp=%q discord=%q", w, d)
			assert.Equal(t, want, len(st.MissingFields) == 0)
		}
	}
}

func TestColumnsAndRuleByName(t *testing.T) {
	assert.Equal(t, []string{"id", "whatsapp_number", "discord_username"}, Columns(RequiredProfileFields))

	r, ok := RuleByName(ProfileFieldCatalog, "skills")
	assert.True(t, ok)
	assert.Equal(t, KindList, r.Kind)

	_, ok = RuleByName(RequiredProfileFields, "bio")
	assert.False(t, ok)
}
