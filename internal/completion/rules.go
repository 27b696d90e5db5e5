// Package completion решает, заполнен ли профиль участника, и управляет
// блокировкой дашборда до заполнения.
package completion

import (
	"strings"

	"networknode/internal/models"
)

// Kind - правило пустоты поля
type Kind int

const (
	// KindText - строка непуста после trim
	KindText Kind = iota
	// KindList - список непуст
	KindList
	// KindFlag - TriState задан (не Unset)
	KindFlag
)

// FieldRule - обязательное поле профиля. Name совпадает с колонкой в БД
// и с json-именем поля в запросе на обновление профиля.
type FieldRule struct {
	Name string
	Kind Kind

	text func(*models.Profile) string
	list func(*models.Profile) []string
	flag func(*models.Profile) models.TriState
}

func TextField(name string, get func(*models.Profile) string) FieldRule {
	return FieldRule{Name: name, Kind: KindText, text: get}
}

func ListField(name string, get func(*models.Profile) []string) FieldRule {
	return FieldRule{Name: name, Kind: KindList, list: get}
}

func FlagField(name string, get func(*models.Profile) models.TriState) FieldRule {
	return FieldRule{Name: name, Kind: KindFlag, flag: get}
}

// Filled проверяет поле профиля по его правилу
func (r FieldRule) Filled(p *models.Profile) bool {
	if p == nil {
		return false
	}
	switch r.Kind {
	case KindText:
		return IsTextFilled(r.text(p))
	case KindList:
		return IsListFilled(r.list(p))
	case KindFlag:
		return r.flag(p).IsSet()
	}
	return false
}

func IsTextFilled(s string) bool {
	return strings.TrimSpace(s) != ""
}

func IsListFilled(l []string) bool {
	return len(l) > 0
}

// RequiredProfileFields - действующий набор обязательных полей.
// Используется и проверкой профиля, и валидатором запроса на обновление.
var RequiredProfileFields = []FieldRule{
	TextField("whatsapp_number", func(p *models.Profile) string { return p.WhatsappNumber }),
	TextField("discord_username", func(p *models.Profile) string { return p.DiscordUsername }),
}

// ProfileFieldCatalog - все поля профиля, которые могут стать обязательными
var ProfileFieldCatalog = []FieldRule{
	TextField("name", func(p *models.Profile) string { return p.Name }),
	TextField("bio", func(p *models.Profile) string { return p.Bio }),
	ListField("skills", func(p *models.Profile) []string { return p.Skills }),
	TextField("discord_username", func(p *models.Profile) string { return p.DiscordUsername }),
	TextField("whatsapp_country_code", func(p *models.Profile) string { return p.WhatsappCountryCode }),
	TextField("whatsapp_number", func(p *models.Profile) string { return p.WhatsappNumber }),
	FlagField("open_to_collaborate", func(p *models.Profile) models.TriState { return p.OpenToCollaborate }),
	FlagField("open_to_jobs", func(p *models.Profile) models.TriState { return p.OpenToJobs }),
	FlagField("hiring_talent", func(p *models.Profile) models.TriState { return p.HiringTalent }),
}

// RuleByName ищет правило в наборе
func RuleByName(rules []FieldRule, name string) (FieldRule, bool) {
	for _, r := range rules {
		if r.Name == name {
			return r, true
		}
	}
	return FieldRule{}, false
}

// Columns - колонки, которые нужно прочитать для проверки
func Columns(rules []FieldRule) []string {
	cols := make([]string, 0, len(rules)+1)
	cols = append(cols, "id")
	for _, r := range rules {
		cols = append(cols, r.Name)
	}
	return cols
}

// Status - результат проверки профиля
type Status struct {
	IsComplete    bool     `json:"is_complete"`
	MissingFields []string `json:"missing_fields"`
}

// Evaluate - чистая функция проверки. MissingFields в порядке правил,
// никогда не nil.
func Evaluate(p *models.Profile, rules []FieldRule) Status {
	missing := make([]string, 0, len(rules))
	for _, r := range rules {
		if !r.Filled(p) {
			missing = append(missing, r.Name)
		}
	}
	return Status{IsComplete: len(missing) == 0, MissingFields: missing}
}

// Incomplete - статус "ничего не заполнено" для набора правил
func Incomplete(rules []FieldRule) Status {
	missing := make([]string, 0, len(rules))
	for _, r := range rules {
		missing = append(missing, r.Name)
	}
	return Status{IsComplete: false, MissingFields: missing}
}
