package validator

import (
	"log"
	"reflect"
	"strconv"
	"strings"

	"networknode/internal/completion"
	"networknode/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Без правила приложение не должно запускаться
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'hiring-status': статус найма стартапа
	mustRegister("hiring-status", validateHiringStatus)

	// 'meeting-type': формат встречи
	mustRegister("meeting-type", validateMeetingType)

	// 'max-words=N': не больше N слов
	mustRegister("max-words", validateMaxWords)

	// 'profile-required': поле обязательно, если входит в RequiredProfileFields
	mustRegister("profile-required", validateProfileRequired)
}

func validateHiringStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' обрабатывает пустые
	}
	return models.HiringStatus(value).Valid()
}

func validateMeetingType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.MeetingType(value).Valid()
}

func validateMaxWords(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return WordCount(fl.Field().String()) <= limit
}

func validateProfileRequired(fl validator.FieldLevel) bool {
	if _, required := completion.RuleByName(completion.RequiredProfileFields, fl.FieldName()); !required {
		return true
	}

	field := fl.Field()
	switch field.Kind() {
	case reflect.String:
		return completion.IsTextFilled(field.String())
	case reflect.Slice:
		return field.Len() > 0
	case reflect.Int8:
		return models.TriState(field.Int()).IsSet()
	default:
		return !field.IsZero()
	}
}

// WordCount считает слова так же, как форма описания стартапа:
// trim и разбиение по пробельным символам.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
