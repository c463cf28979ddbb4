package validator

import (
	"reflect"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const maxNameLength = 100

// nameValidator bounds the length of a display name. Blank names are accepted.
func nameValidator(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) <= maxNameLength
}

func oneOfValidator(allowed []string) func(fl validator.FieldLevel) bool {
	return func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return false
		}
		return slices.Contains(allowed, fl.Field().String())
	}
}
