package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ValidationRule struct {
	Rule func(v *validator.Validate)
}

// Validator is a wrapper around the actual validator
// It sets up the validator and extract the rule error message from the underlying error
type Validator struct {
	validator *validator.Validate
	rules     []ValidationRule
}

func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return &Validator{validator: v}
}

func (v *Validator) Register(rules ...ValidationRule) {
	for _, validationRule := range rules {
		validationRule.Rule(v.validator)
	}
	v.rules = append(v.rules, rules...)
}

// Struct returns nil or an error whose message lists every failed field.
func (v *Validator) Struct(s any) error {
	err := v.validator.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fmt.Sprintf("%s: invalid value %v (%s)", trimNamespace(fe.Namespace()), fe.Value(), fe.Tag()))
	}
	return errors.New(strings.Join(messages, "; "))
}

// trimNamespace drops the root struct name from a field namespace.
func trimNamespace(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
