package validator

import "github.com/go-playground/validator/v10"

func registerFn(tag string, fn func(fl validator.FieldLevel) bool) func(v *validator.Validate) {
	return func(v *validator.Validate) {
		_ = v.RegisterValidation(tag, fn)
	}
}

// NewReportValidationRules registers the tags used by report requests.
// formats are the report formats accepted by the export endpoint.
func NewReportValidationRules(formats []string) []ValidationRule {
	return []ValidationRule{
		{
			Rule: registerFn("room_name", nameValidator),
		},
		{
			Rule: registerFn("appliance_name", nameValidator),
		},
		{
			Rule: registerFn("report_format", oneOfValidator(formats)),
		},
	}
}
