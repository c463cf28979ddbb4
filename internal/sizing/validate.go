package sizing

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

var inputValidator = newInputValidator()

func newInputValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("room_type", func(fl validator.FieldLevel) bool {
		return RoomType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("voltage", func(fl validator.FieldLevel) bool {
		return Voltage(fl.Field().Int()).Valid()
	})
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	return v
}

// ValidateInput checks rooms and appliances before they reach the calculators.
// Negative, oversized or non-finite measures, unknown room types and voltages other than 127 or 220
// are reported together in a single *ErrInvalidInput.
func ValidateInput(rooms []Room, appliances []Appliance) error {
	var problems []string
	for i, room := range rooms {
		if err := inputValidator.Struct(room); err != nil {
			problems = append(problems, describe(fmt.Sprintf("rooms[%d]", i), err)...)
		}
	}
	for i, appliance := range appliances {
		if err := inputValidator.Struct(appliance); err != nil {
			problems = append(problems, describe(fmt.Sprintf("appliances[%d]", i), err)...)
		}
	}
	if len(problems) > 0 {
		return NewErrInvalidInput(problems)
	}
	return nil
}

// ValidateSettings checks the main circuit voltage and the appliance minimum conductor
// an Engine is configured with.
func ValidateSettings(mainVoltage Voltage, applianceMinimum Cable) error {
	if !mainVoltage.Valid() {
		return fmt.Errorf("main voltage must be %d or %d, got %d", Voltage127, Voltage220, mainVoltage)
	}
	if applianceMinimum <= 0 {
		return fmt.Errorf("appliance minimum cable must be positive, got %v", float64(applianceMinimum))
	}
	return nil
}

func describe(prefix string, err error) []string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{fmt.Sprintf("%s: %v", prefix, err)}
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, fmt.Sprintf("%s.%s: %s", prefix, fe.Field(), reason(fe)))
	}
	return problems
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return fmt.Sprintf("must be >= %s, got %v", fe.Param(), fe.Value())
	case "lte":
		return fmt.Sprintf("must be <= %s, got %v", fe.Param(), fe.Value())
	case "finite":
		return fmt.Sprintf("must be a finite number, got %v", fe.Value())
	case "room_type":
		return fmt.Sprintf("unknown room type %q", fmt.Sprint(fe.Value()))
	case "voltage":
		return fmt.Sprintf("must be %d or %d, got %v", Voltage127, Voltage220, fe.Value())
	}
	return fmt.Sprintf("failed %q check", fe.Tag())
}
