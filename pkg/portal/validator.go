package portal

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	mu       sync.Mutex
	instance *validator.Validate
	errors   map[string]any
}

var defaultValidator *Validator
var defaultValidatorOnce sync.Once

func GetDefaultValidator() *Validator {
	defaultValidatorOnce.Do(func() {
		defaultValidator = MakeValidatorFrom(
			validator.New(validator.WithRequiredStructEnabled()),
		)
	})

	return defaultValidator
}

func MakeValidatorFrom(abstract *validator.Validate) *Validator {
	return &Validator{
		instance: abstract,
		errors:   make(map[string]any),
	}
}

func (v *Validator) Passes(target any) (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.errors = make(map[string]any)

	if err := v.instance.Struct(target); err != nil {
		v.parseError(err)

		return false, fmt.Errorf("validation failed: %w", err)
	}

	return true, nil
}

func (v *Validator) Rejects(target any) (bool, error) {
	passes, err := v.Passes(target)

	return !passes, err
}

func (v *Validator) GetErrors() map[string]any {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make(map[string]any, len(v.errors))
	for key, value := range v.errors {
		out[key] = value
	}

	return out
}

func (v *Validator) GetErrorsAsJson() string {
	value, err := json.Marshal(v.GetErrors())

	if err != nil {
		return ""
	}

	return string(value)
}

func (v *Validator) parseError(err error) {
	var validationErrors validator.ValidationErrors

	if !errors.As(err, &validationErrors) {
		v.errors["error"] = err.Error()

		return
	}

	for _, current := range validationErrors {
		field := NewStringable(current.Field()).ToSnakeCase()

		v.errors[field] = strings.TrimSpace(fmt.Sprintf(
			"%s is invalid: failed on [%s] %s",
			current.Field(),
			current.Tag(),
			current.Param(),
		))
	}
}
