package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	structValidator *Validator
	initOnce        sync.Once
)

var categoryPattern = regexp.MustCompile(`^[a-z_]+(\.[a-z_]+)*$`)

// EffectTypes are the enchantment effect tags accepted by the effect_type rule.
var EffectTypes = []string{"damage", "armor", "resistance", "speed", "stats", "special"}

// InitValidator builds the shared validator and its custom rules
func InitValidator() {
	initOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// Report fields by their JSON names so messages match the content files
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("category", validateCategory)
		_ = v.RegisterValidation("effect_type", validateEffectType)

		structValidator = &Validator{validate: v}
	})
}

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	InitValidator()
	return structValidator
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s any) error {
	if err := v.validate.Struct(s); err != nil {
		return describe(err)
	}
	return nil
}

// Struct validates s with the shared validator.
func Struct(s any) error {
	return GetValidator().ValidateStruct(s)
}

// FieldError is one failed rule, keyed by the JSON path of the field.
type FieldError struct {
	Field   string
	Message string
}

// StructError lists every failed rule of one validation pass.
type StructError struct {
	Fields []FieldError
}

func (e *StructError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "invalid fields: " + strings.Join(parts, "; ")
}

func describe(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	out := &StructError{}
	for _, e := range validationErrors {
		out.Fields = append(out.Fields, FieldError{Field: fieldPath(e), Message: message(e)})
	}
	return out
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "category":
		return "Must be a dotted lowercase category path"
	case "effect_type":
		return "Unknown effect type"
	case "max":
		return fmt.Sprintf("Must be at most %s", e.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s", e.Param())
	case "gte":
		return fmt.Sprintf("Must be at least %s", e.Param())
	case "lte":
		return fmt.Sprintf("Must be at most %s", e.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s", e.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", e.Param())
	default:
		return "Invalid value"
	}
}

func validateCategory(fl validator.FieldLevel) bool {
	return categoryPattern.MatchString(fl.Field().String())
}

func validateEffectType(fl validator.FieldLevel) bool {
	return slices.Contains(EffectTypes, fl.Field().String())
}
