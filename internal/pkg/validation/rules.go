package validation

import (
	"regexp"
)

// Validation rule patterns and field limits
var (
	// Email validation pattern - configurable
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// Field length ceilings, matching the column definitions
	NameMaxLength  = 50
	EmailMaxLength = 100
	TitleMaxLength = 100
	PhoneMaxLength = 15
	MajorMaxLength = 100

	// Credit range, enforced on course creation
	CreditsMin = 1
	CreditsMax = 6

	// Grade ranges. Creation requests use the tighter ceiling, grade
	// updates accept the extended one (extra credit).
	GradeMin       = 0.0
	GradeMaxCreate = 100.0
	GradeMaxUpdate = 110.0
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// StringValidation validates a string field
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	// Check if required
	if v.Required && v.Value == "" {
		return false
	}

	// Skip other validations for empty optional values
	if !v.Required && v.Value == "" {
		return true
	}

	// Check min length
	if v.MinLen > 0 && len(v.Value) < v.MinLen {
		return false
	}

	// Check max length
	if v.MaxLen > 0 && len(v.Value) > v.MaxLen {
		return false
	}

	// Check pattern
	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}

// IntRange reports whether value lies within [min, max].
func IntRange(value, min, max int) bool {
	return value >= min && value <= max
}

// DecimalRange reports whether value lies within [min, max]. A nil value
// passes, optional decimals are only checked when present.
func DecimalRange(value *float64, min, max float64) bool {
	if value == nil {
		return true
	}
	return *value >= min && *value <= max
}

// Email reports whether the value is a syntactically valid email address.
func Email(value string) bool {
	return CompiledPatterns.Email.MatchString(value)
}
