package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusreg/studentregistration/internal/pkg/validation"
)

func TestStringValidation(t *testing.T) {
	t.Run("required empty fails", func(t *testing.T) {
		assert.False(t, validation.NewStringValidation("").Validate())
	})

	t.Run("optional empty passes", func(t *testing.T) {
		assert.True(t, validation.NewStringValidation("").WithRequired(false).Validate())
	})

	t.Run("max length", func(t *testing.T) {
		ok := validation.NewStringValidation(strings.Repeat("a", 50)).
			WithMaxLength(validation.NameMaxLength).Validate()
		assert.True(t, ok)

		ok = validation.NewStringValidation(strings.Repeat("a", 51)).
			WithMaxLength(validation.NameMaxLength).Validate()
		assert.False(t, ok)
	})

	t.Run("optional value above limit still fails", func(t *testing.T) {
		ok := validation.NewStringValidation(strings.Repeat("9", 16)).
			WithRequired(false).WithMaxLength(validation.PhoneMaxLength).Validate()
		assert.False(t, ok)
	})
}

func TestEmail(t *testing.T) {
	valid := []string{
		"a@b.co",
		"john.doe@example.com",
		"user+tag@sub.domain.org",
	}
	for _, email := range valid {
		assert.True(t, validation.Email(email), email)
	}

	invalid := []string{
		"",
		"plain",
		"missing@tld",
		"@example.com",
		"user@.com",
		"spaces in@example.com",
	}
	for _, email := range invalid {
		assert.False(t, validation.Email(email), email)
	}
}

func TestIntRange(t *testing.T) {
	assert.True(t, validation.IntRange(1, validation.CreditsMin, validation.CreditsMax))
	assert.True(t, validation.IntRange(6, validation.CreditsMin, validation.CreditsMax))
	assert.False(t, validation.IntRange(0, validation.CreditsMin, validation.CreditsMax))
	assert.False(t, validation.IntRange(7, validation.CreditsMin, validation.CreditsMax))
}

func TestDecimalRange(t *testing.T) {
	grade := func(f float64) *float64 { return &f }

	t.Run("nil passes", func(t *testing.T) {
		assert.True(t, validation.DecimalRange(nil, validation.GradeMin, validation.GradeMaxCreate))
	})

	t.Run("create ceiling", func(t *testing.T) {
		assert.True(t, validation.DecimalRange(grade(100), validation.GradeMin, validation.GradeMaxCreate))
		assert.False(t, validation.DecimalRange(grade(100.5), validation.GradeMin, validation.GradeMaxCreate))
		assert.False(t, validation.DecimalRange(grade(-1), validation.GradeMin, validation.GradeMaxCreate))
	})

	t.Run("update ceiling", func(t *testing.T) {
		assert.True(t, validation.DecimalRange(grade(110), validation.GradeMin, validation.GradeMaxUpdate))
		assert.False(t, validation.DecimalRange(grade(110.1), validation.GradeMin, validation.GradeMaxUpdate))
	})
}
