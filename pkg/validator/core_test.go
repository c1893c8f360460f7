package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/landkit/pkg/validator"
)

func failing(field, msg string) validator.Rule {
	return validator.Rule{
		Check: func() bool { return false },
		Error: validator.ValidationError{Field: field, Message: msg},
	}
}

func passing(field string) validator.Rule {
	return validator.Rule{
		Check: func() bool { return true },
		Error: validator.ValidationError{Field: field, Message: "unused"},
	}
}

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("joins field messages", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "name", Message: "too short"})
		assert.Equal(t, "validation failed: email: is required; name: too short", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	t.Parallel()

	errs := validator.ValidationErrors{
		{Field: "name", Message: "first"},
		{Field: "email", Message: "bad"},
		{Field: "name", Message: "second"},
	}

	assert.True(t, errs.Has("name"))
	assert.False(t, errs.Has("company"))
	assert.Equal(t, []string{"first", "second"}, errs.Get("name"))
	assert.Equal(t, []string{"name", "email"}, errs.Fields())
	assert.Equal(t, map[string]string{"name": "first", "email": "bad"}, errs.Map())

	msg, ok := errs.First("name")
	assert.True(t, ok)
	assert.Equal(t, "first", msg)

	_, ok = errs.First("company")
	assert.False(t, ok)

	assert.False(t, errs.IsEmpty())
	assert.True(t, validator.ValidationErrors{}.IsEmpty())
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		assert.NoError(t, validator.Apply(passing("a"), passing("b")))
	})

	t.Run("collects every failure", func(t *testing.T) {
		err := validator.Apply(failing("a", "one"), failing("a", "two"), passing("b"))
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, []string{"one", "two"}, verrs.Get("a"))
	})
}

func TestApplyFirst(t *testing.T) {
	t.Parallel()

	evaluated := false
	late := validator.Rule{
		Check: func() bool { evaluated = true; return false },
		Error: validator.ValidationError{Field: "a", Message: "late"},
	}

	err := validator.ApplyFirst(failing("a", "early"), late, failing("b", "other"))
	require.Error(t, err)

	verrs := validator.ExtractValidationErrors(err)
	assert.Equal(t, validator.ValidationErrors{
		{Field: "a", Message: "early"},
		{Field: "b", Message: "other"},
	}, verrs)
	assert.False(t, evaluated, "rule for an already failed field must not run")

	assert.NoError(t, validator.ApplyFirst(passing("a")))
}

func TestValidationErrors_Is(t *testing.T) {
	t.Parallel()

	err := validator.Apply(failing("a", "bad"))
	wrapped := fmt.Errorf("contact: %w", err)

	assert.ErrorIs(t, wrapped, validator.ErrValidationFailed)
	assert.True(t, validator.IsValidationError(wrapped))
	assert.NotNil(t, validator.ExtractValidationErrors(wrapped))

	assert.False(t, validator.IsValidationError(nil))
	assert.False(t, validator.IsValidationError(errors.New("other")))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("other")))
	assert.Nil(t, validator.ExtractValidationErrors(nil))
}

func TestRule_WithMessage(t *testing.T) {
	t.Parallel()

	base := validator.Required("name", "")
	custom := base.WithMessage("Name is required")

	assert.Equal(t, "field is required", base.Error.Message)
	assert.Equal(t, "Name is required", custom.Error.Message)
	assert.Equal(t, "required", custom.Error.Code)
}
