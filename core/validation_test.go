package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRawCandidate(t *testing.T) {
	t.Run("valid candidate", func(t *testing.T) {
		candidate := &RawCandidate{
			Description: "Rice, white, cooked",
			Macros:      Macros{Calories: 130, Protein: 2.7, Carbs: 28.2, Fat: 0.3},
		}
		assert.NoError(t, ValidateRawCandidate(candidate))
	})

	t.Run("nil candidate", func(t *testing.T) {
		err := ValidateRawCandidate(nil)
		assert.ErrorIs(t, err, ErrInvalidCandidate)
	})

	t.Run("empty description", func(t *testing.T) {
		err := ValidateRawCandidate(&RawCandidate{Macros: Macros{Calories: 100}})
		assert.ErrorIs(t, err, ErrInvalidCandidate)
		assert.ErrorIs(t, err, ErrEmptyDescription)
	})

	t.Run("negative macro", func(t *testing.T) {
		err := ValidateRawCandidate(&RawCandidate{
			Description: "Rice",
			Macros:      Macros{Calories: -1},
		})
		assert.ErrorIs(t, err, ErrInvalidCandidate)
		assert.ErrorIs(t, err, ErrNegativeMacro)
	})

	t.Run("zero macros are not malformed", func(t *testing.T) {
		// All-zero candidates are filtered by the orchestrator, not rejected here.
		assert.NoError(t, ValidateRawCandidate(&RawCandidate{Description: "Water"}))
	})
}

func TestValidateMacros(t *testing.T) {
	assert.NoError(t, ValidateMacros(Macros{}))
	assert.NoError(t, ValidateMacros(Macros{Calories: 130, Protein: 2.7}))
	assert.ErrorIs(t, ValidateMacros(Macros{Protein: -0.1}), ErrNegativeMacro)
	assert.ErrorIs(t, ValidateMacros(Macros{Fat: -5}), ErrNegativeMacro)
}
