package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/misterclayt0n/overload/internal/errors"
)

func TestGetCode(t *testing.T) {
	wrapped := fmt.Errorf("loading squat: %w", errors.NotFound("no setting for %s", "Squat"))

	assert.Equal(t, errors.CodeNotFound, errors.GetCode(wrapped))
	assert.True(t, errors.IsCode(wrapped, errors.CodeNotFound))
	assert.False(t, errors.IsCode(wrapped, errors.CodeBlocked))
	assert.Equal(t, errors.CodeUnknown, errors.GetCode(stderrors.New("boom")))
}

func TestIsMatchesOnCode(t *testing.T) {
	err := fmt.Errorf("start: %w", errors.Blocked("Squat needs a 5 rep max"))

	assert.ErrorIs(t, err, errors.ErrBlocked)
	assert.NotErrorIs(t, err, errors.ErrMisconfigured)
	assert.Equal(t, "start: Squat needs a 5 rep max", err.Error())
}
