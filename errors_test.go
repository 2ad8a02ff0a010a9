package cukejunit

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuntimeErrorWrapping(t *testing.T) {
	cause := errors.New("disk full")
	err := NewRuntimeError(cause)

	assert.True(t, IsRuntimeError(err))
	assert.False(t, IsTestFailureError(err))
	assert.ErrorIs(t, err, cause)

	wrapped := fmt.Errorf("while reporting: %w", err)
	assert.True(t, IsRuntimeError(wrapped))
}

func TestTestFailureError(t *testing.T) {
	err := NewTestFailureError("2 of 5 features had failures or errors")

	assert.True(t, IsTestFailureError(err))
	assert.False(t, IsRuntimeError(err))
	assert.Contains(t, err.Error(), "test failure")
}

func TestPredicatesOnNilAndPlainErrors(t *testing.T) {
	assert.False(t, IsRuntimeError(nil))
	assert.False(t, IsTestFailureError(nil))
	assert.False(t, IsRuntimeError(errors.New("plain")))
	assert.False(t, IsTestFailureError(errors.New("plain")))
}
