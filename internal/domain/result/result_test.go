package result

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_Ok(t *testing.T) {
	res := Ok(42)

	assert.True(t, res.IsSuccess())
	assert.False(t, res.IsFailure())
	assert.Equal(t, 42, res.Value())
	assert.NoError(t, res.Err())
}

func TestResult_Fail(t *testing.T) {
	cause := errors.New("something went wrong")
	res := Fail[int](cause)

	assert.False(t, res.IsSuccess())
	assert.True(t, res.IsFailure())
	require.Error(t, res.Err())
	assert.True(t, errors.Is(res.Err(), cause))
}

func TestResult_ValueOnFailurePanics(t *testing.T) {
	res := Fail[string](errors.New("boom"))

	assert.Panics(t, func() {
		_ = res.Value()
	})
}

func TestResult_ZeroValueSuccess(t *testing.T) {
	// Ok with a zero value is still a success; only failures panic on Value.
	res := Ok("")

	assert.True(t, res.IsSuccess())
	assert.NotPanics(t, func() {
		_ = res.Value()
	})
}
