package castmatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fwojciec/castmatch"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := castmatch.Errorf(castmatch.ENOTFOUND, "episode %q not found", "test")

	assert.Equal(t, castmatch.ENOTFOUND, castmatch.ErrorCode(err))
	assert.Equal(t, "episode \"test\" not found", castmatch.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, castmatch.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, castmatch.EINTERNAL, castmatch.ErrorCode(assert.AnError))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, castmatch.ErrorMessage(nil))
}
