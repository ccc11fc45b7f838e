package flowsheet_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/flowsheet"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := flowsheet.Errorf(flowsheet.EFETCH, "fetch %q failed", "core.js")

	assert.Equal(t, flowsheet.EFETCH, flowsheet.ErrorCode(err))
	assert.Equal(t, "fetch \"core.js\" failed", flowsheet.ErrorMessage(err))
}

func TestErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("version v1: %w", flowsheet.Errorf(flowsheet.EINVALID, "bad version"))

	assert.Equal(t, flowsheet.EINVALID, flowsheet.ErrorCode(err))
	assert.Equal(t, "bad version", flowsheet.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, flowsheet.EINTERNAL, flowsheet.ErrorCode(err))
	assert.Equal(t, "Internal error.", flowsheet.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, flowsheet.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, flowsheet.ErrorMessage(nil))
}
