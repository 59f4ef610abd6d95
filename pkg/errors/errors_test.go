package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCode(t *testing.T) {
	base := errors.New("connection refused")

	storage := Storage(base, "insert contact message failed")
	assert.True(t, IsCode(storage, CodeStorage))
	assert.False(t, IsCode(storage, CodeMail))
	assert.ErrorIs(t, storage, base)

	wrapped := fmt.Errorf("submit: %w", storage)
	assert.True(t, IsCode(wrapped, CodeStorage))

	joined := errors.Join(storage, Mail(errors.New("535 auth failed"), "send failed"))
	assert.True(t, IsCode(joined, CodeStorage))
	assert.True(t, IsCode(joined, CodeMail))
	assert.False(t, IsCode(joined, CodeInvalid))

	assert.False(t, IsCode(nil, CodeStorage))
	assert.False(t, IsCode(base, CodeStorage))
}

func TestInvalidCarriesField(t *testing.T) {
	err := Invalid("email", "email is required")
	assert.Equal(t, CodeInvalid, CodeOf(err))
	assert.Equal(t, "email", err.Meta["field"])
	assert.Equal(t, "invalid: email is required", err.Error())
}

func TestCodeOfUnknown(t *testing.T) {
	assert.Equal(t, CodeUnknown, CodeOf(errors.New("plain")))
}
