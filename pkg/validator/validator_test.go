package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email   string `validate:"required,email"`
	Channel string `validate:"required,oneof=sms email"`
	Code    string `validate:"required,min=4,max=10"`
}

func TestValidatePasses(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&sampleRequest{Email: "a@b.c", Channel: "sms", Code: "482913"})
	assert.NoError(t, err)
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&sampleRequest{Email: "nope", Channel: "carrier-pigeon", Code: "12"})
	require.Error(t, err)

	formatted := cv.FormatValidationErrors(err)
	assert.Equal(t, "Email must be a valid email address", formatted["Email"])
	assert.Equal(t, "Channel must be one of: sms email", formatted["Channel"])
	assert.Equal(t, "Code must be at least 4 characters", formatted["Code"])
}
