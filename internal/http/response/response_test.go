package response

import (
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
)

func TestOKWithData(t *testing.T) {
	data := map[string]string{"key": "value"}
	resp := OKWithData(data)

	assert.Equal(t, StatusOK, resp.Status)
	assert.Empty(t, resp.Error)
	assert.Equal(t, data, resp.Data)
}

func TestError(t *testing.T) {
	msg := "something went wrong"
	resp := Error(msg)

	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, msg, resp.Error)
}

func TestValidationError(t *testing.T) {
	type TestStruct struct {
		Email       string `validate:"required,email"`
		ContentType string `validate:"required,oneof=movie tv"`
		Rating      int    `validate:"min=1,max=5"`
	}

	v := validator.New()
	ts := TestStruct{
		Email:       "not-an-email",
		ContentType: "book",
		Rating:      6,
	}

	err := v.Struct(ts)
	assert.Error(t, err)

	validationErrors := err.(validator.ValidationErrors)
	resp := ValidationError(validationErrors)

	assert.Equal(t, StatusError, resp.Status)
	assert.Contains(t, resp.Error, "field Email must be a valid email address")
	assert.Contains(t, resp.Error, "field ContentType must be one of the allowed values")
	assert.Contains(t, resp.Error, "field Rating is above the allowed maximum")
}

func TestValidationErrorRequired(t *testing.T) {
	type TestStruct struct {
		Username string `validate:"required"`
	}

	v := validator.New()
	ts := TestStruct{}

	err := v.Struct(ts)
	assert.Error(t, err)

	validationErrors := err.(validator.ValidationErrors)
	resp := ValidationError(validationErrors)

	assert.Equal(t, StatusError, resp.Status)
	assert.Contains(t, resp.Error, "field Username is a required field")
}

func TestValidationErrorMin(t *testing.T) {
	type TestStruct struct {
		Rating int `validate:"min=1"`
	}

	v := validator.New()
	ts := TestStruct{Rating: 0}

	err := v.Struct(ts)
	assert.Error(t, err)

	validationErrors := err.(validator.ValidationErrors)
	resp := ValidationError(validationErrors)

	assert.Contains(t, resp.Error, "field Rating is below the allowed minimum")
}
