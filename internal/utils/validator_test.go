// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type registrationForm struct {
	Username string `validate:"required,username"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,strong_password"`
}

func TestValidateStructAcceptsValidForm(t *testing.T) {
	form := registrationForm{
		Username: "collector_42",
		Email:    "collector@example.com",
		Password: "Sunflowers1888!",
	}

	assert.NoError(t, ValidateStruct(&form))
}

func TestStrongPasswordValidation(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"valid password", "Sunflowers1888!", true},
		{"too short", "Ab1!", false},
		{"no uppercase", "sunflowers1888!", false},
		{"no lowercase", "SUNFLOWERS1888!", false},
		{"no number", "Sunflowers!", false},
		{"no special character", "Sunflowers1888", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := registrationForm{
				Username: "collector_42",
				Email:    "collector@example.com",
				Password: tt.password,
			}

			err := ValidateStruct(&form)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestUsernameValidation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		valid    bool
	}{
		{"alphanumeric", "gallery99", true},
		{"with underscore", "frida_kahlo", true},
		{"too short", "ab", false},
		{"with spaces", "frida kahlo", false},
		{"with symbols", "frida!", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := registrationForm{
				Username: tt.username,
				Email:    "artist@example.com",
				Password: "Sunflowers1888!",
			}

			err := ValidateStruct(&form)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestGetValidationErrors(t *testing.T) {
	form := registrationForm{
		Username: "x",
		Email:    "not-an-email",
		Password: "weak",
	}

	errs := GetValidationErrors(ValidateStruct(&form))
	assert.Len(t, errs, 3)

	fields := make(map[string]string)
	for _, e := range errs {
		fields[e.Field] = e.Tag
	}
	assert.Equal(t, "username", fields["username"])
	assert.Equal(t, "email", fields["email"])
	assert.Equal(t, "strong_password", fields["password"])
}

func TestGetValidationErrorsNilError(t *testing.T) {
	assert.Empty(t, GetValidationErrors(nil))
}
