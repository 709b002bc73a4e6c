package utils

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestPhoneDigitsValidator(t *testing.T) {
	v := validator.New()
	RegisterCustomValidators(v)

	type form struct {
		Phone string `validate:"phone_digits"`
	}

	assert.NoError(t, v.Struct(form{Phone: "3001234567"}))
	assert.NoError(t, v.Struct(form{Phone: "1234567"}))
	assert.Error(t, v.Struct(form{Phone: "123456"}), "shorter than 7 digits")
	assert.Error(t, v.Struct(form{Phone: "300-123-4567"}), "non-digit characters")
	assert.Error(t, v.Struct(form{Phone: "+573001234567"}), "leading plus")
}

func TestMetroCityValidator(t *testing.T) {
	v := validator.New()
	RegisterCustomValidators(v)

	type form struct {
		City string `validate:"metro_city"`
	}

	assert.NoError(t, v.Struct(form{City: "medellin"}))
	assert.NoError(t, v.Struct(form{City: "la_estrella"}))
	assert.Error(t, v.Struct(form{City: "bogota"}))
	assert.Error(t, v.Struct(form{City: "Medellin"}), "choices are lowercase keys")
}

func TestValidateBirthdate(t *testing.T) {
	today := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, ValidateBirthdate(time.Date(1990, 5, 10, 0, 0, 0, 0, time.UTC), today))
	assert.NoError(t, ValidateBirthdate(today.AddDate(-18, 0, -1), today))

	assert.Error(t, ValidateBirthdate(today.AddDate(0, 0, 1), today), "future date")
	assert.Error(t, ValidateBirthdate(today.AddDate(-17, 0, 0), today), "underage")
	assert.Error(t, ValidateBirthdate(today.AddDate(-101, 0, 0), today), "unrealistic age")
}

func TestFieldErrors(t *testing.T) {
	v := validator.New()
	RegisterCustomValidators(v)

	type form struct {
		Email string `validate:"required,email"`
		Phone string `validate:"required,phone_digits"`
	}

	err := v.Struct(form{Email: "no-es-correo", Phone: "abc"})
	fields := FieldErrors(err)
	assert.Equal(t, "correo electrónico inválido", fields["Email"])
	assert.Contains(t, fields["Phone"], "dígitos")
}
