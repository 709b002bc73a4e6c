package utils

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/tomasgiraldo/serconn/models"
)

// RegisterCustomValidators installs the registration-form validators shared
// by the handlers' validate singleton.
func RegisterCustomValidators(v *validator.Validate) {
	_ = v.RegisterValidation("phone_digits", func(fl validator.FieldLevel) bool {
		phone := fl.Field().String()
		if len(phone) < 7 {
			return false
		}
		for _, r := range phone {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	})

	_ = v.RegisterValidation("metro_city", func(fl validator.FieldLevel) bool {
		return models.ValidCity(fl.Field().String())
	})
}

// ValidateBirthdate enforces the registration age window: no future dates,
// at least 18 years old, at most 100.
func ValidateBirthdate(birthdate, today time.Time) error {
	if birthdate.After(today) {
		return errors.New("la fecha de nacimiento no puede ser en el futuro")
	}

	age := today.Sub(birthdate).Hours() / 24 / 365.25
	if age < 18 {
		return errors.New("debes ser mayor de 18 años para registrarte")
	}
	if age > 100 {
		return errors.New("por favor, ingresa una fecha de nacimiento válida")
	}
	return nil
}

// FieldErrors flattens validator errors into a field -> message map for
// form-level display.
func FieldErrors(err error) map[string]string {
	out := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["detail"] = err.Error()
		return out
	}

	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			out[fe.Field()] = "este campo es obligatorio"
		case "email":
			out[fe.Field()] = "correo electrónico inválido"
		case "min":
			out[fe.Field()] = "demasiado corto"
		case "max":
			out[fe.Field()] = "demasiado largo"
		case "oneof":
			out[fe.Field()] = "valor no permitido"
		case "phone_digits":
			out[fe.Field()] = "el teléfono debe contener solo dígitos y tener al menos 7"
		case "metro_city":
			out[fe.Field()] = "ciudad fuera del área metropolitana"
		case "datetime":
			out[fe.Field()] = "formato de fecha inválido"
		case "gte":
			out[fe.Field()] = "debe ser un valor no negativo"
		default:
			out[fe.Field()] = "valor inválido"
		}
	}
	return out
}
