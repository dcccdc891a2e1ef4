package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"

	"ehotel/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

var (
	// Social insurance numbers are submitted pre-formatted as 123-456-789.
	sinPattern = regexp.MustCompile(`^\d{3}-\d{3}-\d{3}$`)

	// Canadian postal code, optional space between the two triplets.
	postalCodePattern = regexp.MustCompile(`^[ABCEGHJKLMNPRSTVXY]\d[A-Z] *\d[A-Z]\d$`)
)

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("sin", func(fl val.FieldLevel) bool {
		return sinPattern.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("postal_code", func(fl val.FieldLevel) bool {
		return postalCodePattern.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
