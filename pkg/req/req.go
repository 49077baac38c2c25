package req

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Decode читает JSON тело запроса в T и проверяет теги validate
func Decode[T any](body io.Reader) (T, error) {
	var payload T
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		return payload, fmt.Errorf("decode body: %w", err)
	}

	if err := Validate(payload); err != nil {
		return payload, err
	}
	return payload, nil
}

// Validate проверяет структуру по тегам validate
func Validate(payload any) error {
	if err := validate.Struct(payload); err != nil {
		return fmt.Errorf("validate body: %w", err)
	}
	return nil
}
