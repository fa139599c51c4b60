package domain

import (
	"errors"
	"fmt"
)

// ErrMissingField is matched by every MissingFieldError.
var ErrMissingField = errors.New("required form field is missing")

// MissingFieldError は POST ボディに必須フィールドが含まれていなかったことを表す。
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required form field %q is missing", e.Field)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}
