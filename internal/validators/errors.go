package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// ValidationErrors is the ordered list of human-readable messages produced
// when a value breaks one or more field rules. The order follows the field
// order of the validated struct.
type ValidationErrors []string

func (v ValidationErrors) Error() string {
	return "validation failed: " + strings.Join(v, " ")
}

// Messages returns the validation messages as a plain string slice.
func (v ValidationErrors) Messages() []string {
	return []string(v)
}
