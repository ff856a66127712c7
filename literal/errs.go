package literal

import "errors"

var (
	// ErrNumericLiteral marks a string that matched the numeric literal
	// grammar but parsed into no candidate representation. Callers log it
	// and keep the string fallback; it is never fatal.
	ErrNumericLiteral = errors.New("invalid numeric literal")
)
