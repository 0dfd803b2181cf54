package validate

import (
	"errors"
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
)

var ErrNotDigits = errors.New("only decimal digits are allowed")

func IsLuna(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}

// WithLunaDigit appends the Luhn check digit to a string of digits.
// goluhn.Calculate reports malformed input as an empty result with a nil
// error, so the input is checked here.
func WithLunaDigit(digits string) (string, error) {
	if digits == "" || strings.Trim(digits, "0123456789") != "" {
		return "", ErrNotDigits
	}
	_, full, err := goluhn.Calculate(digits)
	if err != nil {
		return "", err
	}
	if full == "" {
		return "", ErrNotDigits
	}
	return full, nil
}
