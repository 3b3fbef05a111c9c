// Package validation turns raw console input into match record values.
// Every function is pure: the caller owns the prompt and the retry loop.
package validation

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"cricstats/internal/models"
)

var ErrInvalidInput = errors.New("invalid input")

// InvalidError carries the message shown to the user before re-prompting.
type InvalidError struct {
	Reason string
}

func (e *InvalidError) Error() string { return e.Reason }

func (e *InvalidError) Is(target error) bool { return target == ErrInvalidInput }

func invalid(format string, v ...interface{}) error {
	return &InvalidError{Reason: fmt.Sprintf(format, v...)}
}

// Reason extracts the user-facing message from a validation error.
func Reason(err error) string {
	var ie *InvalidError
	if errors.As(err, &ie) {
		return ie.Reason
	}
	return err.Error()
}

func BoundedInt(input string, min, max int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < min || n > max {
		return 0, invalid("Invalid! Please enter a number between %d-%d", min, max)
	}
	return n, nil
}

func BoundedFloat(input string, min, max float64) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < min || v > max {
		return 0, invalid("Must be between %v and %v", min, max)
	}
	return v, nil
}

// Name normalizes whitespace and enforces a non-empty value of at most
// maxLen characters.
func Name(input string, maxLen int) (string, error) {
	name := NormalizeName(input)
	if name == "" {
		return "", invalid("Name cannot be empty!")
	}
	if utf8.RuneCountInString(name) > maxLen {
		return "", invalid("Name too long (max %d chars)", maxLen)
	}
	return name, nil
}

func ResultCode(input string) (models.Result, error) {
	r, ok := models.ResultFromCode(strings.ToUpper(strings.TrimSpace(input)))
	if !ok {
		return models.ResultUnknown, invalid("Enter W (Win), L (Lose) or D (Draw)")
	}
	return r, nil
}
