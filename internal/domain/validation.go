package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/admincatalog-backend/pkg/result"
)

// Rule is a single field check. Rules are closures so that a pipeline can
// stop before evaluating the rules after a failure.
type Rule func() result.Result[result.Unit]

// Validate runs rules in order and returns the first failure, or Ok when
// every rule passes. It never aggregates several violations.
func Validate(rules ...Rule) result.Result[result.Unit] {
	for _, rule := range rules {
		if r := rule(); r.IsFailure() {
			return r
		}
	}
	return result.Ok()
}

// NotBlank fails when value is empty or whitespace only.
func NotBlank(field, value string) result.Result[result.Unit] {
	if isBlank(value) {
		return result.Failure[result.Unit](fmt.Sprintf("%s must not be blank", field))
	}
	return result.Ok()
}

// NotNull fails when value is nil.
func NotNull[T any](field string, value *T) result.Result[result.Unit] {
	if value == nil {
		return result.Failure[result.Unit](fmt.Sprintf("%s must not be null", field))
	}
	return result.Ok()
}

// MinLength fails when value is blank or shorter than minLength characters.
func MinLength(field string, minLength int, value string) result.Result[result.Unit] {
	if isBlank(value) || utf8.RuneCountInString(value) < minLength {
		return result.Failure[result.Unit](fmt.Sprintf("%s must contain at least %d characters", field, minLength))
	}
	return result.Ok()
}

// MaxLength fails when value is longer than maxLength characters. Blank
// values pass: pipelines run NotBlank first.
func MaxLength(field string, maxLength int, value string) result.Result[result.Unit] {
	if !isBlank(value) && utf8.RuneCountInString(value) > maxLength {
		return result.Failure[result.Unit](fmt.Sprintf("%s must contain at most %d characters", field, maxLength))
	}
	return result.Ok()
}

// NotEmpty fails when value is the zero value of its type, such as
// uuid.Nil for an id.
func NotEmpty[T comparable](field string, value T) result.Result[result.Unit] {
	var zero T
	if value == zero {
		return result.Failure[result.Unit](fmt.Sprintf("%s must not be empty", field))
	}
	return result.Ok()
}

// AtLeast fails when value is below minValue.
func AtLeast(field string, minValue, value int) result.Result[result.Unit] {
	if value < minValue {
		return result.Failure[result.Unit](fmt.Sprintf("%s must be at least %d", field, minValue))
	}
	return result.Ok()
}

// AtMost fails when value is above maxValue.
func AtMost(field string, maxValue, value int) result.Result[result.Unit] {
	if value > maxValue {
		return result.Failure[result.Unit](fmt.Sprintf("%s must be at most %d", field, maxValue))
	}
	return result.Ok()
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
