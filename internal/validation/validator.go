// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError is one failed rule on one query parameter.
type FieldError struct {
	Field   string // query parameter name
	Tag     string // failed rule, e.g. "required" or "max"
	Message string
}

// Errors collects the failed rules of one request, in struct field order.
type Errors []FieldError

// Error joins the messages with "; ".
func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Message
	}
	return strings.Join(msgs, "; ")
}

// Details is the VALIDATION_ERROR details payload: the field and rule for a
// single failure, or a "fields" list when several parameters failed.
func (e Errors) Details() map[string]interface{} {
	if len(e) == 1 {
		return map[string]interface{}{"field": e[0].Field, "tag": e[0].Tag}
	}
	fields := make([]map[string]interface{}, len(e))
	for i, fe := range e {
		fields[i] = map[string]interface{}{"field": fe.Field, "tag": fe.Tag, "message": fe.Message}
	}
	return map[string]interface{}{"fields": fields}
}

// GetValidator returns the shared validator. Field names in failures come
// from the `query` tag, and the notblank and printable rules are registered.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("query"), ",")
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
		mustRegister(validate, "notblank", validateNotBlank)
		mustRegister(validate, "printable", validatePrintable)
	})
	return validate
}

// Validate checks a request struct and returns nil when every rule passes.
//
//	if errs := validation.Validate(&req); errs != nil {
//	    respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", errs.Error(), errs.Details(), nil)
//	}
func Validate(req interface{}) Errors {
	err := GetValidator().Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// Not a struct: a programming error, reported without internals.
		return Errors{{Field: "request", Tag: "invalid", Message: "request could not be validated"}}
	}

	out := make(Errors, len(fieldErrs))
	for i, fe := range fieldErrs {
		out[i] = FieldError{Field: fe.Field(), Tag: fe.Tag(), Message: message(fe)}
	}
	return out
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %s: %v", tag, err))
	}
}

// validateNotBlank rejects strings that are empty after trimming whitespace.
func validateNotBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(field.String()) != ""
}

// validatePrintable rejects invalid UTF-8 and control characters, which
// would otherwise end up in cache keys and logs.
func validatePrintable(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}
	s := field.String()
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			return false
		}
	}
	return true
}

// message renders the rules the query endpoints use.
func message(fe validator.FieldError) string {
	field, param := fe.Field(), fe.Param()
	unit := ""
	if fe.Kind() == reflect.String {
		unit = " characters"
	}

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "notblank":
		return field + " must not be blank"
	case "printable":
		return field + " must not contain control characters"
	case "min":
		return fmt.Sprintf("%s must be at least %s%s", field, param, unit)
	case "max":
		return fmt.Sprintf("%s must be at most %s%s", field, param, unit)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, param)
	default:
		return field + " is invalid"
	}
}
