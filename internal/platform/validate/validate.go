// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError], plus struct-tag and
// key-set checks for decoded JSON payloads.
//
// # Architecture
//
// This package is used exclusively in the service layer, never in handlers or
// storage. It ensures that business logic only operates on structurally valid data.
package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/taibuivan/gamereview/internal/platform/apperr"
)

var (
	// structValidator is safe for concurrent use and caches struct metadata.
	structValidator = newStructValidator()

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.BadRequest("Invalid JSON payload")
)

// ID parses a path identifier into the range of an INT column. Any other
// value is a type mismatch, distinct from a missing row.
func ID(raw string) (int, error) {
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, apperr.TypeMismatch().WithCause(err)
	}
	return int(id), nil
}

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "This field is required")
	}
	return v
}

// Present fails if the value was absent from the payload. A present zero
// value passes.
func (v *Validator) Present(field string, present bool) *Validator {
	if !present {
		v.add(field, "This field is required")
	}
	return v
}

// OneOf fails if the value is not in the allowed set of strings.
func (v *Validator) OneOf(field, value string, allowed ...string) *Validator {
	for _, a := range allowed {
		if value == a {
			return v
		}
	}
	v.add(field, fmt.Sprintf("Must be one of: %s", strings.Join(allowed, ", ")))
	return v
}

// ExactKeys fails unless payload holds every key in keys and nothing else.
func (v *Validator) ExactKeys(payload map[string]json.RawMessage, keys ...string) *Validator {
	expected := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		expected[key] = struct{}{}
		if _, ok := payload[key]; !ok {
			v.add(key, "This field is required")
		}
	}

	extra := make([]string, 0)
	for key := range payload {
		if _, ok := expected[key]; !ok {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	for _, key := range extra {
		v.add(key, "Unknown field")
	}
	return v
}

// Struct runs the `validate` struct tags of target and records each failure
// under the field's JSON name.
func (v *Validator) Struct(target any) *Validator {
	err := structValidator.Struct(target)
	if err == nil {
		return v
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		v.add("", err.Error())
		return v
	}

	for _, fieldError := range fieldErrors {
		v.add(fieldError.Field(), fmt.Sprintf("Failed the '%s' rule", fieldError.Tag()))
	}
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("inc_votes", raw == nil, "Value to increment votes by was not provided")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// ErrWithMessage returns a [apperr.AppError] (VALIDATION_ERROR) carrying
// message if any rules failed, or nil if all rules passed. Endpoints supply
// the message because its text is part of the public contract.
//
// This is the only output method. Call it at the end of the chain.
func (v *Validator) ErrWithMessage(message string) error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError(message, v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}

// newStructValidator reports failures under JSON field names rather than Go ones.
func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
