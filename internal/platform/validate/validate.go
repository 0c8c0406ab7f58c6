// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// This package is used by the service layer only. Every rule runs, so the
// caller always receives the complete list of violations, never just the first.
package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/taibuivan/lookeasy/internal/platform/apperr"
)

var (
	// emailRegex accepts "local@domain.tld" with no whitespace and a single "@".
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

const msgNegative = "Não pode ser negativo"

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value, message string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, message)
	}
	return v
}

// MinLen fails if the Unicode character count of the trimmed value is below min.
func (v *Validator) MinLen(field, value string, min int, message string) *Validator {
	if utf8.RuneCountInString(strings.TrimSpace(value)) < min {
		v.add(field, message)
	}
	return v
}

// MaxBytes fails if the encoded byte length of value exceeds max.
// Unlike [Validator.MinLen] it counts bytes, so "ção" is 5, not 3.
func (v *Validator) MaxBytes(field, value string, max int, message string) *Validator {
	if len(value) > max {
		v.add(field, message)
	}
	return v
}

// Email fails if the value does not look like "local@domain.tld".
func (v *Validator) Email(field, value string) *Validator {
	if !emailRegex.MatchString(strings.TrimSpace(value)) {
		v.add(field, "Email inválido")
	}
	return v
}

// NonNegative fails if the count is below zero.
func (v *Validator) NonNegative(field string, value int) *Validator {
	if value < 0 {
		v.add(field, msgNegative)
	}
	return v
}

// NonNegativeAmount fails if the money amount is below zero.
func (v *Validator) NonNegativeAmount(field string, value decimal.Decimal) *Validator {
	if value.IsNegative() {
		v.add(field, msgNegative)
	}
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("confirmarSenha", senha != confirmar, "Senhas não coincidem")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a VALIDATION_ERROR [apperr.AppError] if any rules failed,
// or nil if all rules passed.
//
// This is the only output method, call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Dados inválidos", v.errs...)
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}
