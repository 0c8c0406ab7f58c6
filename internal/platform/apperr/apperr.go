// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error taxonomy for the LookEasy data layer.

Every expected domain condition (bad input, missing entity, stock conflict) leaves
the core as an [AppError] carrying a machine-readable Code. Presentation code maps
the Code to field-level or toast-level messaging; the core never does.

Architecture:

  - AppError: machine-readable Code, a user-facing Message and optional Details.
  - Details: the complete list of field violations of a VALIDATION_ERROR.
  - Cause: the underlying infrastructure error, kept for logging only.

Unexpected faults (unreadable or corrupted store entries) are reported as
STORAGE_FAILURE and are never folded into an empty result.
*/
package apperr

import (
	"errors"
	"fmt"
)

// # Codes

const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeNotFound           = "NOT_FOUND"
	CodeEmailTaken         = "EMAIL_TAKEN"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeAccountDisabled    = "ACCOUNT_DISABLED"
	CodeInsufficientStock  = "INSUFFICIENT_STOCK"
	CodeProductUnavailable = "PRODUCT_UNAVAILABLE"
	CodeTokenInvalid       = "TOKEN_INVALID"
	CodeInvalidOrder       = "INVALID_ORDER"
	CodeUnauthenticated    = "UNAUTHENTICATED"
	CodeRateLimited        = "RATE_LIMITED"
	CodeStorageFailure     = "STORAGE_FAILURE"
)

// AppError is the canonical error type of the data layer.
//
// # Security
//
// The Cause field is for server-side logging only and must never be shown to
// a shopper, it may contain backend details (file paths, redis addresses).
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "NOT_FOUND").
	Code string `json:"code"`
	// Message is a human-readable description safe to show to the user.
	Message string `json:"error"`
	// Cause is the underlying error, used for logging only.
	Cause error `json:"-"`
	// Details holds per-field violations for VALIDATION_ERROR and per-line
	// failures for INSUFFICIENT_STOCK.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level failure.
type FieldError struct {
	// Field is the name of the offending input field.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface. It returns the user-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// Messages returns the Message of every detail, in order.
func (e *AppError) Messages() []string {
	out := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		out = append(out, d.Message)
	}
	return out
}

// # Domain Errors

// ValidationError creates a VALIDATION_ERROR with the complete list of violations.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: msg,
		Details: details,
	}
}

// NotFound creates a NOT_FOUND error for a named resource.
//
// Example:
//
//	apperr.NotFound("Produto") // "Produto não encontrado"
func NotFound(resource string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: resource + " não encontrado",
	}
}

// EmailTaken is returned when an active account already owns the email.
func EmailTaken() *AppError {
	return &AppError{
		Code:    CodeEmailTaken,
		Message: "Email já cadastrado",
	}
}

// InvalidCredentials is deliberately generic to prevent account enumeration.
func InvalidCredentials() *AppError {
	return &AppError{
		Code:    CodeInvalidCredentials,
		Message: "Email ou senha incorretos",
	}
}

// AccountDisabled is returned when the credentials match a deactivated account.
func AccountDisabled() *AppError {
	return &AppError{
		Code:    CodeAccountDisabled,
		Message: "Conta desativada",
	}
}

// InsufficientStock creates an INSUFFICIENT_STOCK error, optionally listing
// every failing line.
func InsufficientStock(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:    CodeInsufficientStock,
		Message: msg,
		Details: details,
	}
}

// ProductUnavailable is returned when a product is missing, inactive or out of stock.
func ProductUnavailable(msg string) *AppError {
	return &AppError{
		Code:    CodeProductUnavailable,
		Message: msg,
	}
}

// TokenInvalid covers missing, mismatching and expired password reset tokens alike.
func TokenInvalid() *AppError {
	return &AppError{
		Code:    CodeTokenInvalid,
		Message: "Token inválido ou expirado",
	}
}

// InvalidOrder is returned when an order cannot be built from its inputs.
func InvalidOrder(msg string) *AppError {
	return &AppError{
		Code:    CodeInvalidOrder,
		Message: msg,
	}
}

// Unauthenticated is returned when an operation requires a live session.
func Unauthenticated(msg string) *AppError {
	return &AppError{
		Code:    CodeUnauthenticated,
		Message: msg,
	}
}

// RateLimited is returned when too many login attempts were made.
func RateLimited() *AppError {
	return &AppError{
		Code:    CodeRateLimited,
		Message: "Muitas tentativas. Aguarde alguns instantes.",
	}
}

// # Infrastructure Errors

// StorageFailure wraps an unreadable, corrupted or failing store entry.
// The cause is stored for logging but is never shown to the user.
func StorageFailure(key string, cause error) *AppError {
	return &AppError{
		Code:    CodeStorageFailure,
		Message: fmt.Sprintf("Falha ao acessar os dados (%s)", key),
		Cause:   cause,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// Is reports whether err carries an [*AppError] with the given code.
func Is(err error, code string) bool {
	ae := As(err)
	return ae != nil && ae.Code == code
}
