/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package errors provides the error types shared by every dxvig package.
//
// The errors in this package are simple value carriers with stable message
// formats. They are designed to be:
//
//   - easy to construct from parsing, marshaling and validation code,
//   - easy to recognize via type assertions or errors.As,
//   - and easy for users to understand when surfaced in logs or diagnostics.
//
// # Error Types
//
//   - ParseError
//     Returned when parsing a string into an enum-like type (for example a
//     Variant) or a setting name fails.
//
//   - MarshalError
//     Returned when marshaling an invalid enum-like value fails.
//
//   - UnmarshalError
//     Returned when unmarshaling data into a typed value fails.
//
//   - ValidationError
//     Returned when a model violates an invariant: an empty alphabet, a
//     duplicate alphabet symbol, a key that is too short or that contains
//     symbols outside the alphabet.
//
// # Invalid configuration
//
// Every ParseError, UnmarshalError and ValidationError is an invalid
// configuration: the cipher settings were rejected before any transformation
// ran. A MarshalError is not; it reports an unvalidated value in code. Callers that
// only care about that distinction test with
//
//	errors.Is(err, dxerrors.ErrInvalidConfiguration)
//
// Transformations themselves never fail; foreign input symbols are a policy
// decision, not an error.
package errors

import (
	stderrors "errors"
	"strconv"
)

// ErrInvalidConfiguration is matched by every error that rejects cipher
// settings. It is never returned directly.
var ErrInvalidConfiguration = stderrors.New("dxvig: invalid configuration")

// ParseError is returned when parsing a string into a strongly typed enum-like
// value fails.
//
// Type identifies the logical type being parsed (for example, "Variant" or
// "Setting"), and Value contains the exact string that could not be
// interpreted.
//
// # Example
//
//	func ParseVariant(s string) (Variant, error) {
//	    switch s {
//	    case "standard":
//	        return Standard, nil
//	    default:
//	        // "dxvig: invalid Variant value: <value>"
//	        return Standard, &errors.ParseError{Type: "Variant", Value: s}
//	    }
//	}
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Variant").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"dxvig: invalid {Type} value: {Value}"
func (e *ParseError) Error() string {
	return "dxvig: invalid " + e.Type + " value: " + e.Value
}

// Is reports whether target is ErrInvalidConfiguration.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

// MarshalError is returned when marshaling a typed value fails due to it being
// outside the set of valid constants.
//
// In most cases a MarshalError indicates a programming error, for example a
// Variant built by a numeric cast that was never validated.
type MarshalError struct {
	// Type is the logical name of the type being marshaled (for example, "Variant").
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled because it does not correspond to a known constant.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"dxvig: cannot marshal invalid {Type} value: {Value}"
//
// where Value is rendered as a decimal integer.
func (e *MarshalError) Error() string {
	return "dxvig: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value fails.
//
// Type identifies the logical type being populated, Data contains the original
// raw payload, and Reason provides a human-readable description of what went
// wrong.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	//
	// Callers MAY choose to log or redact this field; a cipher configuration
	// payload carries the key.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"dxvig: cannot unmarshal {Type}: {Reason}"
//
// The Data field is not included in the message.
func (e *UnmarshalError) Error() string {
	return "dxvig: cannot unmarshal " + e.Type + ": " + e.Reason
}

// Is reports whether target is ErrInvalidConfiguration.
//
// Decoding only fails on a configuration payload that names a setting with a
// value of the wrong shape, so an UnmarshalError is a configuration error
// like ParseError and ValidationError.
func (e *UnmarshalError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

// ValidationError is returned when validation of a model type fails.
//
// Type identifies the model (for example, "Alphabet" or "Key"), Field
// optionally identifies which field failed validation, Reason explains the
// failure, and Value optionally contains the offending value.
//
// # Example
//
//	if len(symbols) < MinKeyLength {
//	    return Key{}, &errors.ValidationError{
//	        Type:   "Key",
//	        Reason: "must be at least 2 symbols long",
//	        Value:  len(symbols),
//	    }
//	}
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	// May be nil if not applicable or if the value should not be logged.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"dxvig: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"dxvig: invalid {Type}: {Reason}" (when Field is empty)
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "dxvig: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "dxvig: invalid " + e.Type + ": " + e.Reason
}

// Is reports whether target is ErrInvalidConfiguration.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}
