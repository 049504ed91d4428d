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

package model

import (
	"encoding/json"
	"strconv"

	"dirpx.dev/dxvig/dxcore/errors"
	"gopkg.in/yaml.v3"
)

// Variant selects the shift rule that combines a content symbol's alphabet
// index with the current key symbol's alphabet index.
//
// All three rules are classical polyalphabetic substitutions over the same
// alphabet and key. They differ only in how the two indices are combined and
// whether the combination depends on the direction:
//
//	Variant          Encode   Decode
//	Standard         p + k    p - k
//	Beaufort         k - p    k - p
//	VariantBeaufort  p - k    p + k
//
// Beaufort is its own inverse, so encoding and decoding use one formula.
// Standard and VariantBeaufort mirror each other: encoding with one is
// decoding with the other.
type Variant int

const (
	// Standard is the classical Vigenère rule: the key index is added on
	// encode and subtracted on decode.
	Standard Variant = iota

	// Beaufort subtracts the content index from the key index in both
	// directions. Applying it twice with the same key returns the input.
	Beaufort

	// VariantBeaufort subtracts the key index on encode and adds it on
	// decode.
	VariantBeaufort
)

// Compile-time check that Variant implements model.Model interface.
var _ Model = (*Variant)(nil)

// String constants for Variant values used in serialization, parsing,
// and human-facing output.
//
// These names match the setting values exposed to hosts and MAY be persisted
// in configuration files. Changing them is a breaking change.
const (
	StandardStr        = "standard"
	BeaufortStr        = "beaufort-cipher"
	VariantBeaufortStr = "variant-beaufort-cipher"
)

// Variants lists every defined Variant in declaration order.
var Variants = []Variant{Standard, Beaufort, VariantBeaufort}

// String returns the canonical string representation of the Variant value.
//
//	Standard        -> "standard"
//	Beaufort        -> "beaufort-cipher"
//	VariantBeaufort -> "variant-beaufort-cipher"
//
// If the Variant value is not one of the defined constants, String returns
// "unknown".
func (v Variant) String() string {
	switch v {
	case Standard:
		return StandardStr
	case Beaufort:
		return BeaufortStr
	case VariantBeaufort:
		return VariantBeaufortStr
	default:
		return "unknown"
	}
}

// ParseVariant converts a textual representation into a Variant value.
//
// The function accepts kebab-case, CamelCase, snake_case and upper-case
// spellings, plus the short forms without the "-cipher" suffix:
//
//	"standard", "Standard", "STANDARD", "vigenere"                  -> Standard
//	"beaufort-cipher", "BeaufortCipher", "beaufort_cipher",
//	"BEAUFORT_CIPHER", "beaufort"                                   -> Beaufort
//	"variant-beaufort-cipher", "VariantBeaufortCipher",
//	"variant_beaufort_cipher", "VARIANT_BEAUFORT_CIPHER",
//	"variant-beaufort"                                              -> VariantBeaufort
//
// Any other input returns a *ParseError and Standard, which MUST NOT be used.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case StandardStr, "Standard", "STANDARD", "vigenere":
		return Standard, nil
	case BeaufortStr, "BeaufortCipher", "beaufort_cipher", "BEAUFORT_CIPHER", "beaufort", "Beaufort":
		return Beaufort, nil
	case VariantBeaufortStr, "VariantBeaufortCipher", "variant_beaufort_cipher", "VARIANT_BEAUFORT_CIPHER", "variant-beaufort", "VariantBeaufort":
		return VariantBeaufort, nil
	default:
		return Standard, &errors.ParseError{Type: "Variant", Value: s}
	}
}

// Valid reports whether the Variant value is one of the defined constants.
func (v Variant) Valid() bool {
	return v == Standard || v == Beaufort || v == VariantBeaufort
}

// Shift combines a content index p and a key index k into a raw result
// index according to the variant and direction. The result is not reduced;
// callers reduce it with FloorMod before mapping it back into the alphabet.
//
// Shift panics on an invalid Variant. Settings are validated before any
// transformation runs, so reaching that branch is a programming error.
func (v Variant) Shift(p, k int, encode bool) int {
	switch v {
	case Standard:
		if encode {
			return p + k
		}
		return p - k
	case Beaufort:
		return k - p
	case VariantBeaufort:
		if encode {
			return p - k
		}
		return p + k
	}
	panic("dxvig: shift with invalid Variant " + strconv.Itoa(int(v)))
}

// FloorMod returns a mod n in [0, n). Unlike the % operator the result is
// never negative. n MUST be positive.
func FloorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// MarshalJSON implements json.Marshaler for Variant.
//
// A valid Variant is serialized as its canonical string (for example,
// "beaufort-cipher"), never as its integer value, so persisted settings stay
// readable and survive a reordering of the constants. An out-of-range value
// returns a *MarshalError and produces no output; a configuration that
// reaches JSON encoding with such a value was built without validation.
func (v Variant) MarshalJSON() ([]byte, error) {
	if !v.Valid() {
		return nil, &errors.MarshalError{Type: "Variant", Value: int(v)}
	}
	return []byte(`"` + v.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Variant.
//
// The method accepts both string and numeric JSON representations:
//
//   - String: any spelling accepted by ParseVariant.
//
//   - Number: 0 (Standard), 1 (Beaufort), 2 (VariantBeaufort), in the
//     declaration order of the constants.
//
// Strings are the stable form and the one MarshalJSON writes. An unknown
// spelling returns the *ParseError of ParseVariant; any other input,
// including an out-of-range number, returns an *UnmarshalError. Both match
// errors.ErrInvalidConfiguration, and *v is left unchanged on failure.
func (v *Variant) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Variant", Data: data, Reason: "empty data"}
	}

	// Try string format first.
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "Variant", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseVariant(s)
		if err != nil {
			return err
		}
		*v = parsed
		return nil
	}

	// Fallback to numeric format.
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Variant", Data: data, Reason: err.Error()}
	}
	if !Variant(i).Valid() {
		return &errors.UnmarshalError{Type: "Variant", Data: data, Reason: "invalid numeric value"}
	}
	*v = Variant(i)
	return nil
}

// MarshalText implements encoding.TextMarshaler for Variant.
//
// The text form is the canonical string returned by String. It is what map
// keys and text-based formats see. An invalid value returns a *MarshalError.
func (v Variant) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, &errors.MarshalError{Type: "Variant", Value: int(v)}
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Variant.
//
// ParseVariant is the single source of truth for the accepted vocabulary, so
// text input is exactly as permissive as Set and the JSON string form. On
// failure the *ParseError of ParseVariant is returned and *v is left
// unchanged.
func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for Variant.
//
// A valid Variant is written as its canonical string; an invalid one returns
// a *MarshalError.
func (v Variant) MarshalYAML() (any, error) {
	if !v.Valid() {
		return nil, &errors.MarshalError{Type: "Variant", Value: int(v)}
	}
	return v.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Variant.
//
// The node MUST be a scalar. Its value is resolved via ParseVariant, so a
// bare number such as 1 is read as the text "1" and rejected; YAML documents
// name variants rather than number them. A sequence or mapping node returns
// an *UnmarshalError.
func (v *Variant) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Variant", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseVariant(str)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// TypeName returns "Variant", the name used in error messages and logs.
//
// This method implements part of the model.Model interface. The errors
// package uses the same string in the Type field of the errors it reports
// for a Variant.
func (v Variant) TypeName() string {
	return "Variant"
}

// Redacted returns the same string as String.
//
// A Variant is a public choice of shift rule and carries no secret, so the
// redacted and full forms are identical. This method implements part of the
// model.Model interface.
func (v Variant) Redacted() string {
	return v.String()
}

// IsZero reports whether v is Standard, the zero value.
//
// This method implements part of the model.Model interface and tells whether
// a Variant field was left at its default.
//
// Note: Standard is a valid Variant, so IsZero returning true does not
// indicate an error condition. Callers that need to reject unset fields MUST
// track presence separately.
func (v Variant) IsZero() bool {
	return v == Standard
}

// Equal reports whether other is a Variant or *Variant with the same value.
//
// Any other type, and a nil *Variant, compares unequal.
func (v Variant) Equal(other any) bool {
	switch o := other.(type) {
	case Variant:
		return v == o
	case *Variant:
		if o == nil {
			return false
		}
		return v == *o
	default:
		return false
	}
}

// Validate checks whether v is one of the defined constants.
//
// It returns nil for Standard, Beaufort and VariantBeaufort and a
// *ValidationError, which matches errors.ErrInvalidConfiguration, for any
// other value.
//
// This method implements part of the model.Model interface. It SHOULD be
// called after numeric casts such as Variant(i), which the type system does
// not range-check. Shift relies on it having been called.
func (v Variant) Validate() error {
	if !v.Valid() {
		return &errors.ValidationError{
			Type:   "Variant",
			Reason: "must be one of standard, beaufort-cipher, variant-beaufort-cipher",
			Value:  int(v),
		}
	}
	return nil
}
