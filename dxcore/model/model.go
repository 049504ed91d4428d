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

// Package model defines the contracts shared by dxvig domain types and the
// Variant enum that selects a cipher's shift rule.
//
// Domain types (Variant, Alphabet, Key, Config) implement the Model
// interface or its constituent parts (Validatable, Serializable, Loggable,
// Identifiable, ZeroCheckable). Validation keeps invalid cipher settings
// from ever reaching a transformation. Serialization gives configuration
// files a round-trip guarantee. Loggable keeps the cipher key out of logs.
//
// Model types are immutable value types and are safe for concurrent reads.
// Callers MUST synchronize any concurrent writes to mutable instances.
//
// Types implementing Model can be used with the generic helpers in this
// package, such as ValidateAll, FilterZero, ToJSON, ToYAML, Clone and Equal.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all contracts required of a
// serializable dxvig domain type: validation, JSON and YAML encoding,
// safe logging, type identification and zero-value detection.
//
// Example implementation:
//
//	type Settings struct {
//	    Key string
//	}
//
//	func (s Settings) Validate() error {
//	    if len(s.Key) < 2 {
//	        return errors.New("key too short")
//	    }
//	    return nil
//	}
//
//	func (s Settings) TypeName() string { return "Settings" }
//	func (s Settings) IsZero() bool     { return s.Key == "" }
//	func (s Settings) Redacted() string { return "Settings{Key:[REDACTED]}" }
//	func (s Settings) String() string   { return "Settings{Key:" + s.Key + "}" }
//	// ... MarshalJSON, UnmarshalJSON, MarshalYAML, UnmarshalYAML
//
//	var _ Model = (*Settings)(nil)
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that validate their own state.
//
// Validate MUST be fast, deterministic and free of side effects. It MUST NOT
// mutate the receiver. When validation fails, the returned error SHOULD be a
// *errors.ValidationError (or wrap one) so that callers can match it with
// errors.Is(err, errors.ErrInvalidConfiguration).
//
// Callers SHOULD invoke Validate immediately after unmarshaling external
// input and before handing settings to a cipher engine.
type Validatable interface {
	// Validate checks that the instance satisfies all invariants and is
	// ready for use. It returns nil if the instance is valid, or a
	// descriptive error explaining what is wrong if validation fails.
	Validate() error
}

// Serializable defines the contract for types that round-trip through JSON
// and YAML.
//
// Implementations SHOULD use the local "type alias" pattern to avoid
// infinite recursion when delegating to the standard encoders, and SHOULD
// validate after unmarshaling so that invalid documents are rejected at the
// boundary:
//
//	func (s *Settings) UnmarshalJSON(data []byte) error {
//	    type alias Settings
//	    if err := json.Unmarshal(data, (*alias)(s)); err != nil {
//	        return err
//	    }
//	    return s.Validate()
//	}
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable defines the contract for types that can be rendered for humans.
//
// A cipher key is a secret for the purpose of logging even though the cipher
// offers no confidentiality. Redacted MUST mask it.
type Loggable interface {
	// Redacted returns a safe string representation suitable for logging in
	// production. This method MUST mask the key and MUST NOT include
	// transformed content.
	Redacted() string

	// String returns a human-readable representation of the instance. This
	// method MAY include the key and MUST NOT be used for production
	// logging. Use Redacted instead for logging.
	String() string
}

// Identifiable defines the contract for types that carry a canonical name.
type Identifiable interface {
	// TypeName returns the canonical name of this model type. The name MUST
	// be constant for the type, unique within dxvig, in CamelCase, and
	// without a package prefix.
	TypeName() string
}

// ZeroCheckable defines the contract for types that can report an empty
// state.
type ZeroCheckable interface {
	// IsZero reports whether this instance is in a zero or empty state,
	// meaning it contains no meaningful data.
	IsZero() bool
}

// Comparable defines the contract for types with a typed equality check.
type Comparable[T any] interface {
	// Equal reports whether this instance is equal to another instance of
	// the same type.
	Equal(other T) bool
}

// Cloneable defines the contract for types that can produce an independent
// copy of themselves.
type Cloneable[T any] interface {
	// Clone creates a deep copy of this instance. The returned instance has
	// the same value but shares no references with the original.
	Clone() T
}
