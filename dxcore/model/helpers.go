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
	"fmt"

	"gopkg.in/yaml.v3"
)

// MustValidate validates m and panics if validation fails. It returns m so
// that package-level values can be declared and checked in one expression:
//
//	var defaultConfig = *model.MustValidate(&Config{...})
//
// Callers MUST only use MustValidate where an invalid model is a programming
// error.
func MustValidate[T interface {
	Validatable
	Identifiable
}](m T) T {
	if err := m.Validate(); err != nil {
		panic(fmt.Sprintf("dxvig: invalid %s: %v", m.TypeName(), err))
	}
	return m
}

// SafeString returns m.Redacted() unless unsafe is true, in which case it
// returns m.String(). Log call sites go through SafeString so that the one
// place able to leak a key is a visible argument.
//
//	logger.Info("cipher reconfigured", "to", model.SafeString(&cfg, false))
func SafeString[T Loggable](m T, unsafe bool) string {
	if unsafe {
		return m.String()
	}
	return m.Redacted()
}

// ToJSON validates m and encodes it with json.Marshal. Invalid models are
// never encoded; the validation error is returned wrapped, so errors.Is
// still matches it.
func ToJSON[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("dxvig: cannot encode invalid %s: %w", m.TypeName(), err)
	}
	return json.Marshal(m)
}

// ToYAML validates m and encodes it with yaml.Marshal. Invalid models are
// never encoded.
func ToYAML[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("dxvig: cannot encode invalid %s: %w", m.TypeName(), err)
	}
	return yaml.Marshal(m)
}

// FromYAML decodes data into m and validates the result.
//
// m MUST be a non-nil pointer to a model. It is decoded in place, so a value
// pre-filled with defaults keeps every setting the document does not mention,
// and an empty or null document leaves it as it was. If FromYAML returns an
// error the state of *m is undefined and MUST NOT be used.
func FromYAML[T Model](data []byte, m T) error {
	if err := yaml.Unmarshal(data, m); err != nil {
		return err
	}
	return m.Validate()
}
