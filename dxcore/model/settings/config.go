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

// Package settings holds the user-facing configuration of a polyalphabetic
// cipher and the single step that turns it into a validated Transformation.
//
// A Config is what a host edits: plain text for the key and alphabet, a
// Variant, and two flags. Reconfigure validates a Config as a whole and
// re-derives the dependent constraints, most importantly that every key
// symbol must belong to the alphabet built with the configured case
// sensitivity. Changing any field means calling Reconfigure again; there
// are no per-field callbacks.
package settings

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strconv"

	"dirpx.dev/dxvig/dxcore/errors"
	"dirpx.dev/dxvig/dxcore/model"
	"dirpx.dev/dxvig/dxcore/model/symbol"
	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"
)

// Setting names as exposed to hosts. They double as the JSON and YAML field
// names of Config.
const (
	SettingVariant             = "variant"
	SettingKey                 = "key"
	SettingAlphabet            = "alphabet"
	SettingCaseSensitivity     = "caseSensitivity"
	SettingIncludeForeignChars = "includeForeignChars"
)

// DefaultKey is the key of Default.
const DefaultKey = "cryptii"

// Config is the configuration of a cipher.
//
// The zero Config is not valid (its key and alphabet are empty); start from
// Default. Decoding JSON or YAML also starts from Default, so a document
// only needs to name the settings it changes.
type Config struct {
	// Variant selects the shift rule.
	Variant model.Variant `json:"variant" yaml:"variant"`

	// Key is the repeating key. Every symbol MUST be a member of Alphabet
	// and the key MUST be at least symbol.MinKeyLength symbols long.
	Key string `json:"key" yaml:"key"`

	// Alphabet lists the substituted symbols in order, without duplicates.
	Alphabet string `json:"alphabet" yaml:"alphabet"`

	// CaseSensitive controls whether alphabet, key and content distinguish
	// case. When false, all three are folded to lower case and the output
	// keeps the folded case.
	CaseSensitive bool `json:"caseSensitivity" yaml:"caseSensitivity"`

	// IncludeForeignChars controls whether content symbols outside the
	// alphabet are copied to the output (true) or dropped (false).
	IncludeForeignChars bool `json:"includeForeignChars" yaml:"includeForeignChars"`
}

// Default returns the standard Vigenère configuration: key "cryptii" over
// the lower-case Latin alphabet, case-insensitive, foreign symbols included.
func Default() Config {
	return defaultConfig
}

var defaultConfig = *model.MustValidate(&Config{
	Variant:             model.Standard,
	Key:                 DefaultKey,
	Alphabet:            symbol.DefaultAlphabet,
	CaseSensitive:       false,
	IncludeForeignChars: true,
})

// Transformation is a validated Config: everything needed to map an input
// sequence to an output sequence. It is immutable and safe to share between
// goroutines.
type Transformation struct {
	Variant             model.Variant
	Alphabet            symbol.Alphabet
	Key                 symbol.Key
	IncludeForeignChars bool
}

// CaseSensitive reports whether the transformation distinguishes case.
func (t Transformation) CaseSensitive() bool {
	return t.Alphabet.CaseSensitive()
}

// Reconfigure validates c and builds its Transformation.
//
// The alphabet is built with c.CaseSensitive, and the key is then
// constrained to that alphabet, so a change to either the alphabet or the
// case sensitivity re-checks the key. Every violation is reported, not just
// the first; the returned error matches errors.ErrInvalidConfiguration.
func Reconfigure(c Config) (Transformation, error) {
	col := rxmerr.NewCollector()

	if err := c.Variant.Validate(); err != nil {
		col.Append(err)
	}

	alphabet, err := symbol.NewAlphabet(c.Alphabet, c.CaseSensitive)
	if err != nil {
		col.Append(err)
	}

	var key symbol.Key
	if err == nil {
		if key, err = symbol.NewKey(c.Key, alphabet); err != nil {
			col.Append(err)
		}
	}

	if err := col.Err(); err != nil {
		return Transformation{}, fmt.Errorf("%w: %w", errors.ErrInvalidConfiguration, err)
	}

	return Transformation{
		Variant:             c.Variant,
		Alphabet:            alphabet,
		Key:                 key,
		IncludeForeignChars: c.IncludeForeignChars,
	}, nil
}

// Set returns a copy of c with the named setting changed to value.
//
// Booleans accept the strconv.ParseBool vocabulary; the variant accepts the
// ParseVariant vocabulary. Set does not validate the result as a whole; pass
// it to Reconfigure for that. An unknown name or an unparsable value returns
// a *errors.ParseError and c unchanged.
func (c Config) Set(name, value string) (Config, error) {
	switch name {
	case SettingVariant:
		v, err := model.ParseVariant(value)
		if err != nil {
			return c, err
		}
		c.Variant = v
	case SettingKey:
		c.Key = value
	case SettingAlphabet:
		c.Alphabet = value
	case SettingCaseSensitivity:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return c, &errors.ParseError{Type: SettingCaseSensitivity, Value: value}
		}
		c.CaseSensitive = b
	case SettingIncludeForeignChars:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return c, &errors.ParseError{Type: SettingIncludeForeignChars, Value: value}
		}
		c.IncludeForeignChars = b
	default:
		return c, &errors.ParseError{Type: "Setting", Value: name}
	}
	return c, nil
}

// Validate reports whether c can be turned into a Transformation.
func (c Config) Validate() error {
	_, err := Reconfigure(c)
	return err
}

// TypeName returns "Config".
func (c Config) TypeName() string {
	return "Config"
}

// IsZero reports whether every field holds its zero value.
func (c Config) IsZero() bool {
	return c == Config{}
}

// Equal reports whether both configurations hold identical fields.
func (c Config) Equal(other Config) bool {
	return c == other
}

// String returns every field including the key. It MUST NOT be used for
// logging.
func (c Config) String() string {
	return fmt.Sprintf("Config{Variant:%s, Key:%s, Alphabet:%s, CaseSensitive:%t, IncludeForeignChars:%t}",
		c.Variant, c.Key, c.Alphabet, c.CaseSensitive, c.IncludeForeignChars)
}

// Redacted returns every field except the key, which is masked.
func (c Config) Redacted() string {
	key := ""
	if c.Key != "" {
		key = "[REDACTED]"
	}
	return fmt.Sprintf("Config{Variant:%s, Key:%s, Alphabet:%s, CaseSensitive:%t, IncludeForeignChars:%t}",
		c.Variant, key, c.Alphabet, c.CaseSensitive, c.IncludeForeignChars)
}

// MarshalJSON implements json.Marshaler. Invalid configurations are not
// encoded.
func (c Config) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	type alias Config
	return json.Marshal(alias(c))
}

// UnmarshalJSON implements json.Unmarshaler. Fields missing from data keep
// their Default values; the result is validated.
func (c *Config) UnmarshalJSON(data []byte) error {
	type alias Config
	a := alias(Default())
	if err := json.Unmarshal(data, &a); err != nil {
		if stderrors.Is(err, errors.ErrInvalidConfiguration) {
			return err
		}
		return &errors.UnmarshalError{Type: "Config", Data: data, Reason: err.Error()}
	}
	if err := Config(a).Validate(); err != nil {
		return err
	}
	*c = Config(a)
	return nil
}

// MarshalYAML implements yaml.Marshaler. Invalid configurations are not
// encoded.
func (c Config) MarshalYAML() (any, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	type alias Config
	return alias(c), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Fields missing from the node
// keep their Default values; the result is validated.
func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	type alias Config
	a := alias(Default())
	if err := node.Decode(&a); err != nil {
		if stderrors.Is(err, errors.ErrInvalidConfiguration) {
			return err
		}
		return &errors.UnmarshalError{Type: "Config", Data: []byte(node.Value), Reason: err.Error()}
	}
	if err := Config(a).Validate(); err != nil {
		return err
	}
	*c = Config(a)
	return nil
}

// Compile-time check that Config implements model.Model interface.
var _ model.Model = (*Config)(nil)
