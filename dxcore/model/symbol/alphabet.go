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

// Package symbol provides the symbol spaces of a polyalphabetic cipher: the
// Alphabet that defines which content symbols are substituted, and the Key
// whose symbols select the shift for each substituted symbol.
//
// Both types are immutable once constructed. Their lookup tables are only
// read after construction, so a single Alphabet or Key may be shared by any
// number of concurrent transformations.
package symbol

import (
	"encoding/json"
	"fmt"
	"slices"
	"unicode/utf8"

	"dirpx.dev/dxvig/dxcore/errors"
	"dirpx.dev/dxvig/dxcore/model"
	"gopkg.in/yaml.v3"
)

// DefaultAlphabet is the 26 lower-case Latin letters.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz"

// Alphabet is an ordered set of distinct Unicode code points.
//
// The position of a symbol in the alphabet is its index in the shift rule.
// When the alphabet is case-insensitive, every declared symbol is folded at
// construction and every queried symbol is folded before lookup, so "A" and
// "a" name the same position. The declared order is preserved either way.
//
// The zero value is an empty alphabet and is not valid.
type Alphabet struct {
	symbols       []rune
	index         map[rune]int
	caseSensitive bool
}

// NewAlphabet builds an Alphabet from the code points of text.
//
// NewAlphabet returns a *errors.ValidationError when text is empty, is not
// valid UTF-8, or declares the same symbol twice. With caseSensitive false,
// "aA" declares 'a' twice and is rejected. Duplicates would make the cipher
// non-invertible and are never silently dropped.
func NewAlphabet(text string, caseSensitive bool) (Alphabet, error) {
	if text == "" {
		return Alphabet{}, &errors.ValidationError{Type: "Alphabet", Reason: "must not be empty"}
	}
	if !utf8.ValidString(text) {
		return Alphabet{}, &errors.ValidationError{Type: "Alphabet", Reason: "must be valid UTF-8"}
	}

	n := utf8.RuneCountInString(text)
	symbols := make([]rune, 0, n)
	index := make(map[rune]int, n)

	for _, r := range text {
		if !caseSensitive {
			r = Fold(r)
		}
		if at, dup := index[r]; dup {
			return Alphabet{}, &errors.ValidationError{
				Type:   "Alphabet",
				Reason: fmt.Sprintf("duplicate symbol %q at positions %d and %d", r, at, len(symbols)),
				Value:  string(r),
			}
		}
		index[r] = len(symbols)
		symbols = append(symbols, r)
	}

	return Alphabet{symbols: symbols, index: index, caseSensitive: caseSensitive}, nil
}

// IndexOf returns the position of r in the alphabet. The second result is
// false when r is not a member, i.e. r is a foreign symbol.
func (a Alphabet) IndexOf(r rune) (int, bool) {
	if !a.caseSensitive {
		r = Fold(r)
	}
	i, ok := a.index[r]
	return i, ok
}

// Contains reports whether r is a member of the alphabet.
func (a Alphabet) Contains(r rune) bool {
	_, ok := a.IndexOf(r)
	return ok
}

// At returns the symbol at position i. It does not wrap: i MUST be in
// [0, Len()), otherwise At panics.
func (a Alphabet) At(i int) rune {
	return a.symbols[i]
}

// Len returns the number of symbols.
func (a Alphabet) Len() int {
	return len(a.symbols)
}

// CaseSensitive reports whether lookups distinguish case.
func (a Alphabet) CaseSensitive() bool {
	return a.caseSensitive
}

// Symbols returns a copy of the symbols in declaration order.
func (a Alphabet) Symbols() []rune {
	return slices.Clone(a.symbols)
}

// String returns the symbols as a string, folded when case-insensitive.
func (a Alphabet) String() string {
	return string(a.symbols)
}

// Redacted returns the same string as String; an alphabet is not secret.
func (a Alphabet) Redacted() string {
	return a.String()
}

// TypeName returns "Alphabet".
func (a Alphabet) TypeName() string {
	return "Alphabet"
}

// IsZero reports whether the alphabet has no symbols.
func (a Alphabet) IsZero() bool {
	return len(a.symbols) == 0
}

// Validate returns a *errors.ValidationError for the zero Alphabet. Every
// Alphabet built by NewAlphabet is valid.
func (a Alphabet) Validate() error {
	if a.IsZero() {
		return &errors.ValidationError{Type: "Alphabet", Reason: "must not be empty"}
	}
	return nil
}

// Equal reports whether both alphabets declare the same symbols in the same
// order with the same case sensitivity.
func (a Alphabet) Equal(other Alphabet) bool {
	return a.caseSensitive == other.caseSensitive && slices.Equal(a.symbols, other.symbols)
}

// alphabetDoc is the wire form of an Alphabet in JSON and YAML.
type alphabetDoc struct {
	Symbols       string `json:"symbols" yaml:"symbols"`
	CaseSensitive bool   `json:"caseSensitive" yaml:"caseSensitive"`
}

// MarshalJSON implements json.Marshaler for Alphabet.
//
// The alphabet is written as {"symbols": ..., "caseSensitive": ...}. Symbols
// are the declared symbols, folded when the alphabet is case-insensitive, so
// decoding the output rebuilds an equal Alphabet. The zero Alphabet is not
// encoded.
func (a Alphabet) MarshalJSON() ([]byte, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(alphabetDoc{Symbols: a.String(), CaseSensitive: a.caseSensitive})
}

// UnmarshalJSON implements json.Unmarshaler for Alphabet.
//
// The decoded symbols go through NewAlphabet, so duplicates and an empty
// symbol list are rejected exactly as on construction. A payload of the
// wrong shape returns a *errors.UnmarshalError. On failure *a is unchanged.
func (a *Alphabet) UnmarshalJSON(data []byte) error {
	var doc alphabetDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return &errors.UnmarshalError{Type: "Alphabet", Data: data, Reason: err.Error()}
	}
	return a.build(doc)
}

// MarshalYAML implements yaml.Marshaler for Alphabet. The mapping has the
// same fields as the JSON form.
func (a Alphabet) MarshalYAML() (any, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return alphabetDoc{Symbols: a.String(), CaseSensitive: a.caseSensitive}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Alphabet with the rules of
// UnmarshalJSON.
func (a *Alphabet) UnmarshalYAML(node *yaml.Node) error {
	var doc alphabetDoc
	if err := node.Decode(&doc); err != nil {
		return &errors.UnmarshalError{Type: "Alphabet", Data: []byte(node.Value), Reason: err.Error()}
	}
	return a.build(doc)
}

func (a *Alphabet) build(doc alphabetDoc) error {
	built, err := NewAlphabet(doc.Symbols, doc.CaseSensitive)
	if err != nil {
		return err
	}
	*a = built
	return nil
}

var (
	_ model.Model                = (*Alphabet)(nil)
	_ model.Comparable[Alphabet] = Alphabet{}
)
