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

package symbol

import (
	"fmt"
	"slices"
	"unicode/utf8"

	"dirpx.dev/dxvig/dxcore/errors"
	"dirpx.dev/dxvig/dxcore/model"
)

// MinKeyLength is the minimum number of symbols in a Key.
const MinKeyLength = 2

// Key is the repeating key of a polyalphabetic cipher, bound to the
// Alphabet it was validated against.
//
// Key is also the key stream: the n-th participating content symbol (0-based)
// is shifted by the key symbol at n mod Len(). The caller owns the counter
// and advances it only for symbols found in the alphabet.
//
// The zero value is an empty key and is not valid.
type Key struct {
	symbols []rune
	offsets []int
}

// NewKey builds a Key from the code points of text, constrained to alphabet.
//
// When the alphabet is case-insensitive, key symbols are folded the same way
// the alphabet is. NewKey returns a *errors.ValidationError when the
// alphabet is empty, when text is empty, not valid UTF-8 or shorter than
// MinKeyLength, or when a symbol is not a member of the alphabet.
func NewKey(text string, alphabet Alphabet) (Key, error) {
	if err := alphabet.Validate(); err != nil {
		return Key{}, err
	}
	if text == "" {
		return Key{}, &errors.ValidationError{Type: "Key", Reason: "must not be empty"}
	}
	if !utf8.ValidString(text) {
		return Key{}, &errors.ValidationError{Type: "Key", Reason: "must be valid UTF-8"}
	}
	if n := utf8.RuneCountInString(text); n < MinKeyLength {
		return Key{}, &errors.ValidationError{
			Type:   "Key",
			Reason: fmt.Sprintf("must be at least %d symbols long", MinKeyLength),
			Value:  n,
		}
	}

	var k Key
	pos := 0
	for _, r := range text {
		if !alphabet.CaseSensitive() {
			r = Fold(r)
		}
		i, ok := alphabet.IndexOf(r)
		if !ok {
			return Key{}, &errors.ValidationError{
				Type:   "Key",
				Reason: fmt.Sprintf("symbol %q at position %d is not in the alphabet", r, pos),
				Value:  string(r),
			}
		}
		k.symbols = append(k.symbols, r)
		k.offsets = append(k.offsets, i)
		pos++
	}

	return k, nil
}

// Len returns the number of symbols in the key.
func (k Key) Len() int {
	return len(k.symbols)
}

// SymbolAt returns the key symbol used for the n-th participating content
// symbol, i.e. key[n mod Len()].
func (k Key) SymbolAt(n int) rune {
	return k.symbols[model.FloorMod(n, len(k.symbols))]
}

// OffsetAt returns the alphabet index of SymbolAt(n). Offsets are resolved
// once at construction.
func (k Key) OffsetAt(n int) int {
	return k.offsets[model.FloorMod(n, len(k.offsets))]
}

// String returns the key text, folded when the alphabet is case-insensitive.
// It MUST NOT be used for logging.
func (k Key) String() string {
	return string(k.symbols)
}

// Redacted returns a masked representation that does not reveal the key or
// its length.
func (k Key) Redacted() string {
	if k.IsZero() {
		return ""
	}
	return "[REDACTED]"
}

// TypeName returns "Key".
func (k Key) TypeName() string {
	return "Key"
}

// IsZero reports whether the key has no symbols.
func (k Key) IsZero() bool {
	return len(k.symbols) == 0
}

// Validate returns a *errors.ValidationError for keys shorter than
// MinKeyLength, including the zero Key.
func (k Key) Validate() error {
	if len(k.symbols) < MinKeyLength {
		return &errors.ValidationError{
			Type:   "Key",
			Reason: fmt.Sprintf("must be at least %d symbols long", MinKeyLength),
			Value:  len(k.symbols),
		}
	}
	return nil
}

// Equal reports whether both keys have the same symbols and offsets.
func (k Key) Equal(other Key) bool {
	return slices.Equal(k.symbols, other.symbols) && slices.Equal(k.offsets, other.offsets)
}

var (
	_ model.Validatable     = Key{}
	_ model.Loggable        = Key{}
	_ model.Identifiable    = Key{}
	_ model.ZeroCheckable   = Key{}
	_ model.Comparable[Key] = Key{}
)
