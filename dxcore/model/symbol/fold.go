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
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// A cases.Caser keeps per-call state and must not be shared between
// goroutines; Fold borrows one from the pool for each non-ASCII rune.
var lowerPool = sync.Pool{
	New: func() any {
		c := cases.Lower(language.Und)
		return &c
	},
}

// Fold returns the case-folded form of r used for case-insensitive
// comparison. Alphabet symbols, key symbols and content symbols all go
// through Fold, so a folded lookup always agrees with a folded alphabet.
//
// Fold lower-cases with the root locale. When lower-casing r would not
// produce exactly one rune (for example U+0130, which lower-cases to "i"
// plus a combining dot), r is returned unchanged so that the mapping stays
// one symbol to one symbol.
func Fold(r rune) rune {
	if r < utf8.RuneSelf {
		if 'A' <= r && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}

	c := lowerPool.Get().(*cases.Caser)
	s := c.String(string(r))
	lowerPool.Put(c)

	f, size := utf8.DecodeRuneInString(s)
	if f == utf8.RuneError || size != len(s) {
		return r
	}
	return f
}

// FoldString applies Fold to every rune of s.
func FoldString(s string) string {
	return strings.Map(Fold, s)
}
