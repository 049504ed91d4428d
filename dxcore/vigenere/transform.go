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

// Package vigenere implements the Vigenère, Beaufort and variant Beaufort
// polyalphabetic substitution ciphers over a configurable alphabet.
//
// Transform is the pure core: it maps content under a validated
// settings.Transformation and never fails. Engine wraps a Transformation for
// hosts that reconfigure at runtime.
//
// For each content symbol that is a member of the alphabet, with p its
// alphabet index, k the index of the current key symbol and n the alphabet
// length, the output symbol is alphabet[(shift) mod n] where shift is
//
//	variant            encode   decode
//	standard           p + k    p - k
//	beaufort-cipher    k - p    k - p
//	variant-beaufort   p - k    p + k
//
// Symbols outside the alphabet do not advance the key. They are copied or
// dropped according to IncludeForeignChars.
package vigenere

import (
	"strings"

	"dirpx.dev/dxvig/dxcore/model"
	"dirpx.dev/dxvig/dxcore/model/settings"
	"dirpx.dev/dxvig/dxcore/model/symbol"
)

// Stats counts what a run did with its content symbols.
type Stats struct {
	// Substituted is the number of alphabet symbols mapped through the key.
	Substituted int

	// Passed is the number of foreign symbols copied to the output.
	Passed int

	// Dropped is the number of foreign symbols removed from the output.
	Dropped int
}

// Transform maps content under t. When encode is false it applies the
// inverse mapping. When t is case-insensitive the content is folded to lower
// case first and the output keeps the folded case.
func Transform(content string, t settings.Transformation, encode bool) string {
	out, _ := TransformStats(content, t, encode)
	return out
}

// TransformStats is Transform that also reports per-class symbol counts.
func TransformStats(content string, t settings.Transformation, encode bool) (string, Stats) {
	if !t.CaseSensitive() {
		content = symbol.FoldString(content)
	}

	var (
		b      strings.Builder
		stats  Stats
		cursor int
		n      = t.Alphabet.Len()
	)
	b.Grow(len(content))

	for _, r := range content {
		p, ok := t.Alphabet.IndexOf(r)
		if !ok {
			if t.IncludeForeignChars {
				b.WriteRune(r)
				stats.Passed++
			} else {
				stats.Dropped++
			}
			continue
		}

		shift := t.Variant.Shift(p, t.Key.OffsetAt(cursor), encode)
		b.WriteRune(t.Alphabet.At(model.FloorMod(shift, n)))
		cursor++
		stats.Substituted++
	}

	return b.String(), stats
}
