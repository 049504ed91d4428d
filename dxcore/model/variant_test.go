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
	stderrors "errors"
	"testing"

	"dirpx.dev/dxvig/dxcore/errors"
	"gopkg.in/yaml.v3"
)

func TestVariant_String(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		want    string
	}{
		{"Standard", Standard, "standard"},
		{"Beaufort", Beaufort, "beaufort-cipher"},
		{"VariantBeaufort", VariantBeaufort, "variant-beaufort-cipher"},
		{"Unknown", Variant(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.variant.String(); got != tt.want {
				t.Errorf("Variant.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Variant
		wantErr bool
	}{
		// Valid inputs - standard
		{"standard", "standard", Standard, false},
		{"Standard", "Standard", Standard, false},
		{"STANDARD", "STANDARD", Standard, false},
		{"vigenere", "vigenere", Standard, false},

		// Valid inputs - beaufort
		{"beaufort-cipher", "beaufort-cipher", Beaufort, false},
		{"BeaufortCipher", "BeaufortCipher", Beaufort, false},
		{"beaufort_cipher", "beaufort_cipher", Beaufort, false},
		{"BEAUFORT_CIPHER", "BEAUFORT_CIPHER", Beaufort, false},
		{"beaufort", "beaufort", Beaufort, false},

		// Valid inputs - variant beaufort
		{"variant-beaufort-cipher", "variant-beaufort-cipher", VariantBeaufort, false},
		{"VariantBeaufortCipher", "VariantBeaufortCipher", VariantBeaufort, false},
		{"variant_beaufort_cipher", "variant_beaufort_cipher", VariantBeaufort, false},
		{"variant-beaufort", "variant-beaufort", VariantBeaufort, false},

		// Invalid inputs
		{"empty", "", Standard, true},
		{"caesar", "caesar", Standard, true},
		{"number", "1", Standard, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVariant(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseVariant() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseVariant() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseVariant_ErrorIsInvalidConfiguration(t *testing.T) {
	_, err := ParseVariant("caesar")
	if !stderrors.Is(err, errors.ErrInvalidConfiguration) {
		t.Errorf("ParseVariant() error = %v, want ErrInvalidConfiguration", err)
	}
	var perr *errors.ParseError
	if !stderrors.As(err, &perr) || perr.Value != "caesar" {
		t.Errorf("ParseVariant() error = %#v, want *ParseError for caesar", err)
	}
}

func TestVariant_Shift(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		p, k    int
		encode  bool
		want    int
	}{
		{"standard encode", Standard, 7, 2, true, 9},
		{"standard decode", Standard, 9, 2, false, 7},
		{"standard decode negative", Standard, 1, 3, false, -2},
		{"beaufort encode", Beaufort, 0, 10, true, 10},
		{"beaufort decode", Beaufort, 0, 10, false, 10},
		{"beaufort negative", Beaufort, 2, 0, true, -2},
		{"variant beaufort encode", VariantBeaufort, 3, 1, true, 2},
		{"variant beaufort decode", VariantBeaufort, 2, 1, false, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.variant.Shift(tt.p, tt.k, tt.encode); got != tt.want {
				t.Errorf("Shift(%d, %d, %v) = %d, want %d", tt.p, tt.k, tt.encode, got, tt.want)
			}
		})
	}
}

func TestVariant_Shift_Inverse(t *testing.T) {
	const n = 26
	for _, v := range Variants {
		t.Run(v.String(), func(t *testing.T) {
			for p := 0; p < n; p++ {
				for k := 0; k < n; k++ {
					enc := FloorMod(v.Shift(p, k, true), n)
					dec := FloorMod(v.Shift(enc, k, false), n)
					if dec != p {
						t.Fatalf("decode(encode(%d)) with key %d = %d", p, k, dec)
					}
				}
			}
		})
	}
}

func TestVariant_Shift_InvalidPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Shift() with invalid Variant did not panic")
		}
	}()
	Variant(99).Shift(1, 1, true)
}

func TestFloorMod(t *testing.T) {
	tests := []struct {
		a, n, want int
	}{
		{0, 26, 0},
		{25, 26, 25},
		{26, 26, 0},
		{35, 26, 9},
		{-1, 26, 25},
		{-26, 26, 0},
		{-27, 26, 25},
		{5, 1, 0},
		{-5, 1, 0},
	}

	for _, tt := range tests {
		if got := FloorMod(tt.a, tt.n); got != tt.want {
			t.Errorf("FloorMod(%d, %d) = %d, want %d", tt.a, tt.n, got, tt.want)
		}
	}
}

func TestVariant_Valid(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		want    bool
	}{
		{"Standard", Standard, true},
		{"Beaufort", Beaufort, true},
		{"VariantBeaufort", VariantBeaufort, true},
		{"Invalid negative", Variant(-1), false},
		{"Invalid positive", Variant(3), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.variant.Valid(); got != tt.want {
				t.Errorf("Variant.Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVariant_MarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		want    string
		wantErr bool
	}{
		{"Standard", Standard, `"standard"`, false},
		{"Beaufort", Beaufort, `"beaufort-cipher"`, false},
		{"VariantBeaufort", VariantBeaufort, `"variant-beaufort-cipher"`, false},
		{"Invalid", Variant(99), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.variant)
			if (err != nil) != tt.wantErr {
				t.Errorf("Variant.MarshalJSON() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && string(got) != tt.want {
				t.Errorf("Variant.MarshalJSON() = %v, want %v", string(got), tt.want)
			}
		})
	}
}

func TestVariant_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Variant
		wantErr bool
	}{
		// String format
		{"standard string", `"standard"`, Standard, false},
		{"beaufort string", `"beaufort-cipher"`, Beaufort, false},
		{"variant beaufort alias", `"variant-beaufort"`, VariantBeaufort, false},

		// Numeric format
		{"standard numeric", `0`, Standard, false},
		{"beaufort numeric", `1`, Beaufort, false},
		{"variant beaufort numeric", `2`, VariantBeaufort, false},

		// Invalid inputs
		{"empty", `""`, Standard, true},
		{"invalid string", `"caesar"`, Standard, true},
		{"invalid number", `99`, Standard, true},
		{"bool", `true`, Standard, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Variant
			err := json.Unmarshal([]byte(tt.input), &got)
			if (err != nil) != tt.wantErr {
				t.Errorf("Variant.UnmarshalJSON() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Variant.UnmarshalJSON() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVariant_YAML(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		want    string
	}{
		{"Standard", Standard, "standard\n"},
		{"Beaufort", Beaufort, "beaufort-cipher\n"},
		{"VariantBeaufort", VariantBeaufort, "variant-beaufort-cipher\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := yaml.Marshal(tt.variant)
			if err != nil {
				t.Errorf("yaml.Marshal() error = %v", err)
				return
			}
			if string(got) != tt.want {
				t.Errorf("yaml.Marshal() = %v, want %v", string(got), tt.want)
			}

			var variant Variant
			if err := yaml.Unmarshal(got, &variant); err != nil {
				t.Errorf("yaml.Unmarshal() error = %v", err)
				return
			}
			if variant != tt.variant {
				t.Errorf("yaml.Unmarshal() = %v, want %v", variant, tt.variant)
			}
		})
	}
}

func TestVariant_UnmarshalYAML_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown name", "caesar\n"},
		{"bare number", "1\n"},
		{"sequence", "[standard]\n"},
		{"mapping", "name: standard\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := VariantBeaufort
			err := yaml.Unmarshal([]byte(tt.input), &v)
			if err == nil {
				t.Fatal("yaml.Unmarshal() returned nil error")
			}
			if !stderrors.Is(err, errors.ErrInvalidConfiguration) {
				t.Errorf("yaml.Unmarshal() error = %v, want ErrInvalidConfiguration", err)
			}
			if v != VariantBeaufort {
				t.Errorf("failed decode changed the value to %v", v)
			}
		})
	}
}

func TestVariant_UnmarshalJSON_ErrorsAreInvalidConfiguration(t *testing.T) {
	for _, input := range []string{`"caesar"`, `99`, `-1`, `true`, `[0]`} {
		t.Run(input, func(t *testing.T) {
			v := Beaufort
			err := v.UnmarshalJSON([]byte(input))
			if !stderrors.Is(err, errors.ErrInvalidConfiguration) {
				t.Errorf("UnmarshalJSON(%s) error = %v, want ErrInvalidConfiguration", input, err)
			}
			if v != Beaufort {
				t.Errorf("failed decode changed the value to %v", v)
			}
		})
	}
}

func TestVariant_Text(t *testing.T) {
	for _, original := range Variants {
		t.Run(original.String(), func(t *testing.T) {
			text, err := original.MarshalText()
			if err != nil {
				t.Fatalf("MarshalText() error = %v", err)
			}
			var got Variant
			if err := got.UnmarshalText(text); err != nil {
				t.Fatalf("UnmarshalText() error = %v", err)
			}
			if got != original {
				t.Errorf("text round-trip: got %v, want %v", got, original)
			}
		})
	}

	if _, err := Variant(99).MarshalText(); err == nil {
		t.Error("Expected error marshaling invalid Variant as text, got nil")
	}

	v := Beaufort
	if err := v.UnmarshalText([]byte("caesar")); !stderrors.Is(err, errors.ErrInvalidConfiguration) {
		t.Errorf("UnmarshalText() error = %v, want ErrInvalidConfiguration", err)
	}
	if v != Beaufort {
		t.Errorf("failed UnmarshalText() changed the value to %v", v)
	}
}

func TestVariant_TypeName(t *testing.T) {
	var v Variant
	if got := v.TypeName(); got != "Variant" {
		t.Errorf("TypeName() = %v, want Variant", got)
	}
}

func TestVariant_Redacted(t *testing.T) {
	for _, v := range append(Variants, Variant(99)) {
		if got := v.Redacted(); got != v.String() {
			t.Errorf("Redacted() = %v, String() = %v (should match)", got, v.String())
		}
	}
}

func TestVariant_IsZero(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		want    bool
	}{
		{"Standard (zero value)", Standard, true},
		{"Beaufort", Beaufort, false},
		{"Invalid", Variant(99), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.variant.IsZero(); got != tt.want {
				t.Errorf("IsZero() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVariant_Equal(t *testing.T) {
	tests := []struct {
		name string
		v1   Variant
		v2   any
		want bool
	}{
		{"equal Standard", Standard, Standard, true},
		{"different values", Standard, Beaufort, false},
		{"pointer equal", Beaufort, func() *Variant { v := Beaufort; return &v }(), true},
		{"pointer different", Beaufort, func() *Variant { v := Standard; return &v }(), false},
		{"nil pointer", Standard, (*Variant)(nil), false},
		{"different type", Standard, "standard", false},
		{"different type int", Standard, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v1.Equal(tt.v2); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVariant_Validate(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		wantErr bool
	}{
		{"Standard valid", Standard, false},
		{"Beaufort valid", Beaufort, false},
		{"VariantBeaufort valid", VariantBeaufort, false},
		{"Invalid negative", Variant(-1), true},
		{"Invalid positive", Variant(99), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.variant.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !stderrors.Is(err, errors.ErrInvalidConfiguration) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfiguration", err)
			}
		})
	}
}
