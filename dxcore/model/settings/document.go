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

package settings

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"

	"dirpx.dev/dxvig/dxcore/errors"
	"dirpx.dev/dxvig/dxcore/model"
	bsemver "github.com/blang/semver/v4"
	"gopkg.in/yaml.v3"
)

// CurrentVersion is the document version written by Encode.
const CurrentVersion = "1.0.0"

// SupportedVersions is the SemVer range of document versions Parse accepts.
const SupportedVersions = ">=1.0.0 <2.0.0"

var supported = bsemver.MustParseRange(SupportedVersions)

// Document is the on-disk form of a Config:
//
//	version: 1.0.0
//	cipher:
//	  variant: beaufort-cipher
//	  key: lemon
//	  alphabet: abcdefghijklmnopqrstuvwxyz
//	  caseSensitivity: false
//	  includeForeignChars: true
//
// Version is optional. JSON documents with the same shape are accepted too.
type Document struct {
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	Cipher  Config `json:"cipher" yaml:"cipher"`
}

// NewDocument returns a Document holding c, stamped with CurrentVersion.
func NewDocument(c Config) Document {
	return Document{Version: CurrentVersion, Cipher: c}
}

// Parse decodes a YAML or JSON document into a validated Config. Settings
// the document does not name keep their Default values.
func Parse(data []byte) (Config, error) {
	doc := Document{Cipher: Default()}
	if err := model.FromYAML(data, &doc); err != nil {
		return Config{}, fmt.Errorf("settings: parse document: %w", err)
	}
	return doc.Cipher, nil
}

// Load reads the document at path and parses it with Parse.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("settings: read %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("settings: load %s: %w", path, err)
	}
	return c, nil
}

// Encode renders c as a YAML document stamped with CurrentVersion. Invalid
// configurations are not encoded.
func Encode(c Config) ([]byte, error) {
	doc := NewDocument(c)
	return model.ToYAML(&doc)
}

// EncodeJSON is Encode for hosts that store their settings as JSON. Parse
// reads the result back.
func EncodeJSON(c Config) ([]byte, error) {
	doc := NewDocument(c)
	return model.ToJSON(&doc)
}

// Validate checks the version against SupportedVersions and validates the
// cipher configuration. An empty Version is accepted.
func (d Document) Validate() error {
	if err := checkVersion(d.Version); err != nil {
		return err
	}
	return d.Cipher.Validate()
}

// TypeName returns "Document".
func (d Document) TypeName() string {
	return "Document"
}

// IsZero reports whether both the version and the configuration are zero.
func (d Document) IsZero() bool {
	return d.Version == "" && d.Cipher.IsZero()
}

// String returns the document including the key. It MUST NOT be used for
// logging.
func (d Document) String() string {
	return "Document{Version:" + d.Version + ", Cipher:" + d.Cipher.String() + "}"
}

// Redacted returns the document with the key masked.
func (d Document) Redacted() string {
	return "Document{Version:" + d.Version + ", Cipher:" + d.Cipher.Redacted() + "}"
}

// MarshalJSON implements json.Marshaler. Invalid documents are not encoded.
func (d Document) MarshalJSON() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	type alias Document
	return json.Marshal(alias(d))
}

// UnmarshalJSON implements json.Unmarshaler. The cipher section starts from
// Default; the result is validated.
func (d *Document) UnmarshalJSON(data []byte) error {
	type alias Document
	a := alias{Cipher: Default()}
	if err := json.Unmarshal(data, &a); err != nil {
		if stderrors.Is(err, errors.ErrInvalidConfiguration) {
			return err
		}
		return &errors.UnmarshalError{Type: "Document", Data: data, Reason: err.Error()}
	}
	if err := Document(a).Validate(); err != nil {
		return err
	}
	*d = Document(a)
	return nil
}

// MarshalYAML implements yaml.Marshaler. Invalid documents are not encoded.
func (d Document) MarshalYAML() (any, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	type alias Document
	return alias(d), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The cipher section starts from
// Default; the result is validated.
func (d *Document) UnmarshalYAML(node *yaml.Node) error {
	type alias Document
	a := alias{Cipher: Default()}
	if err := node.Decode(&a); err != nil {
		if stderrors.Is(err, errors.ErrInvalidConfiguration) {
			return err
		}
		return &errors.UnmarshalError{Type: "Document", Data: []byte(node.Value), Reason: err.Error()}
	}
	if err := Document(a).Validate(); err != nil {
		return err
	}
	*d = Document(a)
	return nil
}

func checkVersion(v string) error {
	if v == "" {
		return nil
	}
	parsed, err := bsemver.ParseTolerant(v)
	if err != nil {
		return &errors.ValidationError{Type: "Document", Field: "Version", Reason: err.Error(), Value: v}
	}
	if !supported(parsed) {
		return &errors.ValidationError{
			Type:   "Document",
			Field:  "Version",
			Reason: "unsupported version " + parsed.String() + ", want " + SupportedVersions,
			Value:  v,
		}
	}
	return nil
}

// Compile-time check that Document implements model.Model interface.
var _ model.Model = (*Document)(nil)
