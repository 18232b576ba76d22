// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base64

// String is a string with base64 helper methods. Convert a value explicitly
// to use them, e.g. base64.String(s).ToBase64URL().
type String string

// FromBase64 decodes s into text.
func (s String) FromBase64() (string, error) {
	return DecodeText(string(s))
}

// ToBase64 encodes the text s.
func (s String) ToBase64(urlSafe bool) string {
	return EncodeText(string(s), urlSafe)
}

// ToBase64URL encodes the text s with the URL safe alphabet.
func (s String) ToBase64URL() string {
	return EncodeText(string(s), true)
}

// ToBytes decodes s into bytes.
func (s String) ToBytes() []byte {
	return Decode(string(s))
}

// Bytes is a byte slice with base64 helper methods.
type Bytes []byte

// ToBase64 encodes b.
func (b Bytes) ToBase64(urlSafe bool) string {
	return Encode(b, urlSafe)
}

// ToBase64URL encodes b with the URL safe alphabet.
func (b Bytes) ToBase64URL() string {
	return Encode(b, true)
}
