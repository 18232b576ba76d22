// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base64

// Codec bundles the encoding and decoding operations with a decoding mode.
// The zero value decodes leniently.
type Codec struct {
	// Strict makes decoding fail on characters outside of both alphabets
	// which are neither padding nor whitespace.
	Strict bool
}

var (
	// Lenient is the default codec used by the package level functions.
	Lenient = &Codec{}

	// Strict rejects invalid characters while decoding.
	Strict = &Codec{Strict: true}
)

// Encode returns the base64 encoding of src, see Encode.
func (c *Codec) Encode(src []byte, urlSafe bool) string {
	return Encode(src, urlSafe)
}

// EncodeURL returns the URL safe base64 encoding of src.
func (c *Codec) EncodeURL(src []byte) string {
	return Encode(src, true)
}

// Decode returns the bytes represented by s. An error is only possible in
// strict mode.
func (c *Codec) Decode(s string) ([]byte, error) {
	return decode(s, c.Strict)
}

// EncodeText returns the base64 encoding of the UTF-8 representation of text.
func (c *Codec) EncodeText(text string, urlSafe bool) string {
	return EncodeText(text, urlSafe)
}

// DecodeText decodes s and returns the result as text. It fails with an
// *InvalidUTF8Error if the decoded bytes are not valid UTF-8.
func (c *Codec) DecodeText(s string) (string, error) {
	b, err := c.Decode(s)
	if err != nil {
		return "", err
	}
	if err := validUTF8(b); err != nil {
		return "", err
	}
	return string(b), nil
}

// EncodeBinaryString returns the base64 encoding of the binary string bin,
// see EncodeBinaryString.
func (c *Codec) EncodeBinaryString(bin string) (string, error) {
	return EncodeBinaryString(bin)
}

// DecodeBinaryString decodes s into a binary string with one character per
// decoded byte.
func (c *Codec) DecodeBinaryString(s string) (string, error) {
	b, err := c.Decode(s)
	if err != nil {
		return "", err
	}
	return binaryString(b), nil
}
