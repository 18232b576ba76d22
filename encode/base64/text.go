// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base64

import (
	"unicode/utf8"

	"github.com/mutecomm/b64/log"
	"golang.org/x/text/encoding/charmap"
)

// Binary strings map every byte to the character with the same code point,
// which is exactly ISO 8859-1.
var latin1 = charmap.ISO8859_1

// EncodeText returns the base64 encoding of the UTF-8 representation of text.
func EncodeText(text string, urlSafe bool) string {
	return Encode([]byte(text), urlSafe)
}

// EncodeTextURL returns the URL safe base64 encoding of text.
func EncodeTextURL(text string) string {
	return EncodeText(text, true)
}

// DecodeText decodes s leniently and interprets the result as UTF-8 text.
func DecodeText(s string) (string, error) {
	return Lenient.DecodeText(s)
}

// EncodeBinaryString returns the base64 encoding of the binary string bin
// (the btoa contract). Every character of bin stands for one byte, so a
// *CharacterRangeError is returned if a code point exceeds 0xFF.
func EncodeBinaryString(bin string) (string, error) {
	b, err := binaryBytes(bin)
	if err != nil {
		return "", err
	}
	return Encode(b, false), nil
}

// DecodeBinaryString decodes s leniently into a binary string with one
// character per decoded byte (the atob contract).
func DecodeBinaryString(s string) string {
	return binaryString(Decode(s))
}

// UTF8ToBinary returns the binary string made of the UTF-8 bytes of text.
func UTF8ToBinary(text string) string {
	return binaryString([]byte(text))
}

// BinaryToUTF8 reverses UTF8ToBinary. It fails if bin contains characters
// above 0xFF or if the bytes it stands for are not valid UTF-8.
func BinaryToUTF8(bin string) (string, error) {
	b, err := binaryBytes(bin)
	if err != nil {
		return "", err
	}
	if err := validUTF8(b); err != nil {
		return "", err
	}
	return string(b), nil
}

func binaryBytes(bin string) ([]byte, error) {
	for i, r := range bin {
		if r > 0xff {
			return nil, log.Error(&CharacterRangeError{Offset: i, Rune: r})
		}
	}
	b, err := latin1.NewEncoder().Bytes([]byte(bin))
	if err != nil {
		return nil, log.Error(err)
	}
	return b, nil
}

func binaryString(b []byte) string {
	s, err := latin1.NewDecoder().Bytes(b)
	if err != nil {
		// every byte is a valid ISO 8859-1 character
		panic(log.Critical(err))
	}
	return string(s)
}

func validUTF8(b []byte) error {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return log.Error(&InvalidUTF8Error{Offset: i})
		}
		i += size
	}
	return nil
}
