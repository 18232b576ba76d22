// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package base64 implements base64 encoding and decoding as defined in
// RFC 4648.
//
// Two alphabets are supported: the standard alphabet with '+' and '/' which
// pads its output with '=' to a multiple of four characters, and the URL and
// filename safe alphabet with '-' and '_' which omits padding.
//
// Decoding accepts both alphabets, even mixed in one input. By default it is
// lenient and silently drops every character which is not part of an
// alphabet, including whitespace and padding. A Codec with Strict set rejects
// such characters instead, except for whitespace and padding.
//
// Next to raw bytes the package converts UTF-8 text and binary strings
// (strings whose characters all have code points up to 0xFF, one per byte),
// the latter being compatible with the btoa and atob functions of browsers.
package base64

import (
	"unicode/utf8"

	"github.com/mutecomm/b64/log"
)

// Encode returns the base64 encoding of src. If urlSafe is true the URL and
// filename safe alphabet is used and the padding is omitted.
func Encode(src []byte, urlSafe bool) string {
	a := alphabetFor(urlSafe)
	dst := make([]byte, a.encodedLen(len(src)))
	n := a.encode(dst, src)
	return string(dst[:n])
}

// EncodeURL returns the unpadded URL and filename safe base64 encoding of src.
func EncodeURL(src []byte) string {
	return Encode(src, true)
}

// EncodedLen returns the length of the base64 encoding of n bytes.
func EncodedLen(n int, urlSafe bool) int {
	return alphabetFor(urlSafe).encodedLen(n)
}

// Decode returns the bytes represented by the base64 string s. Both alphabets
// are accepted and all other characters are ignored, therefore Decode never
// fails.
func Decode(s string) []byte {
	dst, _ := decode(s, false)
	return dst
}

// DecodeStrict is like Decode, but returns an *InvalidCharacterError if s
// contains a character which is neither part of an alphabet, the padding
// character nor whitespace.
func DecodeStrict(s string) ([]byte, error) {
	return decode(s, true)
}

func decode(s string, strict bool) ([]byte, error) {
	var g group
	dst := make([]byte, 0, len(s)/4*3+2)
	for i := 0; i < len(s); i++ {
		v := decodeMap[s[i]]
		if v == invalid {
			if strict && !skippable(s[i]) {
				r, _ := utf8.DecodeRuneInString(s[i:])
				return nil, log.Error(&InvalidCharacterError{Offset: i, Char: r})
			}
			continue
		}
		dst = g.add(dst, v)
	}
	return g.flush(dst), nil
}

// skippable reports whether c may appear in strictly decoded input without
// being part of an alphabet.
func skippable(c byte) bool {
	switch c {
	case PadChar, ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
