// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base64

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCharacter is matched by errors.Is for every
	// *InvalidCharacterError.
	ErrInvalidCharacter = errors.New("base64: invalid character")

	// ErrCharacterRange is matched by errors.Is for every
	// *CharacterRangeError.
	ErrCharacterRange = errors.New("base64: character out of range")

	// ErrInvalidUTF8 is matched by errors.Is for every *InvalidUTF8Error.
	ErrInvalidUTF8 = errors.New("base64: invalid UTF-8")
)

// InvalidCharacterError is returned by strict decoding if the input contains
// a character which is neither part of an alphabet, padding nor whitespace.
type InvalidCharacterError struct {
	Offset int  // byte offset in the input
	Char   rune // offending character
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("base64: invalid character %q at offset %d", e.Char, e.Offset)
}

// Unwrap returns ErrInvalidCharacter.
func (e *InvalidCharacterError) Unwrap() error { return ErrInvalidCharacter }

// CharacterRangeError is returned if a binary string contains a character
// with a code point above 0xFF, which cannot be represented as a single byte.
type CharacterRangeError struct {
	Offset int // byte offset in the input
	Rune   rune
}

func (e *CharacterRangeError) Error() string {
	return fmt.Sprintf("base64: character %U at offset %d is out of range", e.Rune, e.Offset)
}

// Unwrap returns ErrCharacterRange.
func (e *CharacterRangeError) Unwrap() error { return ErrCharacterRange }

// InvalidUTF8Error is returned if decoded bytes are not valid UTF-8 text.
type InvalidUTF8Error struct {
	Offset int // offset of the first invalid byte in the decoded bytes
}

func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("base64: invalid UTF-8 at offset %d", e.Offset)
}

// Unwrap returns ErrInvalidUTF8.
func (e *InvalidUTF8Error) Unwrap() error { return ErrInvalidUTF8 }
