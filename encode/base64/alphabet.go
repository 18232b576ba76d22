// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base64

const (
	stdChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	urlChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

	// PadChar is the padding character of the standard alphabet.
	PadChar = '='

	invalid = 0xff
)

// alphabet maps the 64 symbol values to characters.
type alphabet struct {
	chars   string
	padding bool
}

var (
	stdAlphabet = &alphabet{chars: stdChars, padding: true}
	urlAlphabet = &alphabet{chars: urlChars}
)

// decodeMap is the inverse of both alphabets. It is filled once in init and
// only read afterwards.
var decodeMap [256]byte

func init() {
	for i := range decodeMap {
		decodeMap[i] = invalid
	}
	for i := 0; i < len(stdChars); i++ {
		decodeMap[stdChars[i]] = byte(i)
		decodeMap[urlChars[i]] = byte(i)
	}
}

func alphabetFor(urlSafe bool) *alphabet {
	if urlSafe {
		return urlAlphabet
	}
	return stdAlphabet
}

// encode writes the encoding of src to dst and returns the number of bytes
// written. dst must hold at least encodedLen(len(src)) bytes.
func (a *alphabet) encode(dst, src []byte) int {
	n := 0
	for i := 0; i < len(src); i += 3 {
		rem := len(src) - i
		ord := uint32(src[i]) << 16
		if rem > 1 {
			ord |= uint32(src[i+1]) << 8
		}
		if rem > 2 {
			ord |= uint32(src[i+2])
		}
		dst[n] = a.chars[ord>>18]
		dst[n+1] = a.chars[ord>>12&0x3f]
		n += 2
		if rem > 1 {
			dst[n] = a.chars[ord>>6&0x3f]
			n++
		} else if a.padding {
			dst[n] = PadChar
			n++
		}
		if rem > 2 {
			dst[n] = a.chars[ord&0x3f]
			n++
		} else if a.padding {
			dst[n] = PadChar
			n++
		}
	}
	return n
}

func (a *alphabet) encodedLen(n int) int {
	if a.padding {
		return (n + 2) / 3 * 4
	}
	return n/3*4 + [3]int{0, 2, 3}[n%3]
}

// group collects 6-bit symbols into a 24-bit quantum.
type group struct {
	ord uint32
	n   int
}

// add appends v to the quantum and appends the three decoded bytes to dst
// once the quantum is full.
func (g *group) add(dst []byte, v byte) []byte {
	g.ord = g.ord<<6 | uint32(v)
	g.n++
	if g.n == 4 {
		dst = append(dst, byte(g.ord>>16), byte(g.ord>>8), byte(g.ord))
		g.ord, g.n = 0, 0
	}
	return dst
}

// flush appends the bytes of a partial quantum to dst. Two symbols yield one
// byte, three symbols two bytes. A single trailing symbol carries less than a
// byte and is dropped.
func (g *group) flush(dst []byte) []byte {
	switch g.n {
	case 2:
		dst = append(dst, byte(g.ord>>4))
	case 3:
		dst = append(dst, byte(g.ord>>10), byte(g.ord>>2))
	}
	g.ord, g.n = 0, 0
	return dst
}
