// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base64

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var texts = []string{
	"",
	"Hello, world",
	"✓",
	"Hello, 世界",
	"𝄞 clef",
	"小飼弾",
	strings.Repeat("äöü", 33),
}

func TestEncodeText(t *testing.T) {
	assert.Equal(t, "4pyT", EncodeText("✓", false))
	assert.Equal(t, "5bCP6aO85by+", EncodeText("小飼弾", false))
	assert.Equal(t, "5bCP6aO85by-", EncodeText("小飼弾", true))
	assert.Equal(t, "5bCP6aO85by-", EncodeTextURL("小飼弾"))
}

func TestTextRoundTrip(t *testing.T) {
	for _, text := range texts {
		for _, urlSafe := range []bool{false, true} {
			dec, err := DecodeText(EncodeText(text, urlSafe))
			require.NoError(t, err)
			assert.Equal(t, text, dec)
		}
	}
}

func TestDecodeTextInvalidUTF8(t *testing.T) {
	tests := []struct {
		raw    string
		offset int
	}{
		{"\xff", 0},
		{"a\xc3", 1},
		{"ok\xed\xa0\x80", 2}, // surrogate half
		{"✓\x80", 3},
	}
	for _, test := range tests {
		_, err := DecodeText(Encode([]byte(test.raw), false))
		if assert.Error(t, err) {
			assert.True(t, errors.Is(err, ErrInvalidUTF8))
			var iue *InvalidUTF8Error
			if assert.True(t, errors.As(err, &iue)) {
				assert.Equal(t, test.offset, iue.Offset)
			}
		}
	}
}

func TestEncodeBinaryString(t *testing.T) {
	enc, err := EncodeBinaryString("Man")
	require.NoError(t, err)
	assert.Equal(t, "TWFu", enc)

	enc, err = EncodeBinaryString("ÿ")
	require.NoError(t, err)
	assert.Equal(t, "/w==", enc)

	enc, err = EncodeBinaryString(UTF8ToBinary("✓"))
	require.NoError(t, err)
	assert.Equal(t, "4pyT", enc)
}

func TestEncodeBinaryStringRange(t *testing.T) {
	tests := []struct {
		bin    string
		offset int
		r      rune
	}{
		{"Ā", 0, 0x100},
		{"ab✓", 2, '✓'},
		{"ÿ\U0001d11e", 2, 0x1d11e},
	}
	for _, test := range tests {
		enc, err := EncodeBinaryString(test.bin)
		assert.Equal(t, "", enc)
		if assert.Error(t, err) {
			assert.True(t, errors.Is(err, ErrCharacterRange))
			var cre *CharacterRangeError
			if assert.True(t, errors.As(err, &cre)) {
				assert.Equal(t, test.offset, cre.Offset)
				assert.Equal(t, test.r, cre.Rune)
			}
		}
	}
}

func TestBinaryStringRoundTrip(t *testing.T) {
	var sb strings.Builder
	for r := rune(0); r <= 0xff; r++ {
		sb.WriteRune(r)
	}
	bin := sb.String()
	enc, err := EncodeBinaryString(bin)
	require.NoError(t, err)
	assert.Len(t, Decode(enc), 256)
	assert.Equal(t, bin, DecodeBinaryString(enc))
	assert.Equal(t, "", DecodeBinaryString(""))
}

func TestUTF8Binary(t *testing.T) {
	assert.Equal(t, "â\u009c\u0093", UTF8ToBinary("✓"))
	for _, text := range texts {
		s, err := BinaryToUTF8(UTF8ToBinary(text))
		require.NoError(t, err)
		assert.Equal(t, text, s)
	}

	_, err := BinaryToUTF8("ÿ")
	assert.True(t, errors.Is(err, ErrInvalidUTF8))
	_, err = BinaryToUTF8("Ā")
	assert.True(t, errors.Is(err, ErrCharacterRange))
}

func TestExtend(t *testing.T) {
	assert.Equal(t, "4pyT", String("✓").ToBase64(false))
	assert.Equal(t, "5bCP6aO85by-", String("小飼弾").ToBase64URL())
	text, err := String("5bCP6aO85by-").FromBase64()
	require.NoError(t, err)
	assert.Equal(t, "小飼弾", text)
	assert.Equal(t, []byte("Man"), String("TWFu").ToBytes())

	b := Bytes{0xfb, 0xff}
	assert.Equal(t, "+/8=", b.ToBase64(false))
	assert.Equal(t, "-_8", b.ToBase64URL())
	assert.Equal(t, "-_8", b.ToBase64(true))
}
