// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base64

import (
	"bytes"
	"errors"
	"io/ioutil"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase64Coder(t *testing.T) {
	r := NewDecoder(bytes.NewBufferString(data))
	dec, err := ioutil.ReadAll(r)
	require.NoError(t, err)
	var buf bytes.Buffer
	encoder := NewEncoder(&buf, false)
	_, err = encoder.Write(dec)
	require.NoError(t, err)
	require.NoError(t, encoder.Close())
	assert.Equal(t, data, buf.String())
}

func TestEncoderChunks(t *testing.T) {
	src := make([]byte, 3000)
	for i := range src {
		src[i] = byte(i * 31)
	}
	for _, urlSafe := range []bool{false, true} {
		for _, chunk := range []int{1, 2, 3, 4, 7, 768, 1000, 3000} {
			var buf bytes.Buffer
			enc := NewEncoder(&buf, urlSafe)
			for i := 0; i < len(src); i += chunk {
				end := i + chunk
				if end > len(src) {
					end = len(src)
				}
				n, err := enc.Write(src[i:end])
				require.NoError(t, err)
				require.Equal(t, end-i, n)
			}
			require.NoError(t, enc.Close())
			assert.Equal(t, Encode(src, urlSafe), buf.String(), "chunk=%d urlSafe=%v", chunk, urlSafe)
		}
	}
}

func TestEncoderCloseWithoutWrite(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf, false)
	require.NoError(t, enc.Close())
	assert.Equal(t, "", buf.String())
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestEncoderWriteError(t *testing.T) {
	enc := NewEncoder(failWriter{}, false)
	_, err := enc.Write([]byte("foobar"))
	assert.Error(t, err)
	_, err = enc.Write([]byte("foobar"))
	assert.Error(t, err)
	assert.Error(t, enc.Close())
}

func TestDecoderMatchesDecode(t *testing.T) {
	src := make([]byte, 2500)
	for i := range src {
		src[i] = byte(i * 13)
	}
	inputs := []string{
		"",
		"T",
		"TQ==",
		"TWFu\n \t",
		Encode(src, false),
		Encode(src, true),
		strings.Join(strings.SplitAfter(Encode(src, false), "A"), "\r\n"),
	}
	for _, input := range inputs {
		dec, err := ioutil.ReadAll(NewDecoder(strings.NewReader(input)))
		require.NoError(t, err)
		assert.Equal(t, Decode(input), dec)

		// one byte at a time
		dec, err = ioutil.ReadAll(NewDecoder(iotest.OneByteReader(strings.NewReader(input))))
		require.NoError(t, err)
		assert.Equal(t, Decode(input), dec)

		// data and EOF together
		dec, err = ioutil.ReadAll(NewDecoder(iotest.DataErrReader(strings.NewReader(input))))
		require.NoError(t, err)
		assert.Equal(t, Decode(input), dec)
	}
}

func TestDecoderReadError(t *testing.T) {
	_, err := ioutil.ReadAll(NewDecoder(iotest.TimeoutReader(strings.NewReader("TWFuTWFu"))))
	assert.Equal(t, iotest.ErrTimeout, err)
}
