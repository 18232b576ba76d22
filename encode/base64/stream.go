// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base64

import (
	"io"
)

const streamChunk = 1024

type encoder struct {
	err   error
	alpha *alphabet
	w     io.Writer
	buf   [3]byte // buffered partial group
	nbuf  int
	out   [streamChunk]byte
}

// NewEncoder returns a new base64 stream encoder. Data written to it is
// encoded and written to w. The caller must Close the encoder to flush a
// partial final group. The output equals Encode(data, urlSafe).
func NewEncoder(w io.Writer, urlSafe bool) io.WriteCloser {
	return &encoder{alpha: alphabetFor(urlSafe), w: w}
}

func (e *encoder) Write(p []byte) (n int, err error) {
	if e.err != nil {
		return 0, e.err
	}

	// complete buffered group
	if e.nbuf > 0 {
		var i int
		for i = 0; i < len(p) && e.nbuf < 3; i++ {
			e.buf[e.nbuf] = p[i]
			e.nbuf++
		}
		n += i
		p = p[i:]
		if e.nbuf < 3 {
			return
		}
		m := e.alpha.encode(e.out[:], e.buf[:])
		if _, e.err = e.w.Write(e.out[:m]); e.err != nil {
			return n, e.err
		}
		e.nbuf = 0
	}

	// full groups
	for len(p) >= 3 {
		nn := len(e.out) / 4 * 3
		if nn > len(p) {
			nn = len(p) / 3 * 3
		}
		m := e.alpha.encode(e.out[:], p[:nn])
		if _, e.err = e.w.Write(e.out[:m]); e.err != nil {
			return n, e.err
		}
		n += nn
		p = p[nn:]
	}

	// keep the rest
	copy(e.buf[:], p)
	e.nbuf = len(p)
	n += len(p)
	return
}

// Close flushes any pending output. It does not close the underlying writer.
func (e *encoder) Close() error {
	if e.err == nil && e.nbuf > 0 {
		m := e.alpha.encode(e.out[:], e.buf[:e.nbuf])
		_, e.err = e.w.Write(e.out[:m])
		e.nbuf = 0
	}
	return e.err
}

type decoder struct {
	err    error
	r      io.Reader
	g      group
	in     [streamChunk]byte
	outbuf [streamChunk/4*3 + 2]byte
	out    []byte // decoded but not yet read
}

// NewDecoder returns a new lenient base64 stream decoder reading from r.
// Characters outside of both alphabets are ignored, as with Decode.
func NewDecoder(r io.Reader) io.Reader {
	return &decoder{r: r}
}

func (d *decoder) Read(p []byte) (int, error) {
	for len(d.out) == 0 {
		if d.err != nil {
			return 0, d.err
		}
		nr, err := d.r.Read(d.in[:])
		d.out = d.outbuf[:0]
		for _, c := range d.in[:nr] {
			if v := decodeMap[c]; v != invalid {
				d.out = d.g.add(d.out, v)
			}
		}
		if err != nil {
			if err == io.EOF {
				d.out = d.g.flush(d.out)
			}
			d.err = err
		}
	}
	n := copy(p, d.out)
	d.out = d.out[n:]
	return n, nil
}
