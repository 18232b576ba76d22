// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package b64engine

import (
	"io"

	"github.com/mutecomm/b64/encode/base64"
	"github.com/mutecomm/b64/log"
	"github.com/mutecomm/b64/util"
	"github.com/urfave/cli"
)

func (e *Engine) encode(args cli.Args, inFile, outFile string, urlSafe bool) error {
	r, err := e.input(args, inFile)
	if err != nil {
		return err
	}
	return e.output(outFile, true, func(w io.Writer) error {
		enc := base64.NewEncoder(w, urlSafe)
		n, err := io.Copy(enc, r)
		if err != nil {
			return log.Error(err)
		}
		if err := enc.Close(); err != nil {
			return log.Error(err)
		}
		log.Infof("b64engine: encoded %d bytes (urlSafe=%v)", n, urlSafe)
		return nil
	})
}

func (e *Engine) decode(
	args cli.Args,
	inFile, outFile string,
	codec *base64.Codec,
	text bool,
) error {
	r, err := e.input(args, inFile)
	if err != nil {
		return err
	}
	// lenient binary decoding can be streamed
	if !codec.Strict && !text {
		return e.output(outFile, false, func(w io.Writer) error {
			n, err := io.Copy(w, base64.NewDecoder(r))
			if err != nil {
				return log.Error(err)
			}
			log.Infof("b64engine: decoded %d bytes", n)
			return nil
		})
	}
	buf, err := util.ReadAll(r)
	if err != nil {
		return err
	}
	var dec []byte
	if text {
		s, err := codec.DecodeText(string(buf))
		if err != nil {
			return err
		}
		dec = []byte(s)
	} else {
		dec, err = codec.Decode(string(buf))
		if err != nil {
			return err
		}
	}
	log.Infof("b64engine: decoded %d bytes (strict=%v)", len(dec), codec.Strict)
	return e.output(outFile, false, func(w io.Writer) error {
		if _, err := w.Write(dec); err != nil {
			return log.Error(err)
		}
		return nil
	})
}

func (e *Engine) btoa(args cli.Args, inFile, outFile string) error {
	r, err := e.input(args, inFile)
	if err != nil {
		return err
	}
	buf, err := util.ReadAll(r)
	if err != nil {
		return err
	}
	enc, err := base64.EncodeBinaryString(string(buf))
	if err != nil {
		return err
	}
	return e.output(outFile, true, func(w io.Writer) error {
		if _, err := io.WriteString(w, enc); err != nil {
			return log.Error(err)
		}
		return nil
	})
}

func (e *Engine) atob(args cli.Args, inFile, outFile string) error {
	r, err := e.input(args, inFile)
	if err != nil {
		return err
	}
	buf, err := util.ReadAll(r)
	if err != nil {
		return err
	}
	bin := base64.DecodeBinaryString(string(buf))
	return e.output(outFile, false, func(w io.Writer) error {
		if _, err := io.WriteString(w, bin); err != nil {
			return log.Error(err)
		}
		return nil
	})
}
