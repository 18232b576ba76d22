// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package b64engine implements the command engine for b64.
package b64engine

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/mutecomm/b64/def/version"
	"github.com/mutecomm/b64/encode/base64"
	"github.com/mutecomm/b64/log"
	"github.com/mutecomm/b64/release"
	"github.com/mutecomm/b64/util"
	"github.com/urfave/cli"
)

func init() {
	cli.VersionPrinter = release.PrintVersion
}

// Engine abstracts a b64 command engine.
type Engine struct {
	in  io.Reader
	out io.Writer
	app *cli.App
}

// New returns a new b64 engine working on the standard file descriptors.
func New() *Engine {
	return NewWithIO(os.Stdin, os.Stdout, os.Stderr)
}

// NewWithIO returns a new b64 engine which reads input from in, writes
// results to out, and errors to errOut.
func NewWithIO(in io.Reader, out, errOut io.Writer) *Engine {
	e := &Engine{in: in, out: out}
	e.app = cli.NewApp()
	e.app.Name = "b64"
	e.app.Usage = "tool to encode and decode base64 (RFC 4648)"
	e.app.Version = version.Number
	e.app.Writer = out
	e.app.ErrWriter = errOut
	e.app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "loglevel",
			Value: "info",
			Usage: "logging level {trace, debug, info, warn, error, critical}",
		},
		cli.StringFlag{
			Name:  "logdir",
			Usage: "directory to log output",
		},
		cli.BoolFlag{
			Name:  "logconsole",
			Usage: "enable logging to console",
		},
	}
	e.app.Before = e.prepare
	inFlag := cli.StringFlag{
		Name:  "in",
		Usage: "read input from file instead of argument or standard input",
	}
	outFlag := cli.StringFlag{
		Name:  "out",
		Usage: "write output to file, which must not exist",
	}
	e.app.Commands = []cli.Command{
		{
			Name:      "encode",
			Usage:     "encode input to base64",
			ArgsUsage: "[text]",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "url",
					Usage: "use the URL and filename safe alphabet without padding",
				},
				inFlag,
				outFlag,
			},
			Action: func(c *cli.Context) error {
				return e.encode(c.Args(), c.String("in"), c.String("out"), c.Bool("url"))
			},
		},
		{
			Name:      "decode",
			Usage:     "decode base64 input (standard or URL safe alphabet)",
			ArgsUsage: "[base64]",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "strict",
					Usage: "fail on characters outside of the alphabet",
				},
				cli.BoolFlag{
					Name:  "text",
					Usage: "require the decoded bytes to be valid UTF-8",
				},
				inFlag,
				outFlag,
			},
			Action: func(c *cli.Context) error {
				codec := &base64.Codec{Strict: c.Bool("strict")}
				return e.decode(c.Args(), c.String("in"), c.String("out"), codec, c.Bool("text"))
			},
		},
		{
			Name:      "btoa",
			Usage:     "encode a binary string (characters up to U+00FF)",
			ArgsUsage: "[binary string]",
			Flags:     []cli.Flag{inFlag, outFlag},
			Action: func(c *cli.Context) error {
				return e.btoa(c.Args(), c.String("in"), c.String("out"))
			},
		},
		{
			Name:      "atob",
			Usage:     "decode base64 into a binary string",
			ArgsUsage: "[base64]",
			Flags:     []cli.Flag{inFlag, outFlag},
			Action: func(c *cli.Context) error {
				return e.atob(c.Args(), c.String("in"), c.String("out"))
			},
		},
	}
	return e
}

func (e *Engine) prepare(c *cli.Context) error {
	if err := util.CreateDirs(c.GlobalString("logdir")); err != nil {
		return err
	}
	return log.Init(c.GlobalString("loglevel"), "b64",
		c.GlobalString("logdir"), c.GlobalBool("logconsole"))
}

// Run runs the engine with the given command line (including the program
// name).
func (e *Engine) Run(args []string) error {
	defer log.Flush()
	return e.app.Run(args)
}

// input returns the reader the command operates on: the joined arguments,
// the file given with --in, or the engine input.
func (e *Engine) input(args cli.Args, inFile string) (io.Reader, error) {
	if len(args) > 0 {
		if inFile != "" {
			return nil, log.Error("b64engine: cannot use both argument and --in")
		}
		return strings.NewReader(strings.Join(args, " ")), nil
	}
	if inFile != "" {
		buf, err := util.ReadFile(inFile)
		if err != nil {
			return nil, err
		}
		return bytes.NewReader(buf), nil
	}
	if util.IsTerminal(e.in) {
		return nil, log.Error("b64engine: no input given and standard input is a terminal")
	}
	return e.in, nil
}

// output calls write with the destination writer. With an outFile the result
// is buffered and written to the file afterwards, otherwise it goes to the
// engine output followed by a newline if nl is set.
func (e *Engine) output(outFile string, nl bool, write func(w io.Writer) error) error {
	if outFile == "" {
		if err := write(e.out); err != nil {
			return err
		}
		if nl {
			if _, err := io.WriteString(e.out, "\n"); err != nil {
				return log.Error(err)
			}
		}
		return nil
	}
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return err
	}
	return util.WriteFile(outFile, buf.Bytes())
}
