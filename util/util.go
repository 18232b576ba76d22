// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package util contains utility functions for b64.
package util

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/frankbraun/codechain/util/file"
	"github.com/mutecomm/b64/log"
	"golang.org/x/crypto/ssh/terminal"
)

// Fatal prints err to stderr and exits the process with exit code 1.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "%s: error: %s\n", os.Args[0], err)
	os.Exit(1)
}

// CreateDirs creates all given directories. Empty names are skipped.
func CreateDirs(dirs ...string) error {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0700); err != nil {
			return log.Error(err)
		}
	}
	return nil
}

// IsTerminal returns true, if r is a file descriptor connected to a terminal.
func IsTerminal(r io.Reader) bool {
	fp, ok := r.(*os.File)
	return ok && terminal.IsTerminal(int(fp.Fd()))
}

// ReadAll reads r until EOF. Reading from a terminal is refused, because
// the input would have to be typed in.
func ReadAll(r io.Reader) ([]byte, error) {
	if IsTerminal(r) {
		return nil, log.Error("no input given and standard input is a terminal")
	}
	buf, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, log.Error(err)
	}
	return buf, nil
}

// ReadFile reads the content of filename.
func ReadFile(filename string) ([]byte, error) {
	buf, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, log.Error(err)
	}
	return buf, nil
}

// WriteFile writes data to destFile, which must not exist already.
func WriteFile(destFile string, data []byte) error {
	exists, err := file.Exists(destFile)
	if err != nil {
		return log.Error(err)
	}
	if exists {
		return log.Errorf("destination file '%s' exists already", destFile)
	}
	if err := ioutil.WriteFile(destFile, data, 0644); err != nil {
		return log.Error(err)
	}
	return nil
}
