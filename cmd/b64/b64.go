// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// b64 is a tool to encode and decode base64 (RFC 4648), with support for the
// standard and the URL and filename safe alphabets.
package main

import (
	"os"

	"github.com/mutecomm/b64/b64engine"
	"github.com/mutecomm/b64/util"
)

func main() {
	if err := b64engine.New().Run(os.Args); err != nil {
		util.Fatal(err)
	}
}
