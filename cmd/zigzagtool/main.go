// Copyright 2026 The Zigzag-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command zigzagtool zigzag encodes or decodes integers given as arguments or
// on stdin, one per line.
package main

import (
	"fmt"
	"os"
)

func run() int {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run())
}
