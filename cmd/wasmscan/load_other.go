// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !unix

package main

import (
	"github.com/wasmscan/wasmscan/binary"
)

// Memory mapping is unavailable, so the -mmap flag falls back to reading
// the whole file.
func load(filename string, mmap bool) (binary.Window, func() error, error) {
	return loadSlice(filename)
}
