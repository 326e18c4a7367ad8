// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build unix

package main

import (
	"os"

	"github.com/wasmscan/wasmscan/binary"
	"github.com/wasmscan/wasmscan/buffer"
)

func load(filename string, mmap bool) (binary.Window, func() error, error) {
	if !mmap {
		return loadSlice(filename)
	}

	f, err := os.Open(filename)
	if err != nil {
		return binary.Window{}, nil, err
	}
	defer f.Close()

	m, err := buffer.MapFile(f)
	if err != nil {
		return binary.Window{}, nil, err
	}

	return binary.NewWindow(m), m.Close, nil
}
