// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/wasmscan/wasmscan/binary"
	"github.com/wasmscan/wasmscan/buffer"
)

func loadSlice(filename string) (binary.Window, func() error, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return binary.Window{}, nil, err
	}
	return binary.NewWindow(buffer.Slice(data)), func() error { return nil }, nil
}
