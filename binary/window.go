// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package binary implements bounds-checked views and WebAssembly integer
// decoding over a caller-owned buffer.
//
// A Window is an immutable view into a contiguous byte range; a Cursor adds
// a forward-only read position.  Neither copies data: slicing only
// recomputes offsets.  Distinct windows over the same buffer share no
// mutable state and may be decoded concurrently.
package binary

import (
	"github.com/wasmscan/wasmscan/buffer"
	"github.com/wasmscan/wasmscan/errors"
)

// Window is an immutable, bounds-checked view into a byte range of a
// buffer.  The zero Window is empty.
type Window struct {
	buf  buffer.Buffer
	base int64
	size int64
}

// NewWindow creates a view covering the whole buffer.
func NewWindow(b buffer.Buffer) Window {
	return Window{buf: b, size: b.Size()}
}

// Len returns the window length in bytes.
func (w Window) Len() int64 {
	return w.size
}

// Base returns the absolute offset of the window's first byte within the
// original buffer.
func (w Window) Base() int64 {
	return w.base
}

// Slice returns a sub-window of n bytes starting at off.
func (w Window) Slice(off, n int64) (Window, error) {
	if off < 0 || n < 0 || off+n > w.size {
		return Window{}, errors.Newf(errors.OutOfBounds, w.base+off, "slice of %d bytes exceeds window of %d bytes", n, w.size)
	}
	return Window{buf: w.buf, base: w.base + off, size: n}, nil
}

// Bytes returns n bytes starting at off, borrowed from the buffer.
func (w Window) Bytes(off, n int64) ([]byte, error) {
	if off < 0 || n < 0 || off+n > w.size {
		return nil, errors.Newf(errors.OutOfBounds, w.base+off, "read of %d bytes exceeds window of %d bytes", n, w.size)
	}
	return w.buf.Bytes(w.base+off, n)
}

// Cursor returns a cursor positioned at the start of the window.
func (w Window) Cursor() Cursor {
	return Cursor{win: w}
}
