// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package buffer provides byte sources for the decoder.
//
// A Buffer is owned by the caller; the decoder only borrows views into it.
// The Slice and Mmap backends hand out sub-slices of the backing memory
// without copying.  The ReaderAt backend copies on demand and is the only
// backend that allocates.
package buffer

import (
	"github.com/wasmscan/wasmscan/errors"
)

// Buffer is an immutable random-access byte source.
type Buffer interface {
	// Bytes returns n bytes starting at off.  The returned slice borrows
	// from the backing storage where the backend permits, and must not be
	// modified.
	Bytes(off, n int64) ([]byte, error)

	// Size returns the total number of bytes.
	Size() int64
}

// Slice is a Buffer backed by a byte slice.  It is the minimal backend:
// no allocation, no I/O, no platform dependencies.
type Slice []byte

func (s Slice) Bytes(off, n int64) ([]byte, error) {
	if off < 0 || n < 0 || off+n > int64(len(s)) {
		return nil, errors.Newf(errors.OutOfBounds, off, "read of %d bytes exceeds buffer size %d", n, len(s))
	}
	return s[off : off+n : off+n], nil
}

func (s Slice) Size() int64 {
	return int64(len(s))
}
