// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package buffer

import (
	"io"

	"github.com/wasmscan/wasmscan/errors"
)

// ReaderAt adapts a generic random-access source to the Buffer interface.
// Each Bytes call copies into a fresh slice, so this backend trades the
// zero-allocation guarantee for the ability to decode without mapping the
// whole input into memory.  Blocking in the underlying source surfaces as an
// ordinary read error.
type ReaderAt struct {
	r    io.ReaderAt
	size int64
}

// NewReaderAt creates a Buffer over size bytes of r.
func NewReaderAt(r io.ReaderAt, size int64) *ReaderAt {
	return &ReaderAt{r: r, size: size}
}

func (b *ReaderAt) Bytes(off, n int64) ([]byte, error) {
	if off < 0 || n < 0 || off+n > b.size {
		return nil, errors.Newf(errors.OutOfBounds, off, "read of %d bytes exceeds buffer size %d", n, b.size)
	}

	data := make([]byte, n)
	if _, err := b.r.ReadAt(data, off); err != nil {
		return nil, errors.Wrap(err, errors.UnexpectedEnd, off, "source read failed")
	}
	return data, nil
}

func (b *ReaderAt) Size() int64 {
	return b.size
}
