// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binary

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/wasmscan/wasmscan/buffer"
	"github.com/wasmscan/wasmscan/errors"
)

func TestWindowSlice(t *testing.T) {
	w := NewWindow(buffer.Slice([]byte{0, 1, 2, 3, 4, 5, 6, 7}))

	sub, err := w.Slice(2, 4)
	assert.NilError(t, err)
	assert.Equal(t, sub.Base(), int64(2))
	assert.Equal(t, sub.Len(), int64(4))

	b, err := sub.Bytes(0, 4)
	assert.NilError(t, err)
	assert.DeepEqual(t, b, []byte{2, 3, 4, 5})

	// Offsets in nested windows stay absolute.
	subsub, err := sub.Slice(1, 2)
	assert.NilError(t, err)
	assert.Equal(t, subsub.Base(), int64(3))
}

func TestWindowOutOfBounds(t *testing.T) {
	w := NewWindow(buffer.Slice([]byte{0, 1, 2, 3}))

	sub, err := w.Slice(1, 3)
	assert.NilError(t, err)

	_, err = sub.Slice(2, 2)
	assert.Assert(t, errors.IsKind(err, errors.OutOfBounds))
	assert.Equal(t, errors.AsError(err).Offset, int64(3))

	_, err = sub.Bytes(0, 4)
	assert.Assert(t, errors.IsKind(err, errors.OutOfBounds))
}

func TestZeroWindow(t *testing.T) {
	var w Window

	assert.Equal(t, w.Len(), int64(0))

	c := w.Cursor()
	_, err := c.ReadByte()
	assert.Assert(t, errors.IsKind(err, errors.UnexpectedEnd))
}

func TestCursorReads(t *testing.T) {
	w := NewWindow(buffer.Slice([]byte{10, 11, 12, 13, 14}))
	sub, err := w.Slice(1, 4)
	assert.NilError(t, err)

	c := sub.Cursor()
	assert.Equal(t, c.Offset(), int64(1))

	b, err := c.ReadByte()
	assert.NilError(t, err)
	assert.Equal(t, b, byte(11))
	assert.Equal(t, c.Offset(), int64(2))
	assert.Equal(t, c.Remaining(), int64(3))

	bs, err := c.ReadBytes(2)
	assert.NilError(t, err)
	assert.DeepEqual(t, bs, []byte{12, 13})

	// Truncation is reported at the window's end offset.
	_, err = c.ReadBytes(2)
	assert.Assert(t, errors.IsKind(err, errors.UnexpectedEnd))
	assert.Equal(t, errors.AsError(err).Offset, int64(5))
}

func TestCursorSkip(t *testing.T) {
	w := NewWindow(buffer.Slice([]byte{0, 1, 2}))
	c := w.Cursor()

	assert.NilError(t, c.Skip(2))
	assert.Equal(t, c.Offset(), int64(2))

	// Skipping backwards would rewind the cursor.
	err := c.Skip(-1)
	assert.Assert(t, errors.IsKind(err, errors.OutOfBounds))
	assert.Equal(t, c.Offset(), int64(2))

	err = c.Skip(2)
	assert.Assert(t, errors.IsKind(err, errors.UnexpectedEnd))
	assert.Equal(t, c.Offset(), int64(2))
}

func TestCursorSlice(t *testing.T) {
	w := NewWindow(buffer.Slice([]byte{0, 1, 2, 3, 4}))
	c := w.Cursor()

	assert.NilError(t, c.Skip(1))

	sub, err := c.Slice(2)
	assert.NilError(t, err)
	assert.Equal(t, sub.Base(), int64(1))
	assert.Equal(t, sub.Len(), int64(2))
	assert.Equal(t, c.Offset(), int64(3))

	rest := c.Rest()
	assert.Equal(t, rest.Base(), int64(3))
	assert.Equal(t, rest.Len(), int64(2))
	assert.Equal(t, c.Offset(), int64(3))
}
