// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binary

import (
	"math"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/wasmscan/wasmscan/buffer"
	"github.com/wasmscan/wasmscan/errors"
)

func cursorOver(data []byte) Cursor {
	return NewWindow(buffer.Slice(data)).Cursor()
}

func TestVaruint32RoundTrip(t *testing.T) {
	for _, x := range []uint32{0, 1, 127, 128, 0x3fff, 0x4000, 1<<31 - 1, math.MaxUint32} {
		enc := AppendVaruint32(nil, x)

		c := cursorOver(enc)
		got, err := Varuint32(&c)
		assert.NilError(t, err)
		assert.Equal(t, got, x)
		assert.Equal(t, c.Remaining(), int64(0))

		assert.DeepEqual(t, AppendVaruint32(nil, got), enc)
	}
}

func TestVaruint32Padded(t *testing.T) {
	// Zero encoded in five bytes is over-long but within the byte limit,
	// and the final byte's bits are consistent.
	c := cursorOver([]byte{0x80, 0x80, 0x80, 0x80, 0x00})
	got, err := Varuint32(&c)
	assert.NilError(t, err)
	assert.Equal(t, got, uint32(0))
}

func TestVaruint32TooLong(t *testing.T) {
	c := cursorOver([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x00})
	_, err := Varuint32(&c)
	assert.Assert(t, errors.IsKind(err, errors.IntegerTooLong))
	assert.Equal(t, errors.AsError(err).Offset, int64(4))
}

func TestVaruint32Overflow(t *testing.T) {
	// The fifth byte holds value bits beyond bit 31.
	c := cursorOver([]byte{0xff, 0xff, 0xff, 0xff, 0x1f})
	_, err := Varuint32(&c)
	assert.Assert(t, errors.IsKind(err, errors.IntegerOverflow))
	assert.Equal(t, errors.AsError(err).Offset, int64(4))
}

func TestVaruint32Truncated(t *testing.T) {
	c := cursorOver([]byte{0x80, 0x80})
	_, err := Varuint32(&c)
	assert.Assert(t, errors.IsKind(err, errors.UnexpectedEnd))
	assert.Equal(t, errors.AsError(err).Offset, int64(2))
}

func TestVaruint64RoundTrip(t *testing.T) {
	for _, x := range []uint64{0, 1, 127, 128, 1<<32 - 1, 1 << 32, 1<<63 - 1, math.MaxUint64} {
		enc := AppendVaruint64(nil, x)

		c := cursorOver(enc)
		got, err := Varuint64(&c)
		assert.NilError(t, err)
		assert.Equal(t, got, x)

		assert.DeepEqual(t, AppendVaruint64(nil, got), enc)
	}
}

func TestVaruint64TooLong(t *testing.T) {
	c := cursorOver([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x00})
	_, err := Varuint64(&c)
	assert.Assert(t, errors.IsKind(err, errors.IntegerTooLong))
}

func TestVaruint64Overflow(t *testing.T) {
	c := cursorOver([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x02})
	_, err := Varuint64(&c)
	assert.Assert(t, errors.IsKind(err, errors.IntegerOverflow))
}

func TestVarint32RoundTrip(t *testing.T) {
	for _, x := range []int32{0, 1, -1, 63, 64, -64, -65, math.MaxInt32, math.MinInt32} {
		enc := AppendVarint32(nil, x)

		c := cursorOver(enc)
		got, err := Varint32(&c)
		assert.NilError(t, err)
		assert.Equal(t, got, x)

		assert.DeepEqual(t, AppendVarint32(nil, got), enc)
	}
}

func TestVarint32Overflow(t *testing.T) {
	// Positive value with bit 32 set.
	c := cursorOver([]byte{0xff, 0xff, 0xff, 0xff, 0x08})
	_, err := Varint32(&c)
	assert.Assert(t, errors.IsKind(err, errors.IntegerOverflow))

	// Negative value whose final byte clears a required sign bit.
	c = cursorOver([]byte{0x80, 0x80, 0x80, 0x80, 0x70})
	_, err = Varint32(&c)
	assert.Assert(t, errors.IsKind(err, errors.IntegerOverflow))
}

func TestVarint32TooLong(t *testing.T) {
	c := cursorOver([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x00})
	_, err := Varint32(&c)
	assert.Assert(t, errors.IsKind(err, errors.IntegerTooLong))
}

func TestVarint33RoundTrip(t *testing.T) {
	for _, x := range []int64{0, -1, -0x40, 63, 64, 1<<32 - 1, -(1 << 32)} {
		enc := AppendVarint64(nil, x)

		c := cursorOver(enc)
		got, err := Varint33(&c)
		assert.NilError(t, err)
		assert.Equal(t, got, x)
	}
}

func TestVarint33Overflow(t *testing.T) {
	c := cursorOver([]byte{0xff, 0xff, 0xff, 0xff, 0x3f})
	_, err := Varint33(&c)
	assert.Assert(t, errors.IsKind(err, errors.IntegerOverflow))
}

func TestVarint64RoundTrip(t *testing.T) {
	for _, x := range []int64{0, 1, -1, 63, -64, math.MaxInt64, math.MinInt64} {
		enc := AppendVarint64(nil, x)

		c := cursorOver(enc)
		got, err := Varint64(&c)
		assert.NilError(t, err)
		assert.Equal(t, got, x)

		assert.DeepEqual(t, AppendVarint64(nil, got), enc)
	}
}

func TestVarint64Overflow(t *testing.T) {
	c := cursorOver([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01})
	_, err := Varint64(&c)
	assert.Assert(t, errors.IsKind(err, errors.IntegerOverflow))
}

func TestUint32(t *testing.T) {
	c := cursorOver([]byte{0x01, 0x00, 0x00, 0x00})
	x, err := Uint32(&c)
	assert.NilError(t, err)
	assert.Equal(t, x, uint32(1))

	c = cursorOver([]byte{0x01, 0x00})
	_, err = Uint32(&c)
	assert.Assert(t, errors.IsKind(err, errors.UnexpectedEnd))
}
