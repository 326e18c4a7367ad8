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

func TestVector(t *testing.T) {
	data := AppendVaruint32(nil, 3)
	data = AppendVaruint32(data, 10)
	data = AppendVaruint32(data, 300)
	data = AppendVaruint32(data, 0)

	c := cursorOver(data)
	v, err := ReadVector(&c, Varuint32)
	assert.NilError(t, err)
	assert.Equal(t, v.Len(), uint32(3))

	var got []uint32
	for {
		x, ok, err := v.Next()
		assert.NilError(t, err)
		if !ok {
			break
		}
		got = append(got, x)
	}
	assert.DeepEqual(t, got, []uint32{10, 300, 0})
	assert.Equal(t, c.Remaining(), int64(0))
}

func TestVectorEmpty(t *testing.T) {
	c := cursorOver([]byte{0x00, 0xff})
	v, err := ReadVector(&c, Varuint32)
	assert.NilError(t, err)
	assert.Equal(t, v.Len(), uint32(0))

	_, ok, err := v.Next()
	assert.NilError(t, err)
	assert.Assert(t, !ok)

	// The count consumed one byte; the rest is untouched.
	assert.Equal(t, c.Remaining(), int64(1))
}

func TestVectorPartial(t *testing.T) {
	data := AppendVaruint32(nil, 2)
	data = AppendVaruint32(data, 7)
	data = AppendVaruint32(data, 8)

	c := cursorOver(data)
	v, err := ReadVector(&c, Varuint32)
	assert.NilError(t, err)

	x, ok, err := v.Next()
	assert.NilError(t, err)
	assert.Assert(t, ok)
	assert.Equal(t, x, uint32(7))

	// Abandoning mid-sequence leaves the cursor after the last item.
	assert.Equal(t, v.Len(), uint32(1))
	assert.Equal(t, c.Remaining(), int64(1))
}

func TestVectorTruncated(t *testing.T) {
	c := cursorOver(AppendVaruint32(nil, 5))
	v, err := ReadVector(&c, Varuint32)
	assert.NilError(t, err)

	_, _, err = v.Next()
	assert.Assert(t, errors.IsKind(err, errors.UnexpectedEnd))
}

func TestSeq(t *testing.T) {
	data := AppendVaruint32(nil, 4)
	data = AppendVaruint32(data, 5)
	w := NewWindow(buffer.Slice(data))

	s := MakeSeq(w, 2, Varuint32)

	var got []uint32
	for {
		x, ok, err := s.Next()
		assert.NilError(t, err)
		if !ok {
			break
		}
		got = append(got, x)
	}
	assert.DeepEqual(t, got, []uint32{4, 5})

	// A sequence owns its cursor, so replaying from the same window
	// yields the items again.
	s = MakeSeq(w, 2, Varuint32)
	x, ok, err := s.Next()
	assert.NilError(t, err)
	assert.Assert(t, ok)
	assert.Equal(t, x, uint32(4))
}
