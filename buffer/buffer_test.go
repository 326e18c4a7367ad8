// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package buffer

import (
	"bytes"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/wasmscan/wasmscan/errors"
)

func TestSlice(t *testing.T) {
	s := Slice([]byte{0, 1, 2, 3})
	assert.Equal(t, s.Size(), int64(4))

	b, err := s.Bytes(1, 2)
	assert.NilError(t, err)
	assert.DeepEqual(t, b, []byte{1, 2})

	_, err = s.Bytes(3, 2)
	assert.Assert(t, errors.IsKind(err, errors.OutOfBounds))

	_, err = s.Bytes(-1, 1)
	assert.Assert(t, errors.IsKind(err, errors.OutOfBounds))
}

func TestSliceBorrows(t *testing.T) {
	data := []byte{9, 8, 7}
	s := Slice(data)

	b, err := s.Bytes(0, 3)
	assert.NilError(t, err)
	assert.Equal(t, &b[0], &data[0])
}

func TestReaderAt(t *testing.T) {
	data := []byte{4, 5, 6, 7}
	r := NewReaderAt(bytes.NewReader(data), int64(len(data)))
	assert.Equal(t, r.Size(), int64(4))

	b, err := r.Bytes(1, 3)
	assert.NilError(t, err)
	assert.DeepEqual(t, b, []byte{5, 6, 7})

	_, err = r.Bytes(2, 3)
	assert.Assert(t, err != nil)
}
