// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"testing"

	"golang.org/x/xerrors"
	"gotest.tools/v3/assert"
)

func TestErrorText(t *testing.T) {
	err := Newf(InvalidOpcode, 0x42, "0x%02x", 0x27)
	assert.Equal(t, err.Error(), "offset 0x42: invalid opcode: 0x27")

	err = New(UnexpectedEnd, 7, "")
	assert.Equal(t, err.Error(), "offset 0x7: unexpected end of input")
}

func TestKindMatching(t *testing.T) {
	err := New(OutOfBounds, 3, "")

	wrapped := Wrap(err, SectionOverrun, 10, "code section")
	assert.Assert(t, IsKind(wrapped, SectionOverrun))
	assert.Equal(t, AsError(wrapped).Offset, int64(10))

	assert.Assert(t, xerrors.Is(wrapped, wrapped))
	assert.Equal(t, xerrors.Unwrap(wrapped), error(err))

	var e *Error
	assert.Assert(t, xerrors.As(wrapped, &e))
	assert.Equal(t, e.Kind, SectionOverrun)
}

func TestModuleErrorMarker(t *testing.T) {
	err := New(InvalidPreamble, 0, "not a module binary")

	var me interface{ ModuleError() string }
	assert.Assert(t, xerrors.As(err, &me))
	assert.Equal(t, me.ModuleError(), err.Error())
}

func TestAsErrorMiss(t *testing.T) {
	assert.Assert(t, AsError(xerrors.New("io failure")) == nil)
	assert.Assert(t, !IsKind(nil, OutOfBounds))
}
