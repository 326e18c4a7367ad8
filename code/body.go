// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package code

import (
	"github.com/wasmscan/wasmscan/binary"
	"github.com/wasmscan/wasmscan/wa"
)

// Local is a run of locals sharing one type.
type Local struct {
	Count uint32
	Type  wa.ValType
}

// ReadLocal decodes one local declaration.
func ReadLocal(c *binary.Cursor) (Local, error) {
	n, err := binary.Varuint32(c)
	if err != nil {
		return Local{}, err
	}

	t, err := wa.ReadValType(c)
	if err != nil {
		return Local{}, err
	}

	return Local{Count: n, Type: t}, nil
}

// Body is an undecoded function body.  The window covers the local
// declarations and the expression.
type Body struct {
	win binary.Window
}

// ReadBody consumes one size-prefixed code section entry.
func ReadBody(c *binary.Cursor) (Body, error) {
	size, err := binary.Varuint32(c)
	if err != nil {
		return Body{}, err
	}

	win, err := c.Slice(int64(size))
	if err != nil {
		return Body{}, err
	}

	return Body{win: win}, nil
}

// Window returns the body contents.
func (b Body) Window() binary.Window {
	return b.win
}

// Locals returns the local declarations, leaving the cursor at the first
// instruction of the body expression.
func (b Body) Locals(c *binary.Cursor) (binary.Vector[Local], error) {
	return binary.ReadVector(c, ReadLocal)
}

// Cursor returns a fresh cursor over the body contents.
func (b Body) Cursor() binary.Cursor {
	return b.win.Cursor()
}
