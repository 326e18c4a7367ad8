// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wa

import (
	"github.com/wasmscan/wasmscan/binary"
	"github.com/wasmscan/wasmscan/errors"
)

// TypeVec is a counted run of value types borrowed from the type section.
// Each type occupies one byte, so items are randomly accessible.  The bytes
// are validated when the vector is decoded.
type TypeVec struct {
	win binary.Window
}

func (v TypeVec) Len() int {
	return int(v.win.Len())
}

func (v TypeVec) Get(i int) (ValType, error) {
	b, err := v.win.Bytes(int64(i), 1)
	if err != nil {
		return 0, err
	}
	return ValType(b[0]), nil
}

func (v TypeVec) String() (s string) {
	for i := 0; i < v.Len(); i++ {
		if i > 0 {
			s += ", "
		}
		if t, err := v.Get(i); err == nil {
			s += t.String()
		} else {
			s += "?"
		}
	}
	return
}

// ReadTypeVec decodes a length-prefixed run of value types.
func ReadTypeVec(c *binary.Cursor) (TypeVec, error) {
	n, err := binary.Varuint32(c)
	if err != nil {
		return TypeVec{}, err
	}

	win, err := c.Slice(int64(n))
	if err != nil {
		return TypeVec{}, err
	}

	data, err := win.Bytes(0, win.Len())
	if err != nil {
		return TypeVec{}, err
	}
	for i, b := range data {
		if !ValType(b).Valid() {
			return TypeVec{}, errors.Newf(errors.InvalidEncoding, win.Base()+int64(i), "invalid value type: 0x%02x", b)
		}
	}

	return TypeVec{win: win}, nil
}

// FuncType is a function signature view.
type FuncType struct {
	Params  TypeVec
	Results TypeVec
}

const funcTypeTag = 0x60

// ReadFuncType decodes a function type entry.
func ReadFuncType(c *binary.Cursor) (FuncType, error) {
	off := c.Offset()

	tag, err := c.ReadByte()
	if err != nil {
		return FuncType{}, err
	}
	if tag != funcTypeTag {
		return FuncType{}, errors.Newf(errors.InvalidEncoding, off, "expected function type (0x60), got 0x%02x", tag)
	}

	var f FuncType
	if f.Params, err = ReadTypeVec(c); err != nil {
		return FuncType{}, err
	}
	if f.Results, err = ReadTypeVec(c); err != nil {
		return FuncType{}, err
	}
	return f, nil
}

func (f FuncType) String() (s string) {
	s = "(" + f.Params.String() + ")"

	switch f.Results.Len() {
	case 0:
	case 1:
		s += " " + f.Results.String()
	default:
		s += " (" + f.Results.String() + ")"
	}
	return
}
