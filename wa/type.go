// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wa models the WebAssembly type system as thin views decoded from
// a module binary.
package wa

import (
	"github.com/wasmscan/wasmscan/binary"
	"github.com/wasmscan/wasmscan/errors"
)

// ValType is a value type.  The representation is the encoded byte.
type ValType byte

const (
	I32       = ValType(0x7f)
	I64       = ValType(0x7e)
	F32       = ValType(0x7d)
	F64       = ValType(0x7c)
	V128      = ValType(0x7b)
	FuncRef   = ValType(0x70)
	ExternRef = ValType(0x6f)
)

// Valid tells if the byte encodes a known value type.
func (t ValType) Valid() bool {
	switch t {
	case I32, I64, F32, F64, V128, FuncRef, ExternRef:
		return true
	}
	return false
}

// IsRef tells if the type is a reference type.
func (t ValType) IsRef() bool {
	return t == FuncRef || t == ExternRef
}

func (t ValType) String() string {
	switch t {
	case I32:
		return "i32"
	case I64:
		return "i64"
	case F32:
		return "f32"
	case F64:
		return "f64"
	case V128:
		return "v128"
	case FuncRef:
		return "funcref"
	case ExternRef:
		return "externref"
	default:
		return "<invalid value type>"
	}
}

// ReadValType decodes a value type byte.
func ReadValType(c *binary.Cursor) (ValType, error) {
	off := c.Offset()

	b, err := c.ReadByte()
	if err != nil {
		return 0, err
	}

	t := ValType(b)
	if !t.Valid() {
		return 0, errors.Newf(errors.InvalidEncoding, off, "invalid value type: 0x%02x", b)
	}
	return t, nil
}

// ReadRefType decodes a value type byte which must be a reference type.
func ReadRefType(c *binary.Cursor) (ValType, error) {
	off := c.Offset()

	t, err := ReadValType(c)
	if err != nil {
		return 0, err
	}
	if !t.IsRef() {
		return 0, errors.Newf(errors.InvalidEncoding, off, "%s is not a reference type", t)
	}
	return t, nil
}
