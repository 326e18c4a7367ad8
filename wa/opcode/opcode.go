// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package opcode enumerates WebAssembly instruction opcodes, including the
// prefixed miscellaneous, vector and atomic opcode spaces.
package opcode

import (
	"fmt"
)

// Opcode identifies an instruction.  Values up to 0xff are single-byte
// opcodes; larger values combine a prefix byte (bits 16-23) with the
// variably encoded sub-opcode (bits 0-15).
type Opcode uint32

// Prefix bytes opening the secondary opcode spaces.
const (
	MiscPrefix   = byte(0xfc)
	VectorPrefix = byte(0xfd)
	AtomicPrefix = byte(0xfe)
)

// IsPrefix tells if the byte opens a secondary opcode space.
func IsPrefix(b byte) bool {
	return b >= MiscPrefix
}

// Prefixed combines a prefix byte and a sub-opcode.  Sub-opcodes beyond
// the 16-bit range yield a value that exists in no opcode space.
func Prefixed(prefix byte, sub uint32) Opcode {
	if sub > 0xffff {
		return Opcode(prefix)<<16 | 0xffff0000
	}
	return Opcode(prefix)<<16 | Opcode(sub)
}

// Prefix returns the prefix byte of a prefixed opcode.
func (op Opcode) Prefix() (byte, bool) {
	if op > 0xff {
		return byte(op >> 16), true
	}
	return 0, false
}

// Sub returns the sub-opcode of a prefixed opcode, or the opcode byte of
// a single-byte opcode.
func (op Opcode) Sub() uint32 {
	return uint32(op) & 0xffff
}

// Exists tells if the opcode is a known instruction.
func Exists(op Opcode) bool {
	switch prefix, ok := op.Prefix(); {
	case !ok:
		return baseStrings[byte(op)] != ""
	case prefix == MiscPrefix:
		return miscStrings[op] != ""
	case prefix == VectorPrefix:
		return simdStrings[op] != ""
	case prefix == AtomicPrefix:
		return atomicStrings[op] != ""
	default:
		return false
	}
}

func (op Opcode) String() string {
	var s string

	switch prefix, ok := op.Prefix(); {
	case !ok:
		s = baseStrings[byte(op)]
	case prefix == MiscPrefix:
		s = miscStrings[op]
	case prefix == VectorPrefix:
		s = simdStrings[op]
	case prefix == AtomicPrefix:
		s = atomicStrings[op]
	}

	if s == "" {
		if prefix, ok := op.Prefix(); ok {
			return fmt.Sprintf("opcode(0x%02x 0x%02x)", prefix, op.Sub())
		}
		return fmt.Sprintf("opcode(0x%02x)", byte(op))
	}
	return s
}
