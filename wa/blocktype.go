// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wa

import (
	"fmt"

	"github.com/wasmscan/wasmscan/binary"
	"github.com/wasmscan/wasmscan/errors"
)

// BlockType is the type immediate of a structured instruction.  Negative
// values are either the empty sentinel or a value type byte; non-negative
// values index the type section.
type BlockType int64

// BlockEmpty is the block type of a block with no results.
const BlockEmpty = BlockType(-0x40)

// Empty tells if the block has no results.
func (t BlockType) Empty() bool {
	return t == BlockEmpty
}

// Type returns the single result type, if the block is typed that way.
func (t BlockType) Type() (ValType, bool) {
	if t < 0 && t != BlockEmpty {
		return ValType(uint64(t) & 0x7f), true
	}
	return 0, false
}

// TypeIndex returns the type section index, if the block is typed that way.
func (t BlockType) TypeIndex() (uint32, bool) {
	if t >= 0 {
		return uint32(t), true
	}
	return 0, false
}

func (t BlockType) String() string {
	switch {
	case t.Empty():
		return ""
	case t >= 0:
		return fmt.Sprintf("(type %d)", int64(t))
	default:
		if v, ok := t.Type(); ok {
			return "(result " + v.String() + ")"
		}
		return "<invalid block type>"
	}
}

// ReadBlockType decodes a block type immediate.
func ReadBlockType(c *binary.Cursor) (BlockType, error) {
	off := c.Offset()

	x, err := binary.Varint33(c)
	if err != nil {
		return 0, err
	}

	t := BlockType(x)
	if t < 0 && t != BlockEmpty {
		if !ValType(uint64(x) & 0x7f).Valid() {
			return 0, errors.Newf(errors.InvalidEncoding, off, "invalid block type: %d", x)
		}
	}
	return t, nil
}
