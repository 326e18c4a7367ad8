// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wa

import (
	"fmt"

	"github.com/wasmscan/wasmscan/binary"
	"github.com/wasmscan/wasmscan/errors"
)

// IndexType tells how memory or table addresses are encoded.
type IndexType byte

const (
	I32Index = IndexType(0)
	I64Index = IndexType(1)
)

// Limits bound the size of a memory or table.  Sizes are in pages or
// elements.  Max is meaningful only when HasMax is set.
type Limits struct {
	Min    uint64
	Max    uint64
	HasMax bool
	Shared bool
	Index  IndexType
}

// Limits flag bits.
const (
	limitsHasMax = 1 << 0
	limitsShared = 1 << 1
	limitsIndex  = 1 << 2
)

// ReadLimits decodes a limits structure.  The flags byte selects the
// presence of a maximum, sharedness, and the index width.
func ReadLimits(c *binary.Cursor) (Limits, error) {
	off := c.Offset()

	flags, err := c.ReadByte()
	if err != nil {
		return Limits{}, err
	}
	if flags > limitsHasMax|limitsShared|limitsIndex {
		return Limits{}, errors.Newf(errors.InvalidEncoding, off, "invalid limits flags: 0x%02x", flags)
	}

	l := Limits{
		HasMax: flags&limitsHasMax != 0,
		Shared: flags&limitsShared != 0,
	}
	if flags&limitsIndex != 0 {
		l.Index = I64Index
	}

	if l.Index == I64Index {
		l.Min, err = binary.Varuint64(c)
	} else {
		var min uint32
		min, err = binary.Varuint32(c)
		l.Min = uint64(min)
	}
	if err != nil {
		return Limits{}, err
	}

	if l.HasMax {
		if l.Index == I64Index {
			l.Max, err = binary.Varuint64(c)
		} else {
			var max uint32
			max, err = binary.Varuint32(c)
			l.Max = uint64(max)
		}
		if err != nil {
			return Limits{}, err
		}
	}

	return l, nil
}

func (l Limits) String() string {
	s := fmt.Sprintf("%d", l.Min)
	if l.HasMax {
		s += fmt.Sprintf(" %d", l.Max)
	}
	if l.Shared {
		s += " shared"
	}
	if l.Index == I64Index {
		s += " i64"
	}
	return s
}

// MemType describes a linear memory.
type MemType struct {
	Limits
}

// ReadMemType decodes a memory type.
func ReadMemType(c *binary.Cursor) (MemType, error) {
	l, err := ReadLimits(c)
	return MemType{Limits: l}, err
}
