// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package section

import (
	"github.com/wasmscan/wasmscan/binary"
	"github.com/wasmscan/wasmscan/code"
	"github.com/wasmscan/wasmscan/errors"
)

// DataSegment is one data section entry.  Init covers the segment bytes.
type DataSegment struct {
	Mode   SegmentMode
	Memory uint32
	Offset binary.Window
	Init   binary.Window
}

// ReadDataSegment decodes one data segment.
func ReadDataSegment(c *binary.Cursor) (DataSegment, error) {
	off := c.Offset()

	flags, err := binary.Varuint32(c)
	if err != nil {
		return DataSegment{}, err
	}

	var s DataSegment

	switch flags {
	case 0:
		s.Mode = ModeActive

	case 1:
		s.Mode = ModePassive

	case 2:
		s.Mode = ModeActive
		if s.Memory, err = binary.Varuint32(c); err != nil {
			return DataSegment{}, err
		}

	default:
		return DataSegment{}, errors.Newf(errors.InvalidEncoding, off, "invalid data segment flags: 0x%x", flags)
	}

	if s.Mode == ModeActive {
		if s.Offset, err = code.Expr(c); err != nil {
			return DataSegment{}, err
		}
	}

	size, err := binary.Varuint32(c)
	if err != nil {
		return DataSegment{}, err
	}
	if s.Init, err = c.Slice(int64(size)); err != nil {
		return DataSegment{}, err
	}
	return s, nil
}

// DataSegments decodes the data section payload.
func DataSegments(c *binary.Cursor) (binary.Vector[DataSegment], error) {
	return binary.ReadVector(c, ReadDataSegment)
}
