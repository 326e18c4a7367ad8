// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package section

import (
	"github.com/wasmscan/wasmscan/binary"
	"github.com/wasmscan/wasmscan/code"
	"github.com/wasmscan/wasmscan/errors"
	"github.com/wasmscan/wasmscan/wa"
)

// SegmentMode tells how an element or data segment is applied.
type SegmentMode byte

const (
	ModeActive   = SegmentMode(0)
	ModePassive  = SegmentMode(1)
	ModeDeclared = SegmentMode(2)
)

func (m SegmentMode) String() string {
	switch m {
	case ModeActive:
		return "active"
	case ModePassive:
		return "passive"
	case ModeDeclared:
		return "declared"
	default:
		return "<invalid segment mode>"
	}
}

// Element segment flag bits.
const (
	elemNonActive = 1 << 0
	elemExplicit  = 1 << 1
	elemExprs     = 1 << 2
)

// ElementSegment is one element section entry.  The initializer items are
// kept undecoded; pull them with Functions or Exprs depending on the
// encoding.
type ElementSegment struct {
	Mode   SegmentMode
	Table  uint32
	Offset binary.Window
	Type   wa.ValType

	count uint32
	exprs bool
	init  binary.Window
}

// Len returns the number of initializer items.
func (s *ElementSegment) Len() uint32 {
	return s.count
}

// Functions returns the initializer as function indices.  It reports
// ok == false if the segment was encoded with expressions.
func (s *ElementSegment) Functions() (binary.Seq[uint32], bool) {
	if s.exprs {
		return binary.Seq[uint32]{}, false
	}
	return binary.MakeSeq(s.init, s.count, binary.Varuint32), true
}

// Exprs returns the initializer as constant expression windows.  It
// reports ok == false if the segment was encoded with function indices.
func (s *ElementSegment) Exprs() (binary.Seq[binary.Window], bool) {
	if !s.exprs {
		return binary.Seq[binary.Window]{}, false
	}
	return binary.MakeSeq(s.init, s.count, code.Expr), true
}

// ReadElementSegment decodes one element segment.  The initializer items
// are scanned to find the segment's extent but not retained.
func ReadElementSegment(c *binary.Cursor) (ElementSegment, error) {
	off := c.Offset()

	flags, err := binary.Varuint32(c)
	if err != nil {
		return ElementSegment{}, err
	}
	if flags > 7 {
		return ElementSegment{}, errors.Newf(errors.InvalidEncoding, off, "invalid element segment flags: 0x%x", flags)
	}

	var s ElementSegment
	s.Type = wa.FuncRef
	s.exprs = flags&elemExprs != 0

	if flags&elemNonActive == 0 {
		s.Mode = ModeActive

		if flags&elemExplicit != 0 {
			if s.Table, err = binary.Varuint32(c); err != nil {
				return ElementSegment{}, err
			}
		}
		if s.Offset, err = code.Expr(c); err != nil {
			return ElementSegment{}, err
		}
	} else if flags&elemExplicit != 0 {
		s.Mode = ModeDeclared
	} else {
		s.Mode = ModePassive
	}

	// Flags 0 and 4 imply funcref; the others carry an element kind or
	// reference type field.
	if flags&(elemNonActive|elemExplicit) != 0 {
		if s.exprs {
			if s.Type, err = wa.ReadRefType(c); err != nil {
				return ElementSegment{}, err
			}
		} else {
			off := c.Offset()

			kind, err := c.ReadByte()
			if err != nil {
				return ElementSegment{}, err
			}
			if kind != 0 {
				return ElementSegment{}, errors.Newf(errors.InvalidEncoding, off, "invalid element kind: 0x%02x", kind)
			}
		}
	}

	if s.count, err = binary.Varuint32(c); err != nil {
		return ElementSegment{}, err
	}

	win := c.Window()
	start := c.Pos()

	for n := uint32(0); n < s.count; n++ {
		if s.exprs {
			_, err = code.Expr(c)
		} else {
			_, err = binary.Varuint32(c)
		}
		if err != nil {
			return ElementSegment{}, err
		}
	}

	if s.init, err = win.Slice(start, c.Pos()-start); err != nil {
		return ElementSegment{}, err
	}
	return s, nil
}

// Elements decodes the element section payload.
func Elements(c *binary.Cursor) (binary.Vector[ElementSegment], error) {
	return binary.ReadVector(c, ReadElementSegment)
}
