// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package code

import (
	"github.com/wasmscan/wasmscan/binary"
	"github.com/wasmscan/wasmscan/errors"
	"github.com/wasmscan/wasmscan/wa"
	"github.com/wasmscan/wasmscan/wa/opcode"
)

// Decoder reads a flat instruction stream.  Structured instructions are
// reported as-is; it is up to the caller to track nesting.
type Decoder struct {
	cur *binary.Cursor
}

// NewDecoder decodes instructions from the cursor position onwards.
func NewDecoder(c *binary.Cursor) *Decoder {
	return &Decoder{cur: c}
}

// Offset returns the absolute offset of the next instruction.
func (d *Decoder) Offset() int64 {
	return d.cur.Offset()
}

// Next decodes the next instruction into i, reusing its storage.  It
// reports ok == false when the stream is exhausted.
func (d *Decoder) Next(i *Instr) (ok bool, err error) {
	if d.cur.Remaining() == 0 {
		return false, nil
	}

	off := d.cur.Offset()

	b, err := d.cur.ReadByte()
	if err != nil {
		return false, err
	}

	if opcode.IsPrefix(b) {
		sub, err := binary.Varuint32(d.cur)
		if err != nil {
			return false, err
		}

		op := opcode.Prefixed(b, sub)
		if !opcode.Exists(op) {
			return false, errors.Newf(errors.InvalidOpcode, off, "0x%02x 0x%x", b, sub)
		}
		i.Opcode = op

		switch b {
		case opcode.MiscPrefix:
			err = d.misc(i)
		case opcode.VectorPrefix:
			err = d.vector(i)
		case opcode.AtomicPrefix:
			err = d.atomic(i)
		}
		return err == nil, err
	}

	op := opcode.Opcode(b)
	if !opcode.Exists(op) {
		return false, errors.Newf(errors.InvalidOpcode, off, "0x%02x", b)
	}
	i.Opcode = op

	switch op {
	case opcode.Block, opcode.Loop, opcode.If, opcode.Try:
		i.Block, err = wa.ReadBlockType(d.cur)

	case opcode.Br, opcode.BrIf, opcode.Rethrow, opcode.Delegate,
		opcode.Call, opcode.ReturnCall, opcode.Throw, opcode.Catch,
		opcode.LocalGet, opcode.LocalSet, opcode.LocalTee,
		opcode.GlobalGet, opcode.GlobalSet,
		opcode.TableGet, opcode.TableSet,
		opcode.MemorySize, opcode.MemoryGrow,
		opcode.RefFunc:
		err = d.index(i)

	case opcode.BrTable:
		err = d.brTable(i)

	case opcode.CallIndirect, opcode.ReturnCallIndirect:
		if err = d.index(i); err == nil {
			err = d.index2(i)
		}

	case opcode.SelectMany:
		i.Types, err = wa.ReadTypeVec(d.cur)

	case opcode.RefNull:
		var t wa.ValType
		t, err = wa.ReadRefType(d.cur)
		i.X = uint64(t)

	case opcode.I32Const:
		var v int32
		v, err = binary.Varint32(d.cur)
		i.X = uint64(int64(v))

	case opcode.I64Const:
		var v int64
		v, err = binary.Varint64(d.cur)
		i.X = uint64(v)

	case opcode.F32Const:
		var v uint32
		v, err = binary.Uint32(d.cur)
		i.X = uint64(v)

	case opcode.F64Const:
		i.X, err = binary.Uint64(d.cur)

	default:
		if op >= opcode.I32Load && op <= opcode.I64Store32 {
			err = d.memarg(&i.Mem)
		}
	}

	return err == nil, err
}

func (d *Decoder) index(i *Instr) (err error) {
	var x uint32
	x, err = binary.Varuint32(d.cur)
	i.X = uint64(x)
	return
}

func (d *Decoder) index2(i *Instr) (err error) {
	var y uint32
	y, err = binary.Varuint32(d.cur)
	i.Y = uint64(y)
	return
}

func (d *Decoder) brTable(i *Instr) error {
	count, err := binary.Varuint32(d.cur)
	if err != nil {
		return err
	}

	// Labels are variably encoded, so the window covering them is found
	// by decoding them once.  Consumers re-decode lazily via Labels.
	win := d.cur.Window()
	start := d.cur.Pos()

	for n := uint32(0); n < count; n++ {
		if _, err := binary.Varuint32(d.cur); err != nil {
			return err
		}
	}

	targets, err := win.Slice(start, d.cur.Pos()-start)
	if err != nil {
		return err
	}

	def, err := binary.Varuint32(d.cur)
	if err != nil {
		return err
	}

	i.Table = BranchTable{Count: count, Targets: targets, Default: def}
	return nil
}

func (d *Decoder) memarg(m *MemArg) error {
	a, err := binary.Varuint32(d.cur)
	if err != nil {
		return err
	}

	m.Memory = 0
	if a&(1<<6) != 0 {
		// Flag bit selects a non-default memory.
		a &^= 1 << 6
		if m.Memory, err = binary.Varuint32(d.cur); err != nil {
			return err
		}
	}
	m.Align = a

	m.Offset, err = binary.Varuint64(d.cur)
	return err
}

func (d *Decoder) misc(i *Instr) (err error) {
	switch i.Opcode {
	case opcode.MemoryInit, opcode.TableInit, opcode.MemoryCopy, opcode.TableCopy:
		if err = d.index(i); err == nil {
			err = d.index2(i)
		}

	case opcode.DataDrop, opcode.ElemDrop, opcode.MemoryFill,
		opcode.TableGrow, opcode.TableSize, opcode.TableFill:
		err = d.index(i)
	}
	return
}

func (d *Decoder) vector(i *Instr) (err error) {
	switch sub := i.Opcode.Sub(); {
	case sub <= 0x0b || sub == 0x5c || sub == 0x5d:
		err = d.memarg(&i.Mem)

	case sub == 0x0c || sub == 0x0d:
		var b []byte
		if b, err = d.cur.ReadBytes(16); err == nil {
			copy(i.V128[:], b)
		}

	case sub >= 0x15 && sub <= 0x22:
		err = d.lane(i)

	case sub >= 0x54 && sub <= 0x5b:
		if err = d.memarg(&i.Mem); err == nil {
			err = d.lane(i)
		}
	}
	return
}

func (d *Decoder) lane(i *Instr) (err error) {
	i.Lane, err = d.cur.ReadByte()
	return
}

func (d *Decoder) atomic(i *Instr) error {
	if i.Opcode == opcode.AtomicFence {
		off := d.cur.Offset()

		b, err := d.cur.ReadByte()
		if err != nil {
			return err
		}
		if b != 0 {
			return errors.Newf(errors.InvalidEncoding, off, "invalid atomic.fence immediate: 0x%02x", b)
		}
		return nil
	}

	return d.memarg(&i.Mem)
}
