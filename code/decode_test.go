// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package code

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/wasmscan/wasmscan/binary"
	"github.com/wasmscan/wasmscan/buffer"
	"github.com/wasmscan/wasmscan/errors"
	"github.com/wasmscan/wasmscan/wa"
	"github.com/wasmscan/wasmscan/wa/opcode"
)

func cursorOver(data []byte) binary.Cursor {
	return binary.NewWindow(buffer.Slice(data)).Cursor()
}

func decodeAll(t *testing.T, data []byte) []Instr {
	t.Helper()

	c := cursorOver(data)
	d := NewDecoder(&c)

	var is []Instr
	var i Instr
	for {
		ok, err := d.Next(&i)
		assert.NilError(t, err)
		if !ok {
			return is
		}
		is = append(is, i)
	}
}

func TestDecodeConsts(t *testing.T) {
	is := decodeAll(t, []byte{
		0x41, 0x2a, // i32.const 42
		0x41, 0x7f, // i32.const -1
		0x42, 0x7e, // i64.const -2
		0x43, 0x00, 0x00, 0x80, 0x3f, // f32.const 1.0
		0x44, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xf0, 0x3f, // f64.const 1.0
		0x0b,
	})

	assert.Equal(t, len(is), 6)
	assert.Equal(t, is[0].Opcode, opcode.I32Const)
	assert.Equal(t, is[0].I32(), int32(42))
	assert.Equal(t, is[1].I32(), int32(-1))
	assert.Equal(t, is[2].Opcode, opcode.I64Const)
	assert.Equal(t, is[2].I64(), int64(-2))
	assert.Equal(t, is[3].F32(), float32(1.0))
	assert.Equal(t, is[4].F64(), 1.0)
	assert.Equal(t, is[5].Opcode, opcode.End)
}

func TestDecodeBlockTypes(t *testing.T) {
	is := decodeAll(t, []byte{
		0x02, 0x40, // block (empty)
		0x03, 0x7f, // loop (result i32)
		0x04, 0x02, // if (type 2)
		0x0b, 0x0b, 0x0b,
	})

	assert.Assert(t, is[0].Block.Empty())

	v, ok := is[1].Block.Type()
	assert.Assert(t, ok)
	assert.Equal(t, v, wa.I32)

	i, ok := is[2].Block.TypeIndex()
	assert.Assert(t, ok)
	assert.Equal(t, i, uint32(2))
}

func TestDecodeBadBlockType(t *testing.T) {
	c := cursorOver([]byte{0x02, 0x79})
	d := NewDecoder(&c)

	var i Instr
	_, err := d.Next(&i)
	assert.Assert(t, errors.IsKind(err, errors.InvalidEncoding))
	assert.Equal(t, errors.AsError(err).Offset, int64(1))
}

func TestDecodeMemArg(t *testing.T) {
	is := decodeAll(t, []byte{
		0x28, 0x02, 0x10, // i32.load align=2 offset=16
		0x36, 0x42, 0x03, 0x08, // i32.store memory 3
	})

	assert.Equal(t, is[0].Opcode, opcode.I32Load)
	assert.Equal(t, is[0].Mem.Align, uint32(2))
	assert.Equal(t, is[0].Mem.Offset, uint64(16))
	assert.Equal(t, is[0].Mem.Memory, uint32(0))

	assert.Equal(t, is[1].Opcode, opcode.I32Store)
	assert.Equal(t, is[1].Mem.Align, uint32(2))
	assert.Equal(t, is[1].Mem.Memory, uint32(3))
	assert.Equal(t, is[1].Mem.Offset, uint64(8))
}

func TestDecodeBrTable(t *testing.T) {
	is := decodeAll(t, []byte{
		0x0e, 0x03, 0x00, 0x01, 0x02, 0x04, // br_table [0 1 2] default 4
	})

	tab := is[0].Table
	assert.Equal(t, tab.Count, uint32(3))
	assert.Equal(t, tab.Default, uint32(4))

	labels := tab.Labels()
	var got []uint32
	for {
		x, ok, err := labels.Next()
		assert.NilError(t, err)
		if !ok {
			break
		}
		got = append(got, x)
	}
	assert.DeepEqual(t, got, []uint32{0, 1, 2})
}

func TestDecodeCallIndirect(t *testing.T) {
	is := decodeAll(t, []byte{
		0x11, 0x05, 0x01, // call_indirect type 5 table 1
		0x13, 0x02, 0x00, // return_call_indirect type 2 table 0
	})

	assert.Equal(t, is[0].Index(), uint32(5))
	assert.Equal(t, uint32(is[0].Y), uint32(1))
	assert.Equal(t, is[1].Opcode, opcode.ReturnCallIndirect)
	assert.Equal(t, is[1].Index(), uint32(2))
}

func TestDecodeRefOps(t *testing.T) {
	is := decodeAll(t, []byte{
		0xd0, 0x6f, // ref.null externref
		0xd1,       // ref.is_null
		0xd2, 0x07, // ref.func 7
	})

	assert.Equal(t, is[0].Opcode, opcode.RefNull)
	assert.Equal(t, is[0].RefType(), wa.ExternRef)
	assert.Equal(t, is[1].Opcode, opcode.RefIsNull)
	assert.Equal(t, is[2].Index(), uint32(7))
}

func TestDecodeSelectMany(t *testing.T) {
	is := decodeAll(t, []byte{0x1c, 0x01, 0x7e})

	assert.Equal(t, is[0].Opcode, opcode.SelectMany)
	assert.Equal(t, is[0].Types.Len(), 1)
	v, err := is[0].Types.Get(0)
	assert.NilError(t, err)
	assert.Equal(t, v, wa.I64)
}

func TestDecodeMisc(t *testing.T) {
	is := decodeAll(t, []byte{
		0xfc, 0x00, // i32.trunc_sat_f32_s
		0xfc, 0x08, 0x02, 0x00, // memory.init data 2 memory 0
		0xfc, 0x09, 0x02, // data.drop 2
		0xfc, 0x0e, 0x01, 0x00, // table.copy 1 0
	})

	assert.Equal(t, is[0].Opcode, opcode.I32TruncSatF32S)
	assert.Equal(t, is[1].Opcode, opcode.MemoryInit)
	assert.Equal(t, is[1].Index(), uint32(2))
	assert.Equal(t, is[2].Opcode, opcode.DataDrop)
	assert.Equal(t, is[3].Opcode, opcode.TableCopy)
	assert.Equal(t, is[3].Index(), uint32(1))
	assert.Equal(t, uint32(is[3].Y), uint32(0))
}

func TestDecodeSIMD(t *testing.T) {
	v128 := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}

	data := []byte{0xfd, 0x00, 0x03, 0x04} // v128.load align=3 offset=4
	data = append(data, 0xfd, 0x0c)        // v128.const
	data = append(data, v128...)
	data = append(data, 0xfd, 0x15, 0x07)             // i8x16.extract_lane_s 7
	data = append(data, 0xfd, 0x54, 0x00, 0x02, 0x01) // v128.load8_lane offset=2 lane 1
	data = append(data, 0xfd, 0x62)                   // i8x16.popcnt (no immediates)

	is := decodeAll(t, data)

	assert.Equal(t, is[0].Opcode, opcode.V128Load)
	assert.Equal(t, is[0].Mem.Align, uint32(3))

	assert.Equal(t, is[1].Opcode, opcode.V128Const)
	assert.DeepEqual(t, is[1].V128[:], v128)

	assert.Equal(t, is[2].Opcode, opcode.I8x16ExtractLaneS)
	assert.Equal(t, is[2].Lane, uint8(7))

	assert.Equal(t, is[3].Opcode, opcode.V128Load8Lane)
	assert.Equal(t, is[3].Mem.Offset, uint64(2))
	assert.Equal(t, is[3].Lane, uint8(1))
}

func TestDecodeAtomics(t *testing.T) {
	is := decodeAll(t, []byte{
		0xfe, 0x03, 0x00, // atomic.fence
		0xfe, 0x10, 0x02, 0x00, // i32.atomic.load align=2
	})

	assert.Equal(t, is[0].Opcode, opcode.AtomicFence)
	assert.Equal(t, is[1].Opcode, opcode.I32AtomicLoad)
	assert.Equal(t, is[1].Mem.Align, uint32(2))
}

func TestDecodeBadFence(t *testing.T) {
	c := cursorOver([]byte{0xfe, 0x03, 0x01})
	d := NewDecoder(&c)

	var i Instr
	_, err := d.Next(&i)
	assert.Assert(t, errors.IsKind(err, errors.InvalidEncoding))
}

func TestDecodeInvalidOpcode(t *testing.T) {
	c := cursorOver([]byte{0x01, 0x27})
	d := NewDecoder(&c)

	var i Instr
	ok, err := d.Next(&i)
	assert.NilError(t, err)
	assert.Assert(t, ok)

	_, err = d.Next(&i)
	assert.Assert(t, errors.IsKind(err, errors.InvalidOpcode))
	assert.Equal(t, errors.AsError(err).Offset, int64(1))
}

func TestDecodeInvalidSubOpcode(t *testing.T) {
	c := cursorOver([]byte{0xfc, 0x20})
	d := NewDecoder(&c)

	var i Instr
	_, err := d.Next(&i)
	assert.Assert(t, errors.IsKind(err, errors.InvalidOpcode))
	assert.Equal(t, errors.AsError(err).Offset, int64(0))
}

func TestDecodeSignExtension(t *testing.T) {
	is := decodeAll(t, []byte{0xc0, 0xc4})

	assert.Equal(t, is[0].Opcode, opcode.I32Extend8S)
	assert.Equal(t, is[1].Opcode, opcode.I64Extend32S)
}

func TestExpr(t *testing.T) {
	data := []byte{
		0x02, 0x40, // block
		0x41, 0x01, // i32.const 1
		0x0b, // end (block)
		0x0b, // end (expression)
		0xff, // trailing byte outside the expression
	}

	c := cursorOver(data)
	win, err := Expr(&c)
	assert.NilError(t, err)
	assert.Equal(t, win.Len(), int64(6))
	assert.Equal(t, c.Remaining(), int64(1))
}

func TestExprUnterminated(t *testing.T) {
	c := cursorOver([]byte{0x02, 0x40, 0x0b})
	_, err := Expr(&c)
	assert.Assert(t, errors.IsKind(err, errors.UnexpectedEnd))
	assert.Equal(t, errors.AsError(err).Offset, int64(3))
}

func TestExprDelegate(t *testing.T) {
	// try ... delegate 0; end
	data := []byte{0x06, 0x40, 0x18, 0x00, 0x0b}

	c := cursorOver(data)
	win, err := Expr(&c)
	assert.NilError(t, err)
	assert.Equal(t, win.Len(), int64(5))

	// delegate cannot terminate the outermost level.
	c = cursorOver([]byte{0x18, 0x00})
	_, err = Expr(&c)
	assert.Assert(t, errors.IsKind(err, errors.InvalidEncoding))
	assert.Equal(t, errors.AsError(err).Offset, int64(0))
}
