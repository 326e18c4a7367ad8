// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package code decodes function bodies and constant expressions into a
// flat stream of instructions.
package code

import (
	"math"

	"github.com/wasmscan/wasmscan/binary"
	"github.com/wasmscan/wasmscan/wa"
	"github.com/wasmscan/wasmscan/wa/opcode"
)

// MemArg addresses a linear memory access.  Align is the exponent of the
// alignment hint.  Memory is nonzero only with the multi-memory extension.
type MemArg struct {
	Offset uint64
	Align  uint32
	Memory uint32
}

// BranchTable holds the undecoded label vector of a br_table instruction.
type BranchTable struct {
	Count   uint32
	Targets binary.Window
	Default uint32
}

// Labels returns the non-default branch targets as a lazy sequence.
func (t BranchTable) Labels() binary.Seq[uint32] {
	return binary.MakeSeq(t.Targets, t.Count, binary.Varuint32)
}

// Instr is a decoded instruction.  Only the fields implied by the opcode
// are meaningful; the rest retain values from earlier instructions.  The
// struct is designed to be reused across Decoder.Next calls.
type Instr struct {
	Opcode opcode.Opcode
	Block  wa.BlockType
	Mem    MemArg
	X      uint64
	Y      uint64
	Lane   uint8
	V128   [16]byte
	Table  BranchTable
	Types  wa.TypeVec
}

// Index returns the generic index immediate (label, function, type, local,
// global, table, memory, data or element index depending on the opcode).
func (i *Instr) Index() uint32 {
	return uint32(i.X)
}

// I32 returns the i32.const immediate.
func (i *Instr) I32() int32 {
	return int32(i.X)
}

// I64 returns the i64.const immediate.
func (i *Instr) I64() int64 {
	return int64(i.X)
}

// F32 returns the f32.const immediate.
func (i *Instr) F32() float32 {
	return math.Float32frombits(uint32(i.X))
}

// F64 returns the f64.const immediate.
func (i *Instr) F64() float64 {
	return math.Float64frombits(i.X)
}

// RefType returns the ref.null type immediate.
func (i *Instr) RefType() wa.ValType {
	return wa.ValType(i.X)
}
