// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opcode

// Miscellaneous instructions (saturating truncation, bulk memory and table
// operations) encoded with the 0xfc prefix byte.
const (
	I32TruncSatF32S = Opcode(0xfc<<16 | 0x00)
	I32TruncSatF32U = Opcode(0xfc<<16 | 0x01)
	I32TruncSatF64S = Opcode(0xfc<<16 | 0x02)
	I32TruncSatF64U = Opcode(0xfc<<16 | 0x03)
	I64TruncSatF32S = Opcode(0xfc<<16 | 0x04)
	I64TruncSatF32U = Opcode(0xfc<<16 | 0x05)
	I64TruncSatF64S = Opcode(0xfc<<16 | 0x06)
	I64TruncSatF64U = Opcode(0xfc<<16 | 0x07)
	MemoryInit      = Opcode(0xfc<<16 | 0x08)
	DataDrop        = Opcode(0xfc<<16 | 0x09)
	MemoryCopy      = Opcode(0xfc<<16 | 0x0a)
	MemoryFill      = Opcode(0xfc<<16 | 0x0b)
	TableInit       = Opcode(0xfc<<16 | 0x0c)
	ElemDrop        = Opcode(0xfc<<16 | 0x0d)
	TableCopy       = Opcode(0xfc<<16 | 0x0e)
	TableGrow       = Opcode(0xfc<<16 | 0x0f)
	TableSize       = Opcode(0xfc<<16 | 0x10)
	TableFill       = Opcode(0xfc<<16 | 0x11)
)

// Atomic memory instructions encoded with the 0xfe prefix byte.
const (
	AtomicFence = Opcode(0xfe<<16 | 0x03)

	MemoryAtomicNotify     = Opcode(0xfe<<16 | 0x00)
	MemoryAtomicWait32     = Opcode(0xfe<<16 | 0x01)
	MemoryAtomicWait64     = Opcode(0xfe<<16 | 0x02)
	I32AtomicLoad          = Opcode(0xfe<<16 | 0x10)
	I64AtomicLoad          = Opcode(0xfe<<16 | 0x11)
	I32AtomicLoad8U        = Opcode(0xfe<<16 | 0x12)
	I32AtomicLoad16U       = Opcode(0xfe<<16 | 0x13)
	I64AtomicLoad8U        = Opcode(0xfe<<16 | 0x14)
	I64AtomicLoad16U       = Opcode(0xfe<<16 | 0x15)
	I64AtomicLoad32U       = Opcode(0xfe<<16 | 0x16)
	I32AtomicStore         = Opcode(0xfe<<16 | 0x17)
	I64AtomicStore         = Opcode(0xfe<<16 | 0x18)
	I32AtomicStore8U       = Opcode(0xfe<<16 | 0x19)
	I32AtomicStore16U      = Opcode(0xfe<<16 | 0x1a)
	I64AtomicStore8U       = Opcode(0xfe<<16 | 0x1b)
	I64AtomicStore16U      = Opcode(0xfe<<16 | 0x1c)
	I64AtomicStore32U      = Opcode(0xfe<<16 | 0x1d)
	I32AtomicRmwAdd        = Opcode(0xfe<<16 | 0x1e)
	I64AtomicRmwAdd        = Opcode(0xfe<<16 | 0x1f)
	I32AtomicRmw8AddU      = Opcode(0xfe<<16 | 0x20)
	I32AtomicRmw16AddU     = Opcode(0xfe<<16 | 0x21)
	I64AtomicRmw8AddU      = Opcode(0xfe<<16 | 0x22)
	I64AtomicRmw16AddU     = Opcode(0xfe<<16 | 0x23)
	I64AtomicRmw32AddU     = Opcode(0xfe<<16 | 0x24)
	I32AtomicRmwSub        = Opcode(0xfe<<16 | 0x25)
	I64AtomicRmwSub        = Opcode(0xfe<<16 | 0x26)
	I32AtomicRmw8SubU      = Opcode(0xfe<<16 | 0x27)
	I32AtomicRmw16SubU     = Opcode(0xfe<<16 | 0x28)
	I64AtomicRmw8SubU      = Opcode(0xfe<<16 | 0x29)
	I64AtomicRmw16SubU     = Opcode(0xfe<<16 | 0x2a)
	I64AtomicRmw32SubU     = Opcode(0xfe<<16 | 0x2b)
	I32AtomicRmwAnd        = Opcode(0xfe<<16 | 0x2c)
	I64AtomicRmwAnd        = Opcode(0xfe<<16 | 0x2d)
	I32AtomicRmw8AndU      = Opcode(0xfe<<16 | 0x2e)
	I32AtomicRmw16AndU     = Opcode(0xfe<<16 | 0x2f)
	I64AtomicRmw8AndU      = Opcode(0xfe<<16 | 0x30)
	I64AtomicRmw16AndU     = Opcode(0xfe<<16 | 0x31)
	I64AtomicRmw32AndU     = Opcode(0xfe<<16 | 0x32)
	I32AtomicRmwOr         = Opcode(0xfe<<16 | 0x33)
	I64AtomicRmwOr         = Opcode(0xfe<<16 | 0x34)
	I32AtomicRmw8OrU       = Opcode(0xfe<<16 | 0x35)
	I32AtomicRmw16OrU      = Opcode(0xfe<<16 | 0x36)
	I64AtomicRmw8OrU       = Opcode(0xfe<<16 | 0x37)
	I64AtomicRmw16OrU      = Opcode(0xfe<<16 | 0x38)
	I64AtomicRmw32OrU      = Opcode(0xfe<<16 | 0x39)
	I32AtomicRmwXor        = Opcode(0xfe<<16 | 0x3a)
	I64AtomicRmwXor        = Opcode(0xfe<<16 | 0x3b)
	I32AtomicRmw8XorU      = Opcode(0xfe<<16 | 0x3c)
	I32AtomicRmw16XorU     = Opcode(0xfe<<16 | 0x3d)
	I64AtomicRmw8XorU      = Opcode(0xfe<<16 | 0x3e)
	I64AtomicRmw16XorU     = Opcode(0xfe<<16 | 0x3f)
	I64AtomicRmw32XorU     = Opcode(0xfe<<16 | 0x40)
	I32AtomicRmwXchg       = Opcode(0xfe<<16 | 0x41)
	I64AtomicRmwXchg       = Opcode(0xfe<<16 | 0x42)
	I32AtomicRmw8XchgU     = Opcode(0xfe<<16 | 0x43)
	I32AtomicRmw16XchgU    = Opcode(0xfe<<16 | 0x44)
	I64AtomicRmw8XchgU     = Opcode(0xfe<<16 | 0x45)
	I64AtomicRmw16XchgU    = Opcode(0xfe<<16 | 0x46)
	I64AtomicRmw32XchgU    = Opcode(0xfe<<16 | 0x47)
	I32AtomicRmwCmpxchg    = Opcode(0xfe<<16 | 0x48)
	I64AtomicRmwCmpxchg    = Opcode(0xfe<<16 | 0x49)
	I32AtomicRmw8CmpxchgU  = Opcode(0xfe<<16 | 0x4a)
	I32AtomicRmw16CmpxchgU = Opcode(0xfe<<16 | 0x4b)
	I64AtomicRmw8CmpxchgU  = Opcode(0xfe<<16 | 0x4c)
	I64AtomicRmw16CmpxchgU = Opcode(0xfe<<16 | 0x4d)
	I64AtomicRmw32CmpxchgU = Opcode(0xfe<<16 | 0x4e)
)

var miscStrings = map[Opcode]string{
	I32TruncSatF32S: "i32.trunc_sat_f32_s",
	I32TruncSatF32U: "i32.trunc_sat_f32_u",
	I32TruncSatF64S: "i32.trunc_sat_f64_s",
	I32TruncSatF64U: "i32.trunc_sat_f64_u",
	I64TruncSatF32S: "i64.trunc_sat_f32_s",
	I64TruncSatF32U: "i64.trunc_sat_f32_u",
	I64TruncSatF64S: "i64.trunc_sat_f64_s",
	I64TruncSatF64U: "i64.trunc_sat_f64_u",
	MemoryInit:      "memory.init",
	DataDrop:        "data.drop",
	MemoryCopy:      "memory.copy",
	MemoryFill:      "memory.fill",
	TableInit:       "table.init",
	ElemDrop:        "elem.drop",
	TableCopy:       "table.copy",
	TableGrow:       "table.grow",
	TableSize:       "table.size",
	TableFill:       "table.fill",
}

var atomicStrings = map[Opcode]string{
	AtomicFence:            "atomic.fence",
	MemoryAtomicNotify:     "memory.atomic.notify",
	MemoryAtomicWait32:     "memory.atomic.wait32",
	MemoryAtomicWait64:     "memory.atomic.wait64",
	I32AtomicLoad:          "i32.atomic.load",
	I64AtomicLoad:          "i64.atomic.load",
	I32AtomicLoad8U:        "i32.atomic.load8_u",
	I32AtomicLoad16U:       "i32.atomic.load16_u",
	I64AtomicLoad8U:        "i64.atomic.load8_u",
	I64AtomicLoad16U:       "i64.atomic.load16_u",
	I64AtomicLoad32U:       "i64.atomic.load32_u",
	I32AtomicStore:         "i32.atomic.store",
	I64AtomicStore:         "i64.atomic.store",
	I32AtomicStore8U:       "i32.atomic.store8_u",
	I32AtomicStore16U:      "i32.atomic.store16_u",
	I64AtomicStore8U:       "i64.atomic.store8_u",
	I64AtomicStore16U:      "i64.atomic.store16_u",
	I64AtomicStore32U:      "i64.atomic.store32_u",
	I32AtomicRmwAdd:        "i32.atomic.rmw.add",
	I64AtomicRmwAdd:        "i64.atomic.rmw.add",
	I32AtomicRmw8AddU:      "i32.atomic.rmw8.add_u",
	I32AtomicRmw16AddU:     "i32.atomic.rmw16.add_u",
	I64AtomicRmw8AddU:      "i64.atomic.rmw8.add_u",
	I64AtomicRmw16AddU:     "i64.atomic.rmw16.add_u",
	I64AtomicRmw32AddU:     "i64.atomic.rmw32.add_u",
	I32AtomicRmwSub:        "i32.atomic.rmw.sub",
	I64AtomicRmwSub:        "i64.atomic.rmw.sub",
	I32AtomicRmw8SubU:      "i32.atomic.rmw8.sub_u",
	I32AtomicRmw16SubU:     "i32.atomic.rmw16.sub_u",
	I64AtomicRmw8SubU:      "i64.atomic.rmw8.sub_u",
	I64AtomicRmw16SubU:     "i64.atomic.rmw16.sub_u",
	I64AtomicRmw32SubU:     "i64.atomic.rmw32.sub_u",
	I32AtomicRmwAnd:        "i32.atomic.rmw.and",
	I64AtomicRmwAnd:        "i64.atomic.rmw.and",
	I32AtomicRmw8AndU:      "i32.atomic.rmw8.and_u",
	I32AtomicRmw16AndU:     "i32.atomic.rmw16.and_u",
	I64AtomicRmw8AndU:      "i64.atomic.rmw8.and_u",
	I64AtomicRmw16AndU:     "i64.atomic.rmw16.and_u",
	I64AtomicRmw32AndU:     "i64.atomic.rmw32.and_u",
	I32AtomicRmwOr:         "i32.atomic.rmw.or",
	I64AtomicRmwOr:         "i64.atomic.rmw.or",
	I32AtomicRmw8OrU:       "i32.atomic.rmw8.or_u",
	I32AtomicRmw16OrU:      "i32.atomic.rmw16.or_u",
	I64AtomicRmw8OrU:       "i64.atomic.rmw8.or_u",
	I64AtomicRmw16OrU:      "i64.atomic.rmw16.or_u",
	I64AtomicRmw32OrU:      "i64.atomic.rmw32.or_u",
	I32AtomicRmwXor:        "i32.atomic.rmw.xor",
	I64AtomicRmwXor:        "i64.atomic.rmw.xor",
	I32AtomicRmw8XorU:      "i32.atomic.rmw8.xor_u",
	I32AtomicRmw16XorU:     "i32.atomic.rmw16.xor_u",
	I64AtomicRmw8XorU:      "i64.atomic.rmw8.xor_u",
	I64AtomicRmw16XorU:     "i64.atomic.rmw16.xor_u",
	I64AtomicRmw32XorU:     "i64.atomic.rmw32.xor_u",
	I32AtomicRmwXchg:       "i32.atomic.rmw.xchg",
	I64AtomicRmwXchg:       "i64.atomic.rmw.xchg",
	I32AtomicRmw8XchgU:     "i32.atomic.rmw8.xchg_u",
	I32AtomicRmw16XchgU:    "i32.atomic.rmw16.xchg_u",
	I64AtomicRmw8XchgU:     "i64.atomic.rmw8.xchg_u",
	I64AtomicRmw16XchgU:    "i64.atomic.rmw16.xchg_u",
	I64AtomicRmw32XchgU:    "i64.atomic.rmw32.xchg_u",
	I32AtomicRmwCmpxchg:    "i32.atomic.rmw.cmpxchg",
	I64AtomicRmwCmpxchg:    "i64.atomic.rmw.cmpxchg",
	I32AtomicRmw8CmpxchgU:  "i32.atomic.rmw8.cmpxchg_u",
	I32AtomicRmw16CmpxchgU: "i32.atomic.rmw16.cmpxchg_u",
	I64AtomicRmw8CmpxchgU:  "i64.atomic.rmw8.cmpxchg_u",
	I64AtomicRmw16CmpxchgU: "i64.atomic.rmw16.cmpxchg_u",
	I64AtomicRmw32CmpxchgU: "i64.atomic.rmw32.cmpxchg_u",
}
