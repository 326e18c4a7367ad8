// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opcode

// Vector instructions encoded with the 0xfd prefix byte.  Gaps in the
// sub-opcode space are unassigned instructions.
const (
	V128Load                  = Opcode(0xfd<<16 | 0x00)
	V128Load8x8S              = Opcode(0xfd<<16 | 0x01)
	V128Load8x8U              = Opcode(0xfd<<16 | 0x02)
	V128Load16x4S             = Opcode(0xfd<<16 | 0x03)
	V128Load16x4U             = Opcode(0xfd<<16 | 0x04)
	V128Load32x2S             = Opcode(0xfd<<16 | 0x05)
	V128Load32x2U             = Opcode(0xfd<<16 | 0x06)
	V128Load8Splat            = Opcode(0xfd<<16 | 0x07)
	V128Load16Splat           = Opcode(0xfd<<16 | 0x08)
	V128Load32Splat           = Opcode(0xfd<<16 | 0x09)
	V128Load64Splat           = Opcode(0xfd<<16 | 0x0a)
	V128Store                 = Opcode(0xfd<<16 | 0x0b)
	V128Const                 = Opcode(0xfd<<16 | 0x0c)
	I8x16Shuffle              = Opcode(0xfd<<16 | 0x0d)
	I8x16Swizzle              = Opcode(0xfd<<16 | 0x0e)
	I8x16Splat                = Opcode(0xfd<<16 | 0x0f)
	I16x8Splat                = Opcode(0xfd<<16 | 0x10)
	I32x4Splat                = Opcode(0xfd<<16 | 0x11)
	I64x2Splat                = Opcode(0xfd<<16 | 0x12)
	F32x4Splat                = Opcode(0xfd<<16 | 0x13)
	F64x2Splat                = Opcode(0xfd<<16 | 0x14)
	I8x16ExtractLaneS         = Opcode(0xfd<<16 | 0x15)
	I8x16ExtractLaneU         = Opcode(0xfd<<16 | 0x16)
	I8x16ReplaceLane          = Opcode(0xfd<<16 | 0x17)
	I16x8ExtractLaneS         = Opcode(0xfd<<16 | 0x18)
	I16x8ExtractLaneU         = Opcode(0xfd<<16 | 0x19)
	I16x8ReplaceLane          = Opcode(0xfd<<16 | 0x1a)
	I32x4ExtractLane          = Opcode(0xfd<<16 | 0x1b)
	I32x4ReplaceLane          = Opcode(0xfd<<16 | 0x1c)
	I64x2ExtractLane          = Opcode(0xfd<<16 | 0x1d)
	I64x2ReplaceLane          = Opcode(0xfd<<16 | 0x1e)
	F32x4ExtractLane          = Opcode(0xfd<<16 | 0x1f)
	F32x4ReplaceLane          = Opcode(0xfd<<16 | 0x20)
	F64x2ExtractLane          = Opcode(0xfd<<16 | 0x21)
	F64x2ReplaceLane          = Opcode(0xfd<<16 | 0x22)
	I8x16Eq                   = Opcode(0xfd<<16 | 0x23)
	I8x16Ne                   = Opcode(0xfd<<16 | 0x24)
	I8x16LtS                  = Opcode(0xfd<<16 | 0x25)
	I8x16LtU                  = Opcode(0xfd<<16 | 0x26)
	I8x16GtS                  = Opcode(0xfd<<16 | 0x27)
	I8x16GtU                  = Opcode(0xfd<<16 | 0x28)
	I8x16LeS                  = Opcode(0xfd<<16 | 0x29)
	I8x16LeU                  = Opcode(0xfd<<16 | 0x2a)
	I8x16GeS                  = Opcode(0xfd<<16 | 0x2b)
	I8x16GeU                  = Opcode(0xfd<<16 | 0x2c)
	I16x8Eq                   = Opcode(0xfd<<16 | 0x2d)
	I16x8Ne                   = Opcode(0xfd<<16 | 0x2e)
	I16x8LtS                  = Opcode(0xfd<<16 | 0x2f)
	I16x8LtU                  = Opcode(0xfd<<16 | 0x30)
	I16x8GtS                  = Opcode(0xfd<<16 | 0x31)
	I16x8GtU                  = Opcode(0xfd<<16 | 0x32)
	I16x8LeS                  = Opcode(0xfd<<16 | 0x33)
	I16x8LeU                  = Opcode(0xfd<<16 | 0x34)
	I16x8GeS                  = Opcode(0xfd<<16 | 0x35)
	I16x8GeU                  = Opcode(0xfd<<16 | 0x36)
	I32x4Eq                   = Opcode(0xfd<<16 | 0x37)
	I32x4Ne                   = Opcode(0xfd<<16 | 0x38)
	I32x4LtS                  = Opcode(0xfd<<16 | 0x39)
	I32x4LtU                  = Opcode(0xfd<<16 | 0x3a)
	I32x4GtS                  = Opcode(0xfd<<16 | 0x3b)
	I32x4GtU                  = Opcode(0xfd<<16 | 0x3c)
	I32x4LeS                  = Opcode(0xfd<<16 | 0x3d)
	I32x4LeU                  = Opcode(0xfd<<16 | 0x3e)
	I32x4GeS                  = Opcode(0xfd<<16 | 0x3f)
	I32x4GeU                  = Opcode(0xfd<<16 | 0x40)
	F32x4Eq                   = Opcode(0xfd<<16 | 0x41)
	F32x4Ne                   = Opcode(0xfd<<16 | 0x42)
	F32x4Lt                   = Opcode(0xfd<<16 | 0x43)
	F32x4Gt                   = Opcode(0xfd<<16 | 0x44)
	F32x4Le                   = Opcode(0xfd<<16 | 0x45)
	F32x4Ge                   = Opcode(0xfd<<16 | 0x46)
	F64x2Eq                   = Opcode(0xfd<<16 | 0x47)
	F64x2Ne                   = Opcode(0xfd<<16 | 0x48)
	F64x2Lt                   = Opcode(0xfd<<16 | 0x49)
	F64x2Gt                   = Opcode(0xfd<<16 | 0x4a)
	F64x2Le                   = Opcode(0xfd<<16 | 0x4b)
	F64x2Ge                   = Opcode(0xfd<<16 | 0x4c)
	V128Not                   = Opcode(0xfd<<16 | 0x4d)
	V128And                   = Opcode(0xfd<<16 | 0x4e)
	V128AndNot                = Opcode(0xfd<<16 | 0x4f)
	V128Or                    = Opcode(0xfd<<16 | 0x50)
	V128Xor                   = Opcode(0xfd<<16 | 0x51)
	V128Bitselect             = Opcode(0xfd<<16 | 0x52)
	V128AnyTrue               = Opcode(0xfd<<16 | 0x53)
	V128Load8Lane             = Opcode(0xfd<<16 | 0x54)
	V128Load16Lane            = Opcode(0xfd<<16 | 0x55)
	V128Load32Lane            = Opcode(0xfd<<16 | 0x56)
	V128Load64Lane            = Opcode(0xfd<<16 | 0x57)
	V128Store8Lane            = Opcode(0xfd<<16 | 0x58)
	V128Store16Lane           = Opcode(0xfd<<16 | 0x59)
	V128Store32Lane           = Opcode(0xfd<<16 | 0x5a)
	V128Store64Lane           = Opcode(0xfd<<16 | 0x5b)
	V128Load32Zero            = Opcode(0xfd<<16 | 0x5c)
	V128Load64Zero            = Opcode(0xfd<<16 | 0x5d)
	F32x4DemoteF64x2Zero      = Opcode(0xfd<<16 | 0x5e)
	F64x2PromoteLowF32x4      = Opcode(0xfd<<16 | 0x5f)
	I8x16Abs                  = Opcode(0xfd<<16 | 0x60)
	I8x16Neg                  = Opcode(0xfd<<16 | 0x61)
	I8x16Popcnt               = Opcode(0xfd<<16 | 0x62)
	I8x16AllTrue              = Opcode(0xfd<<16 | 0x63)
	I8x16Bitmask              = Opcode(0xfd<<16 | 0x64)
	I8x16NarrowI16x8S         = Opcode(0xfd<<16 | 0x65)
	I8x16NarrowI16x8U         = Opcode(0xfd<<16 | 0x66)
	F32x4Ceil                 = Opcode(0xfd<<16 | 0x67)
	F32x4Floor                = Opcode(0xfd<<16 | 0x68)
	F32x4Trunc                = Opcode(0xfd<<16 | 0x69)
	F32x4Nearest              = Opcode(0xfd<<16 | 0x6a)
	I8x16Shl                  = Opcode(0xfd<<16 | 0x6b)
	I8x16ShrS                 = Opcode(0xfd<<16 | 0x6c)
	I8x16ShrU                 = Opcode(0xfd<<16 | 0x6d)
	I8x16Add                  = Opcode(0xfd<<16 | 0x6e)
	I8x16AddSatS              = Opcode(0xfd<<16 | 0x6f)
	I8x16AddSatU              = Opcode(0xfd<<16 | 0x70)
	I8x16Sub                  = Opcode(0xfd<<16 | 0x71)
	I8x16SubSatS              = Opcode(0xfd<<16 | 0x72)
	I8x16SubSatU              = Opcode(0xfd<<16 | 0x73)
	F64x2Ceil                 = Opcode(0xfd<<16 | 0x74)
	F64x2Floor                = Opcode(0xfd<<16 | 0x75)
	I8x16MinS                 = Opcode(0xfd<<16 | 0x76)
	I8x16MinU                 = Opcode(0xfd<<16 | 0x77)
	I8x16MaxS                 = Opcode(0xfd<<16 | 0x78)
	I8x16MaxU                 = Opcode(0xfd<<16 | 0x79)
	F64x2Trunc                = Opcode(0xfd<<16 | 0x7a)
	I8x16AvgrU                = Opcode(0xfd<<16 | 0x7b)
	I16x8ExtaddPairwiseI8x16S = Opcode(0xfd<<16 | 0x7c)
	I16x8ExtaddPairwiseI8x16U = Opcode(0xfd<<16 | 0x7d)
	I32x4ExtaddPairwiseI16x8S = Opcode(0xfd<<16 | 0x7e)
	I32x4ExtaddPairwiseI16x8U = Opcode(0xfd<<16 | 0x7f)
	I16x8Abs                  = Opcode(0xfd<<16 | 0x80)
	I16x8Neg                  = Opcode(0xfd<<16 | 0x81)
	I16x8Q15MulrSatS          = Opcode(0xfd<<16 | 0x82)
	I16x8AllTrue              = Opcode(0xfd<<16 | 0x83)
	I16x8Bitmask              = Opcode(0xfd<<16 | 0x84)
	I16x8NarrowI32x4S         = Opcode(0xfd<<16 | 0x85)
	I16x8NarrowI32x4U         = Opcode(0xfd<<16 | 0x86)
	I16x8ExtendLowI8x16S      = Opcode(0xfd<<16 | 0x87)
	I16x8ExtendHighI8x16S     = Opcode(0xfd<<16 | 0x88)
	I16x8ExtendLowI8x16U      = Opcode(0xfd<<16 | 0x89)
	I16x8ExtendHighI8x16U     = Opcode(0xfd<<16 | 0x8a)
	I16x8Shl                  = Opcode(0xfd<<16 | 0x8b)
	I16x8ShrS                 = Opcode(0xfd<<16 | 0x8c)
	I16x8ShrU                 = Opcode(0xfd<<16 | 0x8d)
	I16x8Add                  = Opcode(0xfd<<16 | 0x8e)
	I16x8AddSatS              = Opcode(0xfd<<16 | 0x8f)
	I16x8AddSatU              = Opcode(0xfd<<16 | 0x90)
	I16x8Sub                  = Opcode(0xfd<<16 | 0x91)
	I16x8SubSatS              = Opcode(0xfd<<16 | 0x92)
	I16x8SubSatU              = Opcode(0xfd<<16 | 0x93)
	F64x2Nearest              = Opcode(0xfd<<16 | 0x94)
	I16x8Mul                  = Opcode(0xfd<<16 | 0x95)
	I16x8MinS                 = Opcode(0xfd<<16 | 0x96)
	I16x8MinU                 = Opcode(0xfd<<16 | 0x97)
	I16x8MaxS                 = Opcode(0xfd<<16 | 0x98)
	I16x8MaxU                 = Opcode(0xfd<<16 | 0x99)
	I16x8AvgrU                = Opcode(0xfd<<16 | 0x9b)
	I16x8ExtmulLowI8x16S      = Opcode(0xfd<<16 | 0x9c)
	I16x8ExtmulHighI8x16S     = Opcode(0xfd<<16 | 0x9d)
	I16x8ExtmulLowI8x16U      = Opcode(0xfd<<16 | 0x9e)
	I16x8ExtmulHighI8x16U     = Opcode(0xfd<<16 | 0x9f)
	I32x4Abs                  = Opcode(0xfd<<16 | 0xa0)
	I32x4Neg                  = Opcode(0xfd<<16 | 0xa1)
	I32x4AllTrue              = Opcode(0xfd<<16 | 0xa3)
	I32x4Bitmask              = Opcode(0xfd<<16 | 0xa4)
	I32x4ExtendLowI16x8S      = Opcode(0xfd<<16 | 0xa7)
	I32x4ExtendHighI16x8S     = Opcode(0xfd<<16 | 0xa8)
	I32x4ExtendLowI16x8U      = Opcode(0xfd<<16 | 0xa9)
	I32x4ExtendHighI16x8U     = Opcode(0xfd<<16 | 0xaa)
	I32x4Shl                  = Opcode(0xfd<<16 | 0xab)
	I32x4ShrS                 = Opcode(0xfd<<16 | 0xac)
	I32x4ShrU                 = Opcode(0xfd<<16 | 0xad)
	I32x4Add                  = Opcode(0xfd<<16 | 0xae)
	I32x4Sub                  = Opcode(0xfd<<16 | 0xb1)
	I32x4Mul                  = Opcode(0xfd<<16 | 0xb5)
	I32x4MinS                 = Opcode(0xfd<<16 | 0xb6)
	I32x4MinU                 = Opcode(0xfd<<16 | 0xb7)
	I32x4MaxS                 = Opcode(0xfd<<16 | 0xb8)
	I32x4MaxU                 = Opcode(0xfd<<16 | 0xb9)
	I32x4DotI16x8S            = Opcode(0xfd<<16 | 0xba)
	I32x4ExtmulLowI16x8S      = Opcode(0xfd<<16 | 0xbc)
	I32x4ExtmulHighI16x8S     = Opcode(0xfd<<16 | 0xbd)
	I32x4ExtmulLowI16x8U      = Opcode(0xfd<<16 | 0xbe)
	I32x4ExtmulHighI16x8U     = Opcode(0xfd<<16 | 0xbf)
	I64x2Abs                  = Opcode(0xfd<<16 | 0xc0)
	I64x2Neg                  = Opcode(0xfd<<16 | 0xc1)
	I64x2AllTrue              = Opcode(0xfd<<16 | 0xc3)
	I64x2Bitmask              = Opcode(0xfd<<16 | 0xc4)
	I64x2ExtendLowI32x4S      = Opcode(0xfd<<16 | 0xc7)
	I64x2ExtendHighI32x4S     = Opcode(0xfd<<16 | 0xc8)
	I64x2ExtendLowI32x4U      = Opcode(0xfd<<16 | 0xc9)
	I64x2ExtendHighI32x4U     = Opcode(0xfd<<16 | 0xca)
	I64x2Shl                  = Opcode(0xfd<<16 | 0xcb)
	I64x2ShrS                 = Opcode(0xfd<<16 | 0xcc)
	I64x2ShrU                 = Opcode(0xfd<<16 | 0xcd)
	I64x2Add                  = Opcode(0xfd<<16 | 0xce)
	I64x2Sub                  = Opcode(0xfd<<16 | 0xd1)
	I64x2Mul                  = Opcode(0xfd<<16 | 0xd5)
	I64x2Eq                   = Opcode(0xfd<<16 | 0xd6)
	I64x2Ne                   = Opcode(0xfd<<16 | 0xd7)
	I64x2LtS                  = Opcode(0xfd<<16 | 0xd8)
	I64x2GtS                  = Opcode(0xfd<<16 | 0xd9)
	I64x2LeS                  = Opcode(0xfd<<16 | 0xda)
	I64x2GeS                  = Opcode(0xfd<<16 | 0xdb)
	I64x2ExtmulLowI32x4S      = Opcode(0xfd<<16 | 0xdc)
	I64x2ExtmulHighI32x4S     = Opcode(0xfd<<16 | 0xdd)
	I64x2ExtmulLowI32x4U      = Opcode(0xfd<<16 | 0xde)
	I64x2ExtmulHighI32x4U     = Opcode(0xfd<<16 | 0xdf)
	F32x4Abs                  = Opcode(0xfd<<16 | 0xe0)
	F32x4Neg                  = Opcode(0xfd<<16 | 0xe1)
	F32x4Sqrt                 = Opcode(0xfd<<16 | 0xe3)
	F32x4Add                  = Opcode(0xfd<<16 | 0xe4)
	F32x4Sub                  = Opcode(0xfd<<16 | 0xe5)
	F32x4Mul                  = Opcode(0xfd<<16 | 0xe6)
	F32x4Div                  = Opcode(0xfd<<16 | 0xe7)
	F32x4Min                  = Opcode(0xfd<<16 | 0xe8)
	F32x4Max                  = Opcode(0xfd<<16 | 0xe9)
	F32x4Pmin                 = Opcode(0xfd<<16 | 0xea)
	F32x4Pmax                 = Opcode(0xfd<<16 | 0xeb)
	F64x2Abs                  = Opcode(0xfd<<16 | 0xec)
	F64x2Neg                  = Opcode(0xfd<<16 | 0xed)
	F64x2Sqrt                 = Opcode(0xfd<<16 | 0xef)
	F64x2Add                  = Opcode(0xfd<<16 | 0xf0)
	F64x2Sub                  = Opcode(0xfd<<16 | 0xf1)
	F64x2Mul                  = Opcode(0xfd<<16 | 0xf2)
	F64x2Div                  = Opcode(0xfd<<16 | 0xf3)
	F64x2Min                  = Opcode(0xfd<<16 | 0xf4)
	F64x2Max                  = Opcode(0xfd<<16 | 0xf5)
	F64x2Pmin                 = Opcode(0xfd<<16 | 0xf6)
	F64x2Pmax                 = Opcode(0xfd<<16 | 0xf7)
	I32x4TruncSatF32x4S       = Opcode(0xfd<<16 | 0xf8)
	I32x4TruncSatF32x4U       = Opcode(0xfd<<16 | 0xf9)
	F32x4ConvertI32x4S        = Opcode(0xfd<<16 | 0xfa)
	F32x4ConvertI32x4U        = Opcode(0xfd<<16 | 0xfb)
	I32x4TruncSatF64x2SZero   = Opcode(0xfd<<16 | 0xfc)
	I32x4TruncSatF64x2UZero   = Opcode(0xfd<<16 | 0xfd)
	F64x2ConvertLowI32x4S     = Opcode(0xfd<<16 | 0xfe)
	F64x2ConvertLowI32x4U     = Opcode(0xfd<<16 | 0xff)
)

var simdStrings = map[Opcode]string{
	V128Load:                  "v128.load",
	V128Load8x8S:              "v128.load8x8_s",
	V128Load8x8U:              "v128.load8x8_u",
	V128Load16x4S:             "v128.load16x4_s",
	V128Load16x4U:             "v128.load16x4_u",
	V128Load32x2S:             "v128.load32x2_s",
	V128Load32x2U:             "v128.load32x2_u",
	V128Load8Splat:            "v128.load8_splat",
	V128Load16Splat:           "v128.load16_splat",
	V128Load32Splat:           "v128.load32_splat",
	V128Load64Splat:           "v128.load64_splat",
	V128Store:                 "v128.store",
	V128Const:                 "v128.const",
	I8x16Shuffle:              "i8x16.shuffle",
	I8x16Swizzle:              "i8x16.swizzle",
	I8x16Splat:                "i8x16.splat",
	I16x8Splat:                "i16x8.splat",
	I32x4Splat:                "i32x4.splat",
	I64x2Splat:                "i64x2.splat",
	F32x4Splat:                "f32x4.splat",
	F64x2Splat:                "f64x2.splat",
	I8x16ExtractLaneS:         "i8x16.extract_lane_s",
	I8x16ExtractLaneU:         "i8x16.extract_lane_u",
	I8x16ReplaceLane:          "i8x16.replace_lane",
	I16x8ExtractLaneS:         "i16x8.extract_lane_s",
	I16x8ExtractLaneU:         "i16x8.extract_lane_u",
	I16x8ReplaceLane:          "i16x8.replace_lane",
	I32x4ExtractLane:          "i32x4.extract_lane",
	I32x4ReplaceLane:          "i32x4.replace_lane",
	I64x2ExtractLane:          "i64x2.extract_lane",
	I64x2ReplaceLane:          "i64x2.replace_lane",
	F32x4ExtractLane:          "f32x4.extract_lane",
	F32x4ReplaceLane:          "f32x4.replace_lane",
	F64x2ExtractLane:          "f64x2.extract_lane",
	F64x2ReplaceLane:          "f64x2.replace_lane",
	I8x16Eq:                   "i8x16.eq",
	I8x16Ne:                   "i8x16.ne",
	I8x16LtS:                  "i8x16.lt_s",
	I8x16LtU:                  "i8x16.lt_u",
	I8x16GtS:                  "i8x16.gt_s",
	I8x16GtU:                  "i8x16.gt_u",
	I8x16LeS:                  "i8x16.le_s",
	I8x16LeU:                  "i8x16.le_u",
	I8x16GeS:                  "i8x16.ge_s",
	I8x16GeU:                  "i8x16.ge_u",
	I16x8Eq:                   "i16x8.eq",
	I16x8Ne:                   "i16x8.ne",
	I16x8LtS:                  "i16x8.lt_s",
	I16x8LtU:                  "i16x8.lt_u",
	I16x8GtS:                  "i16x8.gt_s",
	I16x8GtU:                  "i16x8.gt_u",
	I16x8LeS:                  "i16x8.le_s",
	I16x8LeU:                  "i16x8.le_u",
	I16x8GeS:                  "i16x8.ge_s",
	I16x8GeU:                  "i16x8.ge_u",
	I32x4Eq:                   "i32x4.eq",
	I32x4Ne:                   "i32x4.ne",
	I32x4LtS:                  "i32x4.lt_s",
	I32x4LtU:                  "i32x4.lt_u",
	I32x4GtS:                  "i32x4.gt_s",
	I32x4GtU:                  "i32x4.gt_u",
	I32x4LeS:                  "i32x4.le_s",
	I32x4LeU:                  "i32x4.le_u",
	I32x4GeS:                  "i32x4.ge_s",
	I32x4GeU:                  "i32x4.ge_u",
	F32x4Eq:                   "f32x4.eq",
	F32x4Ne:                   "f32x4.ne",
	F32x4Lt:                   "f32x4.lt",
	F32x4Gt:                   "f32x4.gt",
	F32x4Le:                   "f32x4.le",
	F32x4Ge:                   "f32x4.ge",
	F64x2Eq:                   "f64x2.eq",
	F64x2Ne:                   "f64x2.ne",
	F64x2Lt:                   "f64x2.lt",
	F64x2Gt:                   "f64x2.gt",
	F64x2Le:                   "f64x2.le",
	F64x2Ge:                   "f64x2.ge",
	V128Not:                   "v128.not",
	V128And:                   "v128.and",
	V128AndNot:                "v128.andnot",
	V128Or:                    "v128.or",
	V128Xor:                   "v128.xor",
	V128Bitselect:             "v128.bitselect",
	V128AnyTrue:               "v128.any_true",
	V128Load8Lane:             "v128.load8_lane",
	V128Load16Lane:            "v128.load16_lane",
	V128Load32Lane:            "v128.load32_lane",
	V128Load64Lane:            "v128.load64_lane",
	V128Store8Lane:            "v128.store8_lane",
	V128Store16Lane:           "v128.store16_lane",
	V128Store32Lane:           "v128.store32_lane",
	V128Store64Lane:           "v128.store64_lane",
	V128Load32Zero:            "v128.load32_zero",
	V128Load64Zero:            "v128.load64_zero",
	F32x4DemoteF64x2Zero:      "f32x4.demote_f64x2_zero",
	F64x2PromoteLowF32x4:      "f64x2.promote_low_f32x4",
	I8x16Abs:                  "i8x16.abs",
	I8x16Neg:                  "i8x16.neg",
	I8x16Popcnt:               "i8x16.popcnt",
	I8x16AllTrue:              "i8x16.all_true",
	I8x16Bitmask:              "i8x16.bitmask",
	I8x16NarrowI16x8S:         "i8x16.narrow_i16x8_s",
	I8x16NarrowI16x8U:         "i8x16.narrow_i16x8_u",
	F32x4Ceil:                 "f32x4.ceil",
	F32x4Floor:                "f32x4.floor",
	F32x4Trunc:                "f32x4.trunc",
	F32x4Nearest:              "f32x4.nearest",
	I8x16Shl:                  "i8x16.shl",
	I8x16ShrS:                 "i8x16.shr_s",
	I8x16ShrU:                 "i8x16.shr_u",
	I8x16Add:                  "i8x16.add",
	I8x16AddSatS:              "i8x16.add_sat_s",
	I8x16AddSatU:              "i8x16.add_sat_u",
	I8x16Sub:                  "i8x16.sub",
	I8x16SubSatS:              "i8x16.sub_sat_s",
	I8x16SubSatU:              "i8x16.sub_sat_u",
	F64x2Ceil:                 "f64x2.ceil",
	F64x2Floor:                "f64x2.floor",
	I8x16MinS:                 "i8x16.min_s",
	I8x16MinU:                 "i8x16.min_u",
	I8x16MaxS:                 "i8x16.max_s",
	I8x16MaxU:                 "i8x16.max_u",
	F64x2Trunc:                "f64x2.trunc",
	I8x16AvgrU:                "i8x16.avgr_u",
	I16x8ExtaddPairwiseI8x16S: "i16x8.extadd_pairwise_i8x16_s",
	I16x8ExtaddPairwiseI8x16U: "i16x8.extadd_pairwise_i8x16_u",
	I32x4ExtaddPairwiseI16x8S: "i32x4.extadd_pairwise_i16x8_s",
	I32x4ExtaddPairwiseI16x8U: "i32x4.extadd_pairwise_i16x8_u",
	I16x8Abs:                  "i16x8.abs",
	I16x8Neg:                  "i16x8.neg",
	I16x8Q15MulrSatS:          "i16x8.q15mulr_sat_s",
	I16x8AllTrue:              "i16x8.all_true",
	I16x8Bitmask:              "i16x8.bitmask",
	I16x8NarrowI32x4S:         "i16x8.narrow_i32x4_s",
	I16x8NarrowI32x4U:         "i16x8.narrow_i32x4_u",
	I16x8ExtendLowI8x16S:      "i16x8.extend_low_i8x16_s",
	I16x8ExtendHighI8x16S:     "i16x8.extend_high_i8x16_s",
	I16x8ExtendLowI8x16U:      "i16x8.extend_low_i8x16_u",
	I16x8ExtendHighI8x16U:     "i16x8.extend_high_i8x16_u",
	I16x8Shl:                  "i16x8.shl",
	I16x8ShrS:                 "i16x8.shr_s",
	I16x8ShrU:                 "i16x8.shr_u",
	I16x8Add:                  "i16x8.add",
	I16x8AddSatS:              "i16x8.add_sat_s",
	I16x8AddSatU:              "i16x8.add_sat_u",
	I16x8Sub:                  "i16x8.sub",
	I16x8SubSatS:              "i16x8.sub_sat_s",
	I16x8SubSatU:              "i16x8.sub_sat_u",
	F64x2Nearest:              "f64x2.nearest",
	I16x8Mul:                  "i16x8.mul",
	I16x8MinS:                 "i16x8.min_s",
	I16x8MinU:                 "i16x8.min_u",
	I16x8MaxS:                 "i16x8.max_s",
	I16x8MaxU:                 "i16x8.max_u",
	I16x8AvgrU:                "i16x8.avgr_u",
	I16x8ExtmulLowI8x16S:      "i16x8.extmul_low_i8x16_s",
	I16x8ExtmulHighI8x16S:     "i16x8.extmul_high_i8x16_s",
	I16x8ExtmulLowI8x16U:      "i16x8.extmul_low_i8x16_u",
	I16x8ExtmulHighI8x16U:     "i16x8.extmul_high_i8x16_u",
	I32x4Abs:                  "i32x4.abs",
	I32x4Neg:                  "i32x4.neg",
	I32x4AllTrue:              "i32x4.all_true",
	I32x4Bitmask:              "i32x4.bitmask",
	I32x4ExtendLowI16x8S:      "i32x4.extend_low_i16x8_s",
	I32x4ExtendHighI16x8S:     "i32x4.extend_high_i16x8_s",
	I32x4ExtendLowI16x8U:      "i32x4.extend_low_i16x8_u",
	I32x4ExtendHighI16x8U:     "i32x4.extend_high_i16x8_u",
	I32x4Shl:                  "i32x4.shl",
	I32x4ShrS:                 "i32x4.shr_s",
	I32x4ShrU:                 "i32x4.shr_u",
	I32x4Add:                  "i32x4.add",
	I32x4Sub:                  "i32x4.sub",
	I32x4Mul:                  "i32x4.mul",
	I32x4MinS:                 "i32x4.min_s",
	I32x4MinU:                 "i32x4.min_u",
	I32x4MaxS:                 "i32x4.max_s",
	I32x4MaxU:                 "i32x4.max_u",
	I32x4DotI16x8S:            "i32x4.dot_i16x8_s",
	I32x4ExtmulLowI16x8S:      "i32x4.extmul_low_i16x8_s",
	I32x4ExtmulHighI16x8S:     "i32x4.extmul_high_i16x8_s",
	I32x4ExtmulLowI16x8U:      "i32x4.extmul_low_i16x8_u",
	I32x4ExtmulHighI16x8U:     "i32x4.extmul_high_i16x8_u",
	I64x2Abs:                  "i64x2.abs",
	I64x2Neg:                  "i64x2.neg",
	I64x2AllTrue:              "i64x2.all_true",
	I64x2Bitmask:              "i64x2.bitmask",
	I64x2ExtendLowI32x4S:      "i64x2.extend_low_i32x4_s",
	I64x2ExtendHighI32x4S:     "i64x2.extend_high_i32x4_s",
	I64x2ExtendLowI32x4U:      "i64x2.extend_low_i32x4_u",
	I64x2ExtendHighI32x4U:     "i64x2.extend_high_i32x4_u",
	I64x2Shl:                  "i64x2.shl",
	I64x2ShrS:                 "i64x2.shr_s",
	I64x2ShrU:                 "i64x2.shr_u",
	I64x2Add:                  "i64x2.add",
	I64x2Sub:                  "i64x2.sub",
	I64x2Mul:                  "i64x2.mul",
	I64x2Eq:                   "i64x2.eq",
	I64x2Ne:                   "i64x2.ne",
	I64x2LtS:                  "i64x2.lt_s",
	I64x2GtS:                  "i64x2.gt_s",
	I64x2LeS:                  "i64x2.le_s",
	I64x2GeS:                  "i64x2.ge_s",
	I64x2ExtmulLowI32x4S:      "i64x2.extmul_low_i32x4_s",
	I64x2ExtmulHighI32x4S:     "i64x2.extmul_high_i32x4_s",
	I64x2ExtmulLowI32x4U:      "i64x2.extmul_low_i32x4_u",
	I64x2ExtmulHighI32x4U:     "i64x2.extmul_high_i32x4_u",
	F32x4Abs:                  "f32x4.abs",
	F32x4Neg:                  "f32x4.neg",
	F32x4Sqrt:                 "f32x4.sqrt",
	F32x4Add:                  "f32x4.add",
	F32x4Sub:                  "f32x4.sub",
	F32x4Mul:                  "f32x4.mul",
	F32x4Div:                  "f32x4.div",
	F32x4Min:                  "f32x4.min",
	F32x4Max:                  "f32x4.max",
	F32x4Pmin:                 "f32x4.pmin",
	F32x4Pmax:                 "f32x4.pmax",
	F64x2Abs:                  "f64x2.abs",
	F64x2Neg:                  "f64x2.neg",
	F64x2Sqrt:                 "f64x2.sqrt",
	F64x2Add:                  "f64x2.add",
	F64x2Sub:                  "f64x2.sub",
	F64x2Mul:                  "f64x2.mul",
	F64x2Div:                  "f64x2.div",
	F64x2Min:                  "f64x2.min",
	F64x2Max:                  "f64x2.max",
	F64x2Pmin:                 "f64x2.pmin",
	F64x2Pmax:                 "f64x2.pmax",
	I32x4TruncSatF32x4S:       "i32x4.trunc_sat_f32x4_s",
	I32x4TruncSatF32x4U:       "i32x4.trunc_sat_f32x4_u",
	F32x4ConvertI32x4S:        "f32x4.convert_i32x4_s",
	F32x4ConvertI32x4U:        "f32x4.convert_i32x4_u",
	I32x4TruncSatF64x2SZero:   "i32x4.trunc_sat_f64x2_s_zero",
	I32x4TruncSatF64x2UZero:   "i32x4.trunc_sat_f64x2_u_zero",
	F64x2ConvertLowI32x4S:     "f64x2.convert_low_i32x4_s",
	F64x2ConvertLowI32x4U:     "f64x2.convert_low_i32x4_u",
}
