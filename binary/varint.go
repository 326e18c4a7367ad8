// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binary

import (
	encodingbinary "encoding/binary"

	"github.com/wasmscan/wasmscan/errors"
)

// The variable-length integer encoding stores 7 bits of magnitude per byte,
// with the high bit flagging continuation.  Encodings longer than the
// maximum needed for the target width are rejected, as are final bytes
// whose unused bits disagree with the zero- or sign-extension of the value.

// Uint32 reads a fixed-width little-endian value.
func Uint32(c *Cursor) (uint32, error) {
	b, err := c.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return encodingbinary.LittleEndian.Uint32(b), nil
}

// Uint64 reads a fixed-width little-endian value.
func Uint64(c *Cursor) (uint64, error) {
	b, err := c.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return encodingbinary.LittleEndian.Uint64(b), nil
}

// Varuint1 reads a bit (in a byte).
func Varuint1(c *Cursor) (bool, error) {
	off := c.Offset()

	b, err := c.ReadByte()
	if err != nil {
		return false, err
	}
	if b > 1 {
		return false, errors.Newf(errors.InvalidEncoding, off, "varuint1 value is too large: 0x%x", b)
	}
	return b == 1, nil
}

// Varuint32 reads a variably encoded value of at most 5 bytes.
func Varuint32(c *Cursor) (uint32, error) {
	var x uint32
	var shift uint

	for n := 1; n <= 5; n++ {
		off := c.Offset()

		b, err := c.ReadByte()
		if err != nil {
			return 0, err
		}

		if b < 0x80 {
			if n == 5 && b > 0xf {
				return 0, errors.New(errors.IntegerOverflow, off, "varuint32 value is too large")
			}
			return x | uint32(b)<<shift, nil
		}
		if n == 5 {
			return 0, errors.New(errors.IntegerTooLong, off, "varuint32 encoding is too long")
		}

		x |= uint32(b&0x7f) << shift
		shift += 7
	}

	panic("unreachable")
}

// Varuint64 reads a variably encoded value of at most 10 bytes.
func Varuint64(c *Cursor) (uint64, error) {
	var x uint64
	var shift uint

	for n := 1; n <= 10; n++ {
		off := c.Offset()

		b, err := c.ReadByte()
		if err != nil {
			return 0, err
		}

		if b < 0x80 {
			if n == 10 && b > 1 {
				return 0, errors.New(errors.IntegerOverflow, off, "varuint64 value is too large")
			}
			return x | uint64(b)<<shift, nil
		}
		if n == 10 {
			return 0, errors.New(errors.IntegerTooLong, off, "varuint64 encoding is too long")
		}

		x |= uint64(b&0x7f) << shift
		shift += 7
	}

	panic("unreachable")
}

// Varint32 reads a variably encoded signed value of at most 5 bytes.
func Varint32(c *Cursor) (int32, error) {
	var x int32
	var shift uint

	for n := 1; n <= 5; n++ {
		off := c.Offset()

		b, err := c.ReadByte()
		if err != nil {
			return 0, err
		}

		if b&0x80 == 0 {
			neg := b&0x40 != 0

			if n == 5 {
				// The final byte holds value bits 28-31; bits
				// beyond must match the sign.
				if !neg {
					if b > 0x7 {
						return 0, errors.New(errors.IntegerOverflow, off, "varint32 value is too large")
					}
				} else {
					if b < 0x78 {
						return 0, errors.New(errors.IntegerOverflow, off, "varint32 value is too small")
					}
				}
			}

			x |= int32(b&0x7f) << shift
			if neg && n < 5 {
				x |= -1 << (shift + 7)
			}
			return x, nil
		}
		if n == 5 {
			return 0, errors.New(errors.IntegerTooLong, off, "varint32 encoding is too long")
		}

		x |= int32(b&0x7f) << shift
		shift += 7
	}

	panic("unreachable")
}

// Varint33 reads a signed value of at most 5 bytes with a 33-bit range.
// The extra bit exists solely for the block type immediate, which reuses
// negative values for sentinels while keeping the full 32-bit index space.
func Varint33(c *Cursor) (int64, error) {
	var x int64
	var shift uint

	for n := 1; n <= 5; n++ {
		off := c.Offset()

		b, err := c.ReadByte()
		if err != nil {
			return 0, err
		}

		if b&0x80 == 0 {
			neg := b&0x40 != 0

			if n == 5 {
				// The final byte holds value bits 28-32; bits 33
				// and 34 must match the sign.
				if !neg {
					if b&0x60 != 0 {
						return 0, errors.New(errors.IntegerOverflow, off, "varint33 value is too large")
					}
				} else {
					if b&0x60 != 0x60 {
						return 0, errors.New(errors.IntegerOverflow, off, "varint33 value is too small")
					}
				}
			}

			x |= int64(b&0x7f) << shift
			if n == 5 {
				x = x << 31 >> 31 // Sign-extend from bit 32.
			} else if neg {
				x |= -1 << (shift + 7)
			}
			return x, nil
		}
		if n == 5 {
			return 0, errors.New(errors.IntegerTooLong, off, "varint33 encoding is too long")
		}

		x |= int64(b&0x7f) << shift
		shift += 7
	}

	panic("unreachable")
}

// Varint64 reads a variably encoded signed value of at most 10 bytes.
func Varint64(c *Cursor) (int64, error) {
	var x int64
	var shift uint

	for n := 1; n <= 10; n++ {
		off := c.Offset()

		b, err := c.ReadByte()
		if err != nil {
			return 0, err
		}

		if b&0x80 == 0 {
			neg := b&0x40 != 0

			if n == 10 {
				// The final byte holds value bit 63 only.
				if !neg {
					if b != 0 {
						return 0, errors.New(errors.IntegerOverflow, off, "varint64 value is too large")
					}
				} else {
					if b != 0x7f {
						return 0, errors.New(errors.IntegerOverflow, off, "varint64 value is too small")
					}
				}
			}

			x |= int64(b&0x7f) << shift
			if neg && n < 10 {
				x |= -1 << (shift + 7)
			}
			return x, nil
		}
		if n == 10 {
			return 0, errors.New(errors.IntegerTooLong, off, "varint64 encoding is too long")
		}

		x |= int64(b&0x7f) << shift
		shift += 7
	}

	panic("unreachable")
}

// AppendVaruint32 appends the canonical minimal-length encoding of x.
func AppendVaruint32(dst []byte, x uint32) []byte {
	return AppendVaruint64(dst, uint64(x))
}

// AppendVaruint64 appends the canonical minimal-length encoding of x.
func AppendVaruint64(dst []byte, x uint64) []byte {
	for x >= 0x80 {
		dst = append(dst, byte(x)|0x80)
		x >>= 7
	}
	return append(dst, byte(x))
}

// AppendVarint32 appends the canonical minimal-length encoding of x.
func AppendVarint32(dst []byte, x int32) []byte {
	return AppendVarint64(dst, int64(x))
}

// AppendVarint64 appends the canonical minimal-length encoding of x.  It
// also produces valid 33-bit encodings for values in the 33-bit range.
func AppendVarint64(dst []byte, x int64) []byte {
	for {
		b := byte(x & 0x7f)
		x >>= 7

		if (x == 0 && b&0x40 == 0) || (x == -1 && b&0x40 != 0) {
			return append(dst, b)
		}
		dst = append(dst, b|0x80)
	}
}
