// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wa

import (
	"github.com/wasmscan/wasmscan/binary"
	"github.com/wasmscan/wasmscan/errors"
)

// TagType describes an exception tag.  The function type at TypeIndex
// gives the exception's payload.
type TagType struct {
	TypeIndex uint32
}

// ReadTagType decodes a tag type.  The only defined attribute is zero.
func ReadTagType(c *binary.Cursor) (TagType, error) {
	off := c.Offset()

	attr, err := c.ReadByte()
	if err != nil {
		return TagType{}, err
	}
	if attr != 0 {
		return TagType{}, errors.Newf(errors.InvalidEncoding, off, "invalid tag attribute: 0x%02x", attr)
	}

	i, err := binary.Varuint32(c)
	if err != nil {
		return TagType{}, err
	}
	return TagType{TypeIndex: i}, nil
}
