// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package section

import (
	"unicode/utf8"

	"github.com/wasmscan/wasmscan/binary"
	"github.com/wasmscan/wasmscan/errors"
)

// readName decodes a length-prefixed name.  The bytes are borrowed from
// the buffer and must form valid UTF-8.
func readName(c *binary.Cursor) ([]byte, error) {
	n, err := binary.Varuint32(c)
	if err != nil {
		return nil, err
	}

	off := c.Offset()

	b, err := c.ReadBytes(int64(n))
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(b) {
		return nil, errors.New(errors.InvalidEncoding, off, "name is not valid UTF-8")
	}
	return b, nil
}
