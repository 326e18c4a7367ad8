// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wa

import (
	"github.com/wasmscan/wasmscan/binary"
)

// TableType describes a table of references.
type TableType struct {
	Elem ValType
	Limits
}

// ReadTableType decodes a table type.  The element type must be a
// reference type.
func ReadTableType(c *binary.Cursor) (TableType, error) {
	elem, err := ReadRefType(c)
	if err != nil {
		return TableType{}, err
	}

	l, err := ReadLimits(c)
	if err != nil {
		return TableType{}, err
	}

	return TableType{Elem: elem, Limits: l}, nil
}
