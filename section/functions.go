// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package section

import (
	"github.com/wasmscan/wasmscan/binary"
)

// Functions decodes the function section payload: the type index of each
// locally defined function.
func Functions(c *binary.Cursor) (binary.Vector[uint32], error) {
	return binary.ReadVector(c, binary.Varuint32)
}
