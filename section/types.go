// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package section

import (
	"github.com/wasmscan/wasmscan/binary"
	"github.com/wasmscan/wasmscan/wa"
)

// Types decodes the type section payload.
func Types(c *binary.Cursor) (binary.Vector[wa.FuncType], error) {
	return binary.ReadVector(c, wa.ReadFuncType)
}
