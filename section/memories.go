// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package section

import (
	"github.com/wasmscan/wasmscan/binary"
	"github.com/wasmscan/wasmscan/wa"
)

// Memories decodes the memory section payload.
func Memories(c *binary.Cursor) (binary.Vector[wa.MemType], error) {
	return binary.ReadVector(c, wa.ReadMemType)
}
