// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package section

import (
	"github.com/wasmscan/wasmscan/binary"
)

// StartFunc decodes the start section payload: the start function index.
func StartFunc(c *binary.Cursor) (uint32, error) {
	return binary.Varuint32(c)
}
