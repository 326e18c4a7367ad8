// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package section

import (
	"github.com/wasmscan/wasmscan/binary"
)

// DataCountValue decodes the data count section payload: the number of
// data segments declared ahead of the code section.
func DataCountValue(c *binary.Cursor) (uint32, error) {
	return binary.Varuint32(c)
}
