// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package section

import (
	"github.com/wasmscan/wasmscan/binary"
	"github.com/wasmscan/wasmscan/code"
)

// CodeEntries decodes the code section payload.  Each body is returned as
// an undecoded window; the scanner advances by the declared body sizes.
func CodeEntries(c *binary.Cursor) (binary.Vector[code.Body], error) {
	return binary.ReadVector(c, code.ReadBody)
}
