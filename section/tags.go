// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package section

import (
	"github.com/wasmscan/wasmscan/binary"
	"github.com/wasmscan/wasmscan/wa"
)

// Tags decodes the tag section payload.
func Tags(c *binary.Cursor) (binary.Vector[wa.TagType], error) {
	return binary.ReadVector(c, wa.ReadTagType)
}
