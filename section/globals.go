// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package section

import (
	"github.com/wasmscan/wasmscan/binary"
	"github.com/wasmscan/wasmscan/code"
	"github.com/wasmscan/wasmscan/wa"
)

// GlobalEntry is one global section entry.  Init is the initializer expression,
// terminating end opcode included.
type GlobalEntry struct {
	Type wa.GlobalType
	Init binary.Window
}

// ReadGlobal decodes one global entry.
func ReadGlobal(c *binary.Cursor) (GlobalEntry, error) {
	t, err := wa.ReadGlobalType(c)
	if err != nil {
		return GlobalEntry{}, err
	}

	init, err := code.Expr(c)
	if err != nil {
		return GlobalEntry{}, err
	}

	return GlobalEntry{Type: t, Init: init}, nil
}

// Globals decodes the global section payload.
func Globals(c *binary.Cursor) (binary.Vector[GlobalEntry], error) {
	return binary.ReadVector(c, ReadGlobal)
}
