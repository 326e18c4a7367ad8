// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package code

import (
	"github.com/wasmscan/wasmscan/binary"
	"github.com/wasmscan/wasmscan/errors"
	"github.com/wasmscan/wasmscan/wa/opcode"
)

// Expr consumes one expression at the cursor position and returns its
// window, terminating end opcode included.  Instructions are decoded only
// far enough to track block nesting; no validation beyond the instruction
// grammar takes place.
func Expr(c *binary.Cursor) (binary.Window, error) {
	win := c.Window()
	start := c.Pos()

	d := NewDecoder(c)
	depth := 0

	var i Instr
	for {
		off := d.Offset()

		ok, err := d.Next(&i)
		if err != nil {
			return binary.Window{}, err
		}
		if !ok {
			return binary.Window{}, errors.New(errors.UnexpectedEnd, off, "unterminated expression")
		}

		switch i.Opcode {
		case opcode.Block, opcode.Loop, opcode.If, opcode.Try:
			depth++

		case opcode.Delegate:
			// Terminates a try block like end, but cannot close
			// the expression itself.
			if depth == 0 {
				return binary.Window{}, errors.New(errors.InvalidEncoding, off, "delegate outside block")
			}
			depth--

		case opcode.End:
			if depth == 0 {
				return win.Slice(start, c.Pos()-start)
			}
			depth--
		}
	}
}
