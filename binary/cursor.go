// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binary

import (
	"github.com/wasmscan/wasmscan/errors"
)

// Cursor couples a Window with a mutable read position.  Reads advance the
// position monotonically; a cursor cannot rewind.  Re-deriving a fresh
// cursor from recorded window bounds is the only way back.
//
// A cursor is owned by a single caller.  Distinct cursors over disjoint
// windows are independent.
type Cursor struct {
	win Window
	pos int64
}

// Offset returns the absolute offset of the next byte to be read, measured
// against the original buffer.
func (c *Cursor) Offset() int64 {
	return c.win.base + c.pos
}

// Pos returns the window-relative read position.
func (c *Cursor) Pos() int64 {
	return c.pos
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int64 {
	return c.win.size - c.pos
}

// Window returns the window the cursor reads from.
func (c *Cursor) Window() Window {
	return c.win
}

// end returns the absolute offset just past the window, which is where
// truncation is detected.
func (c *Cursor) end() int64 {
	return c.win.base + c.win.size
}

// ReadByte returns the next byte.
func (c *Cursor) ReadByte() (byte, error) {
	if c.pos >= c.win.size {
		return 0, errors.New(errors.UnexpectedEnd, c.end(), "")
	}

	b, err := c.win.Bytes(c.pos, 1)
	if err != nil {
		return 0, err
	}
	c.pos++
	return b[0], nil
}

// ReadBytes returns the next n bytes, borrowed from the buffer.
func (c *Cursor) ReadBytes(n int64) ([]byte, error) {
	if n > c.Remaining() {
		return nil, errors.Newf(errors.UnexpectedEnd, c.end(), "%d bytes required", n)
	}

	b, err := c.win.Bytes(c.pos, n)
	if err != nil {
		return nil, err
	}
	c.pos += n
	return b, nil
}

// Skip advances the position by n bytes without reading them.  The
// position never moves backwards.
func (c *Cursor) Skip(n int64) error {
	if n < 0 {
		return errors.Newf(errors.OutOfBounds, c.Offset(), "cannot skip %d bytes", n)
	}
	if n > c.Remaining() {
		return errors.Newf(errors.UnexpectedEnd, c.end(), "cannot skip %d bytes", n)
	}
	c.pos += n
	return nil
}

// Slice consumes the next n bytes and returns them as a self-contained
// window.
func (c *Cursor) Slice(n int64) (Window, error) {
	if n > c.Remaining() {
		return Window{}, errors.Newf(errors.UnexpectedEnd, c.end(), "%d bytes required", n)
	}

	w, err := c.win.Slice(c.pos, n)
	if err != nil {
		return Window{}, err
	}
	c.pos += n
	return w, nil
}

// Rest returns the unread remainder as a window without advancing.
func (c *Cursor) Rest() Window {
	w, _ := c.win.Slice(c.pos, c.Remaining())
	return w
}
