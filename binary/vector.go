// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binary

// DecodeFunc decodes one item at the cursor position.
type DecodeFunc[T any] func(*Cursor) (T, error)

// Vector is a forward-only, single-pass view of a length-prefixed sequence.
// Items are decoded on demand from the cursor the vector was read from;
// the caller must not touch that cursor until the vector is exhausted or
// abandoned.  Abandoning a vector leaves the cursor wherever the last
// successful pull left it.
type Vector[T any] struct {
	remaining uint32
	cur       *Cursor
	dec       DecodeFunc[T]
}

// ReadVector reads an item count at the cursor position and returns the
// following items as a lazy sequence.  A count of zero consumes no bytes
// beyond the count itself.
func ReadVector[T any](c *Cursor, dec DecodeFunc[T]) (Vector[T], error) {
	n, err := Varuint32(c)
	if err != nil {
		return Vector[T]{}, err
	}
	return Vector[T]{remaining: n, cur: c, dec: dec}, nil
}

// Len returns the number of items not yet decoded.
func (v *Vector[T]) Len() uint32 {
	return v.remaining
}

// Next decodes the next item.  It reports ok == false without reading any
// bytes once the sequence is exhausted.
func (v *Vector[T]) Next() (item T, ok bool, err error) {
	if v.remaining == 0 {
		return
	}

	item, err = v.dec(v.cur)
	if err != nil {
		return
	}
	v.remaining--
	ok = true
	return
}

// Seq is a self-contained sequence of counted items over a recorded window.
// Unlike Vector it owns its cursor, so it can be constructed from bounds
// captured earlier and handed to an independent consumer.
type Seq[T any] struct {
	remaining uint32
	cur       Cursor
	dec       DecodeFunc[T]
}

// MakeSeq creates a sequence of n items decoded from the start of w.
func MakeSeq[T any](w Window, n uint32, dec DecodeFunc[T]) Seq[T] {
	return Seq[T]{remaining: n, cur: w.Cursor(), dec: dec}
}

// Len returns the number of items not yet decoded.
func (s *Seq[T]) Len() uint32 {
	return s.remaining
}

// Next decodes the next item, reporting ok == false at exhaustion.
func (s *Seq[T]) Next() (item T, ok bool, err error) {
	if s.remaining == 0 {
		return
	}

	item, err = s.dec(&s.cur)
	if err != nil {
		return
	}
	s.remaining--
	ok = true
	return
}
