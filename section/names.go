// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package section

import (
	"github.com/wasmscan/wasmscan/binary"
)

// CustomName is the name of the custom section holding debug names.
const CustomName = "name"

// Name subsection ids.
const (
	NameModule   = byte(0)
	NameFunction = byte(1)
	NameLocal    = byte(2)
)

// NameSubsection is one subsection of the name custom section.
type NameSubsection struct {
	ID      byte
	Payload binary.Window
}

// NameScanner iterates over the subsections of a name custom section.
// Subsections with unknown ids are returned as-is.
type NameScanner struct {
	cur binary.Cursor
	err error
}

// NewNameScanner scans the contents of a name custom section.
func NewNameScanner(contents binary.Window) *NameScanner {
	return &NameScanner{cur: contents.Cursor()}
}

// Next returns the next subsection, reporting ok == false at the end.
func (s *NameScanner) Next() (sub NameSubsection, ok bool, err error) {
	if s.err != nil {
		return NameSubsection{}, false, s.err
	}
	if s.cur.Remaining() == 0 {
		return NameSubsection{}, false, nil
	}

	id, err := s.cur.ReadByte()
	if err != nil {
		s.err = err
		return NameSubsection{}, false, err
	}

	size, err := binary.Varuint32(&s.cur)
	if err != nil {
		s.err = err
		return NameSubsection{}, false, err
	}

	payload, err := s.cur.Slice(int64(size))
	if err != nil {
		s.err = err
		return NameSubsection{}, false, err
	}

	return NameSubsection{ID: id, Payload: payload}, true, nil
}

// ModuleName decodes a module name subsection payload.
func ModuleName(payload binary.Window) ([]byte, error) {
	c := payload.Cursor()
	return readName(&c)
}

// NameAssoc associates a name with an index.
type NameAssoc struct {
	Index uint32
	Name  []byte
}

// ReadNameAssoc decodes one name map entry.
func ReadNameAssoc(c *binary.Cursor) (NameAssoc, error) {
	i, err := binary.Varuint32(c)
	if err != nil {
		return NameAssoc{}, err
	}

	name, err := readName(c)
	if err != nil {
		return NameAssoc{}, err
	}

	return NameAssoc{Index: i, Name: name}, nil
}

// NameMap decodes a name map, such as the function name subsection payload.
func NameMap(c *binary.Cursor) (binary.Vector[NameAssoc], error) {
	return binary.ReadVector(c, ReadNameAssoc)
}

// IndirectNameAssoc associates a name map with an index, such as the local
// names of one function.
type IndirectNameAssoc struct {
	Index uint32

	count uint32
	names binary.Window
}

// Names returns the inner name map.
func (a *IndirectNameAssoc) Names() binary.Seq[NameAssoc] {
	return binary.MakeSeq(a.names, a.count, ReadNameAssoc)
}

// ReadIndirectNameAssoc decodes one indirect name map entry.  The inner
// map is scanned to find its extent but not retained.
func ReadIndirectNameAssoc(c *binary.Cursor) (IndirectNameAssoc, error) {
	var a IndirectNameAssoc
	var err error

	if a.Index, err = binary.Varuint32(c); err != nil {
		return IndirectNameAssoc{}, err
	}
	if a.count, err = binary.Varuint32(c); err != nil {
		return IndirectNameAssoc{}, err
	}

	win := c.Window()
	start := c.Pos()

	for n := uint32(0); n < a.count; n++ {
		if _, err := ReadNameAssoc(c); err != nil {
			return IndirectNameAssoc{}, err
		}
	}

	if a.names, err = win.Slice(start, c.Pos()-start); err != nil {
		return IndirectNameAssoc{}, err
	}
	return a, nil
}

// IndirectNameMap decodes an indirect name map, such as the local name
// subsection payload.
func IndirectNameMap(c *binary.Cursor) (binary.Vector[IndirectNameAssoc], error) {
	return binary.ReadVector(c, ReadIndirectNameAssoc)
}
