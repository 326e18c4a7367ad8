// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package section

import (
	"fmt"

	"github.com/wasmscan/wasmscan/binary"
	"github.com/wasmscan/wasmscan/errors"
)

// Module preamble.
const (
	magic   = "\x00asm"
	version = 1
)

// Section is one section of a module.  The payload window covers the
// contents after the id and size fields.  Payloads of unknown ids are
// returned as-is; it is up to the caller to skip or reject them.
type Section struct {
	ID      ID
	Payload binary.Window
}

// Scanner iterates over the sections of a module binary.  It advances by
// each section's declared size without decoding payloads, so sections can
// be handed out for independent, concurrent decoding.
//
// A scanner error is terminal.  Further Next calls return the same error.
type Scanner struct {
	cur      binary.Cursor
	preamble bool
	err      error
}

// NewScanner scans the module binary covered by w, preamble included.
func NewScanner(w binary.Window) *Scanner {
	return &Scanner{cur: w.Cursor()}
}

// Next returns the next section.  It reports ok == false without error at
// the end of the module.
func (s *Scanner) Next() (sec Section, ok bool, err error) {
	if s.err != nil {
		return Section{}, false, s.err
	}

	if !s.preamble {
		if err := s.readPreamble(); err != nil {
			s.err = err
			return Section{}, false, err
		}
		s.preamble = true
	}

	if s.cur.Remaining() == 0 {
		return Section{}, false, nil
	}

	id, err := s.cur.ReadByte()
	if err != nil {
		s.err = err
		return Section{}, false, err
	}

	size, err := binary.Varuint32(&s.cur)
	if err != nil {
		s.err = err
		return Section{}, false, err
	}

	payload, err := s.cur.Slice(int64(size))
	if err != nil {
		err = errors.Wrap(err, errors.SectionOverrun, s.cur.Offset(), fmt.Sprintf("%s section of %d bytes exceeds module", ID(id), size))
		s.err = err
		return Section{}, false, err
	}

	return Section{ID: ID(id), Payload: payload}, true, nil
}

// Done tells if the whole module has been scanned without error.
func (s *Scanner) Done() bool {
	return s.err == nil && s.preamble && s.cur.Remaining() == 0
}

func (s *Scanner) readPreamble() error {
	off := s.cur.Offset()

	b, err := s.cur.ReadBytes(4)
	if err != nil {
		return err
	}
	if string(b) != magic {
		return errors.New(errors.InvalidPreamble, off, "not a module binary")
	}

	off = s.cur.Offset()

	v, err := binary.Uint32(&s.cur)
	if err != nil {
		return err
	}
	if v != version {
		return errors.Newf(errors.InvalidPreamble, off, "unsupported module version: %d", v)
	}

	return nil
}
