// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wasmscan decodes WebAssembly module binaries lazily and without
// copying.
//
// The subpackages do the work: buffer provides byte sources, binary
// provides windows, cursors and integer decoding, section scans and
// decodes module sections, code decodes instruction streams, and dump
// renders a module as text.  This package ties them together for the
// common case of a module held in memory.
package wasmscan

import (
	"github.com/wasmscan/wasmscan/binary"
	"github.com/wasmscan/wasmscan/buffer"
	"github.com/wasmscan/wasmscan/code"
	"github.com/wasmscan/wasmscan/errors"
	"github.com/wasmscan/wasmscan/section"
)

// Module wraps a module binary held in memory.  The data must not be
// modified while decoded views are in use.
func Module(data []byte) binary.Window {
	return binary.NewWindow(buffer.Slice(data))
}

// Scan returns a section scanner over a module binary held in memory.
func Scan(data []byte) *section.Scanner {
	return section.NewScanner(Module(data))
}

// Walk decodes every section payload and instruction of the module
// eagerly, reporting the first error.  Nothing is retained; Walk answers
// only whether the binary decodes cleanly.
func Walk(win binary.Window) error {
	s := section.NewScanner(win)
	for {
		sec, ok, err := s.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := walkSection(sec); err != nil {
			return err
		}
	}
}

func walkSection(sec section.Section) error {
	c := sec.Payload.Cursor()

	switch sec.ID {
	case section.Custom:
		return walkCustom(sec.Payload)

	case section.Type:
		v, err := section.Types(&c)
		if err != nil {
			return err
		}
		return drain(&v)

	case section.Import:
		v, err := section.Imports(&c)
		if err != nil {
			return err
		}
		return drain(&v)

	case section.Function:
		v, err := section.Functions(&c)
		if err != nil {
			return err
		}
		return drain(&v)

	case section.Table:
		v, err := section.Tables(&c)
		if err != nil {
			return err
		}
		return drain(&v)

	case section.Memory:
		v, err := section.Memories(&c)
		if err != nil {
			return err
		}
		return drain(&v)

	case section.Global:
		v, err := section.Globals(&c)
		if err != nil {
			return err
		}
		return drain(&v)

	case section.Export:
		v, err := section.Exports(&c)
		if err != nil {
			return err
		}
		return drain(&v)

	case section.Start:
		_, err := section.StartFunc(&c)
		return err

	case section.Element:
		v, err := section.Elements(&c)
		if err != nil {
			return err
		}
		return drain(&v)

	case section.Code:
		return walkCode(&c)

	case section.Data:
		v, err := section.DataSegments(&c)
		if err != nil {
			return err
		}
		return drain(&v)

	case section.DataCount:
		_, err := section.DataCountValue(&c)
		return err

	case section.Tag:
		v, err := section.Tags(&c)
		if err != nil {
			return err
		}
		return drain(&v)

	default:
		return nil
	}
}

func walkCode(c *binary.Cursor) error {
	v, err := section.CodeEntries(c)
	if err != nil {
		return err
	}

	for {
		b, ok, err := v.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		bc := b.Cursor()
		locals, err := b.Locals(&bc)
		if err != nil {
			return err
		}
		if err := drain(&locals); err != nil {
			return err
		}

		if _, err := code.Expr(&bc); err != nil {
			return err
		}
		if bc.Remaining() != 0 {
			return errors.Newf(errors.InvalidEncoding, bc.Offset(), "%d bytes after function body expression", bc.Remaining())
		}
	}
}

func walkCustom(payload binary.Window) error {
	cs, err := section.ReadCustom(payload)
	if err != nil {
		return err
	}
	if string(cs.Name) != section.CustomName {
		return nil
	}

	s := section.NewNameScanner(cs.Contents)
	for {
		sub, ok, err := s.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		c := sub.Payload.Cursor()

		switch sub.ID {
		case section.NameModule:
			if _, err := section.ModuleName(sub.Payload); err != nil {
				return err
			}

		case section.NameFunction:
			v, err := section.NameMap(&c)
			if err != nil {
				return err
			}
			if err := drain(&v); err != nil {
				return err
			}

		case section.NameLocal:
			v, err := section.IndirectNameMap(&c)
			if err != nil {
				return err
			}
			if err := drain(&v); err != nil {
				return err
			}
		}
	}
}

func drain[T any](v *binary.Vector[T]) error {
	for {
		_, ok, err := v.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}
