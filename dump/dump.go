// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dump writes a textual listing of a module binary.
package dump

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/wasmscan/wasmscan/binary"
	"github.com/wasmscan/wasmscan/code"
	"github.com/wasmscan/wasmscan/section"
	"github.com/wasmscan/wasmscan/wa/opcode"
)

// Module writes a listing of the module binary covered by win.
func Module(w io.Writer, win binary.Window) error {
	d := &dumper{w: w}

	s := section.NewScanner(win)
	for {
		sec, ok, err := s.Next()
		if err != nil {
			return err
		}
		if !ok {
			return d.err
		}

		logger.Debug("section",
			zap.Stringer("id", sec.ID),
			zap.Int64("offset", sec.Payload.Base()),
			zap.Int64("size", sec.Payload.Len()))

		if err := d.section(sec); err != nil {
			return err
		}
	}
}

type dumper struct {
	w   io.Writer
	err error

	numBodies int
}

func (d *dumper) printf(format string, args ...interface{}) {
	if d.err == nil {
		_, d.err = fmt.Fprintf(d.w, format, args...)
	}
}

func (d *dumper) section(sec section.Section) error {
	c := sec.Payload.Cursor()

	switch sec.ID {
	case section.Custom:
		return d.custom(sec.Payload)

	case section.Type:
		v, err := section.Types(&c)
		if err != nil {
			return err
		}
		for n := 0; ; n++ {
			t, ok, err := v.Next()
			if err != nil {
				return err
			}
			if !ok {
				break
			}
			d.printf("(type %d (func %s))\n", n, t)
		}

	case section.Import:
		v, err := section.Imports(&c)
		if err != nil {
			return err
		}
		for {
			im, ok, err := v.Next()
			if err != nil {
				return err
			}
			if !ok {
				break
			}
			d.printf("(import %q %q %s", im.Module, im.Field, im.Kind)
			switch im.Kind {
			case section.ExternalFunc:
				d.printf(" (type %d)", im.TypeIndex)
			case section.ExternalGlobal:
				d.printf(" %s", im.Global)
			case section.ExternalTag:
				d.printf(" (type %d)", im.Tag.TypeIndex)
			}
			d.printf(")\n")
		}

	case section.Function:
		v, err := section.Functions(&c)
		if err != nil {
			return err
		}
		for n := 0; ; n++ {
			t, ok, err := v.Next()
			if err != nil {
				return err
			}
			if !ok {
				break
			}
			d.printf("(func %d (type %d))\n", n, t)
		}

	case section.Table:
		v, err := section.Tables(&c)
		if err != nil {
			return err
		}
		for n := 0; ; n++ {
			t, ok, err := v.Next()
			if err != nil {
				return err
			}
			if !ok {
				break
			}
			d.printf("(table %d %s %s)\n", n, t.Limits, t.Elem)
		}

	case section.Memory:
		v, err := section.Memories(&c)
		if err != nil {
			return err
		}
		for n := 0; ; n++ {
			m, ok, err := v.Next()
			if err != nil {
				return err
			}
			if !ok {
				break
			}
			d.printf("(memory %d %s)\n", n, m.Limits)
		}

	case section.Global:
		v, err := section.Globals(&c)
		if err != nil {
			return err
		}
		for n := 0; ; n++ {
			g, ok, err := v.Next()
			if err != nil {
				return err
			}
			if !ok {
				break
			}
			init, err := d.expr(g.Init)
			if err != nil {
				return err
			}
			d.printf("(global %d %s %s)\n", n, g.Type, init)
		}

	case section.Export:
		v, err := section.Exports(&c)
		if err != nil {
			return err
		}
		for {
			ex, ok, err := v.Next()
			if err != nil {
				return err
			}
			if !ok {
				break
			}
			d.printf("(export %q (%s %d))\n", ex.Name, ex.Kind, ex.Index)
		}

	case section.Start:
		i, err := section.StartFunc(&c)
		if err != nil {
			return err
		}
		d.printf("(start %d)\n", i)

	case section.Element:
		v, err := section.Elements(&c)
		if err != nil {
			return err
		}
		for n := 0; ; n++ {
			s, ok, err := v.Next()
			if err != nil {
				return err
			}
			if !ok {
				break
			}
			d.printf("(elem %d %s %s, %d items)\n", n, s.Mode, s.Type, s.Len())
		}

	case section.Code:
		return d.code(&c)

	case section.Data:
		v, err := section.DataSegments(&c)
		if err != nil {
			return err
		}
		for n := 0; ; n++ {
			s, ok, err := v.Next()
			if err != nil {
				return err
			}
			if !ok {
				break
			}
			d.printf("(data %d %s, %d bytes)\n", n, s.Mode, s.Init.Len())
		}

	case section.DataCount:
		n, err := section.DataCountValue(&c)
		if err != nil {
			return err
		}
		d.printf("(data count %d)\n", n)

	case section.Tag:
		v, err := section.Tags(&c)
		if err != nil {
			return err
		}
		for n := 0; ; n++ {
			t, ok, err := v.Next()
			if err != nil {
				return err
			}
			if !ok {
				break
			}
			d.printf("(tag %d (type %d))\n", n, t.TypeIndex)
		}

	default:
		d.printf("(section %d, %d bytes)\n", byte(sec.ID), sec.Payload.Len())
	}

	return d.err
}

func (d *dumper) custom(payload binary.Window) error {
	cs, err := section.ReadCustom(payload)
	if err != nil {
		// Custom section contents don't affect module semantics, so
		// a malformed one is reported but not fatal.
		logger.Warn("malformed custom section", zap.Error(err))
		d.printf("(custom section, %d bytes, malformed)\n", payload.Len())
		return d.err
	}

	d.printf("(custom %q, %d bytes)\n", cs.Name, cs.Contents.Len())

	if string(cs.Name) == section.CustomName {
		d.names(cs.Contents)
	}
	return d.err
}

func (d *dumper) names(contents binary.Window) {
	s := section.NewNameScanner(contents)
	for {
		sub, ok, err := s.Next()
		if err != nil || !ok {
			if err != nil {
				logger.Warn("malformed name section", zap.Error(err))
			}
			return
		}

		switch sub.ID {
		case section.NameModule:
			if name, err := section.ModuleName(sub.Payload); err == nil {
				d.printf("  (module name %q)\n", name)
			}

		case section.NameFunction:
			c := sub.Payload.Cursor()
			v, err := section.NameMap(&c)
			if err != nil {
				return
			}
			for {
				a, ok, err := v.Next()
				if err != nil || !ok {
					break
				}
				d.printf("  (func name %d %q)\n", a.Index, a.Name)
			}
		}
	}
}

func (d *dumper) code(c *binary.Cursor) error {
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
			return d.err
		}

		d.printf("(func body %d)\n", d.numBodies)
		d.numBodies++

		bc := b.Cursor()
		locals, err := b.Locals(&bc)
		if err != nil {
			return err
		}
		for {
			l, ok, err := locals.Next()
			if err != nil {
				return err
			}
			if !ok {
				break
			}
			d.printf("  (local %d %s)\n", l.Count, l.Type)
		}

		if err := d.instrs(&bc, 1); err != nil {
			return err
		}
	}
}

// expr renders a constant expression on one line, without the
// terminating end.
func (d *dumper) expr(win binary.Window) (string, error) {
	c := win.Cursor()
	dec := code.NewDecoder(&c)

	var parts []string
	var i code.Instr
	for {
		ok, err := dec.Next(&i)
		if err != nil {
			return "", err
		}
		if !ok || i.Opcode == opcode.End {
			return "(" + strings.Join(parts, " ") + ")", nil
		}
		parts = append(parts, instrString(&i))
	}
}

func (d *dumper) instrs(c *binary.Cursor, indent int) error {
	dec := code.NewDecoder(c)

	var i code.Instr
	for {
		off := dec.Offset()

		ok, err := dec.Next(&i)
		if err != nil {
			return err
		}
		if !ok {
			return d.err
		}

		switch i.Opcode {
		case opcode.End, opcode.Else, opcode.Catch, opcode.CatchAll, opcode.Delegate:
			if indent > 0 {
				indent--
			}
		}

		d.printf("%08x:%s  %s\n", off, strings.Repeat("  ", indent), instrString(&i))

		switch i.Opcode {
		case opcode.Block, opcode.Loop, opcode.If, opcode.Try,
			opcode.Else, opcode.Catch, opcode.CatchAll:
			indent++
		}
	}
}

func instrString(i *code.Instr) string {
	op := i.Opcode
	s := op.String()

	switch op {
	case opcode.Block, opcode.Loop, opcode.If, opcode.Try:
		if !i.Block.Empty() {
			s += " " + i.Block.String()
		}
		return s

	case opcode.Br, opcode.BrIf, opcode.Rethrow, opcode.Delegate,
		opcode.Call, opcode.ReturnCall, opcode.Throw, opcode.Catch,
		opcode.LocalGet, opcode.LocalSet, opcode.LocalTee,
		opcode.GlobalGet, opcode.GlobalSet,
		opcode.TableGet, opcode.TableSet,
		opcode.MemorySize, opcode.MemoryGrow,
		opcode.RefFunc:
		return fmt.Sprintf("%s %d", s, i.Index())

	case opcode.CallIndirect, opcode.ReturnCallIndirect:
		return fmt.Sprintf("%s %d (type %d)", s, uint32(i.Y), i.Index())

	case opcode.BrTable:
		return fmt.Sprintf("%s [%d labels] %d", s, i.Table.Count, i.Table.Default)

	case opcode.RefNull:
		return fmt.Sprintf("%s %s", s, i.RefType())

	case opcode.SelectMany:
		return fmt.Sprintf("%s (%s)", s, i.Types)

	case opcode.I32Const:
		return fmt.Sprintf("%s %d", s, i.I32())
	case opcode.I64Const:
		return fmt.Sprintf("%s %d", s, i.I64())
	case opcode.F32Const:
		return fmt.Sprintf("%s %g", s, i.F32())
	case opcode.F64Const:
		return fmt.Sprintf("%s %g", s, i.F64())
	}

	if hasMemArg(op) {
		s = fmt.Sprintf("%s offset=%d align=%d", s, i.Mem.Offset, i.Mem.Align)
		if i.Mem.Memory != 0 {
			s += fmt.Sprintf(" memory=%d", i.Mem.Memory)
		}
	}
	return s
}

func hasMemArg(op opcode.Opcode) bool {
	if prefix, ok := op.Prefix(); ok {
		switch prefix {
		case opcode.AtomicPrefix:
			return op != opcode.AtomicFence
		case opcode.VectorPrefix:
			sub := op.Sub()
			return sub <= 0x0b || (sub >= 0x54 && sub <= 0x5d)
		}
		return false
	}
	return op >= opcode.I32Load && op <= opcode.I64Store32
}
