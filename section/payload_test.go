// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package section

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/wasmscan/wasmscan/binary"
	"github.com/wasmscan/wasmscan/errors"
	"github.com/wasmscan/wasmscan/wa"
)

func payloadCursor(data []byte) binary.Cursor {
	return windowOver(data).Cursor()
}

func TestTypesPayload(t *testing.T) {
	c := payloadCursor([]byte{
		0x02,
		0x60, 0x02, 0x7f, 0x7f, 0x01, 0x7f, // (i32, i32) -> i32
		0x60, 0x00, 0x00, // () -> ()
	})

	v, err := Types(&c)
	assert.NilError(t, err)
	assert.Equal(t, v.Len(), uint32(2))

	ft, ok, err := v.Next()
	assert.NilError(t, err)
	assert.Assert(t, ok)
	assert.Equal(t, ft.Params.Len(), 2)
	assert.Equal(t, ft.Results.Len(), 1)

	p0, err := ft.Params.Get(0)
	assert.NilError(t, err)
	assert.Equal(t, p0, wa.I32)
	assert.Equal(t, ft.String(), "(i32, i32) i32")

	ft, ok, err = v.Next()
	assert.NilError(t, err)
	assert.Assert(t, ok)
	assert.Equal(t, ft.Params.Len(), 0)
	assert.Equal(t, ft.Results.Len(), 0)
}

func TestTypesBadTag(t *testing.T) {
	c := payloadCursor([]byte{0x01, 0x5f, 0x00, 0x00})

	v, err := Types(&c)
	assert.NilError(t, err)

	_, _, err = v.Next()
	assert.Assert(t, errors.IsKind(err, errors.InvalidEncoding))
	assert.Equal(t, errors.AsError(err).Offset, int64(1))
}

func TestTypesBadValType(t *testing.T) {
	c := payloadCursor([]byte{0x01, 0x60, 0x01, 0x19, 0x00})

	v, err := Types(&c)
	assert.NilError(t, err)

	_, _, err = v.Next()
	assert.Assert(t, errors.IsKind(err, errors.InvalidEncoding))
	assert.Equal(t, errors.AsError(err).Offset, int64(3))
}

func TestImportsPayload(t *testing.T) {
	c := payloadCursor([]byte{
		0x03,
		0x03, 'e', 'n', 'v', 0x01, 'f', 0x00, 0x02, // func type 2
		0x03, 'e', 'n', 'v', 0x01, 'm', 0x02, 0x00, 0x01, // memory {1}
		0x03, 'e', 'n', 'v', 0x01, 'g', 0x03, 0x7f, 0x01, // mutable i32 global
	})

	v, err := Imports(&c)
	assert.NilError(t, err)

	im, ok, err := v.Next()
	assert.NilError(t, err)
	assert.Assert(t, ok)
	assert.Equal(t, string(im.Module), "env")
	assert.Equal(t, string(im.Field), "f")
	assert.Equal(t, im.Kind, ExternalFunc)
	assert.Equal(t, im.TypeIndex, uint32(2))

	im, _, err = v.Next()
	assert.NilError(t, err)
	assert.Equal(t, im.Kind, ExternalMemory)
	assert.Equal(t, im.Memory.Min, uint64(1))
	assert.Assert(t, !im.Memory.HasMax)

	im, _, err = v.Next()
	assert.NilError(t, err)
	assert.Equal(t, im.Kind, ExternalGlobal)
	assert.Equal(t, im.Global.Type, wa.I32)
	assert.Assert(t, im.Global.Mutable)
}

func TestImportBadKind(t *testing.T) {
	c := payloadCursor([]byte{0x01, 0x00, 0x00, 0x07})

	v, err := Imports(&c)
	assert.NilError(t, err)

	_, _, err = v.Next()
	assert.Assert(t, errors.IsKind(err, errors.InvalidEncoding))
}

func TestImportBadUTF8(t *testing.T) {
	c := payloadCursor([]byte{0x01, 0x01, 0xff, 0x00, 0x00})

	v, err := Imports(&c)
	assert.NilError(t, err)

	_, _, err = v.Next()
	assert.Assert(t, errors.IsKind(err, errors.InvalidEncoding))
	assert.Equal(t, errors.AsError(err).Offset, int64(2))
}

func TestTablesPayload(t *testing.T) {
	c := payloadCursor([]byte{
		0x01,
		0x70, 0x01, 0x00, 0x0a, // funcref {0, 10}
	})

	v, err := Tables(&c)
	assert.NilError(t, err)

	tt, ok, err := v.Next()
	assert.NilError(t, err)
	assert.Assert(t, ok)
	assert.Equal(t, tt.Elem, wa.FuncRef)
	assert.Equal(t, tt.Min, uint64(0))
	assert.Assert(t, tt.HasMax)
	assert.Equal(t, tt.Max, uint64(10))
}

func TestTableBadElem(t *testing.T) {
	c := payloadCursor([]byte{0x01, 0x7f, 0x00, 0x00})

	v, err := Tables(&c)
	assert.NilError(t, err)

	_, _, err = v.Next()
	assert.Assert(t, errors.IsKind(err, errors.InvalidEncoding))
}

func TestMemoriesPayload(t *testing.T) {
	c := payloadCursor([]byte{
		0x02,
		0x03, 0x01, 0x02, // shared {1, 2}
		0x04, 0x01, // i64-indexed {1}
	})

	v, err := Memories(&c)
	assert.NilError(t, err)

	m, _, err := v.Next()
	assert.NilError(t, err)
	assert.Assert(t, m.Shared)
	assert.Assert(t, m.HasMax)
	assert.Equal(t, m.Max, uint64(2))

	m, _, err = v.Next()
	assert.NilError(t, err)
	assert.Equal(t, m.Index, wa.I64Index)
	assert.Equal(t, m.Min, uint64(1))
}

func TestLimitsBadFlags(t *testing.T) {
	c := payloadCursor([]byte{0x01, 0x08, 0x00})

	v, err := Memories(&c)
	assert.NilError(t, err)

	_, _, err = v.Next()
	assert.Assert(t, errors.IsKind(err, errors.InvalidEncoding))
}

func TestGlobalsPayload(t *testing.T) {
	c := payloadCursor([]byte{
		0x01,
		0x7f, 0x00, // immutable i32
		0x41, 0x2a, 0x0b, // i32.const 42; end
	})

	v, err := Globals(&c)
	assert.NilError(t, err)

	g, ok, err := v.Next()
	assert.NilError(t, err)
	assert.Assert(t, ok)
	assert.Equal(t, g.Type.Type, wa.I32)
	assert.Assert(t, !g.Type.Mutable)
	assert.Equal(t, g.Init.Len(), int64(3))
}

func TestExportsPayload(t *testing.T) {
	c := payloadCursor([]byte{
		0x02,
		0x04, 'm', 'a', 'i', 'n', 0x00, 0x00,
		0x03, 'm', 'e', 'm', 0x02, 0x00,
	})

	v, err := Exports(&c)
	assert.NilError(t, err)

	ex, _, err := v.Next()
	assert.NilError(t, err)
	assert.Equal(t, string(ex.Name), "main")
	assert.Equal(t, ex.Kind, ExternalFunc)
	assert.Equal(t, ex.Index, uint32(0))

	ex, _, err = v.Next()
	assert.NilError(t, err)
	assert.Equal(t, ex.Kind, ExternalMemory)
}

func TestElementsPayload(t *testing.T) {
	c := payloadCursor([]byte{
		0x03,
		// Flag 0: active, table 0, offset expr, function indices.
		0x00, 0x41, 0x00, 0x0b, 0x02, 0x01, 0x02,
		// Flag 1: passive, element kind, function indices.
		0x01, 0x00, 0x01, 0x05,
		// Flag 5: passive, externref, expressions.
		0x05, 0x6f, 0x01, 0xd0, 0x6f, 0x0b,
	})

	v, err := Elements(&c)
	assert.NilError(t, err)

	s, ok, err := v.Next()
	assert.NilError(t, err)
	assert.Assert(t, ok)
	assert.Equal(t, s.Mode, ModeActive)
	assert.Equal(t, s.Table, uint32(0))
	assert.Equal(t, s.Type, wa.FuncRef)
	assert.Equal(t, s.Len(), uint32(2))

	funcs, ok := s.Functions()
	assert.Assert(t, ok)
	var got []uint32
	for {
		x, ok, err := funcs.Next()
		assert.NilError(t, err)
		if !ok {
			break
		}
		got = append(got, x)
	}
	assert.DeepEqual(t, got, []uint32{1, 2})

	_, ok = s.Exprs()
	assert.Assert(t, !ok)

	s, _, err = v.Next()
	assert.NilError(t, err)
	assert.Equal(t, s.Mode, ModePassive)
	assert.Equal(t, s.Len(), uint32(1))

	s, _, err = v.Next()
	assert.NilError(t, err)
	assert.Equal(t, s.Mode, ModePassive)
	assert.Equal(t, s.Type, wa.ExternRef)

	exprs, ok := s.Exprs()
	assert.Assert(t, ok)
	win, ok, err := exprs.Next()
	assert.NilError(t, err)
	assert.Assert(t, ok)
	assert.Equal(t, win.Len(), int64(3)) // ref.null externref; end
}

func TestElementBadFlags(t *testing.T) {
	c := payloadCursor([]byte{0x01, 0x08})

	v, err := Elements(&c)
	assert.NilError(t, err)

	_, _, err = v.Next()
	assert.Assert(t, errors.IsKind(err, errors.InvalidEncoding))
}

func TestElementBadKind(t *testing.T) {
	c := payloadCursor([]byte{0x01, 0x01, 0x01, 0x00})

	v, err := Elements(&c)
	assert.NilError(t, err)

	_, _, err = v.Next()
	assert.Assert(t, errors.IsKind(err, errors.InvalidEncoding))
}

func TestDataPayload(t *testing.T) {
	c := payloadCursor([]byte{
		0x03,
		0x00, 0x41, 0x10, 0x0b, 0x03, 'a', 'b', 'c', // active at offset 16
		0x01, 0x02, 'x', 'y', // passive
		0x02, 0x01, 0x41, 0x00, 0x0b, 0x00, // active in memory 1, empty
	})

	v, err := DataSegments(&c)
	assert.NilError(t, err)

	s, ok, err := v.Next()
	assert.NilError(t, err)
	assert.Assert(t, ok)
	assert.Equal(t, s.Mode, ModeActive)
	b, err := s.Init.Bytes(0, s.Init.Len())
	assert.NilError(t, err)
	assert.DeepEqual(t, b, []byte{'a', 'b', 'c'})

	s, _, err = v.Next()
	assert.NilError(t, err)
	assert.Equal(t, s.Mode, ModePassive)
	assert.Equal(t, s.Init.Len(), int64(2))

	s, _, err = v.Next()
	assert.NilError(t, err)
	assert.Equal(t, s.Mode, ModeActive)
	assert.Equal(t, s.Memory, uint32(1))
	assert.Equal(t, s.Init.Len(), int64(0))
}

func TestDataBadFlags(t *testing.T) {
	c := payloadCursor([]byte{0x01, 0x03})

	v, err := DataSegments(&c)
	assert.NilError(t, err)

	_, _, err = v.Next()
	assert.Assert(t, errors.IsKind(err, errors.InvalidEncoding))
}

func TestCodePayload(t *testing.T) {
	c := payloadCursor([]byte{
		0x01,
		0x07,             // body size
		0x01, 0x02, 0x7f, // two i32 locals
		0x41, 0x01, 0x1a, 0x0b, // i32.const 1; drop; end
	})

	v, err := CodeEntries(&c)
	assert.NilError(t, err)

	b, ok, err := v.Next()
	assert.NilError(t, err)
	assert.Assert(t, ok)
	assert.Equal(t, b.Window().Len(), int64(7))

	bc := b.Cursor()
	locals, err := b.Locals(&bc)
	assert.NilError(t, err)

	l, ok, err := locals.Next()
	assert.NilError(t, err)
	assert.Assert(t, ok)
	assert.Equal(t, l.Count, uint32(2))
	assert.Equal(t, l.Type, wa.I32)
}

func TestTagsPayload(t *testing.T) {
	c := payloadCursor([]byte{0x01, 0x00, 0x03})

	v, err := Tags(&c)
	assert.NilError(t, err)

	tag, ok, err := v.Next()
	assert.NilError(t, err)
	assert.Assert(t, ok)
	assert.Equal(t, tag.TypeIndex, uint32(3))
}

func TestTagBadAttribute(t *testing.T) {
	c := payloadCursor([]byte{0x01, 0x01, 0x00})

	v, err := Tags(&c)
	assert.NilError(t, err)

	_, _, err = v.Next()
	assert.Assert(t, errors.IsKind(err, errors.InvalidEncoding))
}

func TestStartAndDataCount(t *testing.T) {
	c := payloadCursor([]byte{0x05})
	i, err := StartFunc(&c)
	assert.NilError(t, err)
	assert.Equal(t, i, uint32(5))

	c = payloadCursor([]byte{0x80, 0x01})
	n, err := DataCountValue(&c)
	assert.NilError(t, err)
	assert.Equal(t, n, uint32(128))
}

func TestCustomPayload(t *testing.T) {
	cs, err := ReadCustom(windowOver([]byte{0x04, 'i', 'n', 'f', 'o', 1, 2, 3}))
	assert.NilError(t, err)
	assert.Equal(t, string(cs.Name), "info")
	assert.Equal(t, cs.Contents.Len(), int64(3))
}
