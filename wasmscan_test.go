// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wasmscan_test

import (
	"bytes"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/wasmscan/wasmscan"
	"github.com/wasmscan/wasmscan/binary"
	"github.com/wasmscan/wasmscan/buffer"
	"github.com/wasmscan/wasmscan/errors"
	"github.com/wasmscan/wasmscan/section"
)

func buildModule() []byte {
	mod := []byte{0x00, 'a', 's', 'm', 1, 0, 0, 0}

	appendSection := func(id section.ID, payload []byte) {
		mod = append(mod, byte(id))
		mod = binary.AppendVaruint32(mod, uint32(len(payload)))
		mod = append(mod, payload...)
	}

	appendSection(section.Type, []byte{
		0x01,
		0x60, 0x00, 0x01, 0x7f, // () -> i32
	})
	appendSection(section.Function, []byte{0x01, 0x00})
	appendSection(section.Table, []byte{0x01, 0x70, 0x00, 0x01})
	appendSection(section.Memory, []byte{0x01, 0x00, 0x01})
	appendSection(section.Global, []byte{
		0x01,
		0x7f, 0x01, // mutable i32
		0x41, 0x00, 0x0b,
	})
	appendSection(section.Export, []byte{
		0x01,
		0x01, 'f', 0x00, 0x00,
	})
	appendSection(section.Element, []byte{
		0x01,
		0x00, 0x41, 0x00, 0x0b, 0x01, 0x00,
	})
	appendSection(section.Code, []byte{
		0x01,
		0x04,
		0x00,
		0x41, 0x2a, 0x0b, // i32.const 42; end
	})
	appendSection(section.Data, []byte{
		0x01,
		0x00, 0x41, 0x00, 0x0b, 0x02, 'h', 'i',
	})
	appendSection(section.Custom, []byte{
		0x04, 'n', 'a', 'm', 'e',
		0x01, 0x04, 0x01, 0x00, 0x01, 'f', // function names
	})

	return mod
}

func TestWalk(t *testing.T) {
	assert.NilError(t, wasmscan.Walk(wasmscan.Module(buildModule())))
}

func TestWalkReaderAt(t *testing.T) {
	mod := buildModule()
	win := binary.NewWindow(buffer.NewReaderAt(bytes.NewReader(mod), int64(len(mod))))
	assert.NilError(t, wasmscan.Walk(win))
}

func TestWalkTruncatedBody(t *testing.T) {
	mod := buildModule()
	// Chop the final byte so the trailing custom section overruns.
	mod = mod[:len(mod)-1]

	err := wasmscan.Walk(wasmscan.Module(mod))
	assert.Assert(t, err != nil)
	assert.Assert(t, errors.AsError(err) != nil)
}

func TestScan(t *testing.T) {
	s := wasmscan.Scan(buildModule())

	var n int
	for {
		_, ok, err := s.Next()
		assert.NilError(t, err)
		if !ok {
			break
		}
		n++
	}
	assert.Equal(t, n, 10)
	assert.Assert(t, s.Done())
}
