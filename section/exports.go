// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package section

import (
	"github.com/wasmscan/wasmscan/binary"
	"github.com/wasmscan/wasmscan/errors"
)

// ExportEntry is one export section entry.
type ExportEntry struct {
	Name  []byte
	Kind  ExternalKind
	Index uint32
}

// ReadExport decodes one export entry.
func ReadExport(c *binary.Cursor) (ExportEntry, error) {
	var ex ExportEntry
	var err error

	if ex.Name, err = readName(c); err != nil {
		return ExportEntry{}, err
	}

	off := c.Offset()

	kind, err := c.ReadByte()
	if err != nil {
		return ExportEntry{}, err
	}
	if kind > byte(ExternalTag) {
		return ExportEntry{}, errors.Newf(errors.InvalidEncoding, off, "invalid export kind: 0x%02x", kind)
	}
	ex.Kind = ExternalKind(kind)

	if ex.Index, err = binary.Varuint32(c); err != nil {
		return ExportEntry{}, err
	}
	return ex, nil
}

// Exports decodes the export section payload.
func Exports(c *binary.Cursor) (binary.Vector[ExportEntry], error) {
	return binary.ReadVector(c, ReadExport)
}
