// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package section

import (
	"github.com/wasmscan/wasmscan/binary"
	"github.com/wasmscan/wasmscan/errors"
	"github.com/wasmscan/wasmscan/wa"
)

// ExternalKind classifies an import or export.
type ExternalKind byte

const (
	ExternalFunc   = ExternalKind(0)
	ExternalTable  = ExternalKind(1)
	ExternalMemory = ExternalKind(2)
	ExternalGlobal = ExternalKind(3)
	ExternalTag    = ExternalKind(4)
)

func (k ExternalKind) String() string {
	switch k {
	case ExternalFunc:
		return "func"
	case ExternalTable:
		return "table"
	case ExternalMemory:
		return "memory"
	case ExternalGlobal:
		return "global"
	case ExternalTag:
		return "tag"
	default:
		return "<invalid external kind>"
	}
}

// ImportEntry is one import section entry.  Only the description field matching
// Kind is meaningful.
type ImportEntry struct {
	Module []byte
	Field  []byte
	Kind   ExternalKind

	TypeIndex uint32
	Table     wa.TableType
	Memory    wa.MemType
	Global    wa.GlobalType
	Tag       wa.TagType
}

// ReadImport decodes one import entry.
func ReadImport(c *binary.Cursor) (ImportEntry, error) {
	var im ImportEntry
	var err error

	if im.Module, err = readName(c); err != nil {
		return ImportEntry{}, err
	}
	if im.Field, err = readName(c); err != nil {
		return ImportEntry{}, err
	}

	off := c.Offset()

	kind, err := c.ReadByte()
	if err != nil {
		return ImportEntry{}, err
	}
	im.Kind = ExternalKind(kind)

	switch im.Kind {
	case ExternalFunc:
		im.TypeIndex, err = binary.Varuint32(c)
	case ExternalTable:
		im.Table, err = wa.ReadTableType(c)
	case ExternalMemory:
		im.Memory, err = wa.ReadMemType(c)
	case ExternalGlobal:
		im.Global, err = wa.ReadGlobalType(c)
	case ExternalTag:
		im.Tag, err = wa.ReadTagType(c)
	default:
		err = errors.Newf(errors.InvalidEncoding, off, "invalid import kind: 0x%02x", kind)
	}
	if err != nil {
		return ImportEntry{}, err
	}

	return im, nil
}

// Imports decodes the import section payload.
func Imports(c *binary.Cursor) (binary.Vector[ImportEntry], error) {
	return binary.ReadVector(c, ReadImport)
}
