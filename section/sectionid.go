// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package section scans module sections and decodes their payloads.
package section

import (
	"fmt"
)

// ID identifies a section type.
type ID byte

const (
	Custom    = ID(0)
	Type      = ID(1)
	Import    = ID(2)
	Function  = ID(3)
	Table     = ID(4)
	Memory    = ID(5)
	Global    = ID(6)
	Export    = ID(7)
	Start     = ID(8)
	Element   = ID(9)
	Code      = ID(10)
	Data      = ID(11)
	DataCount = ID(12)
	Tag       = ID(13)
)

// Known tells if the id has a defined payload format.
func (id ID) Known() bool {
	return id <= Tag
}

func (id ID) String() string {
	switch id {
	case Custom:
		return "custom"
	case Type:
		return "type"
	case Import:
		return "import"
	case Function:
		return "function"
	case Table:
		return "table"
	case Memory:
		return "memory"
	case Global:
		return "global"
	case Export:
		return "export"
	case Start:
		return "start"
	case Element:
		return "element"
	case Code:
		return "code"
	case Data:
		return "data"
	case DataCount:
		return "data count"
	case Tag:
		return "tag"
	default:
		return fmt.Sprintf("section(0x%02x)", byte(id))
	}
}
