// Copyright (c) 2024 The wasmscan authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wa

import (
	"github.com/wasmscan/wasmscan/binary"
)

// GlobalType describes a global variable.
type GlobalType struct {
	Type    ValType
	Mutable bool
}

// ReadGlobalType decodes a global type.
func ReadGlobalType(c *binary.Cursor) (GlobalType, error) {
	t, err := ReadValType(c)
	if err != nil {
		return GlobalType{}, err
	}

	mut, err := binary.Varuint1(c)
	if err != nil {
		return GlobalType{}, err
	}

	return GlobalType{Type: t, Mutable: mut}, nil
}

func (g GlobalType) String() string {
	if g.Mutable {
		return "(mut " + g.Type.String() + ")"
	}
	return g.Type.String()
}
